package defaults

import (
	"regexp"

	"github.com/toolreg-labs/toolreg/internal/program"
)

// Probe is how to ask a tool for its version.
type Probe struct {
	Flag     string
	Selector program.Selector
}

// FallbackProbe is used for tools with no entry in the probe table.
var FallbackProbe = Probe{Flag: "--version", Selector: program.FirstVersion}

var haddockVersion = regexp.MustCompile(`(?i)haddock version (\d+(?:\.\d+)+)`)

var probes = map[string]Probe{
	GHC:     {Flag: "--numeric-version", Selector: program.LastWord},
	GHCPkg:  {Flag: "--version", Selector: program.LastWord},
	NHC:     {Flag: "--version", Selector: program.FirstVersion},
	JHC:     {Flag: "--version", Selector: program.FirstVersion},
	Haddock: {Flag: "--version", Selector: program.Regexp(haddockVersion, 1)},
	Happy:   {Flag: "--version", Selector: program.FirstVersion},
	Alex:    {Flag: "--version", Selector: program.FirstVersion},
	HSC2HS:  {Flag: "--version", Selector: program.FirstVersion},
	C2HS:    {Flag: "--numeric-version", Selector: program.LastWord},
	CPPHS:   {Flag: "--version", Selector: program.LastWord},
	Ld:      {Flag: "--version", Selector: program.FirstVersion},
	Tar:     {Flag: "--version", Selector: program.FirstVersion},
	GCC:     {Flag: "-dumpversion", Selector: program.LastWord},
	CPP:     {Flag: "--version", Selector: program.FirstVersion},
}

// VersionProbe returns the version probe for a known tool.
func VersionProbe(name string) (Probe, bool) {
	p, ok := probes[name]
	return p, ok
}

// VersionProbeOrFallback returns the tool's probe or FallbackProbe.
func VersionProbeOrFallback(name string) Probe {
	if p, ok := probes[name]; ok {
		return p
	}
	return FallbackProbe
}
