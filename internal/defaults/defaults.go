package defaults

import (
	"github.com/toolreg-labs/toolreg/internal/platform"
	"github.com/toolreg-labs/toolreg/internal/program"
	"github.com/toolreg-labs/toolreg/internal/registry"
)

// Well-known program names.
const (
	GHC       = "ghc"
	GHCPkg    = "ghc-pkg"
	NHC       = "nhc98"
	HMake     = "hmake"
	JHC       = "jhc"
	Hugs      = "hugs"
	FFIHugs   = "ffihugs"
	Haddock   = "haddock"
	Happy     = "happy"
	Alex      = "alex"
	HSC2HS    = "hsc2hs"
	C2HS      = "c2hs"
	CPPHS     = "cpphs"
	GreenCard = "greencard"
	Ar        = "ar"
	Ranlib    = "ranlib"
	Strip     = "strip"
	Ld        = "ld"
	Tar       = "tar"
	PfeSetup  = "pfesetup"
	GCC       = "gcc"
	CPP       = "cpp"
)

// builtin pairs each program name with the binary searched for.
var builtin = []struct{ name, binary string }{
	{GHC, "ghc"},
	{GHCPkg, "ghc-pkg"},
	{NHC, "nhc98"},
	{HMake, "hmake"},
	{JHC, "jhc"},
	{Hugs, "hugs"},
	{FFIHugs, "ffihugs"},
	{Haddock, "haddock"},
	{Happy, "happy"},
	{Alex, "alex"},
	{HSC2HS, "hsc2hs"},
	{C2HS, "c2hs"},
	{CPPHS, "cpphs"},
	{GreenCard, "greencard"},
	{Ar, "ar"},
	{Ranlib, "ranlib"},
	{Strip, "strip"},
	{Ld, "ld"},
	{Tar, "tar"},
	{PfeSetup, "pfesetup"},
	{GCC, "gcc"},
	{CPP, "cpp"},
}

// Programs returns a fresh copy of the built-in descriptors.
func Programs() []program.Program {
	programs := make([]program.Program, 0, len(builtin))
	for _, b := range builtin {
		p := program.New(b.name, b.binary)
		if b.name == Ld {
			if path, ok := platform.LinkerPath(); ok {
				p = p.WithLocation(program.FoundAt(path))
			}
		}
		programs = append(programs, p)
	}
	return programs
}

// Registry returns the startup registry: every built-in program, looked up
// with locator.
func Registry(locator registry.Locator) registry.Registry {
	return registry.New(locator, Programs()...)
}
