package runtime

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/toolreg-labs/toolreg/internal/program"
	"github.com/toolreg-labs/toolreg/internal/registry"
)

// Prober determines the version of a program by running it.
type Prober struct {
	Locator registry.Locator
	Runner  Runner
	Logger  zerolog.Logger
}

// NewProber returns a Prober that spawns real processes and searches with locator.
func NewProber(locator registry.Locator, logger zerolog.Logger) *Prober {
	return &Prober{Locator: locator, Runner: ExecRunner{}, Logger: logger}
}

// Probe runs p with versionFlag only (default arguments are not passed),
// applies selector to its standard output and parses the result. The returned
// program carries the version and the location that was used.
func (pr *Prober) Probe(ctx context.Context, p program.Program, versionFlag string, selector program.Selector) (program.Program, error) {
	p, err := pr.locate(p)
	if err != nil {
		return p, err
	}
	path, _ := p.Path()

	var args []string
	if versionFlag != "" {
		args = []string{versionFlag}
	}

	var stdout, stderr bytes.Buffer
	runner := pr.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	code, err := runner.Run(ctx, Command{Path: path, Args: args, Stdout: &stdout, Stderr: &stderr})
	if err != nil {
		return p, fmt.Errorf("probing version of %s: %w", p.Name, err)
	}
	if code != 0 {
		pr.Logger.Debug().Str("program", p.Name).Str("stderr", strings.TrimSpace(stderr.String())).Msg("version probe failed")
		return p, &program.NonZeroExitError{Name: p.Name, Code: code}
	}

	output := stdout.String()
	if selector == nil {
		selector = program.FirstVersion
	}
	v, err := program.ParseVersion(selector(output))
	if err != nil {
		return p, &program.VersionParseError{Name: p.Name, Output: output, Err: err}
	}

	pr.Logger.Debug().Str("program", p.Name).Str("version", v.String()).Msg("probed version")
	return p.WithVersion(v), nil
}

func (pr *Prober) locate(p program.Program) (program.Program, error) {
	if p.Location.IsResolved() {
		return p, nil
	}
	if pr.Locator == nil {
		return p, &program.NotFoundError{BinaryName: p.BinaryName}
	}
	loc, err := pr.Locator.Search(p.BinaryName)
	if err != nil {
		return p, err
	}
	return p.WithLocation(loc), nil
}
