package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/toolreg-labs/toolreg/internal/program"
	"github.com/toolreg-labs/toolreg/internal/registry"
)

// Invoker runs resolved programs.
type Invoker struct {
	Runner Runner
	Stdin  io.Reader
	// Stdout and Stderr receive the tool's output; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
	Env    []string
	Logger zerolog.Logger
}

// NewInvoker returns an Invoker that spawns real processes.
func NewInvoker(logger zerolog.Logger) *Invoker {
	return &Invoker{Runner: ExecRunner{}, Logger: logger}
}

// Run executes p with its default arguments followed by extraArgs. It fails
// with *program.UnresolvedLocationError when p has no known path and with
// *program.NonZeroExitError when the tool exits unsuccessfully.
func (i *Invoker) Run(ctx context.Context, p program.Program, extraArgs []string) error {
	path, ok := p.Path()
	if !ok {
		return &program.UnresolvedLocationError{Name: p.Name}
	}

	args := p.CommandLine(extraArgs)
	i.Logger.Debug().Str("program", p.Name).Str("path", path).Strs("args", args).Msg("running")

	code, err := i.runner().Run(ctx, Command{
		Path:   path,
		Args:   args,
		Dir:    i.Dir,
		Env:    i.Env,
		Stdin:  i.Stdin,
		Stdout: writerOr(i.Stdout, os.Stdout),
		Stderr: writerOr(i.Stderr, os.Stderr),
	})
	if err != nil {
		return fmt.Errorf("running %s: %w", p.Name, err)
	}

	i.Logger.Debug().Str("program", p.Name).Int("exit_code", code).Msg("finished")
	if code != 0 {
		return &program.NonZeroExitError{Name: p.Name, Code: code}
	}
	return nil
}

// RunByName looks name up in reg and runs it. Names with no entry fail with
// *program.NotRegisteredError.
func (i *Invoker) RunByName(ctx context.Context, reg registry.Registry, name string, extraArgs []string) error {
	p, ok := reg.Lookup(name)
	if !ok {
		return &program.NotRegisteredError{Name: name}
	}
	return i.Run(ctx, p, extraArgs)
}

func (i *Invoker) runner() Runner {
	if i.Runner == nil {
		return ExecRunner{}
	}
	return i.Runner
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
