package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/toolreg-labs/toolreg/internal/config"
	"github.com/toolreg-labs/toolreg/internal/defaults"
	"github.com/toolreg-labs/toolreg/internal/discovery"
	"github.com/toolreg-labs/toolreg/internal/logging"
	"github.com/toolreg-labs/toolreg/internal/registry"
	"github.com/toolreg-labs/toolreg/internal/toolsfile"
)

// sessionOptions are the persistent flags shared by every command.
type sessionOptions struct {
	Verbosity    string
	ToolsFile    string
	WithPrograms []string
	ProgramArgs  []string
}

// session is the state a command works against: the user's configuration
// and the registry with all overrides applied.
type session struct {
	Logger   zerolog.Logger
	Config   *config.Config
	Finder   *discovery.Finder
	Registry registry.Registry
}

// assignment is one name=value flag.
type assignment struct {
	Name  string
	Value string
}

func newSession(cmd *cobra.Command) (*session, error) {
	return openSession(globalOpts, "", cmd.ErrOrStderr())
}

// openSession loads the config at configPath (the default location when
// empty) and builds the registry: built-in programs, then the tools file,
// then config and environment overrides, then flag overrides.
func openSession(opts sessionOptions, configPath string, logOut io.Writer) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := opts.Verbosity
	if level == "" {
		level = cfg.Verbosity()
	}
	verbosity, err := logging.ParseVerbosity(level)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logOut, verbosity)

	finder := discovery.NewFinder(logger)
	reg := defaults.Registry(finder)

	toolsFile := opts.ToolsFile
	if toolsFile == "" {
		toolsFile = cfg.ToolsFile()
	}
	if toolsFile != "" {
		logger.Debug().Str("path", toolsFile).Msg("loading tools file")
		reg, err = toolsfile.Load(reg, toolsFile)
		if err != nil {
			return nil, fmt.Errorf("loading tools file %s: %w", toolsFile, err)
		}
	}

	for _, o := range cfg.Overrides(reg.Names()) {
		if o.Path != "" {
			if reg, err = reg.SetUserPath(o.Name, o.Path); err != nil {
				return nil, fmt.Errorf("applying config override: %w", err)
			}
		}
		if o.Args != "" {
			reg = reg.SetUserArgs(o.Name, o.Args)
		}
	}

	paths, err := parseAssignments(opts.WithPrograms)
	if err != nil {
		return nil, fmt.Errorf("parsing --with-program: %w", err)
	}
	for _, a := range paths {
		if reg, err = reg.SetUserPath(a.Name, a.Value); err != nil {
			return nil, err
		}
	}

	args, err := parseAssignments(opts.ProgramArgs)
	if err != nil {
		return nil, fmt.Errorf("parsing --program-args: %w", err)
	}
	for _, a := range args {
		reg = reg.SetUserArgs(a.Name, a.Value)
	}

	return &session{Logger: logger, Config: cfg, Finder: finder, Registry: reg}, nil
}

// parseAssignments splits name=value pairs, keeping their order so that a
// later flag for the same name wins.
func parseAssignments(inputs []string) ([]assignment, error) {
	var result []assignment
	for _, input := range inputs {
		parts := strings.SplitN(input, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid format %q: expected name=value", input)
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, fmt.Errorf("invalid format %q: name cannot be empty", input)
		}
		result = append(result, assignment{Name: name, Value: strings.TrimSpace(parts[1])})
	}
	return result, nil
}
