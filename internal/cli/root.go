package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/toolreg-labs/toolreg/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var globalOpts sessionOptions

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a registry of the external programs a build needs
(compilers, package tools, parser generators, linkers), finds them on the
search path, applies user overrides and runs them.

Overrides are layered: the tools file, then the config file and environment,
then --with-program and --program-args on the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&globalOpts.Verbosity, "verbosity", "v", "", "Diagnostic level: silent, normal, verbose, deafening (or 0-3)")
	pf.StringVar(&globalOpts.ToolsFile, "tools-file", "", "YAML or TOML file describing program overrides")
	pf.StringArrayVar(&globalOpts.WithPrograms, "with-program", nil, "Use the given path for a program, as name=path (can be specified multiple times)")
	pf.StringArrayVar(&globalOpts.ProgramArgs, "program-args", nil, "Default arguments for a program, as name=\"args\" (can be specified multiple times)")
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the context handed to running tools.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
