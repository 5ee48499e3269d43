package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toolreg-labs/toolreg/internal/defaults"
	"github.com/toolreg-labs/toolreg/internal/program"
	"github.com/toolreg-labs/toolreg/internal/registry"
	"github.com/toolreg-labs/toolreg/internal/runtime"
	"github.com/toolreg-labs/toolreg/internal/toolsfile"
)

var (
	checkFile     string
	doctorVersion bool
)

func init() {
	doctorCmd.Flags().StringVar(&checkFile, "check-file", "", "Validate a tools file at the given path")
	doctorCmd.Flags().BoolVar(&doctorVersion, "versions", false, "Also run each found program to report its version")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report which programs are available",
	Long: `Run diagnostic checks on the configuration and report, for every
registered program, whether it was found and where.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if checkFile != "" {
			return runToolsFileCheck(out, checkFile)
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		runConfigCheck(out, s)
		var prober *runtime.Prober
		if doctorVersion {
			prober = runtime.NewProber(s.Finder, s.Logger)
		}
		runProgramsCheck(cmd.Context(), out, s.Registry, prober)
		return nil
	},
}

func runConfigCheck(out io.Writer, s *session) {
	fmt.Fprintln(out, "Config check:")
	if _, err := os.Stat(s.Config.Path()); err != nil {
		fmt.Fprintf(out, "  [INFO] No config file at %s\n", s.Config.Path())
	} else {
		fmt.Fprintf(out, "  [ OK ] Config file %s\n", s.Config.Path())
	}

	if path := s.Config.ToolsFile(); path != "" {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(out, "  [FAIL] Tools file %s: %v\n", path, err)
		} else {
			fmt.Fprintf(out, "  [ OK ] Tools file %s\n", path)
		}
	}
}

// runProgramsCheck prints one line per registered program. A nil prober
// skips version probing. Found programs are recorded in the returned
// registry so probing does not search for them again.
func runProgramsCheck(ctx context.Context, out io.Writer, reg registry.Registry, prober *runtime.Prober) (resolved registry.Registry, found, missing int) {
	fmt.Fprintln(out, "Programs check:")
	for _, name := range reg.Names() {
		var p program.Program
		reg, p, _ = reg.Resolve(name)

		path, ok := p.Path()
		if !ok {
			missing++
			fmt.Fprintf(out, "  [MISS] %s (%s) not found\n", name, p.BinaryName)
			continue
		}
		found++

		if prober == nil {
			fmt.Fprintf(out, "  [ OK ] %s found at %s (%s)\n", name, path, p.Location.Kind())
			continue
		}

		probe := defaults.VersionProbeOrFallback(name)
		probed, err := prober.Probe(ctx, p, probe.Flag, probe.Selector)
		if err != nil {
			fmt.Fprintf(out, "  [WARN] %s found at %s, version unknown: %v\n", name, path, err)
			continue
		}
		reg = reg.Insert(probed)
		fmt.Fprintf(out, "  [ OK ] %s %s found at %s (%s)\n", name, probed.Version, path, p.Location.Kind())
	}
	fmt.Fprintf(out, "  %d found, %d missing\n", found, missing)
	return reg, found, missing
}

func runToolsFileCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Tools file validation: %s\n", path)

	result, err := toolsfile.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("tools file validation failed: %w", err)
	}

	if result.Valid {
		f, err := toolsfile.Parse(path)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return err
		}
		fmt.Fprintf(out, "  [ OK ] Valid tools file with %d program(s)\n", len(f.Programs))
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("tools file %s has %d validation issue(s)", path, len(result.Issues))
}
