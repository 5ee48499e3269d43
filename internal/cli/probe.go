package cli

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/toolreg-labs/toolreg/internal/defaults"
	"github.com/toolreg-labs/toolreg/internal/program"
	"github.com/toolreg-labs/toolreg/internal/runtime"
)

var (
	probeFlag    string
	probePattern string
	probeRequire string
	probeMin     string
	probeJSON    bool
)

var probeCmd = &cobra.Command{
	Use:   "probe <name>",
	Short: "Determine the version of a program by running it",
	Long: `Run a program with its version flag and extract the version from its output.

Known tools use their own flag and output format. Anything else is run with
--version and the first dotted number in the output is taken. --flag and
--pattern override both; a pattern with a capture group selects the group.

--require checks the version against a constraint such as ">= 9.2, < 9.8"
and fails when it is not met. Constraints see only the first three
components; --min compares every component, for tools such as happy that
release 1.19.12.1.`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&probeFlag, "flag", "", "Argument that makes the program print its version")
	probeCmd.Flags().StringVar(&probePattern, "pattern", "", "Regular expression selecting the version in the output")
	probeCmd.Flags().StringVar(&probeRequire, "require", "", "Version constraint the program must satisfy")
	probeCmd.Flags().StringVar(&probeMin, "min", "", "Oldest acceptable version, compared component by component")
	probeCmd.Flags().BoolVar(&probeJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(probeCmd)
}

type probeResult struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Version   string `json:"version"`
	Satisfies *bool  `json:"satisfies,omitempty"`
}

func runProbe(cmd *cobra.Command, args []string) error {
	name := args[0]

	probe, err := probeFor(name, probeFlag, probePattern)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	_, p, ok := s.Registry.Resolve(name)
	if !ok {
		return &program.NotRegisteredError{Name: name}
	}

	prober := runtime.NewProber(s.Finder, s.Logger)
	p, err = prober.Probe(cmd.Context(), p, probe.Flag, probe.Selector)
	if err != nil {
		return err
	}

	path, _ := p.Path()
	result := probeResult{Name: name, Path: path, Version: p.Version.String()}
	if probeRequire != "" {
		ok, err := p.Version.Satisfies(probeRequire)
		if err != nil {
			return fmt.Errorf("checking version of %s: %w", name, err)
		}
		result.Satisfies = &ok
	}
	if probeMin != "" {
		ok, err := atLeast(*p.Version, probeMin)
		if err != nil {
			return fmt.Errorf("checking version of %s: %w", name, err)
		}
		if result.Satisfies == nil || *result.Satisfies {
			result.Satisfies = &ok
		}
	}

	if probeJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", result.Name, result.Version, result.Path)
	}

	if result.Satisfies != nil && !*result.Satisfies {
		return fmt.Errorf("%s version %s does not meet the version requirement", name, result.Version)
	}
	return nil
}

// probeFor returns the version probe for name with any user overrides applied.
func probeFor(name, flag, pattern string) (defaults.Probe, error) {
	probe := defaults.VersionProbeOrFallback(name)
	if flag != "" {
		probe.Flag = flag
	}
	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return probe, fmt.Errorf("invalid --pattern: %w", err)
		}
		group := 0
		if re.NumSubexp() > 0 {
			group = 1
		}
		probe.Selector = program.Regexp(re, group)
	}
	return probe, nil
}

// atLeast reports whether v is minimum or newer.
func atLeast(v program.Version, minimum string) (bool, error) {
	want, err := program.ParseVersion(minimum)
	if err != nil {
		return false, fmt.Errorf("invalid --min: %w", err)
	}
	return v.Compare(want) >= 0, nil
}
