package cli

import (
	"github.com/spf13/cobra"
	"github.com/toolreg-labs/toolreg/internal/runtime"
)

var runDir string

var runCmd = &cobra.Command{
	Use:   "run <name> [-- args...]",
	Short: "Run a registered program",
	Long: `Run a registered program with its default arguments followed by any
arguments given after --. The program's output is passed through and its exit
code becomes the exit code of this command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runDir, "dir", "", "Working directory for the program")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	inv := runtime.NewInvoker(s.Logger)
	inv.Stdin = cmd.InOrStdin()
	inv.Stdout = cmd.OutOrStdout()
	inv.Stderr = cmd.ErrOrStderr()
	inv.Dir = runDir

	return inv.RunByName(cmd.Context(), s.Registry, args[0], args[1:])
}
