package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toolreg-labs/toolreg/internal/program"
	"github.com/toolreg-labs/toolreg/internal/registry"
)

var whichCmd = &cobra.Command{
	Use:   "which <name>",
	Short: "Print the path a program resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		path, err := whichPath(s.Registry, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whichCmd)
}

// whichPath resolves name in reg, failing with *program.NotRegisteredError
// for unknown names and *program.NotFoundError when nothing is on the path.
func whichPath(reg registry.Registry, name string) (string, error) {
	_, p, ok := reg.Resolve(name)
	if !ok {
		return "", &program.NotRegisteredError{Name: name}
	}
	path, ok := p.Path()
	if !ok {
		return "", &program.NotFoundError{BinaryName: p.BinaryName}
	}
	return path, nil
}
