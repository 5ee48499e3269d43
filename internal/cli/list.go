package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toolreg-labs/toolreg/internal/registry"
	"github.com/toolreg-labs/toolreg/internal/toolsfile"
)

var (
	listJSON bool
	listYAML bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered programs and where they were found",
	Long: `List every registered program with its binary name, how its location was
determined and its default arguments. Unconfigured programs are searched for
on the path.

--yaml prints the result as a tools file that can be fed back with --tools-file.
Only user-specified paths are written; programs found on the path are searched
for again when the file is loaded.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output as a YAML tools file")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a registered program for display.
type listEntry struct {
	Name     string   `json:"name"`
	Binary   string   `json:"binary"`
	Location string   `json:"location"`
	Path     string   `json:"path,omitempty"`
	Args     []string `json:"args,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	entries := s.Registry.List()
	if listYAML {
		return toolsfile.Encode(cmd.OutOrStdout(), entries)
	}

	rows := toListEntries(entries)
	if listJSON {
		return printListJSON(cmd, rows)
	}
	return printListTable(cmd, rows)
}

func toListEntries(entries []registry.Entry) []listEntry {
	rows := make([]listEntry, 0, len(entries))
	for _, e := range entries {
		row := listEntry{
			Name:     e.Name,
			Binary:   e.Program.BinaryName,
			Location: e.Program.Location.Kind().String(),
			Args:     e.Program.DefaultArgs,
		}
		if path, ok := e.Program.Path(); ok {
			row.Path = path
		}
		rows = append(rows, row)
	}
	return rows
}

func printListTable(cmd *cobra.Command, rows []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tBINARY\tLOCATION\tPATH\tARGS")
	for _, r := range rows {
		path := r.Path
		if path == "" {
			path = "-"
		}
		argv := strings.Join(r.Args, " ")
		if argv == "" {
			argv = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Binary, r.Location, path, argv)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, rows []listEntry) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
