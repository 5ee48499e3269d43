package toolsfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/toolreg-labs/toolreg/internal/program"
	"github.com/toolreg-labs/toolreg/internal/registry"
	"go.yaml.in/yaml/v3"
)

// FromEntries converts resolved registry entries to their textual form.
// Paths are kept only for user-specified locations.
func FromEntries(entries []registry.Entry) *File {
	f := &File{Programs: make([]Program, 0, len(entries))}
	for _, e := range entries {
		p := Program{
			Name:     e.Name,
			Args:     strings.Join(e.Program.DefaultArgs, " "),
			Location: e.Program.Location.Kind().String(),
		}
		if e.Program.BinaryName != e.Name {
			p.Binary = e.Program.BinaryName
		}
		// Only pins are written: a discovered path is searched for again
		// when the file is loaded instead of becoming a pin.
		if e.Program.Location.Kind() == program.UserSpecified {
			p.Path, _ = e.Program.Path()
		}
		if e.Program.Version != nil {
			p.Version = e.Program.Version.String()
		}
		f.Programs = append(f.Programs, p)
	}
	return f
}

// Encode writes entries to w as a YAML tools file.
func Encode(w io.Writer, entries []registry.Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromEntries(entries)); err != nil {
		return fmt.Errorf("encoding tools file: %w", err)
	}
	return enc.Close()
}
