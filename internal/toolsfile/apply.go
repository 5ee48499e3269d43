package toolsfile

import (
	"fmt"

	"github.com/toolreg-labs/toolreg/internal/program"
	"github.com/toolreg-labs/toolreg/internal/registry"
)

// Apply layers f onto reg and returns the resulting registry. For each entry
// a binary name replaces the registered descriptor, a path goes through
// SetUserPath and an argument string through SetUserArgs, in that order.
func Apply(reg registry.Registry, f *File) (registry.Registry, error) {
	for _, entry := range f.Programs {
		if entry.Binary != "" {
			p, ok := reg.Get(entry.Name)
			if !ok {
				p = program.New(entry.Name, entry.Binary)
			}
			reg = reg.Insert(p.WithBinary(entry.Binary))
		}

		if entry.Path != "" {
			next, err := reg.SetUserPath(entry.Name, entry.Path)
			if err != nil {
				return reg, fmt.Errorf("applying tools file entry %s: %w", entry.Name, err)
			}
			reg = next
		}

		if entry.Args != "" {
			reg = reg.SetUserArgs(entry.Name, entry.Args)
		}

		if _, ok := reg.Get(entry.Name); !ok {
			reg = reg.Insert(program.New(entry.Name, entry.Name))
		}
	}
	return reg, nil
}

// Load parses the tools file at path and applies it to reg.
func Load(reg registry.Registry, path string) (registry.Registry, error) {
	f, err := Parse(path)
	if err != nil {
		return reg, err
	}
	return Apply(reg, f)
}
