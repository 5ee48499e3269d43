package program

import "strings"

// Program describes one external tool. Values are treated as immutable: the
// With* methods return modified copies and never touch the receiver.
type Program struct {
	Name        string   // logical name, the registry key
	BinaryName  string   // executable name to search for
	Version     *Version // nil until a version probe succeeds
	DefaultArgs []string // always prepended to invocation arguments
	Location    Location
}

// New returns an unresolved program with no default arguments.
// An empty binaryName falls back to name.
func New(name, binaryName string) Program {
	if binaryName == "" {
		binaryName = name
	}
	return Program{Name: name, BinaryName: binaryName}
}

// WithLocation returns a copy of p located at loc. A version probed at a
// different path does not describe the new executable and is dropped.
func (p Program) WithLocation(loc Location) Program {
	c := p.Clone()
	if oldPath, _ := p.Path(); oldPath != loc.path || !loc.IsResolved() {
		c.Version = nil
	}
	c.Location = loc
	return c
}

// WithBinary returns an unresolved copy of p that searches for binaryName.
// The location and version of the previous binary are dropped when the name
// changes.
func (p Program) WithBinary(binaryName string) Program {
	c := p.Clone()
	if c.BinaryName != binaryName {
		c.BinaryName = binaryName
		c.Location = Location{}
		c.Version = nil
	}
	return c
}

// WithArgs returns a copy of p whose default arguments are replaced by args.
func (p Program) WithArgs(args []string) Program {
	c := p.Clone()
	c.DefaultArgs = append([]string(nil), args...)
	return c
}

// WithVersion returns a copy of p carrying v.
func (p Program) WithVersion(v Version) Program {
	c := p.Clone()
	c.Version = &v
	return c
}

// Clone returns a deep copy so that slices and the version are not shared.
func (p Program) Clone() Program {
	c := p
	if p.DefaultArgs != nil {
		c.DefaultArgs = append([]string(nil), p.DefaultArgs...)
	}
	if p.Version != nil {
		v := p.Version.clone()
		c.Version = &v
	}
	return c
}

// Path returns the runnable path, or false when the location is unresolved.
func (p Program) Path() (string, bool) {
	return p.Location.Path()
}

// CommandLine returns the default arguments followed by extra.
func (p Program) CommandLine(extra []string) []string {
	args := make([]string, 0, len(p.DefaultArgs)+len(extra))
	args = append(args, p.DefaultArgs...)
	return append(args, extra...)
}

// SplitArgs tokenizes a user-supplied argument string on whitespace.
func SplitArgs(s string) []string {
	return strings.Fields(s)
}
