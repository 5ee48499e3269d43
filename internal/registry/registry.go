package registry

import (
	"fmt"
	"os"
	"sort"

	"github.com/toolreg-labs/toolreg/internal/program"
)

// Locator finds a program's binary on the host.
type Locator interface {
	Search(binaryName string) (program.Location, error)
}

// Registry maps program names to descriptors. It is a value: every mutating
// method returns a new Registry and leaves the receiver untouched, so a
// snapshot can be shared freely.
type Registry struct {
	programs map[string]program.Program
	locator  Locator
}

// Entry pairs a name with its resolved descriptor, as returned by List.
type Entry struct {
	Name    string
	Program program.Program
}

// New builds a registry whose lookups search with locator.
func New(locator Locator, programs ...program.Program) Registry {
	r := Registry{
		programs: make(map[string]program.Program, len(programs)),
		locator:  locator,
	}
	for _, p := range programs {
		mustHaveName(p)
		r.programs[p.Name] = p.Clone()
	}
	return r
}

// Insert returns a registry in which p replaces any entry with the same name.
// A program with an empty name is a programming error and panics.
func (r Registry) Insert(p program.Program) Registry {
	mustHaveName(p)
	next := r.clone()
	next.programs[p.Name] = p.Clone()
	return next
}

// Get returns the stored entry for name without searching.
func (r Registry) Get(name string) (program.Program, bool) {
	p, ok := r.programs[name]
	if !ok {
		return program.Program{}, false
	}
	return p.Clone(), true
}

// Lookup returns the entry for name. An unresolved entry is searched for on
// the host; when the search fails the entry is returned still unresolved.
// The boolean is false only when name has no entry.
func (r Registry) Lookup(name string) (program.Program, bool) {
	p, ok := r.Get(name)
	if !ok {
		return program.Program{}, false
	}
	if p.Location.IsResolved() || r.locator == nil {
		return p, true
	}
	loc, err := r.locator.Search(p.BinaryName)
	if err != nil {
		return p, true
	}
	return p.WithLocation(loc), true
}

// Resolve is Lookup that also records a successful discovery in the returned
// registry, so later lookups on it do not search again.
func (r Registry) Resolve(name string) (Registry, program.Program, bool) {
	stored, ok := r.programs[name]
	if !ok {
		return r, program.Program{}, false
	}
	p, _ := r.Lookup(name)
	if stored.Location.IsResolved() || !p.Location.IsResolved() {
		return r, p, true
	}
	return r.Insert(p), p, true
}

// List looks up every entry, sorted by name.
func (r Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.programs))
	for _, name := range r.Names() {
		p, _ := r.Lookup(name)
		entries = append(entries, Entry{Name: name, Program: p})
	}
	return entries
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (r Registry) Len() int { return len(r.programs) }

// SetUserPath pins name to path. An existing file is used as given; anything
// else is treated as a program name and searched for, failing with
// *program.NotFoundError when it cannot be found. Unknown names get a fresh
// entry first.
func (r Registry) SetUserPath(name, path string) (Registry, error) {
	p := r.entryOrNew(name)

	if isFile(path) {
		return r.Insert(p.WithLocation(program.UserSpecifiedAt(path))), nil
	}

	if r.locator == nil {
		return r, &program.NotFoundError{BinaryName: path}
	}
	loc, err := r.locator.Search(path)
	if err != nil {
		return r, fmt.Errorf("setting path for %s: %w", name, err)
	}
	return r.Insert(p.WithLocation(loc)), nil
}

// SetUserArgs replaces the default arguments of name with the whitespace
// separated words of args. Unknown names get a fresh entry first.
func (r Registry) SetUserArgs(name, args string) Registry {
	p := r.entryOrNew(name)
	return r.Insert(p.WithArgs(program.SplitArgs(args)))
}

func (r Registry) entryOrNew(name string) program.Program {
	if p, ok := r.Get(name); ok {
		return p
	}
	return program.New(name, name)
}

func (r Registry) clone() Registry {
	next := Registry{
		programs: make(map[string]program.Program, len(r.programs)+1),
		locator:  r.locator,
	}
	for name, p := range r.programs {
		next.programs[name] = p
	}
	return next
}

func mustHaveName(p program.Program) {
	if p.Name == "" {
		panic("registry: program with empty name")
	}
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
