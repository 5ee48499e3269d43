package program

import "fmt"

// LocationKind distinguishes how (or whether) a program's path is known.
type LocationKind int

const (
	Unresolved LocationKind = iota
	UserSpecified
	FoundOnSystem
)

func (k LocationKind) String() string {
	switch k {
	case UserSpecified:
		return "user-specified"
	case FoundOnSystem:
		return "found-on-system"
	default:
		return "unresolved"
	}
}

// Location is where a program lives. The zero value is Unresolved.
type Location struct {
	kind LocationKind
	path string
}

// UserSpecifiedAt records a path the user configured explicitly.
func UserSpecifiedAt(path string) Location {
	return Location{kind: UserSpecified, path: path}
}

// FoundAt records a path discovered by searching.
func FoundAt(path string) Location {
	return Location{kind: FoundOnSystem, path: path}
}

// Kind reports how the location was obtained.
func (l Location) Kind() LocationKind { return l.kind }

// Path returns the path and true, or "" and false when unresolved.
func (l Location) Path() (string, bool) {
	if l.kind == Unresolved {
		return "", false
	}
	return l.path, true
}

// IsResolved reports whether a runnable path is known.
func (l Location) IsResolved() bool { return l.kind != Unresolved }

func (l Location) String() string {
	if l.kind == Unresolved {
		return l.kind.String()
	}
	return fmt.Sprintf("%s(%s)", l.kind, l.path)
}
