package program

import "fmt"

// NotFoundError is returned when a search of the path finds no executable.
type NotFoundError struct {
	BinaryName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find %s on the path", e.BinaryName)
}

// UnresolvedLocationError is returned when running a program whose path is not known.
type UnresolvedLocationError struct {
	Name string
}

func (e *UnresolvedLocationError) Error() string {
	return fmt.Sprintf("program %s has no known location; configure its path or install it", e.Name)
}

// VersionParseError carries the raw probe output that could not be parsed.
type VersionParseError struct {
	Name   string
	Output string
	Err    error
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("cannot determine version of %s from output %q: %v", e.Name, e.Output, e.Err)
}

func (e *VersionParseError) Unwrap() error { return e.Err }

// NonZeroExitError is returned when a program exits with a failure status.
type NonZeroExitError struct {
	Name string
	Code int
}

func (e *NonZeroExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Name, e.Code)
}

// NotRegisteredError is returned for names with no registry entry.
type NotRegisteredError struct {
	Name string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("program %q is not registered", e.Name)
}
