// Package platform holds the host-specific rules used when locating tools:
// what counts as an executable file, which filename variants to try for a
// bare program name, and where toolchains install helpers at fixed paths.
// On Unix an executable is a regular file with an execute bit; on Windows it
// is any regular file whose extension is listed in PATHEXT.
package platform
