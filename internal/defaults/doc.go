// Package defaults lists the build tools known out of the box. Every entry
// starts with no default arguments and an unresolved location, so nothing is
// searched for until a tool is first looked up. The exception is the linker on
// Windows, which the compiler distribution installs at a fixed path.
package defaults
