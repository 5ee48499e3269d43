// Package toolsfile reads and writes the textual form of a program registry.
// A tools file lists programs with optional binary names, pinned paths and
// argument strings, in YAML or TOML. Files are validated against an embedded
// JSON Schema before they are applied to a registry, and a registry can be
// dumped back out as YAML for inspection.
package toolsfile
