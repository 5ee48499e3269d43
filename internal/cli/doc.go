// Package cli defines the Cobra command tree for the toolreg CLI. Each file
// in this package registers one top-level command (list, which, run, etc.)
// with the root command. Commands build a session from flags, config and the
// tools file, then delegate to internal packages for the actual work.
package cli
