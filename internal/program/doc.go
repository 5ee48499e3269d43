// Package program defines the descriptor for one external build tool: its
// logical name, the binary to look for, the arguments always passed to it,
// where it lives on disk, and the version it reported when probed. It also
// holds the typed errors shared by discovery, the registry, and the invoker.
package program
