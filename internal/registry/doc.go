// Package registry holds the program configuration: an immutable mapping from
// tool name to descriptor. Lookups resolve unlocated tools on demand without
// storing the result; Resolve, Insert, SetUserPath and SetUserArgs return new
// snapshots so callers can keep and share earlier ones.
package registry
