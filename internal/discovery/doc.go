// Package discovery resolves where a tool's executable lives. A name that is
// already a path is checked directly; a bare name is looked up in each
// search-path directory in order and the first executable match wins.
package discovery
