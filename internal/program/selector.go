package program

import (
	"regexp"
	"strings"
)

// Selector extracts the version substring from a tool's probe output.
type Selector func(output string) string

var versionPattern = regexp.MustCompile(`\d+(?:\.\d+)+`)

// LastWord selects the last whitespace-separated word, for tools that print
// "The Glorious Glasgow Haskell Compilation System, version 9.4.7".
func LastWord(output string) string {
	words := strings.Fields(output)
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}

// FirstVersion selects the first dotted numeric token in the output.
func FirstVersion(output string) string {
	return versionPattern.FindString(output)
}

// Regexp returns a selector yielding the given capture group of the first
// match of re, or "" when nothing matches.
func Regexp(re *regexp.Regexp, group int) Selector {
	return func(output string) string {
		m := re.FindStringSubmatch(output)
		if group >= len(m) {
			return ""
		}
		return m[group]
	}
}
