package program

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a tool's reported version: a branch of numeric components
// (8.6.5) and optional tags taken from a "-" suffix (8.6.5-rc1).
type Version struct {
	Components []int
	Tags       []string
}

// ParseVersion parses a dotted numeric version, tolerating a leading "v".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	branch, tagPart, hasTags := strings.Cut(s, "-")
	var v Version
	for _, part := range strings.Split(branch, ".") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version component %q in %q", part, s)
		}
		v.Components = append(v.Components, n)
	}
	if hasTags {
		for _, tag := range strings.Split(tagPart, "-") {
			if tag == "" {
				return Version{}, fmt.Errorf("empty version tag in %q", s)
			}
			v.Tags = append(v.Tags, tag)
		}
	}
	return v, nil
}

// MustParseVersion is like ParseVersion but panics on error. Intended for tests
// and static tables.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	parts := make([]string, len(v.Components))
	for i, c := range v.Components {
		parts[i] = strconv.Itoa(c)
	}
	s := strings.Join(parts, ".")
	if len(v.Tags) > 0 {
		s += "-" + strings.Join(v.Tags, "-")
	}
	return s
}

// Compare orders versions by numeric components only. Missing trailing
// components count as zero, so 1.2 == 1.2.0.
// Returns -1 if v < o, 0 if equal, 1 if v > o.
func (v Version) Compare(o Version) int {
	n := max(len(v.Components), len(o.Components))
	for i := 0; i < n; i++ {
		a, b := component(v.Components, i), component(o.Components, i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// Satisfies checks v against a semver constraint such as ">= 9.2, < 10".
// Only the first three components take part in the check.
func (v Version) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	sv, err := v.semver()
	if err != nil {
		return false, err
	}
	return c.Check(sv), nil
}

// semver converts v to a semantic version, truncating extra components.
func (v Version) semver() (*semver.Version, error) {
	core := fmt.Sprintf("%d.%d.%d", component(v.Components, 0), component(v.Components, 1), component(v.Components, 2))
	if len(v.Tags) > 0 {
		core += "-" + strings.Join(v.Tags, ".")
	}
	sv, err := semver.NewVersion(core)
	if err != nil {
		return nil, fmt.Errorf("converting version %s: %w", v, err)
	}
	return sv, nil
}

func (v Version) clone() Version {
	return Version{
		Components: append([]int(nil), v.Components...),
		Tags:       append([]string(nil), v.Tags...),
	}
}

func component(cs []int, i int) int {
	if i < len(cs) {
		return cs[i]
	}
	return 0
}
