package program

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewIsUnresolved(t *testing.T) {
	p := New("ghc-pkg", "")
	if p.BinaryName != "ghc-pkg" {
		t.Errorf("BinaryName = %q, want %q", p.BinaryName, "ghc-pkg")
	}
	if p.Location.IsResolved() {
		t.Errorf("new program location = %s, want unresolved", p.Location)
	}
	if _, ok := p.Path(); ok {
		t.Error("Path() on unresolved program returned ok")
	}
	if p.Version != nil {
		t.Error("new program has a version")
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		kind     LocationKind
		path     string
		resolved bool
		str      string
	}{
		{"zero value", Location{}, Unresolved, "", false, "unresolved"},
		{"user specified", UserSpecifiedAt("/opt/bin/ar"), UserSpecified, "/opt/bin/ar", true, "user-specified(/opt/bin/ar)"},
		{"found", FoundAt("/usr/bin/ar"), FoundOnSystem, "/usr/bin/ar", true, "found-on-system(/usr/bin/ar)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.loc.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.loc.Kind(), tt.kind)
			}
			path, ok := tt.loc.Path()
			if path != tt.path || ok != tt.resolved {
				t.Errorf("Path() = (%q, %v), want (%q, %v)", path, ok, tt.path, tt.resolved)
			}
			if got := tt.loc.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestWithMethodsDoNotShareState(t *testing.T) {
	orig := New("ar", "ar").WithArgs([]string{"-r"}).WithVersion(MustParseVersion("2.40"))

	moved := orig.WithLocation(FoundAt("/usr/bin/ar")).WithVersion(MustParseVersion("2.40"))
	if orig.Location.IsResolved() {
		t.Error("WithLocation modified the receiver")
	}

	moved.DefaultArgs[0] = "-x"
	moved.Version.Components[0] = 9
	if orig.DefaultArgs[0] != "-r" {
		t.Errorf("receiver args changed to %v", orig.DefaultArgs)
	}
	if orig.Version.Components[0] != 2 {
		t.Errorf("receiver version changed to %v", orig.Version)
	}
}

func TestVersionDroppedWhenExecutableChanges(t *testing.T) {
	probed := New("ghc", "ghc").
		WithLocation(FoundAt("/usr/bin/ghc")).
		WithVersion(MustParseVersion("8.6.5"))

	tests := []struct {
		name        string
		next        Program
		keepVersion bool
	}{
		{"same path, other kind", probed.WithLocation(UserSpecifiedAt("/usr/bin/ghc")), true},
		{"other path", probed.WithLocation(UserSpecifiedAt("/opt/ghc-9.8/bin/ghc")), false},
		{"unresolved", probed.WithLocation(Location{}), false},
		{"same binary", probed.WithBinary("ghc"), true},
		{"other binary", probed.WithBinary("ghc-9.8"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.next.Version != nil; got != tt.keepVersion {
				t.Errorf("version kept = %v, want %v (version %v)", got, tt.keepVersion, tt.next.Version)
			}
		})
	}

	moved := probed.WithBinary("ghc-9.8")
	if moved.Location.IsResolved() {
		t.Errorf("WithBinary kept location %s", moved.Location)
	}
	if probed.Version == nil || !probed.Location.IsResolved() {
		t.Error("WithBinary modified the receiver")
	}
}

func TestCommandLine(t *testing.T) {
	p := New("ghc", "ghc").WithArgs([]string{"-O2", "-Wall"})
	got := p.CommandLine([]string{"Main.hs"})
	want := []string{"-O2", "-Wall", "Main.hs"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("CommandLine = %v, want %v", got, want)
	}
	if len(p.DefaultArgs) != 2 {
		t.Errorf("CommandLine modified DefaultArgs: %v", p.DefaultArgs)
	}
}

func TestSplitArgs(t *testing.T) {
	got := SplitArgs("  -O2\t-optl-static \n -v ")
	want := []string{"-O2", "-optl-static", "-v"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("SplitArgs = %v, want %v", got, want)
	}
	if got := SplitArgs(""); len(got) != 0 {
		t.Errorf("SplitArgs(\"\") = %v, want empty", got)
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	var err error = fmt.Errorf("running: %w", &NotRegisteredError{Name: "neverRegistered"})

	var notReg *NotRegisteredError
	if !errors.As(err, &notReg) || notReg.Name != "neverRegistered" {
		t.Fatalf("errors.As(NotRegisteredError) failed for %v", err)
	}
	var unresolved *UnresolvedLocationError
	if errors.As(err, &unresolved) {
		t.Error("NotRegisteredError matched UnresolvedLocationError")
	}

	parseErr := &VersionParseError{Name: "happy", Output: "garbage", Err: errors.New("bad")}
	if !errors.Is(parseErr, parseErr.Err) {
		t.Error("VersionParseError does not unwrap to its cause")
	}
}
