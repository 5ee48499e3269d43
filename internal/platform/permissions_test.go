package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute bits are not used on Windows")
	}

	tmp := t.TempDir()
	exe := filepath.Join(tmp, "tool")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	plain := filepath.Join(tmp, "notes.txt")
	if err := os.WriteFile(plain, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"executable file", exe, true},
		{"non-executable file", plain, false},
		{"directory", tmp, false},
		{"missing", filepath.Join(tmp, "missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExecutable(tt.path); got != tt.expected {
				t.Errorf("IsExecutable(%s) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCandidatesUnix(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix-only behavior")
	}
	got := Candidates("ghc")
	if len(got) != 1 || got[0] != "ghc" {
		t.Errorf("Candidates(ghc) = %v, want [ghc]", got)
	}
}

func TestWindowsCandidates(t *testing.T) {
	exts := []string{".exe", ".bat"}

	got := windowsCandidates("ghc", exts)
	want := []string{"ghc.exe", "ghc.bat", "ghc"}
	if len(got) != len(want) {
		t.Fatalf("windowsCandidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := windowsCandidates("ld.exe", exts); len(got) != 1 || got[0] != "ld.exe" {
		t.Errorf("windowsCandidates(ld.exe) = %v, want [ld.exe]", got)
	}
}

func TestPathExts(t *testing.T) {
	t.Setenv("PATHEXT", ".COM;EXE;;.Bat")
	got := pathExts()
	want := []string{".com", ".exe", ".bat"}
	if len(got) != len(want) {
		t.Fatalf("pathExts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ext[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if !hasExecutableExt(`C:\tools\HAPPY.EXE`, got) {
		t.Error("expected .EXE to be executable")
	}
	if hasExecutableExt(`C:\tools\readme.txt`, got) {
		t.Error("expected .txt not to be executable")
	}
}

func TestLinkerPath(t *testing.T) {
	path, ok := LinkerPath()
	if runtime.GOOS == "windows" {
		if !ok || path != DefaultWindowsLinkerPath {
			t.Errorf("LinkerPath() = (%q, %v), want (%q, true)", path, ok, DefaultWindowsLinkerPath)
		}
		return
	}
	if ok {
		t.Errorf("LinkerPath() = (%q, true) on %s, want unresolved", path, runtime.GOOS)
	}
}
