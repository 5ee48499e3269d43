package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/toolreg-labs/toolreg/internal/program"
)

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		want    []assignment
		wantErr bool
	}{
		{"empty", nil, nil, false},
		{"single", []string{"ghc=/opt/ghc"}, []assignment{{"ghc", "/opt/ghc"}}, false},
		{"value keeps equals", []string{"happy=--template=dir"}, []assignment{{"happy", "--template=dir"}}, false},
		{"trims spaces", []string{" alex = -g "}, []assignment{{"alex", "-g"}}, false},
		{"keeps order", []string{"ghc=a", "ghc=b"}, []assignment{{"ghc", "a"}, {"ghc", "b"}}, false},
		{"empty value", []string{"ghc="}, []assignment{{"ghc", ""}}, false},
		{"missing equals", []string{"ghc"}, nil, true},
		{"empty name", []string{"=/opt/ghc"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAssignments(tt.inputs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAssignments(%v) error = %v, wantErr %v", tt.inputs, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseAssignments(%v) = %v, want %v", tt.inputs, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("assignment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// sandbox isolates PATH and the config directory and returns a directory on
// PATH plus a scratch directory.
func sandbox(t *testing.T) (binDir, workDir string) {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("shell script fixtures are not executable on windows")
	}
	binDir, workDir = t.TempDir(), t.TempDir()
	t.Setenv("PATH", binDir)
	t.Setenv("TOOLREG_HOME", workDir)
	t.Setenv("TOOLREG_VERBOSITY", "")
	t.Setenv("TOOLREG_TOOLS_FILE", "")
	t.Setenv("TOOLREG_PROGRAMS_GHC_PATH", "")
	t.Setenv("TOOLREG_PROGRAMS_GHC_ARGS", "")
	return binDir, workDir
}

func writeTool(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func writeText(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestOpenSession_Defaults(t *testing.T) {
	binDir, _ := sandbox(t)
	ghc := writeTool(t, binDir, "ghc", "echo 9.4.7")

	s, err := openSession(sessionOptions{}, "", io.Discard)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}

	path, err := whichPath(s.Registry, "ghc")
	if err != nil {
		t.Fatalf("whichPath(ghc): %v", err)
	}
	if path != ghc {
		t.Errorf("ghc path = %q, want %q", path, ghc)
	}

	_, err = whichPath(s.Registry, "alex")
	var notFound *program.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("whichPath(alex) = %v, want NotFoundError", err)
	}

	_, err = whichPath(s.Registry, "no-such-tool")
	var notRegistered *program.NotRegisteredError
	if !errors.As(err, &notRegistered) {
		t.Errorf("whichPath(no-such-tool) = %v, want NotRegisteredError", err)
	}
}

func TestOpenSession_Precedence(t *testing.T) {
	_, workDir := sandbox(t)
	fileGHC := writeTool(t, t.TempDir(), "ghc", "true")
	configGHC := writeTool(t, t.TempDir(), "ghc", "true")
	flagGHC := writeTool(t, t.TempDir(), "ghc", "true")

	toolsFile := writeText(t, filepath.Join(workDir, "tools.yaml"), "programs:\n  - name: ghc\n    path: "+fileGHC+"\n    args: -O1\n")
	configFile := writeText(t, filepath.Join(workDir, "config.yaml"), "programs:\n  ghc:\n    path: "+configGHC+"\n")

	tests := []struct {
		name     string
		opts     sessionOptions
		config   string
		wantPath string
		wantArgs string
	}{
		{"tools file only", sessionOptions{ToolsFile: toolsFile}, filepath.Join(workDir, "missing.yaml"), fileGHC, "-O1"},
		{"config beats tools file", sessionOptions{ToolsFile: toolsFile}, configFile, configGHC, "-O1"},
		{
			"flags beat config",
			sessionOptions{
				ToolsFile:    toolsFile,
				WithPrograms: []string{"ghc=" + flagGHC},
				ProgramArgs:  []string{"ghc=-O2 -Wall"},
			},
			configFile, flagGHC, "-O2 -Wall",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := openSession(tt.opts, tt.config, io.Discard)
			if err != nil {
				t.Fatalf("openSession: %v", err)
			}
			p, _ := s.Registry.Lookup("ghc")
			if got, _ := p.Path(); got != tt.wantPath {
				t.Errorf("path = %q, want %q", got, tt.wantPath)
			}
			if got := strings.Join(p.DefaultArgs, " "); got != tt.wantArgs {
				t.Errorf("args = %q, want %q", got, tt.wantArgs)
			}
			if p.Location.Kind() != program.UserSpecified {
				t.Errorf("location = %s, want user-specified", p.Location.Kind())
			}
		})
	}
}

func TestOpenSession_EnvOverride(t *testing.T) {
	_, workDir := sandbox(t)
	envGHC := writeTool(t, t.TempDir(), "ghc", "true")
	t.Setenv("TOOLREG_PROGRAMS_GHC_PATH", envGHC)

	s, err := openSession(sessionOptions{}, filepath.Join(workDir, "none.yaml"), io.Discard)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	if got, _ := whichPath(s.Registry, "ghc"); got != envGHC {
		t.Errorf("ghc path = %q, want %q", got, envGHC)
	}
}

func TestOpenSession_Errors(t *testing.T) {
	_, workDir := sandbox(t)
	noConfig := filepath.Join(workDir, "none.yaml")

	tests := []struct {
		name string
		opts sessionOptions
	}{
		{"bad verbosity", sessionOptions{Verbosity: "loud"}},
		{"missing tools file", sessionOptions{ToolsFile: filepath.Join(workDir, "nope.yaml")}},
		{"malformed assignment", sessionOptions{WithPrograms: []string{"ghc"}}},
		{"path not found", sessionOptions{WithPrograms: []string{"ghc=ghc-not-installed"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := openSession(tt.opts, noConfig, io.Discard); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestOpenSession_VerboseLogsDiscovery(t *testing.T) {
	binDir, workDir := sandbox(t)
	writeTool(t, binDir, "ghc", "true")

	var logs strings.Builder
	s, err := openSession(sessionOptions{Verbosity: "verbose"}, filepath.Join(workDir, "none.yaml"), &logs)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	s.Registry.Lookup("ghc")
	if !strings.Contains(logs.String(), "found program") {
		t.Errorf("verbose logs missing discovery line:\n%s", logs.String())
	}
}
