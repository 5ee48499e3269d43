//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // TOOLREG_HOME; holds config.yaml
	BinDir  string // the only directory on PATH
	WorkDir string // scratch space for tools files and alternate binaries
}

// setupTestEnv creates isolated temp directories and points TOOLREG_HOME and
// PATH at them so nothing on the host leaks into the test. The env vars are
// restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures are not executable on windows")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}

	t.Setenv("TOOLREG_HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "TOOLREG_") && !strings.HasPrefix(kv, "TOOLREG_HOME=") {
			t.Setenv(strings.SplitN(kv, "=", 2)[0], "")
		}
	}
	return env
}

// installFakeGHC writes a ghc stand-in that answers the version probe and
// otherwise echoes its arguments, exiting with the code in FAKE_EXIT.
func installFakeGHC(t *testing.T, dir, version string) string {
	t.Helper()
	return writeScript(t, filepath.Join(dir, "ghc"), `#!/bin/sh
if [ "$1" = "--numeric-version" ]; then
  echo "`+version+`"
  exit 0
fi
echo "ghc $*"
exit ${FAKE_EXIT:-0}
`)
}

// installFakeHappy writes a happy stand-in with its usual banner.
func installFakeHappy(t *testing.T, dir, version string) string {
	t.Helper()
	return writeScript(t, filepath.Join(dir, "happy"), `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "Happy Version `+version+` Copyright (c) 1993-1996 Andy Gill, Simon Marlow"
  exit 0
fi
echo "happy $*"
`)
}

// writeScript creates an executable file at path.
func writeScript(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
