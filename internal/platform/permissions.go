package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// defaultPathExt is used on Windows when PATHEXT is unset.
const defaultPathExt = ".com;.exe;.bat;.cmd"

// DefaultWindowsLinkerPath is where the GHC Windows distribution installs its
// bundled MinGW linker.
const DefaultWindowsLinkerPath = `C:\ghc\mingw\bin\ld.exe`

// IsWindows returns true if the current OS is Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// IsExecutable reports whether path names a regular file the current
// platform would run.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if IsWindows() {
		return hasExecutableExt(path, pathExts())
	}
	return info.Mode().Perm()&0111 != 0
}

// Candidates returns the filenames to try for name. On Unix that is just the
// name; on Windows a name without an extension is expanded with each PATHEXT
// entry, and the bare name is tried last.
func Candidates(name string) []string {
	if !IsWindows() {
		return []string{name}
	}
	return windowsCandidates(name, pathExts())
}

// LinkerPath returns the conventional linker location for the current
// platform, or false when the linker must be searched for.
func LinkerPath() (string, bool) {
	if IsWindows() {
		return DefaultWindowsLinkerPath, true
	}
	return "", false
}

func windowsCandidates(name string, exts []string) []string {
	if filepath.Ext(name) != "" {
		return []string{name}
	}
	out := make([]string, 0, len(exts)+1)
	for _, ext := range exts {
		out = append(out, name+ext)
	}
	return append(out, name)
}

func hasExecutableExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func pathExts() []string {
	raw := os.Getenv("PATHEXT")
	if raw == "" {
		raw = defaultPathExt
	}
	var exts []string
	for _, e := range strings.Split(strings.ToLower(raw), ";") {
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}
