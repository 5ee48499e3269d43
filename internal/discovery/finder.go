package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/toolreg-labs/toolreg/internal/platform"
	"github.com/toolreg-labs/toolreg/internal/program"
)

// Finder searches the filesystem for program binaries.
type Finder struct {
	// PathList is the ordered list of directories to search. When nil the
	// process PATH is read at search time.
	PathList []string
	Logger   zerolog.Logger
}

// NewFinder returns a Finder over the process PATH.
func NewFinder(logger zerolog.Logger) *Finder {
	return &Finder{Logger: logger}
}

// Search locates binaryName. Names containing a path separator are checked
// as given; bare names are searched for in PathList order.
func (f *Finder) Search(binaryName string) (program.Location, error) {
	f.Logger.Debug().Str("binary", binaryName).Msg("searching for program in path")

	path, ok := f.find(binaryName)
	if !ok {
		f.Logger.Debug().Str("binary", binaryName).Msg("cannot find program on the path")
		return program.Location{}, &program.NotFoundError{BinaryName: binaryName}
	}

	f.Logger.Debug().Str("binary", binaryName).Str("path", path).Msg("found program")
	return program.FoundAt(path), nil
}

func (f *Finder) find(binaryName string) (string, bool) {
	if binaryName == "" {
		return "", false
	}

	if isPathLike(binaryName) {
		for _, candidate := range platform.Candidates(binaryName) {
			if platform.IsExecutable(candidate) {
				return candidate, true
			}
		}
		// An explicit path names the file the user meant even without an
		// exec bit; running it reports the permission problem.
		if isRegularFile(binaryName) {
			return binaryName, true
		}
		return "", false
	}

	seen := make(map[string]bool)
	for _, dir := range f.searchPath() {
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true

		for _, candidate := range platform.Candidates(binaryName) {
			p := filepath.Join(dir, candidate)
			f.Logger.Trace().Str("candidate", p).Msg("checking")
			if platform.IsExecutable(p) {
				return p, true
			}
		}
	}
	return "", false
}

func (f *Finder) searchPath() []string {
	if f.PathList != nil {
		return f.PathList
	}
	return filepath.SplitList(os.Getenv("PATH"))
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// isPathLike reports whether name refers to a file path rather than a bare
// program name.
func isPathLike(name string) bool {
	if filepath.IsAbs(name) {
		return true
	}
	return strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator)
}
