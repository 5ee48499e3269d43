package toolsfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"
)

// FormatFromPath picks the format from the file extension: .toml is TOML,
// .yaml, .yml and .json are read as YAML.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported tools file extension %q (want .yaml, .yml, .json or .toml)", filepath.Ext(path))
	}
}

// Parse reads, validates and decodes the tools file at path.
func Parse(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data, format)
	if err != nil {
		return nil, fmt.Errorf("validating tools file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidFileError{Path: path, Issues: result.Issues}
	}

	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing tools file %s: %w", path, err)
	}
	return f, nil
}

// Decode decodes data without schema validation. Duplicate program names are
// rejected.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown TOML key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unknown tools file format %q", format)
	}

	seen := make(map[string]bool, len(f.Programs))
	for _, p := range f.Programs {
		if p.Name == "" {
			return nil, fmt.Errorf("program entry with empty name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("program %q listed more than once", p.Name)
		}
		seen[p.Name] = true
	}
	return &f, nil
}

// InvalidFileError reports schema violations in a tools file.
type InvalidFileError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidFileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tools file %s has %d validation issue(s)", e.Path, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			fmt.Fprintf(&b, "; %s: %s", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(&b, "; %s", issue.Message)
		}
	}
	return b.String()
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tools file %s: %w", path, err)
	}
	return data, nil
}
