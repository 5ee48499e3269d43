package toolsfile

// File is a parsed tools file.
type File struct {
	Programs []Program `yaml:"programs" toml:"programs"`
}

// Program is one entry of a tools file. Location and Version are written by
// Encode for diagnostics and ignored when a file is applied.
type Program struct {
	Name     string `yaml:"name" toml:"name"`
	Binary   string `yaml:"binary,omitempty" toml:"binary,omitempty"`
	Path     string `yaml:"path,omitempty" toml:"path,omitempty"`
	Args     string `yaml:"args,omitempty" toml:"args,omitempty"`
	Location string `yaml:"location,omitempty" toml:"location,omitempty"`
	Version  string `yaml:"version,omitempty" toml:"version,omitempty"`
}

// Format is the serialization of a tools file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)
