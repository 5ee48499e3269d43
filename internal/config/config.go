package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"github.com/toolreg-labs/toolreg/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known keys.
const (
	KeyVerbosity   = "verbosity"
	KeyToolsFile   = "tools_file"
	programsPrefix = "programs"
)

// Dir returns the path to the config directory. TOOLREG_HOME overrides the
// default of ~/.toolreg/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Config is a loaded configuration backed by its own viper instance.
type Config struct {
	v    *viper.Viper
	path string
}

// Override is a per-program setting from the configuration.
type Override struct {
	Name string
	Path string // empty when not overridden
	Args string // empty when not overridden
}

// Load reads the config file at path (FilePath() when empty) and the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FilePath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return &Config{v: v, path: path}, nil
}

// Path returns the file this configuration reads from and writes to.
func (c *Config) Path() string { return c.path }

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Verbosity returns the configured verbosity name, or "" when unset.
func (c *Config) Verbosity() string {
	return c.v.GetString(KeyVerbosity)
}

// ToolsFile returns the configured tools file path, or "" when unset.
func (c *Config) ToolsFile() string {
	return c.v.GetString(KeyToolsFile)
}

// Set writes a config key-value pair and saves the config file.
func (c *Config) Set(key, value string) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	c.v.Set(key, value)

	// Create the file if it doesn't exist.
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		f, err := os.Create(c.path)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", c.path, err)
		}
		f.Close()
	}

	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ProgramKey returns the config key for a program setting, e.g.
// ProgramKey("ghc", "path") is "programs.ghc.path".
func ProgramKey(name, field string) string {
	return programsPrefix + "." + name + "." + field
}

// Overrides returns the per-program overrides, sorted by name. Programs named
// in the config file are always considered; the names in known are also
// checked so that environment variables such as TOOLREG_PROGRAMS_GHC_PATH
// apply to programs absent from the file.
func (c *Config) Overrides(known []string) []Override {
	names := make(map[string]bool)
	for name := range c.v.GetStringMap(programsPrefix) {
		names[name] = true
	}
	for _, name := range known {
		names[name] = true
	}

	var out []Override
	for name := range names {
		o := Override{
			Name: name,
			Path: c.v.GetString(ProgramKey(name, "path")),
			Args: c.v.GetString(ProgramKey(name, "args")),
		}
		if o.Path != "" || o.Args != "" {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func isNotExist(err error) bool {
	if os.IsNotExist(err) {
		return true
	}
	_, ok := err.(viper.ConfigFileNotFoundError)
	return ok
}
