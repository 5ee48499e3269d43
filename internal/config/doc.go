// Package config manages user-level settings stored at ~/.toolreg/config.yaml
// and TOOLREG_* environment variables: the default verbosity, an optional
// tools file, and per-program path and argument overrides.
package config
