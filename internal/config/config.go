// Package config loads the settings of the decmath command line tool.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the complete tool configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `toml:"format"`
	Style  bool   `toml:"style"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads the TOML file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, Error.New("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, Error.New("%s: unknown key %q", path, keys[0].String())
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// Validate checks that every setting holds a supported value.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return Error.New("unsupported output format %q", c.Output.Format)
}
