// Package config loads and validates the sheetc configuration file.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultName is the configuration file name Discover looks for.
const DefaultName = ".sheetc.yaml"

type (
	FormatConfig struct {
		// Extensions lists the file name suffixes treated as
		// stylesheets when walking directories.
		Extensions []string `yaml:"extensions"`
	}

	Config struct {
		Version int           `yaml:"version"`
		Format  FormatConfig  `yaml:"format"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use
	// yaml.Unmarshal directly here.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", cfg.Version)
	}
	switch cfg.Logging.Console.Level {
	case "none", "normal", "debug":
	default:
		return fmt.Errorf("unknown console log level %q", cfg.Logging.Console.Level)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	cfg, err := unmarshalConfig(defaultYAML, &Config{})
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at path, superimposing its values
// on top of the built-in defaults, and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultYAML, &Config{})
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Prepare returns the built-in configuration file as written to disk by
// the dumpconfig command.
func Prepare() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
