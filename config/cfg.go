package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"sassc/common"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	CompilerConfig struct {
		Style     string `yaml:"style"`
		Precision int    `yaml:"precision"`
	}

	Config struct {
		Version  int            `yaml:"version"`
		Compiler CompilerConfig `yaml:"compiler"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

func (c *CompilerConfig) OutputStyle() (common.OutputStyle, error) {
	return common.ParseOutputStyle(c.Style)
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported configuration version: %d", cfg.Version)
	}
	if _, err := cfg.Compiler.OutputStyle(); err != nil {
		return nil, fmt.Errorf("bad output style in configuration: %w", err)
	}
	if cfg.Compiler.Precision < 0 {
		return nil, fmt.Errorf("bad precision in configuration: %d", cfg.Compiler.Precision)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposing its values on top of embedded defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration defaults: %w", err)
	}
	if len(path) == 0 {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns the embedded default configuration text.
func Prepare() ([]byte, error) {
	if _, err := unmarshalConfig(defaultConfig, &Config{}); err != nil {
		return nil, err
	}
	return append([]byte(nil), defaultConfig...), nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
