package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the name of the configuration file looked up in the
// user's home directory when --config is not given.
const DefaultConfigName = ".malish.yaml"

// DefaultMaxStackHeight bounds lisp recursion unless configured otherwise.
const DefaultMaxStackHeight = 10000

// Config is the configuration for the malish command.
type Config struct {
	Prompt         string   `yaml:"prompt"`
	HistoryFile    string   `yaml:"history_file"`
	Prelude        []string `yaml:"prelude"`
	MaxStackHeight int      `yaml:"max_stack_height"`
	Trace          bool     `yaml:"trace"`
	KeepGoing      bool     `yaml:"keep_going"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Prompt:         "user> ",
		MaxStackHeight: DefaultMaxStackHeight,
	}
}

// DefaultConfigPath returns the path of the configuration file in the user's
// home directory.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigName), nil
}

// LoadConfig reads the YAML file at path over the defaults.  An empty file
// yields the defaults.  When optional is true a missing file is not an error.
func LoadConfig(path string, optional bool) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.MaxStackHeight < 0 {
		return fmt.Errorf("max_stack_height must not be negative")
	}
	for i, path := range cfg.Prelude {
		if path == "" {
			return fmt.Errorf("prelude[%d] must be a non-empty path", i)
		}
	}
	return nil
}
