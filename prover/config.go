package prover

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/guardorder/internal/rewrite"
)

// DefaultConfigPath is where `guardorder init` writes its configuration.
const DefaultConfigPath = ".guardorder.yaml"

// Config selects the rewrite strategy of a session and the initial flags
// of its comparator.
type Config struct {
	Strategy string `yaml:"strategy"`
	Full     bool   `yaml:"full"`
	Reverse  bool   `yaml:"reverse"`
}

// DefaultConfig uses the jitty strategy with both comparator flags off.
func DefaultConfig() Config {
	return Config{Strategy: rewrite.Jitty.String()}
}

// Validate checks that the strategy name is known.
func (c Config) Validate() error {
	if _, err := rewrite.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML configuration file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// WriteConfig writes config to path, replacing any existing file.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
