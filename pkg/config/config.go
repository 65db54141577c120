package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-avgdist/pkg/edgelist"
	"github.com/dd0wney/cluso-avgdist/pkg/parallel"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full set of run options. Fields map to both YAML keys and
// command-line flags.
type Config struct {
	Input       string `yaml:"input" validate:"required"`
	Compression string `yaml:"compression" validate:"oneof=auto none snappy"`
	UseMmap     bool   `yaml:"mmap"`
	S3Region    string `yaml:"s3_region"`
	Workers     int    `yaml:"workers" validate:"min=1"`
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	MetricsFile string `yaml:"metrics_file"`
	Summary     bool   `yaml:"summary"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Compression: string(edgelist.CompressionAuto),
		Workers:     1,
	}
}

// LoadFile reads a YAML config on top of Default. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field rules. LogLevel is
// lowercased first so it accepts the same spellings as LOG_LEVEL.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, formatValidationError(err))
	}
	if c.Workers > parallel.MaxWorkers {
		return fmt.Errorf("%w: workers: must not exceed %d", ErrInvalidConfig, parallel.MaxWorkers)
	}
	if c.UseMmap && strings.HasPrefix(c.Input, "s3://") {
		return fmt.Errorf("%w: mmap: cannot be used with s3 input", ErrInvalidConfig)
	}
	return nil
}

// Source returns the edge list location described by c.
func (c *Config) Source() edgelist.Source {
	return edgelist.Source{
		URI:         c.Input,
		Compression: edgelist.Compression(c.Compression),
		UseMmap:     c.UseMmap,
		S3Region:    c.S3Region,
	}
}
