package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/svgar/svgar/internal/core/observability/log"
	"github.com/svgar/svgar/internal/core/scene"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds settings for the command-line host.
type Config struct {
	Log     LogConfig    `json:"log" yaml:"log"`
	Camera  CameraConfig `json:"camera" yaml:"camera"`
	Output  OutputConfig `json:"output" yaml:"output"`
	Workers int          `json:"workers" yaml:"workers"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

type CameraConfig struct {
	Extents scene.Extents `json:"extents" yaml:"extents"`
}

type OutputConfig struct {
	Format string `json:"format" yaml:"format"`
}

// Flags holds CLI values that override the config file when set.
type Flags struct {
	LogLevel string
	Format   string
	Workers  int
}

func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Camera:  CameraConfig{Extents: scene.DefaultExtents},
		Output:  OutputConfig{Format: FormatJSON},
		Workers: runtime.NumCPU(),
	}
}

// Load reads a YAML config file on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r on top of Default. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Apply overrides the config with any non-zero flag.
func (c *Config) Apply(flags Flags) {
	if flags.LogLevel != "" {
		c.Log.Level = flags.LogLevel
	}
	if flags.Format != "" {
		c.Output.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	if c.Camera.Extents.W <= 0 || c.Camera.Extents.H <= 0 {
		return fmt.Errorf("config: camera extents must be positive, got %gx%g",
			c.Camera.Extents.W, c.Camera.Extents.H)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	return nil
}

// LogLevel returns the parsed log level; call Validate first.
func (c Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}
