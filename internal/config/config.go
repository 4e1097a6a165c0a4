// Package config holds the run parameters and loads them from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDelay is the pause between two frames.
	DefaultDelay = 100 * time.Millisecond
	// DefaultHeight is the number of disks.
	DefaultHeight = 6
	// MaxDelayMS bounds the delay to the range of an unsigned 32-bit integer.
	MaxDelayMS = math.MaxUint32
)

// ErrInvalidValue is returned for a value that cannot be used as a parameter.
var ErrInvalidValue = errors.New("invalid value")

// Config holds the parameters of a run.
type Config struct {
	// DelayMS is the pause between frames in milliseconds.
	DelayMS uint `mapstructure:"delay" yaml:"delay"`
	// Height is the number of disks.
	Height uint `mapstructure:"height" yaml:"height"`
	// LogLevel selects the summary printed after the run.
	LogLevel LogLevel `mapstructure:"loglevel" yaml:"loglevel"`
	// Debug enables debug logging on stderr.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// MetricsAddr, when set, serves /frame and /metrics during the run.
	MetricsAddr string `mapstructure:"metrics_addr" yaml:"metrics_addr"`
	// EventsFile, when set, receives every start and move event as JSON Lines.
	EventsFile string `mapstructure:"events" yaml:"events"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		DelayMS:  uint(DefaultDelay / time.Millisecond),
		Height:   DefaultHeight,
		LogLevel: LogMinimal,
	}
}

// Delay returns DelayMS as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Validate checks the ranges the flags cannot express.
func (c Config) Validate() error {
	if c.Height > domain.MaxHeight {
		return fmt.Errorf("%w: %d is not a valid value for height (at most %d)", ErrInvalidValue, c.Height, domain.MaxHeight)
	}
	if c.DelayMS > MaxDelayMS {
		return fmt.Errorf("%w: %d is not a valid value for delay (at most %d)", ErrInvalidValue, c.DelayMS, uint(MaxDelayMS))
	}
	if c.LogLevel < LogNone || c.LogLevel > LogAll {
		return fmt.Errorf("%w: log level %d", ErrInvalidValue, int(c.LogLevel))
	}
	return nil
}

// Load reads path and decodes it over the defaults.
// A missing file is an error: the path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode applies raw values onto cfg. Numbers given as strings are accepted,
// unknown keys are rejected.
func Decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       logLevelHook(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}
