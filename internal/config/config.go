// Package config loads the analysis settings from YAML and command-line overrides.
//
// Keys use the option names of the task (ptMin, ptMax, etaCut, vtxZCut, ptBins,
// vtxZBins, vtxZMin, vtxZMax) at the top level, plus host settings:
//
//	workers: 4
//	logLevel: info
//	logFormat: text
//	storeDir: .trackhist/runs
//	redis:
//	  addr: localhost:6379
//	  ttl: 24h
//	output:
//	  dir: out
//	  plots: true
//
// Overrides use dotted keys, e.g. "redis.addr=localhost:6379" or "ptBins=[0.2,1,5,10]".
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/trackhist/pkg/task"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrBadOverride is returned for overrides not in key=value form.
var ErrBadOverride = errors.New("override must be key=value")

// RedisConfig selects the Redis run store. It takes precedence over StoreDir.
type RedisConfig struct {
	Addr     string        `yaml:"addr,omitempty" mapstructure:"addr"`
	Password string        `yaml:"password,omitempty" mapstructure:"password"`
	DB       int           `yaml:"db,omitempty" mapstructure:"db"`
	Prefix   string        `yaml:"prefix,omitempty" mapstructure:"prefix"`
	TTL      time.Duration `yaml:"ttl,omitempty" mapstructure:"ttl"`
}

// OutputConfig controls file exports of finished runs.
type OutputConfig struct {
	Dir   string `yaml:"dir,omitempty" mapstructure:"dir"`
	Plots bool   `yaml:"plots" mapstructure:"plots"`
}

// Settings is the full host configuration.
type Settings struct {
	task.Config `yaml:",inline" mapstructure:",squash"`

	Workers   int          `yaml:"workers" mapstructure:"workers"`
	LogLevel  string       `yaml:"logLevel" mapstructure:"logLevel"`
	LogFormat string       `yaml:"logFormat" mapstructure:"logFormat"`
	StoreDir  string       `yaml:"storeDir,omitempty" mapstructure:"storeDir"`
	Redis     RedisConfig  `yaml:"redis" mapstructure:"redis"`
	Output    OutputConfig `yaml:"output" mapstructure:"output"`
}

// Default returns the settings used when no file or override is given.
func Default() Settings {
	return Settings{
		Config:    task.DefaultConfig(),
		Workers:   1,
		LogLevel:  "info",
		LogFormat: "text",
		Output:    OutputConfig{Plots: true},
	}
}

// Load reads path (optional, "" to skip), applies overrides and validates the result.
func Load(path string, overrides []string) (Settings, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Settings{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	}

	for _, o := range overrides {
		if err := applyOverride(raw, o); err != nil {
			return Settings{}, err
		}
	}

	s := Default()
	if err := decode(raw, &s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the task configuration and host settings.
func (s Settings) Validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", s.Workers)
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("logFormat must be text or json, got %q", s.LogFormat)
	}
	return nil
}

// Marshal renders the effective settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func decode(raw map[string]any, out *Settings) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyOverride sets a dotted key. Values are parsed as YAML scalars or flow sequences.
func applyOverride(raw map[string]any, override string) error {
	key, value, ok := strings.Cut(override, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("%w: %q", ErrBadOverride, override)
	}

	var parsed any
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return fmt.Errorf("override %s: %w", key, err)
	}

	parts := strings.Split(key, ".")
	node := raw
	for _, p := range parts[:len(parts)-1] {
		child, ok := node[p].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[p] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = parsed
	return nil
}
