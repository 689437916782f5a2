// Package config loads engine-wide tunables from TOML.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config bundles the tunables left implementation-defined by the engine
// core: profiler history size, adaptive controller thresholds, logging.
type Config struct {
	Profiler   ProfilerConfig   `toml:"profiler"`
	Controller ControllerConfig `toml:"controller"`
	Logging    LoggingConfig    `toml:"logging"`
}

// ProfilerConfig configures profiler.Init.
type ProfilerConfig struct {
	HistorySize int `toml:"history_size"`
}

// ControllerConfig configures optimizer.Controller's canonical rule
// thresholds. The field names mirror the rule's own vocabulary rather than
// generic "high"/"low" knobs.
type ControllerConfig struct {
	TickInterval      int `toml:"tick_interval"`
	ScaleUpEntities   int `toml:"scale_up_entities"`
	ScaleDownEntities int `toml:"scale_down_entities"`
}

// LoggingConfig configures internal/xlog.Init.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration this engine ships with absent a file:
// 300-frame profiler history, the 500/100 entity-count thresholds for
// variant switching, and console logging at info level.
func Default() *Config {
	return &Config{
		Profiler: ProfilerConfig{
			HistorySize: 300,
		},
		Controller: ControllerConfig{
			TickInterval:      60,
			ScaleUpEntities:   500,
			ScaleDownEntities: 100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML file at path, overlaying it onto Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
