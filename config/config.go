package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds user-configurable defaults.
type Config struct {
	IntervalSec int        `mapstructure:"interval_sec"`
	SortKey     string     `mapstructure:"sort_key"`
	Thresholds  Thresholds `mapstructure:"thresholds"`
}

// Thresholds mirrors the engine's classification levels.
type Thresholds struct {
	CPUWarning  float64 `mapstructure:"cpu_warning"`
	CPUCritical float64 `mapstructure:"cpu_critical"`
	MemWarning  float64 `mapstructure:"mem_warning"`
	MemCritical float64 `mapstructure:"mem_critical"`
}

// Default returns a config with stock values.
func Default() Config {
	return Config{
		IntervalSec: 2,
		SortKey:     "cpu_percent_total",
		Thresholds: Thresholds{
			CPUWarning:  50,
			CPUCritical: 70,
			MemWarning:  50,
			MemCritical: 70,
		},
	}
}

// Dir returns the config directory ($XDG_CONFIG_HOME/progtop or
// ~/.config/progtop). Empty when no home directory can be determined.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "progtop")
}

// Load reads config.yaml from the config directory. A missing file
// yields defaults silently; a malformed one logs and yields defaults.
func Load() Config {
	cfg := Default()
	dir := Dir()
	if dir == "" {
		return cfg
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetDefault("interval_sec", cfg.IntervalSec)
	v.SetDefault("sort_key", cfg.SortKey)
	v.SetDefault("thresholds.cpu_warning", cfg.Thresholds.CPUWarning)
	v.SetDefault("thresholds.cpu_critical", cfg.Thresholds.CPUCritical)
	v.SetDefault("thresholds.mem_warning", cfg.Thresholds.MemWarning)
	v.SetDefault("thresholds.mem_critical", cfg.Thresholds.MemCritical)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Warn().Err(err).Str("dir", dir).Msg("config parse error, using defaults")
		}
		return cfg
	}
	if err := v.Unmarshal(&cfg); err != nil {
		log.Warn().Err(err).Msg("config unmarshal error, using defaults")
		return Default()
	}
	return cfg
}
