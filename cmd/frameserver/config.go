package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the frameserver settings, read from a TOML file with
// environment overrides.
type Config struct {
	Addr        string    `toml:"addr"`
	MetricsAddr string    `toml:"metrics_addr"`
	EOP         EOPConfig `toml:"eop"`
}

// EOPConfig points at the Earth orientation data sources.
type EOPConfig struct {
	FinalsCSV string `toml:"finals_csv"`
	CachePath string `toml:"cache_path"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		MetricsAddr: ":9090",
		EOP: EOPConfig{
			CachePath: "eop.db",
		},
	}
}

// LoadConfig reads the TOML file at path (when non-empty) over the defaults
// and then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if v := os.Getenv("ASTROTIME_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("ASTROTIME_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("ASTROTIME_EOP_FINALS_CSV"); v != "" {
		cfg.EOP.FinalsCSV = v
	}
	if v := os.Getenv("ASTROTIME_EOP_CACHE"); v != "" {
		cfg.EOP.CachePath = v
	}
	return cfg, nil
}
