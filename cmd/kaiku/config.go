package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config is the harness configuration loaded from a TOML file.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Engine EngineConfig `toml:"engine"`
}

// LogConfig controls harness logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// EngineConfig controls the simulated engine-resource registry.
type EngineConfig struct {
	// Enabled false simulates an unavailable engine: every track
	// allocation is rejected and the bridge runs without engine ids.
	Enabled    bool   `toml:"enabled"`
	TrackColor string `toml:"track_color"`
}

// LoadConfig reads and parses a TOML configuration file. A missing file
// is not an error; the embedded defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	return config, nil
}

// DefaultConfig returns the configuration from the embedded example file.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("embedded default config does not parse: %v", err))
	}
	return &config
}
