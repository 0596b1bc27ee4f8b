package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Log.Level != "info" {
		t.Errorf("log level = %q", config.Log.Level)
	}
	if !config.Engine.Enabled {
		t.Error("engine not enabled by default")
	}
	if config.Engine.TrackColor == "" {
		t.Error("no default track color")
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("config = %+v", config)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kaiku.toml")
	data := "[log]\nlevel = \"debug\"\n\n[engine]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Log.Level != "debug" {
		t.Errorf("log level = %q", config.Log.Level)
	}
	if config.Engine.Enabled {
		t.Error("engine still enabled")
	}
	// unset keys keep their defaults
	if config.Engine.TrackColor != DefaultConfig().Engine.TrackColor {
		t.Errorf("track color = %q", config.Engine.TrackColor)
	}
}
