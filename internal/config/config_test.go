package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Game.Lang != nil || cfg.Game.MinLength != nil {
		t.Fatalf("expected empty config, got %+v", cfg.Game)
	}
}

func TestLoadConfigGameSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[game]
lang = "en"
min-length = 4
high-scores = 10
fallback-root = "silkworm"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.MinLength == nil || *cfg.Game.MinLength != 4 {
		t.Fatalf("unexpected min-length: %v", cfg.Game.MinLength)
	}
	if cfg.Game.HighScores == nil || *cfg.Game.HighScores != 10 {
		t.Fatalf("unexpected high-scores: %v", cfg.Game.HighScores)
	}
	if cfg.Game.FallbackRoot == nil || *cfg.Game.FallbackRoot != "silkworm" {
		t.Fatalf("unexpected fallback-root: %v", cfg.Game.FallbackRoot)
	}
	if cfg.Game.RootWords != nil {
		t.Fatalf("expected unset root-words")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nwords = 25\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("SCRAMBLE_CONFIG", "")
	t.Setenv("SCRAMBLE_DB", "/tmp/custom.db")
	t.Setenv("LOG_LEVEL", "debug")
	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if e.ConfigPath != filepath.Join("/cfg", "scramble", "config.toml") {
		t.Fatalf("unexpected config path %q", e.ConfigPath)
	}
	if e.DBPath != "/tmp/custom.db" {
		t.Fatalf("unexpected db path %q", e.DBPath)
	}
	if e.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", e.LogLevel)
	}
}
