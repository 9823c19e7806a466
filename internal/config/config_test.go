package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
theme = "matrix"
autosave_sec = 30
backup = false
log_level = "debug"
history_size = 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "matrix" || cfg.AutosaveSec != 30 || cfg.Backup || cfg.LogLevel != "debug" || cfg.HistorySize != 50 {
		t.Errorf("cfg = %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if !cfg.Number || !cfg.Wrap {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed config loaded without error")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = "dark"`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GUST_THEME", "neon")
	t.Setenv("GUST_AUTOSAVE_SEC", "7")
	t.Setenv("GUST_BACKUP", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "neon" {
		t.Errorf("Theme = %q, env override lost", cfg.Theme)
	}
	if cfg.AutosaveSec != 7 {
		t.Errorf("AutosaveSec = %d", cfg.AutosaveSec)
	}
	if cfg.Backup {
		t.Error("Backup override lost")
	}
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv("GUST_AUTOSAVE_SEC", "soon")
	t.Setenv("GUST_HISTORY_SIZE", "-5")
	t.Setenv("GUST_WRAP", "kinda")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.AutosaveSec != def.AutosaveSec || cfg.HistorySize != def.HistorySize || cfg.Wrap != def.Wrap {
		t.Errorf("garbage env values applied: %+v", cfg)
	}
}
