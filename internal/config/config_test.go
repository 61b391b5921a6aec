package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
provider = "anthropic"
model = "claude-haiku-4-5"
batch_size = 20
strict = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("expected provider anthropic, got %q", cfg.Provider)
	}
	if cfg.Model != "claude-haiku-4-5" {
		t.Errorf("unexpected model %q", cfg.Model)
	}
	if cfg.BatchSize != 20 {
		t.Errorf("expected batch size 20, got %d", cfg.BatchSize)
	}
	if cfg.Concurrency != 3 {
		t.Errorf("expected default concurrency 3, got %d", cfg.Concurrency)
	}
	if !cfg.Strict {
		t.Error("expected strict to be set")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "gemini" || cfg.BatchSize != 50 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "concurrency = 0\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for zero concurrency")
	}

	path = writeConfig(t, "provider = [\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestExpandHome(t *testing.T) {
	if got := expandHome("~/bin/ffmpeg", "/home/u"); got != "/home/u/bin/ffmpeg" {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/usr/bin/ffmpeg", "/home/u"); got != "/usr/bin/ffmpeg" {
		t.Errorf("expandHome changed absolute path: %q", got)
	}
}
