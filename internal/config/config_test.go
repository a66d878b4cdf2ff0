package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(writeConfig(t, "{}"), "explodata.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabasePath == "" || cfg.LogFile == "" {
		t.Errorf("default paths missing: %+v", cfg)
	}
	if cfg.Workers != 0 {
		t.Errorf("default workers = %d, want 0", cfg.Workers)
	}
	if cfg.EDSM.URL != "https://www.edsm.net/api-system-v1/bodies" {
		t.Errorf("default catalog URL = %q", cfg.EDSM.URL)
	}
	if cfg.EDSM.Timeout != 10*time.Second {
		t.Errorf("default catalog timeout = %v", cfg.EDSM.Timeout)
	}
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
journal_dir: /tmp/journals
workers: 2
edsm:
  timeout: 30s
`)
	cfg, err := Load(filepath.Join(dir, "explodata.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JournalDir != "/tmp/journals" {
		t.Errorf("journal_dir = %q", cfg.JournalDir)
	}
	if cfg.Workers != 2 {
		t.Errorf("workers = %d", cfg.Workers)
	}
	if cfg.EDSM.Timeout != 30*time.Second {
		t.Errorf("catalog timeout = %v", cfg.EDSM.Timeout)
	}
	// Untouched keys keep their defaults.
	if cfg.EDSM.URL != "https://www.edsm.net/api-system-v1/bodies" {
		t.Errorf("catalog URL lost its default: %q", cfg.EDSM.URL)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, `
journal_dir: /tmp/journals
workers: 2
`)
	t.Setenv("EXPLODATA_WORKERS", "3")
	t.Setenv("EXPLODATA_EDSM_TIMEOUT", "5s")

	cfg, err := Load(filepath.Join(dir, "explodata.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("environment did not override workers: %d", cfg.Workers)
	}
	if cfg.EDSM.Timeout != 5*time.Second {
		t.Errorf("environment did not override catalog timeout: %v", cfg.EDSM.Timeout)
	}
	if cfg.JournalDir != "/tmp/journals" {
		t.Errorf("file value lost: %q", cfg.JournalDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for an explicit missing config file")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "explodata.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}
