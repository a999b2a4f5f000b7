package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Database.Path == "" {
		t.Error("Expected a default database path")
	}
	if cfg.Disk.MinFreeBytes != 100*1024*1024 {
		t.Errorf("Expected 100 MiB free-space floor, got %d", cfg.Disk.MinFreeBytes)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
database:
  path: /tmp/other.db
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/other.db" {
		t.Errorf("Expected custom database path, got %q", cfg.Database.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.Logging.Level)
	}
	// Unset fields fall back to defaults
	if cfg.Disk.MinFreeBytes != Default().Disk.MinFreeBytes {
		t.Errorf("Expected default free-space floor, got %d", cfg.Disk.MinFreeBytes)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing explicit config path")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database: ["), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected a parse error for malformed YAML")
	}
}
