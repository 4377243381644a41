package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mizan-labs/mizan/internal/finance"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MaxInputLength != 2000 {
		t.Errorf("MaxInputLength = %d, want 2000", cfg.MaxInputLength)
	}
	if cfg.Standard() != finance.FAS32 {
		t.Errorf("Standard() = %v, want FAS_32", cfg.Standard())
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("port: \"9090\"\ndefault_standard: FAS_28\ncache_ttl: 30m\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.Standard() != finance.FAS28 {
		t.Errorf("Standard() = %v, want FAS_28", cfg.Standard())
	}
	if cfg.CacheTTL != 30*time.Minute {
		t.Errorf("CacheTTL = %v, want 30m", cfg.CacheTTL)
	}
	// Unset keys keep their defaults.
	if cfg.MaxInputLength != 2000 {
		t.Errorf("MaxInputLength = %d, want default 2000", cfg.MaxInputLength)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("DEFAULT_STANDARD", "FAS_7")
	t.Setenv("DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port = %q, want env override 7070", cfg.Port)
	}
	if cfg.Standard() != finance.FAS7 {
		t.Errorf("Standard() = %v, want FAS_7", cfg.Standard())
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoad_RejectsUnknownStandard(t *testing.T) {
	t.Setenv("DEFAULT_STANDARD", "FAS_99")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unknown default standard")
	}
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unparseable CACHE_TTL")
	}
}

func TestLoad_MissingYAMLFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
