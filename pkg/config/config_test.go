package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.DataDir == "" {
		t.Error("General.DataDir should not be empty")
	}
	if !cfg.Catalog.UseEmbedded {
		t.Error("Catalog.UseEmbedded should default to true")
	}
	if cfg.Browse.PageSize != 10 {
		t.Errorf("Browse.PageSize = %d, want 10", cfg.Browse.PageSize)
	}
	if !cfg.Hardware.Detect {
		t.Error("Hardware.Detect should default to true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
[catalog]
path = "/custom/catalog"
use_embedded = false

[browse]
page_size = 5

[hardware]
probe_timeout = "500ms"
`

	tmpFile, err := os.CreateTemp("", "config-*.toml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	_ = tmpFile.Close()

	cfg, err := LoadFromFile(tmpFile.Name())
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Catalog.Path != "/custom/catalog" {
		t.Errorf("Catalog.Path = %q, want %q", cfg.Catalog.Path, "/custom/catalog")
	}
	if cfg.Catalog.UseEmbedded {
		t.Error("Catalog.UseEmbedded should be false")
	}
	if cfg.Browse.PageSize != 5 {
		t.Errorf("Browse.PageSize = %d, want 5", cfg.Browse.PageSize)
	}
	// Unset sections keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_PostProcessesDurations(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Hardware.ProbeTimeoutD != 2*time.Second {
		t.Errorf("ProbeTimeoutD = %v, want 2s", cfg.Hardware.ProbeTimeoutD)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero page size", func(c *Config) { c.Browse.PageSize = 0 }, true},
		{"negative page size", func(c *Config) { c.Browse.PageSize = -3 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"zero probe timeout", func(c *Config) { c.Hardware.ProbeTimeoutD = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.postProcess(); err != nil {
				t.Fatalf("postProcess: %v", err)
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("WOLLAMA_CATALOG", "/env/catalog")
	t.Setenv("WOLLAMA_PAGE_SIZE", "7")
	t.Setenv("WOLLAMA_HW_DETECT", "false")
	t.Setenv("WOLLAMA_LOG_LEVEL", "debug")

	cfg := Default()
	ApplyEnvOverrides(cfg)

	if cfg.Catalog.Path != "/env/catalog" {
		t.Errorf("Catalog.Path = %q, want %q", cfg.Catalog.Path, "/env/catalog")
	}
	if cfg.Browse.PageSize != 7 {
		t.Errorf("Browse.PageSize = %d, want 7", cfg.Browse.PageSize)
	}
	if cfg.Hardware.Detect {
		t.Error("Hardware.Detect should be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got, err := expandPath("~/catalog")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	want := filepath.Join(home, "catalog")
	if got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}

	got, err = expandPath("")
	if err != nil || got != "" {
		t.Errorf("expandPath(\"\") = %q, %v; want empty, nil", got, err)
	}
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	if _, err := Load("/does/not/exist.toml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
