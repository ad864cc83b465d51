package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TC_PORT", "")
	t.Setenv("TC_DB_PATH", "")
	t.Setenv("TC_BASE_URL", "")
	t.Setenv("TC_DEV_MODE", "")

	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("DatabasePath = %q, want empty", cfg.DatabasePath)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.DevMode {
		t.Error("DevMode should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TC_PORT", "3000")
	t.Setenv("TC_DB_PATH", "/tmp/site.db")
	t.Setenv("TC_BASE_URL", "https://example.com")
	t.Setenv("TC_DEV_MODE", "true")

	cfg := Load()

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/site.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.BaseURL != "https://example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if !cfg.DevMode {
		t.Error("DevMode should be true")
	}
}

func TestLoadBadPortFallsBack(t *testing.T) {
	t.Setenv("TC_PORT", "not-a-port")

	if cfg := Load(); cfg.Port != 8080 {
		t.Errorf("Port = %d, want fallback 8080", cfg.Port)
	}
}
