package config

import (
	"os"
	"testing"
	"time"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FLASH_SECRET", "test-flash-secret")
	t.Setenv("CSRF_KEY", "exactly-32-characters-long!!!!!!")
}

func TestLoadDefaults(t *testing.T) {
	setTestEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.LogLevel)
	}
	if cfg.JQueryURL != defaultJQueryURL {
		t.Errorf("expected default jquery url, got %q", cfg.JQueryURL)
	}
	if cfg.DefaultHideAfter != 0 {
		t.Errorf("expected no default hide-after, got %v", cfg.DefaultHideAfter)
	}
}

func TestLoadCustomPort(t *testing.T) {
	setTestEnv(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
}

func TestLoadDefaultHideAfter(t *testing.T) {
	setTestEnv(t)
	t.Setenv("DEFAULT_HIDE_AFTER", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultHideAfter != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.DefaultHideAfter)
	}
}

func TestLoadInvalidHideAfter(t *testing.T) {
	setTestEnv(t)
	t.Setenv("DEFAULT_HIDE_AFTER", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid DEFAULT_HIDE_AFTER")
	}
}

func TestLoadMissingFlashSecret(t *testing.T) {
	t.Setenv("FLASH_SECRET", "")
	t.Setenv("CSRF_KEY", "exactly-32-characters-long!!!!!!")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing FLASH_SECRET")
	}
}

func TestLoadInvalidCSRFKey(t *testing.T) {
	t.Setenv("FLASH_SECRET", "test-flash-secret")
	t.Setenv("CSRF_KEY", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid CSRF_KEY length")
	}
}

func TestLoadAllMissing(t *testing.T) {
	os.Clearenv()

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when all secrets missing")
	}
}
