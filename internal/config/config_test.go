package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := &Config{
		DefaultProfile: "work",
		Appearance:     Appearance{SystemTheme: "dark"},
		Carousel:       Carousel{Interval: Duration{2 * time.Second}},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want %q", loaded.DefaultProfile, "work")
	}
	if loaded.Appearance.SystemTheme != "dark" {
		t.Errorf("SystemTheme = %q, want dark", loaded.Appearance.SystemTheme)
	}
	if loaded.Carousel.Interval.Duration != 2*time.Second {
		t.Errorf("Carousel.Interval = %v, want 2s", loaded.Carousel.Interval)
	}
	if loaded.Session.SigningKey != DefaultSigningKey {
		t.Errorf("SigningKey = %q, want default", loaded.Session.SigningKey)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault("/nonexistent/config.toml")
	if cfg.Carousel.Interval.Duration != DefaultCarouselInterval {
		t.Errorf("Carousel.Interval = %v, want %v", cfg.Carousel.Interval, DefaultCarouselInterval)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[carousel]\ninterval = \"soon\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for bad duration")
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, &Config{DefaultProfile: "main"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
