package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.UI.PageSize = 20
	cfg.UI.Theme = "light"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.UI.PageSize != 20 {
		t.Errorf("expected page size 20, got %d", loaded.UI.PageSize)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("expected theme light, got %q", loaded.UI.Theme)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.PageSize != 10 || cfg.UI.Theme != "dark" {
		t.Errorf("expected defaults, got %+v", cfg.UI)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll(filepath.Dir(Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.PageSize != 10 {
		t.Errorf("expected default page size, got %d", cfg.UI.PageSize)
	}
}
