package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/naggie/turbojigsaw/internal/model"
)

func TestLoadConfigMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.json")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	if cfg.BedWidth != model.DefaultConfig().BedWidth {
		t.Errorf("expected default bed width, got %g", cfg.BedWidth)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := model.DefaultConfig()
	cfg.BedWidth = 236
	cfg.BedHeight = 255
	cfg.ToothSize = 7.5

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.BedWidth != 236 || loaded.BedHeight != 255 {
		t.Errorf("bed size not preserved: %gx%g", loaded.BedWidth, loaded.BedHeight)
	}
	if loaded.ToothSize != 7.5 {
		t.Errorf("tooth size not preserved: %g", loaded.ToothSize)
	}
}

func TestLoadConfigCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for corrupt config")
	}
}
