package model

import (
	"math"
	"testing"
)

func TestPlacementPlacedDimensions(t *testing.T) {
	p := Placement{Width: 50, Height: 30}
	if p.PlacedWidth() != 50 || p.PlacedHeight() != 30 {
		t.Errorf("unrotated: got %gx%g", p.PlacedWidth(), p.PlacedHeight())
	}

	p.Rotated = true
	if p.PlacedWidth() != 30 || p.PlacedHeight() != 50 {
		t.Errorf("rotated: got %gx%g", p.PlacedWidth(), p.PlacedHeight())
	}
}

func TestBedLayoutEfficiency(t *testing.T) {
	bed := BedLayout{
		Name:   "bed-1",
		Width:  180,
		Height: 180,
		Placements: []Placement{
			{Width: 90, Height: 180},
		},
	}

	if got := bed.UsedArea(); got != 90*180 {
		t.Errorf("expected used area %d, got %g", 90*180, got)
	}
	if got := bed.Efficiency(); math.Abs(got-50) > 1e-9 {
		t.Errorf("expected 50%% efficiency, got %g", got)
	}
}

func TestBedLayoutEfficiencyZeroArea(t *testing.T) {
	var bed BedLayout
	if got := bed.Efficiency(); got != 0 {
		t.Errorf("expected 0 for empty bed, got %g", got)
	}
}

func TestPackResultTotals(t *testing.T) {
	result := PackResult{
		Beds: []BedLayout{
			{Width: 100, Height: 100, Placements: []Placement{{Width: 100, Height: 100}}},
			{Width: 100, Height: 100, Placements: []Placement{{Width: 50, Height: 100}}},
		},
	}

	if got := result.PartCount(); got != 2 {
		t.Errorf("expected 2 parts, got %d", got)
	}
	if got := result.TotalEfficiency(); math.Abs(got-75) > 1e-9 {
		t.Errorf("expected 75%% total efficiency, got %g", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BedWidth != 180 || cfg.BedHeight != 180 {
		t.Errorf("unexpected bed size %gx%g", cfg.BedWidth, cfg.BedHeight)
	}
	if cfg.PartGap != 1 {
		t.Errorf("unexpected gap %g", cfg.PartGap)
	}
	if cfg.ToothSize != 5 {
		t.Errorf("unexpected tooth size %g", cfg.ToothSize)
	}
	if len(cfg.OpenSCAD) == 0 || len(cfg.PrusaSlicer) == 0 {
		t.Error("expected default external tool commands")
	}
}
