package mesh

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/hschendel/stl"
)

// boxPart builds a part whose geometry spans exactly w x h x d. Two
// triangles touching the extreme corners are enough for span math.
func boxPart(name string, w, h, d float64) *Part {
	fw, fh, fd := float32(w), float32(h), float32(d)
	solid := &stl.Solid{
		Name: name,
		Triangles: []stl.Triangle{
			{Vertices: [3]stl.Vec3{{0, 0, 0}, {fw, 0, 0}, {0, fh, 0}}},
			{Vertices: [3]stl.Vec3{{fw, fh, fd}, {0, fh, fd}, {fw, 0, fd}}},
		},
	}
	return New(name, solid)
}

func TestSpans(t *testing.T) {
	p := boxPart("box", 50, 30, 10)
	if got := p.XSpan(); math.Abs(got-50) > 1e-4 {
		t.Errorf("xspan: expected 50, got %g", got)
	}
	if got := p.YSpan(); math.Abs(got-30) > 1e-4 {
		t.Errorf("yspan: expected 30, got %g", got)
	}
	if got := p.ZSpan(); math.Abs(got-10) > 1e-4 {
		t.Errorf("zspan: expected 10, got %g", got)
	}
}

func TestResetOriginInvariant(t *testing.T) {
	p := boxPart("box", 50, 30, 10)
	p.Solid.Translate(stl.Vec3{-17.5, 4.25, 99})

	p.ResetOrigin()
	m := p.Solid.Measure()
	for axis := 0; axis < 3; axis++ {
		if math.Abs(float64(m.Min[axis])) > 1e-4 {
			t.Errorf("axis %d: expected min 0 after reset, got %g", axis, m.Min[axis])
		}
	}

	// Idempotent: a second reset must not move anything
	before := append([]stl.Triangle(nil), p.Solid.Triangles...)
	p.ResetOrigin()
	for i, tri := range p.Solid.Triangles {
		if tri.Vertices != before[i].Vertices {
			t.Fatalf("triangle %d moved on second reset", i)
		}
	}
}

func TestBBoxFormula(t *testing.T) {
	p := boxPart("box", 50, 30, 10)

	w, h := p.BBox(1)
	if w != 51 || h != 31 {
		t.Errorf("expected bbox (51, 31), got (%g, %g)", w, h)
	}

	// bbox is independent of position
	p.Solid.Translate(stl.Vec3{123, -45, 6})
	w, h = p.BBox(1)
	if w != 51 || h != 31 {
		t.Errorf("expected bbox (51, 31) after translate, got (%g, %g)", w, h)
	}

	// rotation then reset swaps the axes
	p.RotateZ(90)
	p.ResetOrigin()
	w, h = p.BBox(1)
	if w != 31 || h != 51 {
		t.Errorf("expected bbox (31, 51) after rotation, got (%g, %g)", w, h)
	}
}

func TestBBoxQuantized(t *testing.T) {
	p := boxPart("box", 50.04, 29.97, 10)
	w, h := p.BBox(1)
	if w != 51.0 {
		t.Errorf("expected width quantized to 51.0, got %g", w)
	}
	if h != 31.0 {
		t.Errorf("expected height quantized to 31.0, got %g", h)
	}
}

func TestWantsRotationForIsPure(t *testing.T) {
	p := boxPart("wide", 180, 60, 10)

	if !p.WantsRotationFor(100, 200, 1) {
		t.Error("wide part on tall bed should want rotation")
	}
	if p.WantsRotationFor(200, 100, 1) {
		t.Error("wide part on wide bed should not want rotation")
	}

	// Pure: the query must not have moved the geometry
	w, h := p.BBox(1)
	if w != 181 || h != 61 {
		t.Errorf("geometry mutated by WantsRotationFor: bbox (%g, %g)", w, h)
	}
}

func TestFits(t *testing.T) {
	cases := []struct {
		name       string
		w, h       float64
		bedW, bedH float64
		fits       bool
	}{
		{"small part square bed", 50, 50, 180, 180, true},
		{"exact fit", 179, 179, 180, 180, true},
		{"too wide", 250, 50, 180, 180, false},
		{"fits only rotated", 60, 180, 200, 100, true},
		{"too big either way", 150, 250, 200, 100, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := boxPart("p", tc.w, tc.h, 10)
			if got := p.Fits(tc.bedW, tc.bedH, 1); got != tc.fits {
				t.Errorf("Fits(%g, %g) = %v, expected %v", tc.bedW, tc.bedH, got, tc.fits)
			}
		})
	}
}

func TestFitsMayRotate(t *testing.T) {
	// The aspect-ratio heuristic is a documented side effect: testing
	// fit can leave the part rotated.
	p := boxPart("tall", 60, 180, 10)
	if !p.Fits(200, 100, 1) {
		t.Fatal("expected part to fit rotated")
	}
	w, h := p.BBox(1)
	if w != 181 || h != 61 {
		t.Errorf("expected part to come out rotated, bbox (%g, %g)", w, h)
	}
}

func TestPositionBBox(t *testing.T) {
	p := boxPart("box", 50, 30, 10)
	p.PositionBBox(10, 20, false, 1)

	m := p.Solid.Measure()
	if math.Abs(float64(m.Min[0])-10.5) > 1e-4 {
		t.Errorf("expected x min 10.5, got %g", m.Min[0])
	}
	if math.Abs(float64(m.Min[1])-20.5) > 1e-4 {
		t.Errorf("expected y min 20.5, got %g", m.Min[1])
	}
	if math.Abs(float64(m.Min[2])) > 1e-4 {
		t.Errorf("expected z min 0, got %g", m.Min[2])
	}
}

func TestPositionBBoxRotated(t *testing.T) {
	p := boxPart("box", 50, 30, 10)
	p.PositionBBox(0, 0, true, 1)

	if got := p.XSpan(); math.Abs(got-30) > 1e-3 {
		t.Errorf("expected xspan 30 after rotated placement, got %g", got)
	}
	if got := p.YSpan(); math.Abs(got-50) > 1e-3 {
		t.Errorf("expected yspan 50 after rotated placement, got %g", got)
	}
}

func TestMerge(t *testing.T) {
	a := boxPart("a", 50, 30, 10)
	b := boxPart("b", 20, 20, 5)

	merged := Merge("bed-1", a, b)
	if merged.Name != "bed-1" {
		t.Errorf("expected name bed-1, got %s", merged.Name)
	}
	if got := len(merged.Solid.Triangles); got != 4 {
		t.Errorf("expected 4 triangles, got %d", got)
	}
	if merged.ID == a.ID || merged.ID == b.ID {
		t.Error("merged part should have a fresh ID")
	}
}

func TestWithSolidKeepsIdentity(t *testing.T) {
	a := boxPart("a", 50, 30, 10)
	b := a.WithSolid(boxPart("ignored", 10, 10, 10).Solid)
	if b.ID != a.ID || b.Name != a.Name {
		t.Error("WithSolid must preserve ID and name")
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	p := boxPart("roundtrip", 50, 30, 10)

	path, err := p.WriteFile(dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != "roundtrip.stl" {
		t.Errorf("unexpected file name %s", path)
	}

	loaded, err := FromFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if loaded.Name != "roundtrip" {
		t.Errorf("expected name from file base, got %s", loaded.Name)
	}
	if math.Abs(loaded.XSpan()-50) > 1e-3 || math.Abs(loaded.YSpan()-30) > 1e-3 {
		t.Errorf("spans not preserved: %g x %g", loaded.XSpan(), loaded.YSpan())
	}
}
