// Package mesh wraps triangle-soup solids with the geometry bookkeeping
// the pipeline needs: axis spans, margin-padded bounding boxes, origin
// normalization, vertical-axis rotation and packer placement.
package mesh

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hschendel/stl"
)

// Part is a triangle mesh with an identity. ID is an opaque key, stable
// across cut/rotate/translate operations; Name is for humans and output
// file names and should be unique among parts processed together.
type Part struct {
	ID    string
	Name  string
	Solid *stl.Solid
}

// New wraps a solid as a Part with a fresh ID.
func New(name string, solid *stl.Solid) *Part {
	return &Part{
		ID:    uuid.New().String()[:8],
		Name:  name,
		Solid: solid,
	}
}

// FromFile reads a binary or ASCII STL file. The part name is the file
// base name without extension.
func FromFile(path string) (*Part, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return New(name, solid), nil
}

// WithSolid returns a part with the same identity but replaced geometry.
// Used when an external tool hands back a transformed mesh.
func (p *Part) WithSolid(solid *stl.Solid) *Part {
	return &Part{ID: p.ID, Name: p.Name, Solid: solid}
}

// spans returns max-min extents per axis.
func (p *Part) spans() (x, y, z float64) {
	m := p.Solid.Measure()
	return float64(m.Len[0]), float64(m.Len[1]), float64(m.Len[2])
}

// XSpan returns the extent along the X axis.
func (p *Part) XSpan() float64 { x, _, _ := p.spans(); return x }

// YSpan returns the extent along the Y axis.
func (p *Part) YSpan() float64 { _, y, _ := p.spans(); return y }

// ZSpan returns the extent along the Z axis.
func (p *Part) ZSpan() float64 { _, _, z := p.spans(); return z }

// BBox returns the 2D bounding box with the gap margin applied (half
// around the perimeter). Each dimension is quantized to one decimal so
// the packer sees near-identical float sizes as exactly equal.
func (p *Part) BBox(gap float64) (w, h float64) {
	x, y, _ := p.spans()
	return roundTenth(x + gap), roundTenth(y + gap)
}

// ResetOrigin translates the geometry so the minimum coordinate on each
// axis becomes 0. Idempotent.
func (p *Part) ResetOrigin() {
	m := p.Solid.Measure()
	p.Solid.Translate(stl.Vec3{-m.Min[0], -m.Min[1], -m.Min[2]})
}

// RotateZ rotates the geometry about the vertical axis through the
// origin. The origin is not renormalized; callers that care must call
// ResetOrigin afterwards.
func (p *Part) RotateZ(deg float64) {
	p.Solid.Rotate(stl.Vec3{0, 0, 0}, stl.Vec3{0, 0, 1}, deg*math.Pi/180)
}

// PositionBBox realizes a packer-assigned placement: optional 90°
// rotation, origin reset, then translation to (x, y) plus the half-gap
// margin baked into BBox.
func (p *Part) PositionBBox(x, y float64, rotate bool, gap float64) {
	if rotate {
		p.RotateZ(90)
	}
	p.ResetOrigin()
	p.Solid.Translate(stl.Vec3{float32(x + gap/2), float32(y + gap/2), 0})
}

// WantsRotationFor reports whether rotating the part 90° would match its
// bounding-box aspect ratio to the bed's. Pure; does not mutate.
func (p *Part) WantsRotationFor(bedW, bedH, gap float64) bool {
	w, h := p.BBox(gap)
	return (w > h && bedW < bedH) || (w < h && bedW > bedH)
}

// Fits reports whether the part fits the bed footprint, rotating the
// part 90° first when that matches the bed's aspect ratio. The rotation
// is a heuristic to pack better, not a search for the best orientation;
// only the one alternative is tried. Note the part may come out of this
// call rotated.
func (p *Part) Fits(bedW, bedH, gap float64) bool {
	if p.WantsRotationFor(bedW, bedH, gap) {
		p.RotateZ(90)
	}
	w, h := p.BBox(gap)
	return w <= bedW && h <= bedH
}

// Merge concatenates the geometry of the given parts into a new Part.
// The inputs are copied, not referenced.
func Merge(name string, parts ...*Part) *Part {
	var triangles []stl.Triangle
	for _, p := range parts {
		triangles = append(triangles, p.Solid.Triangles...)
	}
	return New(name, &stl.Solid{Name: name, Triangles: triangles})
}

// Save writes the part as a binary STL file at the given path.
func (p *Part) Save(path string) error {
	p.Solid.IsAscii = false
	if err := p.Solid.WriteFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteFile writes the part as <name>.stl into dir and returns the path.
func (p *Part) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, p.Name+".stl")
	if err := p.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// roundTenth quantizes to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
