// Package engine contains the geometric decision layer: deciding how to
// decompose oversized parts into dovetail-jointed segments and how to
// pack bed-fittable parts onto as few beds as possible.
package engine

import (
	"fmt"
	"math"

	"github.com/naggie/turbojigsaw/internal/cutter"
	"github.com/naggie/turbojigsaw/internal/mesh"
	"github.com/naggie/turbojigsaw/internal/model"
)

// Decomposer splits oversized parts into bed-fittable segments joined by
// dovetail cuts, delegating the actual cutting to the MeshCutter.
type Decomposer struct {
	Cutter cutter.MeshCutter
	Config model.Config
}

// NewDecomposer returns a Decomposer using the given cutter and config.
func NewDecomposer(c cutter.MeshCutter, cfg model.Config) *Decomposer {
	return &Decomposer{Cutter: c, Config: cfg}
}

// MakeJigsaw subdivides the part in X and Y with dovetail joints so each
// segment fits the configured bed. The part must exceed the bed on at
// least one horizontal axis.
//
// The result is a single still-connected mesh with all grooves cut in;
// separation into loose segments is deliberately left to the caller.
func (d *Decomposer) MakeJigsaw(p *mesh.Part) (*mesh.Part, error) {
	p.ResetOrigin()

	bedW, bedH := d.Config.BedWidth, d.Config.BedHeight
	xspan, yspan := p.XSpan(), p.YSpan()
	if xspan <= bedW && yspan <= bedH {
		return nil, fmt.Errorf("part %s %.1fx%.1f already fits bed %gx%g",
			p.Name, xspan, yspan, bedW, bedH)
	}

	// Minimum piece count per axis. The tooth allowance is reserved so a
	// dovetail overhang never gets clipped by a bed edge; it affects the
	// count only, pieces themselves are uniform.
	tooth := d.Config.ToothSize
	yPieces := int(math.Ceil((yspan + tooth) / bedH))
	xPieces := int(math.Ceil((xspan + tooth) / bedW))

	ySize := yspan / float64(yPieces)
	xSize := xspan / float64(xPieces)

	part := p

	for i := 1; i < yPieces; i++ {
		cut, err := d.Cutter.Cut(part, ySize*float64(i), part.XSpan(), part.ZSpan())
		if err != nil {
			return nil, err
		}
		part = cut
		part.ResetOrigin() // should be a no-op, but guarantees the invariant
	}

	// The cutter only cuts along horizontal lines, so turn the part 90°
	// to reuse it for what was the X axis.
	part.RotateZ(90)
	part.ResetOrigin()

	for i := 1; i < xPieces; i++ {
		cut, err := d.Cutter.Cut(part, xSize*float64(i), part.XSpan(), part.ZSpan())
		if err != nil {
			return nil, err
		}
		part = cut
		part.ResetOrigin()
	}

	// Back to the original orientation.
	part.RotateZ(270)
	part.ResetOrigin()

	part.Name = p.Name + "-jigsaw"
	return part, nil
}
