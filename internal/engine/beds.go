package engine

import (
	"fmt"
	"math"

	"github.com/ForeverZer0/rectpack"
	"github.com/naggie/turbojigsaw/internal/mesh"
	"github.com/naggie/turbojigsaw/internal/model"
)

// tenths converts a quantized mm dimension to the integer 0.1 mm units
// the packer works in.
func tenths(v float64) int {
	return int(math.Round(v * 10))
}

// mm converts packer units back to millimetres.
func mm(v int) float64 {
	return float64(v) / 10
}

// ArrangeToBeds packs the parts onto as few beds as possible and
// realizes the layout: each part is rotated and translated into its
// assigned position, and each bin's parts are merged into a single bed
// part named bed-<n> with its origin reset.
//
// Every part must individually fit the configured bed (after the
// aspect-ratio rotation heuristic); anything bigger is an error naming
// the part and its dimensions. Beds are returned in discovery order
// together with their layouts for reporting.
func ArrangeToBeds(parts []*mesh.Part, cfg model.Config) ([]*mesh.Part, model.PackResult, error) {
	type entry struct {
		part *mesh.Part
		w, h int // packer units
	}

	entries := make([]entry, len(parts))
	for i, p := range parts {
		if !p.Fits(cfg.BedWidth, cfg.BedHeight, cfg.PartGap) {
			bw, bh := p.BBox(cfg.PartGap)
			return nil, model.PackResult{}, fmt.Errorf(
				"part %s %gx%g bigger than bed %gx%g",
				p.Name, bw, bh, cfg.BedWidth, cfg.BedHeight)
		}
		p.ResetOrigin()
		bw, bh := p.BBox(cfg.PartGap)
		entries[i] = entry{part: p, w: tenths(bw), h: tenths(bh)}
	}

	var beds []*mesh.Part
	var result model.PackResult

	remaining := make([]int, len(entries))
	for i := range entries {
		remaining[i] = i
	}

	// The packer fills one fixed-extent bin at a time; allocating beds
	// until nothing is left over gives the unlimited-bin behavior.
	for len(remaining) > 0 {
		packer, err := rectpack.NewPacker(tenths(cfg.BedWidth), tenths(cfg.BedHeight), rectpack.MaxRectsBSSF)
		if err != nil {
			return nil, model.PackResult{}, err
		}
		packer.AllowFlip(true)
		for _, idx := range remaining {
			packer.InsertSize(idx, entries[idx].w, entries[idx].h)
		}
		packer.Pack()

		placed := packer.Rects()
		if len(placed) == 0 {
			// Cannot happen once every part passed the fit check, but a
			// packer regression would otherwise loop forever.
			return nil, model.PackResult{}, fmt.Errorf(
				"packer placed none of %d remaining parts", len(remaining))
		}

		layout := model.BedLayout{
			Name:   fmt.Sprintf("bed-%d", len(beds)+1),
			Width:  cfg.BedWidth,
			Height: cfg.BedHeight,
		}

		placedSet := make(map[int]bool, len(placed))
		binParts := make([]*mesh.Part, 0, len(placed))
		for _, r := range placed {
			e := entries[r.ID]
			// A placed width differing from the registered one means the
			// packer flipped the rectangle.
			rotated := r.Width != e.w
			e.part.PositionBBox(mm(r.X), mm(r.Y), rotated, cfg.PartGap)
			binParts = append(binParts, e.part)
			layout.Placements = append(layout.Placements, model.Placement{
				PartID:   e.part.ID,
				PartName: e.part.Name,
				Width:    mm(e.w),
				Height:   mm(e.h),
				X:        mm(r.X),
				Y:        mm(r.Y),
				Rotated:  rotated,
			})
			placedSet[r.ID] = true
		}

		bed := mesh.Merge(layout.Name, binParts...)
		bed.ResetOrigin()
		beds = append(beds, bed)
		result.Beds = append(result.Beds, layout)

		next := remaining[:0]
		for _, idx := range remaining {
			if !placedSet[idx] {
				next = append(next, idx)
			}
		}
		remaining = next
	}

	return beds, result, nil
}
