package model

// Placement records one part realized on a bed. Positions and dimensions
// are in mm; Width/Height are the margin-padded bounding box the packer
// worked with, not the raw part extents.
type Placement struct {
	PartID   string  `json:"part_id"`
	PartName string  `json:"part_name"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotated  bool    `json:"rotated"` // placed with a 90° rotation
}

// PlacedWidth returns the effective width considering rotation.
func (p Placement) PlacedWidth() float64 {
	if p.Rotated {
		return p.Height
	}
	return p.Width
}

// PlacedHeight returns the effective height considering rotation.
func (p Placement) PlacedHeight() float64 {
	if p.Rotated {
		return p.Width
	}
	return p.Height
}

// BedLayout describes one packed bed: its footprint and every placement
// on it, in packing order.
type BedLayout struct {
	Name       string      `json:"name"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Placements []Placement `json:"placements"`
}

// UsedArea returns the total bounding-box area occupied by placements.
func (b BedLayout) UsedArea() float64 {
	var total float64
	for _, p := range b.Placements {
		total += p.Width * p.Height
	}
	return total
}

// TotalArea returns the bed footprint area.
func (b BedLayout) TotalArea() float64 {
	return b.Width * b.Height
}

// Efficiency returns the bed usage percentage.
func (b BedLayout) Efficiency() float64 {
	ta := b.TotalArea()
	if ta == 0 {
		return 0
	}
	return (b.UsedArea() / ta) * 100.0
}

// PackResult holds the layouts of every bed produced by one packing run,
// in bin discovery order.
type PackResult struct {
	Beds []BedLayout `json:"beds"`
}

// PartCount returns the number of parts placed across all beds.
func (r PackResult) PartCount() int {
	total := 0
	for _, b := range r.Beds {
		total += len(b.Placements)
	}
	return total
}

// TotalEfficiency returns the overall bed usage percentage.
func (r PackResult) TotalEfficiency() float64 {
	var used, total float64
	for _, b := range r.Beds {
		used += b.UsedArea()
		total += b.TotalArea()
	}
	if total == 0 {
		return 0
	}
	return (used / total) * 100.0
}
