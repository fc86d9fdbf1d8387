// Package model holds the domain types shared across the pipeline:
// run configuration, placements and bed layouts.
package model

// Config holds the printer geometry and the external tool command lines.
// All lengths are in mm, matching the input mesh units.
type Config struct {
	// Bed footprint: the biggest rectangle the printer can actually use.
	BedWidth  float64 `json:"bed_width"`
	BedHeight float64 `json:"bed_height"`

	// Half of this is applied as an offset to each part, so adjacent
	// parts end up PartGap apart on the bed.
	PartGap float64 `json:"part_gap"`

	// Allowance for the dovetail tooth overhang. Reserved when counting
	// pieces so a tooth never gets clipped by a bed edge.
	ToothSize float64 `json:"tooth_size"`

	// External tool command lines. Arguments are appended to these.
	OpenSCAD    []string `json:"openscad"`
	PrusaSlicer []string `json:"prusa_slicer"`

	// Path to the OpenSCAD library providing teeth_cut_3d().
	DovetailLib string `json:"dovetail_lib"`
}

// DefaultConfig returns the built-in configuration: a Bambu Lab A1 Mini
// bed and the flatpak invocations for OpenSCAD and PrusaSlicer.
func DefaultConfig() Config {
	return Config{
		BedWidth:  180,
		BedHeight: 180,
		PartGap:   1,
		ToothSize: 5,
		OpenSCAD: []string{
			"flatpak", "run", "org.openscad.OpenSCAD//beta", "--backend=manifold",
		},
		PrusaSlicer: []string{
			"flatpak", "run", "--command=/app/bin/prusa-slicer", "com.prusa3d.PrusaSlicer",
		},
		DovetailLib: "lib/dovetail.scad",
	}
}
