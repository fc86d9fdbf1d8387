// Package cutter abstracts the external geometry operations the pipeline
// delegates: carving dovetail joints and splitting composite meshes into
// connected components. Implementations invoke external tools against
// files in a scoped temporary directory; a native geometry kernel could
// be substituted behind the same interfaces without touching the
// decomposition or packing logic.
package cutter

import "github.com/naggie/turbojigsaw/internal/mesh"

// MeshCutter carves a dovetail tooth/socket pair across a part.
//
// The cut runs across the full given length at horizontal offset y,
// centered on the cut region; height is the region height. The returned
// part replaces the input, which must not be reused. The call blocks
// until the cut completes; a tool failure aborts with an error and no
// partial result.
type MeshCutter interface {
	Cut(part *mesh.Part, y, length, height float64) (*mesh.Part, error)
}

// MeshSeparator splits a composite mesh into one part per connected
// component, leaving nested islands to the external tool's judgement.
type MeshSeparator interface {
	Separate(part *mesh.Part) ([]*mesh.Part, error)
}
