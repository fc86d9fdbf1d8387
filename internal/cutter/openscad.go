package cutter

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hschendel/stl"
	"github.com/naggie/turbojigsaw/internal/mesh"
	"github.com/naggie/turbojigsaw/internal/model"
)

// scadTemplate subtracts a dovetail tooth strip from an imported mesh.
// teeth_cut_3d(length, height) comes from the dovetail library.
const scadTemplate = `$fn=128;
use <%s>;
difference() {
    import("%s");
    translate([%g, %g, 0]) teeth_cut_3d(%g, %g);
}
`

// OpenSCAD implements MeshCutter by rendering a generated .scad file
// with an external OpenSCAD process.
type OpenSCAD struct {
	// Command is the OpenSCAD invocation; the .scad file and -o <output>
	// are appended.
	Command []string
	// DovetailLib is the path to the library providing teeth_cut_3d().
	DovetailLib string
}

var _ MeshCutter = (*OpenSCAD)(nil)

// NewOpenSCAD builds a cutter from the configured command line.
func NewOpenSCAD(cfg model.Config) *OpenSCAD {
	return &OpenSCAD{Command: cfg.OpenSCAD, DovetailLib: cfg.DovetailLib}
}

// Cut carves a dovetail across the part at offset y. The intermediate
// files live in a temporary directory that is removed whether or not
// the external process succeeds.
func (c *OpenSCAD) Cut(part *mesh.Part, y, length, height float64) (*mesh.Part, error) {
	if len(c.Command) == 0 {
		return nil, fmt.Errorf("no OpenSCAD command configured")
	}

	tmpdir, err := os.MkdirTemp("", "turbojigsaw-cut-")
	if err != nil {
		return nil, fmt.Errorf("create working dir: %w", err)
	}
	defer os.RemoveAll(tmpdir)

	inputSTL := filepath.Join(tmpdir, "in.stl")
	outputSTL := filepath.Join(tmpdir, "out.stl")
	scadFile := filepath.Join(tmpdir, "in.scad")

	if err := part.Save(inputSTL); err != nil {
		return nil, err
	}

	scad := fmt.Sprintf(scadTemplate, c.DovetailLib, inputSTL, length/2, y, length, height)
	if err := os.WriteFile(scadFile, []byte(scad), 0644); err != nil {
		return nil, fmt.Errorf("write scad file: %w", err)
	}

	args := append(append([]string{}, c.Command[1:]...), scadFile, "-o", outputSTL)
	cmd := exec.Command(c.Command[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("openscad dovetail cut at y=%g: %w", y, err)
	}

	solid, err := stl.ReadFile(outputSTL)
	if err != nil {
		return nil, fmt.Errorf("read cut result: %w", err)
	}
	return part.WithSolid(solid), nil
}
