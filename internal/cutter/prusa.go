package cutter

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/naggie/turbojigsaw/internal/mesh"
	"github.com/naggie/turbojigsaw/internal/model"
)

// PrusaSlicer implements MeshSeparator using PrusaSlicer's --split mode,
// which writes one file per connected component next to the input.
type PrusaSlicer struct {
	// Command is the PrusaSlicer invocation; --split and the mesh file
	// are appended.
	Command []string
}

var _ MeshSeparator = (*PrusaSlicer)(nil)

// NewPrusaSlicer builds a separator from the configured command line.
func NewPrusaSlicer(cfg model.Config) *PrusaSlicer {
	return &PrusaSlicer{Command: cfg.PrusaSlicer}
}

// Separate splits the part into its connected components. Component
// parts are named <part>-1, <part>-2, ... in the tool's output order.
func (s *PrusaSlicer) Separate(part *mesh.Part) ([]*mesh.Part, error) {
	if len(s.Command) == 0 {
		return nil, fmt.Errorf("no PrusaSlicer command configured")
	}

	tmpdir, err := os.MkdirTemp("", "turbojigsaw-split-")
	if err != nil {
		return nil, fmt.Errorf("create working dir: %w", err)
	}
	defer os.RemoveAll(tmpdir)

	tmpfile := filepath.Join(tmpdir, "part.stl")
	if err := part.Save(tmpfile); err != nil {
		return nil, err
	}

	args := append(append([]string{}, s.Command[1:]...), "--split", tmpfile)
	cmd := exec.Command(s.Command[0], args...)
	cmd.Dir = tmpdir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("prusa-slicer split: %w", err)
	}

	names, err := splitOutputs(tmpdir)
	if err != nil {
		return nil, err
	}

	var pieces []*mesh.Part
	for i, name := range names {
		piece, err := mesh.FromFile(filepath.Join(tmpdir, name))
		if err != nil {
			return nil, err
		}
		piece.Name = fmt.Sprintf("%s-%d", part.Name, i+1)
		pieces = append(pieces, piece)
	}
	return pieces, nil
}

// splitOutputs lists the component files PrusaSlicer produced, sorted
// for a stable piece numbering.
func splitOutputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list split output: %w", err)
	}
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "part.stl_") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("prusa-slicer split produced no components in %s", dir)
	}
	sort.Strings(names)
	return names, nil
}
