// turbojigsaw — prepare oversized models for a fixed-footprint printer.
//
// Parts that fit the bed are packed onto as few beds as possible; parts
// that don't are subdivided into dovetail-jointed segments that do.
//
// Build:
//
//	go build -o turbojigsaw ./cmd/turbojigsaw
//
// Usage:
//
//	turbojigsaw [flags] <stl file...> <output_dir>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/naggie/turbojigsaw/internal/cutter"
	"github.com/naggie/turbojigsaw/internal/engine"
	"github.com/naggie/turbojigsaw/internal/export"
	"github.com/naggie/turbojigsaw/internal/mesh"
	"github.com/naggie/turbojigsaw/internal/model"
	"github.com/naggie/turbojigsaw/internal/project"
)

func usage() {
	fmt.Printf("Usage: %s [flags] <stl file...> <output_dir/>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", project.DefaultConfigPath(), "path to config file")
	pdfPath := flag.String("pdf", "", "also write a bed layout PDF to this path")
	labelsPath := flag.String("labels", "", "also write QR part labels PDF to this path")
	xlsxPath := flag.String("xlsx", "", "also write an XLSX cut list to this path")
	split := flag.Bool("split", false, "separate jigsaw output into loose segments")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := project.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	outputDir := args[len(args)-1]
	inputs := append([]string{}, args[:len(args)-1]...)
	sort.Strings(inputs)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	decomposer := engine.NewDecomposer(cutter.NewOpenSCAD(cfg), cfg)
	separator := cutter.NewPrusaSlicer(cfg)

	var fitting []*mesh.Part
	var outputs []*mesh.Part

	for _, path := range inputs {
		part, err := mesh.FromFile(path)
		if err != nil {
			log.Fatalf("load part: %v", err)
		}

		if part.Fits(cfg.BedWidth, cfg.BedHeight, cfg.PartGap) {
			fitting = append(fitting, part)
			continue
		}

		fmt.Printf("Part %s does not fit, making jigsaw pieces...\n", part.Name)
		jigsaw, err := decomposer.MakeJigsaw(part)
		if err != nil {
			log.Fatalf("jigsaw %s: %v", part.Name, err)
		}

		if *split {
			pieces, err := separator.Separate(jigsaw)
			if err != nil {
				log.Fatalf("split %s: %v", jigsaw.Name, err)
			}
			outputs = append(outputs, pieces...)
		} else {
			outputs = append(outputs, jigsaw)
		}
	}

	var result model.PackResult
	if len(fitting) > 0 {
		beds, packed, err := engine.ArrangeToBeds(fitting, cfg)
		if err != nil {
			log.Fatalf("arrange beds: %v", err)
		}
		outputs = append(outputs, beds...)
		result = packed
	}

	for _, part := range outputs {
		if _, err := part.WriteFile(outputDir); err != nil {
			log.Fatalf("save %s: %v", part.Name, err)
		}
	}

	if *pdfPath != "" {
		if err := export.WritePDF(*pdfPath, result); err != nil {
			log.Fatalf("export pdf: %v", err)
		}
	}
	if *labelsPath != "" {
		if err := export.WriteLabels(*labelsPath, result); err != nil {
			log.Fatalf("export labels: %v", err)
		}
	}
	if *xlsxPath != "" {
		if err := export.WriteSummary(*xlsxPath, result); err != nil {
			log.Fatalf("export summary: %v", err)
		}
	}

	fmt.Printf("Saved %d part(s) to %s/\n", len(outputs), outputDir)
}
