package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/layout"
	"github.com/duxbuse/townsmith/pkg/rng"
	"github.com/duxbuse/townsmith/pkg/settle"
	"github.com/duxbuse/townsmith/pkg/terrain"
)

type generateOptions struct {
	seed    int64
	size    string
	layout  string
	density float64
	x, z    float64
	catalog string
	terrain bool
	profile bool
}

type mapOptions struct {
	seed    int64
	count   int
	extent  float64
	minDist float64
	catalog string
	terrain bool
	out     string
	profile bool
}

// loadCatalog returns the built-in catalog for an empty path, else the
// loaded and validated file.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if report := cat.Validate(); !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("catalog has validation errors")
	}
	return cat, nil
}

func runGenerate(opts generateOptions) error {
	if opts.profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	cat, err := loadCatalog(opts.catalog)
	if err != nil {
		return err
	}

	req := settle.Request{
		Position: geo.Pt(opts.x, opts.z),
		Size:     catalog.SizeClass(opts.size),
		Layout:   layout.Type(opts.layout),
		Density:  opts.density,
	}
	if opts.terrain {
		req.Terrain = terrain.Synthesize(terrain.SynthConfig{Seed: opts.seed, River: true})
	}

	g := settle.New(opts.seed, cat)
	g.Events = func(e settle.Event) {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", e.Kind, e.Message)
	}

	stl, report := g.Generate(req)
	if stl == nil {
		printValidationReport(report)
		return fmt.Errorf("request rejected")
	}

	output := map[string]any{
		"settlement": stl,
		"validation": report,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runMap(opts mapOptions) error {
	if opts.profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	cat, err := loadCatalog(opts.catalog)
	if err != nil {
		return err
	}

	var grid *terrain.Grid
	if opts.terrain {
		cells := int(opts.extent * 2 / 16)
		grid = terrain.Synthesize(terrain.SynthConfig{
			Seed:   opts.seed,
			Width:  cells,
			Height: cells,
			River:  true,
		})
	}

	settlements := scatterSettlements(opts, cat, grid)
	sum := settle.Summarize(settlements)
	printMapSummary(sum)

	if len(settlements) < opts.count {
		fmt.Fprintf(os.Stderr, "placed %d of %d settlements before running out of spaced positions\n",
			len(settlements), opts.count)
	}

	if opts.out != "" {
		output := map[string]any{
			"settlements": settlements,
			"buildings":   settle.FlattenBuildings(settlements),
			"streets":     settle.FlattenStreets(settlements),
			"summary":     sum,
		}
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			return fmt.Errorf("writing map JSON: %w", err)
		}
		fmt.Printf("\nWrote %s\n", opts.out)
	}
	return nil
}

// scatterSettlements draws positions inside the map square, keeping
// the configured spacing between centers. Attempts are bounded so a
// crowded map degrades to fewer settlements instead of spinning.
func scatterSettlements(opts mapOptions, cat *catalog.Catalog, grid *terrain.Grid) []*settle.Settlement {
	src := rng.New(opts.seed)
	g := settle.New(opts.seed, cat)
	g.Events = func(e settle.Event) {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", e.Kind, e.Settlement, e.Message)
	}
	bounds := geo.RectAround(geo.Pt(0, 0), opts.extent)

	var settlements []*settle.Settlement
	var centers []geo.Point2D
	maxAttempts := opts.count * 30
	for attempt := 0; attempt < maxAttempts && len(settlements) < opts.count; attempt++ {
		pos := geo.Pt(src.Range(-opts.extent, opts.extent), src.Range(-opts.extent, opts.extent))
		spaced := true
		for _, c := range centers {
			if pos.Distance(c) < opts.minDist {
				spaced = false
				break
			}
		}
		if !spaced {
			continue
		}

		stl, _ := g.Generate(settle.Request{
			Position: pos,
			Size:     drawSize(src),
			Bounds:   &bounds,
			Terrain:  grid,
		})
		if stl == nil {
			continue
		}
		settlements = append(settlements, stl)
		centers = append(centers, pos)
	}
	return settlements
}

// drawSize weights the mix toward small settlements, the way a region
// holds many hamlets per city.
func drawSize(src *rng.Source) catalog.SizeClass {
	v := src.Next()
	switch {
	case v < 0.35:
		return catalog.SizeHamlet
	case v < 0.75:
		return catalog.SizeVillage
	case v < 0.95:
		return catalog.SizeTown
	}
	return catalog.SizeCity
}

func runValidate(path string) error {
	cat := catalog.Default()
	if path != "" {
		var err error
		cat, err = catalog.Load(path)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}
	report := cat.Validate()

	// With a clean catalog, generate one settlement per size and
	// re-check the structural invariants end to end.
	if report.Valid {
		g := settle.New(1, cat)
		for _, size := range catalog.SizeClasses {
			stl, genReport := g.Generate(settle.Request{Size: size})
			report.Merge(genReport)
			if stl != nil {
				report.Merge(settle.ValidateSettlement(stl, cat, nil))
			}
		}
	}

	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runCatalog(path string) error {
	cat, err := loadCatalog(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cat)
}
