// Package settle assembles complete settlements: identity, streets,
// entry points and placed buildings, generated deterministically from
// a seed. A Generator owns its own rng.Source and id counter, so
// independent generators can run in parallel without any shared state.
package settle

import (
	"fmt"
	"math"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/layout"
	"github.com/duxbuse/townsmith/pkg/rng"
	"github.com/duxbuse/townsmith/pkg/terrain"
	"github.com/duxbuse/townsmith/pkg/validation"
)

// Request describes one settlement to generate. Zero values mean
// "decide for me": an empty Layout draws from the size's weights, a
// nil MainAxis draws a random orientation, a non-positive Density
// defaults to 1.0. Bounds and Terrain are optional clipping inputs.
type Request struct {
	Position geo.Point2D       `json:"position"`
	Size     catalog.SizeClass `json:"size"`
	Layout   layout.Type       `json:"layout,omitempty"`
	MainAxis *float64          `json:"main_axis,omitempty"`
	Density  float64           `json:"density,omitempty"`
	Bounds   *geo.Rect         `json:"bounds,omitempty"`
	Terrain  *terrain.Grid     `json:"-"`

	// Water is carried for callers that track water as shapes rather
	// than cells. Placement does not consult it yet.
	Water []terrain.WaterBody `json:"water,omitempty"`
}

// Settlement is the populated record a Generate call hands back.
// Identity fields are fixed at construction; the geometry lists are
// filled by the pipeline and never mutated afterwards. Ownership
// transfers to the caller on return.
type Settlement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Size        catalog.SizeClass   `json:"size"`
	Layout      layout.Type         `json:"layout"`
	Position    geo.Point2D         `json:"position"`
	Radius      float64             `json:"radius"`
	Bounds      geo.Rect            `json:"bounds"`
	MainAxis    float64             `json:"main_axis"`
	Density     float64             `json:"density"`
	EntryPoints []layout.EntryPoint `json:"entry_points"`
	Streets     []layout.Street     `json:"streets"`
	Buildings   []layout.Building   `json:"buildings"`
	Pool        *layout.BlockPool   `json:"block_pool,omitempty"`
	Stats       layout.Stats        `json:"stats"`
}

// Generator produces settlements from a seeded stream. It owns the
// settlement id counter; Reseed resets both so a reseeded generator
// reproduces its output from the start.
type Generator struct {
	src *rng.Source
	cat *catalog.Catalog

	nextID int

	// Events, when set, receives generation diagnostics.
	Events EventSink
}

// New returns a generator over the given catalog. A nil catalog uses
// the built-in default.
func New(seed int64, cat *catalog.Catalog) *Generator {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Generator{src: rng.New(seed), cat: cat}
}

// Reseed resets the draw stream and the settlement id counter.
func (g *Generator) Reseed(seed int64) {
	g.src.Reseed(seed)
	g.nextID = 0
}

// Generate builds one settlement. The report carries an error and a
// nil settlement only for unusable requests; placement shortfall and
// other degradations come back as warnings on a valid settlement.
func (g *Generator) Generate(req Request) (*Settlement, *validation.Report) {
	report := validation.NewReport()

	params, ok := g.cat.Sizes[req.Size]
	if !ok {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("no size parameters for %q", req.Size),
			Path:        "request.size",
			ActualValue: string(req.Size),
			Expected:    "hamlet, village, town or city",
		})
		return nil, report
	}
	if !req.Layout.Known() {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("unknown layout type %q", req.Layout),
			Path:        "request.layout",
			ActualValue: string(req.Layout),
			Expected:    "organic, grid, mixed or empty",
		})
		return nil, report
	}

	density := req.Density
	if density <= 0 {
		density = 1.0
	}

	id := fmt.Sprintf("stl_%d", g.nextID)
	g.nextID++
	name := synthesizeName(g.src, req.Size)

	// Density scales the radius sub-linearly and the building count
	// linearly, so denser settlements pack rather than sprawl.
	radius := g.src.Range(params.RadiusMin, params.RadiusMax) * math.Sqrt(density)
	base := params.BuildingsMin + g.src.IntN(params.BuildingsMax-params.BuildingsMin+1)
	target := int(math.Round(float64(base) * density))

	layoutType := req.Layout
	if layoutType == layout.TypeAuto {
		layoutType = layout.ChooseType(g.src, params.Layout)
	}
	mainAxis := g.src.Angle()
	if req.MainAxis != nil {
		mainAxis = *req.MainAxis
	}

	p := layout.Params{
		ID:       id,
		Center:   req.Position,
		Radius:   radius,
		MainAxis: mainAxis,
		Size:     req.Size,
		Layout:   layoutType,
		Density:  density,
		Target:   target,
		Bounds:   req.Bounds,
		Terrain:  req.Terrain,
	}

	streets, pool := layout.BuildStreets(g.src, p)
	entries := layout.DeriveEntryPoints(g.src, p, params)
	buildings, stats := layout.PlaceBuildings(g.src, p, g.cat, streets, pool)

	g.report(id, req.Size, stats, report)

	stl := &Settlement{
		ID:          id,
		Name:        name,
		Size:        req.Size,
		Layout:      layoutType,
		Position:    req.Position,
		Radius:      radius,
		Bounds:      geo.RectAround(req.Position, radius),
		MainAxis:    mainAxis,
		Density:     density,
		EntryPoints: entries,
		Streets:     streets,
		Buildings:   buildings,
		Pool:        pool,
		Stats:       stats,
	}
	report.AddInfo(validation.Result{
		Level:   validation.LevelPlacement,
		Message: fmt.Sprintf("%s %q: %d/%d buildings, %d streets, %d entry points", req.Size, name, stats.Placed, stats.Target, len(streets), len(entries)),
		Path:    id,
	})
	return stl, report
}

// report converts placement accounting into events and report entries.
// Failures are aggregated per settlement, one entry per kind, never
// one per building.
func (g *Generator) report(id string, size catalog.SizeClass, stats layout.Stats, report *validation.Report) {
	if stats.FocalMissing {
		g.emit(Event{
			Kind:       EventSpecMissing,
			Settlement: id,
			Message:    fmt.Sprintf("catalog has no focal spec usable at size %s", size),
		})
	}
	if !stats.FocalPlaced && !stats.FocalMissing {
		g.emit(Event{
			Kind:       EventFocalSkipped,
			Settlement: id,
			Message:    "focal building found no spot near the center",
		})
	}
	if stats.Skipped > 0 {
		g.emit(Event{
			Kind:       EventSpecMissing,
			Settlement: id,
			Message:    fmt.Sprintf("%d quota units had no eligible spec", stats.Skipped),
			Count:      stats.Skipped,
		})
	}
	if stats.Dropped > 0 {
		g.emit(Event{
			Kind:       EventPlacementFailed,
			Settlement: id,
			Message:    fmt.Sprintf("%d of %d buildings found no position", stats.Dropped, stats.Target),
			Count:      stats.Dropped,
		})
		report.AddWarning(validation.Result{
			Level:       validation.LevelPlacement,
			Message:     fmt.Sprintf("dropped %d of %d buildings after exhausting placement tiers", stats.Dropped, stats.Target),
			Path:        id + ".buildings",
			ActualValue: stats.Placed,
			Expected:    fmt.Sprintf("%d buildings", stats.Target),
			Count:       stats.Dropped,
		})
	}
}
