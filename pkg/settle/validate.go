package settle

import (
	"fmt"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/layout"
	"github.com/duxbuse/townsmith/pkg/validation"
)

// ValidateSettlement re-checks a generated settlement against the
// structural invariants the pipeline is supposed to guarantee: street
// polylines with at least two points and no zero-length segments, no
// padded footprint overlaps, street clearance, bounds containment,
// the entry-point count range, and the hamlet street exception.
// Violations are aggregated per kind with a count, not reported per
// offending pair. A nil catalog uses the built-in default.
func ValidateSettlement(s *Settlement, cat *catalog.Catalog, bounds *geo.Rect) *validation.Report {
	report := validation.NewReport()
	if s == nil {
		report.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: "settlement is nil",
			Path:    "settlement",
		})
		return report
	}
	if cat == nil {
		cat = catalog.Default()
	}

	if s.ID == "" {
		report.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: "settlement has no id",
			Path:    "settlement.id",
		})
	}
	if s.Name == "" {
		report.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: "settlement has no name",
			Path:    "settlement.name",
		})
	}

	validateStreets(s, report)
	validateBuildings(s, bounds, report)
	validateEntries(s, cat, report)

	if s.Size == catalog.SizeHamlet && len(s.Streets) > 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelPlacement,
			Message:     "hamlets never receive internal streets",
			Path:        s.ID + ".streets",
			ActualValue: len(s.Streets),
			Expected:    "0 streets",
		})
	}
	if len(s.Buildings) > s.Stats.Target {
		report.AddError(validation.Result{
			Level:       validation.LevelPlacement,
			Message:     "placed more buildings than the target count",
			Path:        s.ID + ".buildings",
			ActualValue: len(s.Buildings),
			Expected:    fmt.Sprintf("at most %d", s.Stats.Target),
		})
	}
	return report
}

func validateStreets(s *Settlement, report *validation.Report) {
	short := 0
	degenerate := 0
	for _, st := range s.Streets {
		if len(st.Points) < 2 {
			short++
			continue
		}
		for i := 1; i < len(st.Points); i++ {
			if st.Points[i-1].Distance(st.Points[i]) < 1e-9 {
				degenerate++
			}
		}
	}
	if short > 0 {
		report.AddError(validation.Result{
			Level:    validation.LevelSpatial,
			Message:  fmt.Sprintf("%d streets have fewer than 2 points", short),
			Path:     s.ID + ".streets",
			Expected: "every polyline has at least 2 points",
			Count:    short,
		})
	}
	if degenerate > 0 {
		report.AddError(validation.Result{
			Level:    validation.LevelSpatial,
			Message:  fmt.Sprintf("%d zero-length street segments", degenerate),
			Path:     s.ID + ".streets",
			Expected: "no zero-length segments",
			Count:    degenerate,
		})
	}
}

func validateBuildings(s *Settlement, bounds *geo.Rect, report *validation.Report) {
	pad := layout.BuildingPad(s.Density)
	clearance := layout.StreetClearance(s.Density)

	overlaps := 0
	for i := range s.Buildings {
		for j := i + 1; j < len(s.Buildings); j++ {
			if layout.BuildingsOverlap(s.Buildings[i], s.Buildings[j], pad) {
				overlaps++
			}
		}
	}
	if overlaps > 0 {
		report.AddError(validation.Result{
			Level:    validation.LevelSpatial,
			Message:  fmt.Sprintf("%d building pairs overlap at padding %.2f", overlaps, pad),
			Path:     s.ID + ".buildings",
			Expected: "no padded footprint intersections",
			Count:    overlaps,
		})
	}

	blocked := 0
	for _, b := range s.Buildings {
		if layout.StreetBlocks(b, s.Streets, clearance) {
			blocked++
		}
	}
	if blocked > 0 {
		report.AddError(validation.Result{
			Level:    validation.LevelSpatial,
			Message:  fmt.Sprintf("%d buildings sit inside a street's swept width", blocked),
			Path:     s.ID + ".buildings",
			Expected: fmt.Sprintf("clearance %.2f from every street", clearance),
			Count:    blocked,
		})
	}

	if bounds != nil {
		outside := 0
		for _, b := range s.Buildings {
			mn, mx := b.Footprint().BoundingBox()
			if !bounds.ContainsRect(geo.Rect{Min: mn, Max: mx}) {
				outside++
			}
		}
		if outside > 0 {
			report.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("%d buildings extend past the map bounds", outside),
				Path:     s.ID + ".buildings",
				Expected: "every footprint inside the supplied bounds",
				Count:    outside,
			})
		}
	}
}

func validateEntries(s *Settlement, cat *catalog.Catalog, report *validation.Report) {
	sp, ok := cat.Sizes[s.Size]
	if !ok {
		report.AddError(validation.Result{
			Level:   validation.LevelSchema,
			Message: fmt.Sprintf("no size parameters for %q", s.Size),
			Path:    s.ID + ".size",
		})
		return
	}
	lo, hi := sp.ConnectionsMin, sp.ConnectionsMax
	if s.Layout == layout.TypeGrid {
		lo = min(lo, 4)
		hi = min(hi, 4)
	}
	if len(s.EntryPoints) < lo || len(s.EntryPoints) > hi {
		report.AddError(validation.Result{
			Level:       validation.LevelPlacement,
			Message:     "entry point count outside the configured connection range",
			Path:        s.ID + ".entry_points",
			ActualValue: len(s.EntryPoints),
			Expected:    fmt.Sprintf("%d..%d", lo, hi),
		})
	}
}
