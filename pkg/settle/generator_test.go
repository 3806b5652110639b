package settle

import (
	"math"
	"reflect"
	"testing"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/layout"
)

func TestGenerateDeterministic(t *testing.T) {
	req := Request{Size: catalog.SizeTown, Density: 1.2}
	a, _ := New(99, nil).Generate(req)
	b, _ := New(99, nil).Generate(req)
	if a == nil || b == nil {
		t.Fatal("generation failed")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and request produced different settlements")
	}
}

func TestReseedResetsCounterAndStream(t *testing.T) {
	g := New(5, nil)
	first, _ := g.Generate(Request{Size: catalog.SizeVillage})
	second, _ := g.Generate(Request{Size: catalog.SizeVillage})
	if first.ID == second.ID {
		t.Errorf("consecutive settlements share id %s", first.ID)
	}

	g.Reseed(5)
	again, _ := g.Generate(Request{Size: catalog.SizeVillage})
	if !reflect.DeepEqual(first, again) {
		t.Error("reseeding must reproduce the first settlement, id included")
	}
}

func TestGridTownScenario(t *testing.T) {
	g := New(42, nil)
	stl, report := g.Generate(Request{
		Position: geo.Pt(0, 0),
		Size:     catalog.SizeTown,
		Layout:   layout.TypeGrid,
	})
	if stl == nil {
		t.Fatalf("generation failed: %s", report.Summary)
	}
	if len(stl.Buildings) == 0 {
		t.Fatal("expected a populated town")
	}

	highways := 0
	for _, st := range stl.Streets {
		if st.Class == catalog.RoadHighway {
			highways++
		}
	}
	if highways != 2 {
		t.Errorf("highway count = %d, want exactly one per axis", highways)
	}

	if !stl.Stats.FocalPlaced {
		t.Fatal("grid town should place its town hall")
	}
	focal := stl.Buildings[0]
	if focal.Subtype != "town_hall" {
		t.Errorf("focal = %s, want town_hall", focal.Subtype)
	}
	if d := focal.Position.Distance(stl.Position); d > stl.Radius*0.35 {
		t.Errorf("focal sits %.1f from center, want near center", d)
	}

	clearance := layout.StreetClearance(stl.Density)
	for _, b := range stl.Buildings {
		if layout.StreetBlocks(b, stl.Streets, clearance) {
			t.Errorf("building %s overlaps a street", b.ID)
		}
	}
}

func TestHamletScenario(t *testing.T) {
	g := New(7, nil)
	stl, report := g.Generate(Request{Size: catalog.SizeHamlet, Layout: layout.TypeOrganic})
	if stl == nil {
		t.Fatalf("generation failed: %s", report.Summary)
	}
	if len(stl.Streets) != 0 {
		t.Errorf("hamlet streets = %d, want none", len(stl.Streets))
	}
	sp := catalog.Default().Sizes[catalog.SizeHamlet]
	if n := len(stl.EntryPoints); n < sp.ConnectionsMin || n > sp.ConnectionsMax {
		t.Errorf("entry points = %d, want %d..%d", n, sp.ConnectionsMin, sp.ConnectionsMax)
	}
	for _, e := range stl.EntryPoints {
		if e.Road != catalog.RoadDirt {
			t.Errorf("hamlet entry road = %s, want dirt", e.Road)
		}
	}

	if !stl.Stats.FocalPlaced {
		t.Fatal("a hamlet on open ground must get its chapel")
	}
	chapel := stl.Buildings[0]
	if chapel.Subtype != "chapel" {
		t.Errorf("focal = %s, want chapel", chapel.Subtype)
	}
	if chapel.Position != stl.Position {
		t.Errorf("chapel at %+v, want the settlement position %+v", chapel.Position, stl.Position)
	}
}

func TestDensityScaling(t *testing.T) {
	base, _ := New(11, nil).Generate(Request{Size: catalog.SizeVillage})
	dense, _ := New(11, nil).Generate(Request{Size: catalog.SizeVillage, Density: 2.0})
	if base == nil || dense == nil {
		t.Fatal("generation failed")
	}

	if dense.Stats.Target != 2*base.Stats.Target {
		t.Errorf("dense target = %d, want %d (linear in density)", dense.Stats.Target, 2*base.Stats.Target)
	}
	if ratio := dense.Radius / base.Radius; math.Abs(ratio-math.Sqrt2) > 1e-9 {
		t.Errorf("radius ratio = %.4f, want sqrt(2) (sub-linear in density)", ratio)
	}
	if got := dense.Stats.Placed + dense.Stats.Dropped + dense.Stats.Skipped; got != dense.Stats.Target {
		t.Errorf("placed+dropped+skipped = %d, want target %d", got, dense.Stats.Target)
	}
	if dense.Stats.Dropped >= dense.Stats.Target {
		t.Errorf("dropped %d of %d, the search degraded to nothing", dense.Stats.Dropped, dense.Stats.Target)
	}
}

func TestQuotaConservation(t *testing.T) {
	for _, size := range catalog.SizeClasses {
		stl, report := New(17, nil).Generate(Request{Size: size})
		if stl == nil {
			t.Fatalf("generation failed for %s: %s", size, report.Summary)
		}
		sum := 0
		for _, q := range stl.Stats.Quotas {
			sum += q.Count
		}
		if sum != stl.Stats.Target {
			t.Errorf("%s: quota sum = %d, want target %d", size, sum, stl.Stats.Target)
		}
	}
}

func TestPlacementShortfallReported(t *testing.T) {
	bounds := geo.RectAround(geo.Pt(0, 0), 6)
	g := New(3, nil)
	stl, report := g.Generate(Request{Size: catalog.SizeVillage, Bounds: &bounds})
	if stl == nil {
		t.Fatalf("generation failed: %s", report.Summary)
	}
	if stl.Stats.Dropped == 0 {
		t.Fatal("a 12x12 bounding box must drop most of a village")
	}
	if !report.Valid {
		t.Error("shortfall is a warning, not an error")
	}
	if len(report.Warnings) == 0 {
		t.Fatal("shortfall must surface as a report warning")
	}
	if report.Warnings[0].Count != stl.Stats.Dropped {
		t.Errorf("warning count = %d, want %d", report.Warnings[0].Count, stl.Stats.Dropped)
	}
}

func TestEventsSurfaceShortfall(t *testing.T) {
	bounds := geo.RectAround(geo.Pt(0, 0), 6)
	g := New(3, nil)
	var events []Event
	g.Events = func(e Event) { events = append(events, e) }

	stl, _ := g.Generate(Request{Size: catalog.SizeVillage, Bounds: &bounds})
	if stl == nil {
		t.Fatal("generation failed")
	}
	kinds := map[EventKind]bool{}
	for _, e := range events {
		kinds[e.Kind] = true
		if e.Settlement != stl.ID {
			t.Errorf("event names settlement %q, want %q", e.Settlement, stl.ID)
		}
	}
	if !kinds[EventFocalSkipped] {
		t.Error("the church cannot fit a 12x12 box; expected a focal_skipped event")
	}
	if !kinds[EventPlacementFailed] {
		t.Error("expected a placement_failed event for the dropped buildings")
	}
}

func TestMainAxisOverride(t *testing.T) {
	axis := 0.75
	stl, _ := New(9, nil).Generate(Request{
		Size:     catalog.SizeTown,
		Layout:   layout.TypeGrid,
		MainAxis: &axis,
	})
	if stl == nil {
		t.Fatal("generation failed")
	}
	if stl.MainAxis != axis {
		t.Errorf("main axis = %v, want the requested %v", stl.MainAxis, axis)
	}
}

func TestGenerateRejectsUnknownSize(t *testing.T) {
	stl, report := New(1, nil).Generate(Request{Size: "metropolis"})
	if stl != nil {
		t.Fatal("unusable request must not produce a settlement")
	}
	if report.Valid || len(report.Errors) == 0 {
		t.Error("expected a schema error for the unknown size")
	}
}

func TestGenerateRejectsUnknownLayout(t *testing.T) {
	stl, report := New(1, nil).Generate(Request{Size: catalog.SizeVillage, Layout: "spiral"})
	if stl != nil {
		t.Fatal("unusable request must not produce a settlement")
	}
	if report.Valid || len(report.Errors) == 0 {
		t.Error("expected a schema error for the unknown layout")
	}
}
