package settle

import (
	"testing"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/layout"
)

func TestValidateGeneratedSettlements(t *testing.T) {
	for _, lt := range []layout.Type{layout.TypeOrganic, layout.TypeGrid, layout.TypeMixed} {
		g := New(23, nil)
		stl, report := g.Generate(Request{Size: catalog.SizeTown, Layout: lt})
		if stl == nil {
			t.Fatalf("generate %s failed: %s", lt, report.Summary)
		}
		if rep := ValidateSettlement(stl, nil, nil); !rep.Valid {
			t.Errorf("%s town fails its own invariants: %s", lt, rep.Summary)
			for _, e := range rep.Errors {
				t.Logf("  %s: %s", e.Path, e.Message)
			}
		}
	}
}

func TestValidateHonorsBounds(t *testing.T) {
	bounds := geo.RectAround(geo.Pt(0, 0), 500)
	g := New(29, nil)
	stl, _ := g.Generate(Request{Size: catalog.SizeVillage, Bounds: &bounds})
	if stl == nil {
		t.Fatal("generation failed")
	}
	if rep := ValidateSettlement(stl, nil, &bounds); !rep.Valid {
		t.Errorf("bounded generation escapes its bounds: %s", rep.Summary)
	}
}

func TestValidateCatchesViolations(t *testing.T) {
	g := New(23, nil)
	stl, _ := g.Generate(Request{Size: catalog.SizeVillage, Layout: layout.TypeOrganic})
	if stl == nil || len(stl.Buildings) < 2 {
		t.Fatal("need a populated settlement to corrupt")
	}

	stl.Name = ""
	stl.Buildings[1].Position = stl.Buildings[0].Position
	stl.Streets = append(stl.Streets, layout.Street{ID: "bad", Points: []geo.Point2D{geo.Pt(0, 0)}})
	stl.EntryPoints = nil

	rep := ValidateSettlement(stl, nil, nil)
	if rep.Valid {
		t.Fatal("corrupted settlement passed validation")
	}
	if len(rep.Errors) < 4 {
		t.Errorf("errors = %d, want name, overlap, street and entry findings", len(rep.Errors))
	}
}

func TestValidateNilSettlement(t *testing.T) {
	rep := ValidateSettlement(nil, nil, nil)
	if rep.Valid || len(rep.Errors) != 1 {
		t.Errorf("nil settlement: valid=%v errors=%d, want one error", rep.Valid, len(rep.Errors))
	}
}

func TestValidateHamletWithStreets(t *testing.T) {
	g := New(7, nil)
	stl, _ := g.Generate(Request{Size: catalog.SizeHamlet})
	if stl == nil {
		t.Fatal("generation failed")
	}
	stl.Streets = []layout.Street{{
		ID:     "st_fake",
		Points: []geo.Point2D{geo.Pt(0, 0), geo.Pt(10, 0)},
		Width:  5,
		Class:  catalog.RoadTown,
	}}
	rep := ValidateSettlement(stl, nil, nil)
	if rep.Valid {
		t.Error("a hamlet carrying streets must fail validation")
	}
}
