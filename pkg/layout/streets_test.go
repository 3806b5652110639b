package layout

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/rng"
	"github.com/duxbuse/townsmith/pkg/terrain"
)

// allWater builds a terrain grid that blocks every point in a
// 400x400 m square around the origin.
func allWater() *terrain.Grid {
	g := &terrain.Grid{CellSize: 20, Origin: geo.Pt(-200, -200)}
	for i := 0; i < 20; i++ {
		row := make([]terrain.Cell, 20)
		for j := range row {
			row[j] = terrain.Cell{Type: terrain.CellWater, Elevation: 0.1}
		}
		g.Cells = append(g.Cells, row)
	}
	return g
}

func checkSegments(t *testing.T, streets []Street) {
	t.Helper()
	for _, st := range streets {
		if len(st.Points) < 2 {
			t.Fatalf("street %s has %d points, want >= 2", st.ID, len(st.Points))
		}
		if st.Width <= 0 {
			t.Fatalf("street %s has width %v", st.ID, st.Width)
		}
		for i := 1; i < len(st.Points); i++ {
			if st.Points[i-1].Distance(st.Points[i]) < 1e-9 {
				t.Fatalf("street %s contains a zero-length segment", st.ID)
			}
		}
	}
}

func TestHamletHasNoStreets(t *testing.T) {
	for _, typ := range []Type{TypeOrganic, TypeGrid, TypeMixed} {
		src := rng.New(1)
		p := testParams(typ)
		p.Size = catalog.SizeHamlet
		streets, pool := BuildStreets(src, p)
		if len(streets) != 0 || pool != nil {
			t.Errorf("hamlet %s layout: got %d streets, pool %v", typ, len(streets), pool)
		}
	}
}

func TestOrganicStreets(t *testing.T) {
	src := rng.New(2)
	streets, pool := BuildStreets(src, testParams(TypeOrganic))
	if pool != nil {
		t.Error("organic layout should not build a block pool")
	}
	if len(streets) == 0 {
		t.Fatal("expected organic streets")
	}
	checkSegments(t, streets)

	radials := 0
	for _, st := range streets {
		if strings.Contains(st.ID, "_r") {
			radials++
		}
	}
	if radials < 5 || radials > 9 {
		t.Errorf("radial count = %d, want 5..9", radials)
	}

	// Radials start on the plaza edge and stay inside the radius.
	for _, st := range streets {
		if !strings.Contains(st.ID, "_r") {
			continue
		}
		if d := st.Points[0].Length(); math.Abs(d-plazaRadius) > 1e-9 {
			t.Errorf("radial %s starts %.2f from center, want %.2f", st.ID, d, plazaRadius)
		}
		for _, pt := range st.Points {
			if pt.Length() > 100+1e-9 {
				t.Errorf("radial %s leaves the radius at %+v", st.ID, pt)
			}
		}
	}
}

func TestOrganicOnWaterYieldsNoStreets(t *testing.T) {
	src := rng.New(2)
	p := testParams(TypeOrganic)
	p.Terrain = allWater()
	streets, _ := BuildStreets(src, p)
	if len(streets) != 0 {
		t.Errorf("expected all radials truncated on water, got %d streets", len(streets))
	}
}

func TestGridStreets(t *testing.T) {
	src := rng.New(4)
	p := testParams(TypeGrid)
	streets, pool := BuildStreets(src, p)
	if pool == nil || len(pool.Blocks) == 0 {
		t.Fatal("grid layout should build a populated block pool")
	}
	if pool.Spacing < 28 || pool.Spacing > 42 {
		t.Errorf("block spacing = %.1f, want 28..42", pool.Spacing)
	}
	if len(streets) == 0 {
		t.Fatal("expected grid streets")
	}
	checkSegments(t, streets)

	highways := 0
	for _, st := range streets {
		if len(st.Points) != 2 {
			t.Errorf("grid street %s has %d points, want 2", st.ID, len(st.Points))
		}
		if st.Class == catalog.RoadHighway {
			highways++
			if st.Width != highwayWidth {
				t.Errorf("highway width = %v, want %v", st.Width, highwayWidth)
			}
			// The zero-offset street spans the full diameter.
			if l := st.Polyline().Length(); math.Abs(l-200) > 0.1 {
				t.Errorf("highway %s length = %.1f, want 200", st.ID, l)
			}
		} else if st.Width != townRoadWidth {
			t.Errorf("street %s width = %v, want %v", st.ID, st.Width, townRoadWidth)
		}
	}
	if highways != 2 {
		t.Errorf("highway count = %d, want one per family", highways)
	}
}

func TestGridOnWaterDiscardsSegments(t *testing.T) {
	src := rng.New(4)
	p := testParams(TypeGrid)
	p.Terrain = allWater()
	streets, pool := BuildStreets(src, p)
	if len(streets) != 0 {
		t.Errorf("expected all segments discarded on water, got %d", len(streets))
	}
	if pool == nil {
		t.Error("pool should be built regardless of terrain")
	}
}

func TestMixedStreets(t *testing.T) {
	src := rng.New(6)
	p := testParams(TypeMixed)
	streets, pool := BuildStreets(src, p)
	if pool == nil || len(pool.Blocks) == 0 {
		t.Fatal("mixed layout should build a populated block pool")
	}
	if len(streets) == 0 {
		t.Fatal("expected mixed streets")
	}
	checkSegments(t, streets)

	coreR := p.Radius * 0.35
	var hasRing, hasRadial, hasGridRun bool
	for _, st := range streets {
		switch {
		case strings.HasSuffix(st.ID, "_ring"):
			hasRing = true
			for _, pt := range st.Points {
				if math.Abs(pt.Length()-coreR) > 0.1 {
					t.Errorf("ring point %+v is off the core boundary", pt)
				}
			}
		case strings.Contains(st.ID, "_r"):
			hasRadial = true
			for _, pt := range st.Points {
				if pt.Length() > coreR+1e-9 {
					t.Errorf("core radial leaves the core at %+v", pt)
				}
			}
		case strings.Contains(st.ID, "_m"):
			hasGridRun = true
			for _, pt := range st.Points {
				if pt.Length() < coreR {
					t.Errorf("grid run dips inside the core at %+v", pt)
				}
			}
		}
	}
	if !hasRing || !hasRadial || !hasGridRun {
		t.Errorf("mixed layout missing parts: ring=%v radial=%v grid=%v", hasRing, hasRadial, hasGridRun)
	}
}

func TestBuildStreetsDeterministic(t *testing.T) {
	for _, typ := range []Type{TypeOrganic, TypeGrid, TypeMixed} {
		a, poolA := BuildStreets(rng.New(11), testParams(typ))
		b, poolB := BuildStreets(rng.New(11), testParams(typ))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s streets differ across identical seeds", typ)
		}
		if !reflect.DeepEqual(poolA, poolB) {
			t.Errorf("%s pools differ across identical seeds", typ)
		}
	}
}
