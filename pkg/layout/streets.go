package layout

import (
	"fmt"
	"math"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/rng"
)

// Road widths in meters by class.
const (
	highwayWidth  = 8.0
	townRoadWidth = 5.0
	dirtRoadWidth = 3.0

	webRoadWidth = 4.0 // organic cross-streets are narrower lanes
)

// plazaRadius keeps the innermost meters street-free in organic and
// mixed layouts, so the focal building always has room at the center.
const plazaRadius = 12.0

// BuildStreets generates the street network for one settlement. Grid
// and mixed layouts also return the block pool that placement samples
// from; organic layouts return a nil pool. Hamlets get entry points
// only, never internal streets, regardless of layout.
func BuildStreets(src *rng.Source, p Params) ([]Street, *BlockPool) {
	if p.Size == catalog.SizeHamlet {
		return nil, nil
	}
	switch p.Layout {
	case TypeGrid:
		return buildGrid(src, p)
	case TypeMixed:
		return buildMixed(src, p)
	default:
		return buildOrganic(src, p), nil
	}
}

// buildOrganic walks 5 to 9 radial streets outward from the center,
// wobbling the heading a little each step, then ties adjacent radials
// together with curved cross-streets at three distance bands.
func buildOrganic(src *rng.Source, p Params) []Street {
	count := 5 + src.IntN(5)
	radials := make([]Street, 0, count)
	for i := 0; i < count; i++ {
		heading := float64(i)/float64(count)*2*math.Pi + src.Range(-0.2, 0.2)
		pts := walkRadial(src, p, heading)
		if len(pts) < 2 {
			continue
		}
		radials = append(radials, Street{
			ID:     fmt.Sprintf("st_%s_r%d", p.ID, i),
			Points: pts,
			Width:  townRoadWidth,
			Class:  catalog.RoadTown,
		})
	}
	return append(radials, buildWeb(src, p, radials)...)
}

// walkRadial steps outward as a biased random walk in angle, starting
// at the plaza edge rather than the center itself and truncating early
// when a step lands on water or steep ground.
func walkRadial(src *rng.Source, p Params, heading float64) []geo.Point2D {
	const step = 12.0
	start := p.Center.Add(geo.Unit(heading).Scale(plazaRadius))
	pts := []geo.Point2D{start}
	pos := start
	for traveled := step; traveled <= p.Radius-plazaRadius; traveled += step {
		heading += src.Range(-0.25, 0.25)
		next := pos.Add(geo.Unit(heading).Scale(step))
		if p.Terrain.Blocked(next) {
			break
		}
		pts = append(pts, next)
		pos = next
	}
	if len(pts) < 2 {
		return nil
	}
	return pts
}

// buildWeb connects points on adjacent radials at increasing distance
// bands. Each connection bows outward through an offset midpoint so the
// network reads as lanes rather than concentric rings, and roughly one
// in seven candidate connections is skipped outright.
func buildWeb(src *rng.Source, p Params, radials []Street) []Street {
	if len(radials) < 2 {
		return nil
	}
	bands := []float64{0.3, 0.55, 0.8}
	var webs []Street
	n := 0
	for _, band := range bands {
		for i := range radials {
			if src.Prob(0.15) {
				continue
			}
			a := radials[i].Polyline()
			b := radials[(i+1)%len(radials)].Polyline()
			start := a.PointAt(band + src.Range(-0.08, 0.08))
			end := b.PointAt(band + src.Range(-0.08, 0.08))
			if start.Distance(end) < 1.0 {
				continue
			}
			mid := geo.MidPoint(start, end)
			if out := mid.Sub(p.Center); out.Length() > 1e-9 {
				mid = mid.Add(out.Normalize().Scale(src.Range(2, 6)))
			}
			webs = append(webs, Street{
				ID:     fmt.Sprintf("st_%s_w%d", p.ID, n),
				Points: []geo.Point2D{start, mid, end},
				Width:  webRoadWidth,
				Class:  catalog.RoadTown,
			})
			n++
		}
	}
	return webs
}

// buildGrid lays two street families along the main axis and its
// perpendicular at a randomized block spacing. The zero-offset street
// of each family is a wider highway extended to the full radius so it
// reaches the perimeter entry points.
func buildGrid(src *rng.Source, p Params) ([]Street, *BlockPool) {
	spacing := src.Range(28, 42)
	streets := gridSegments(p, spacing)
	return streets, newBlockPool(src, p.Radius, spacing)
}

func gridSegments(p Params, spacing float64) []Street {
	u := geo.Unit(p.MainAxis)
	dirs := [2]geo.Point2D{u, u.Perp()}
	innerR := p.Radius * 0.9

	var streets []Street
	n := 0
	for fam, dir := range dirs {
		off := dirs[1-fam]
		kmax := int(innerR / spacing)
		for k := -kmax; k <= kmax; k++ {
			r := innerR
			width := townRoadWidth
			class := catalog.RoadTown
			if k == 0 {
				r = p.Radius
				width = highwayWidth
				class = catalog.RoadHighway
			}

			base := p.Center.Add(off.Scale(float64(k) * spacing))
			hits := geo.LineCircleIntersections(
				base.Sub(dir.Scale(2*p.Radius)),
				base.Add(dir.Scale(2*p.Radius)),
				p.Center, r,
			)
			// Tangent lines yield a degenerate chord; skip them.
			if len(hits) != 2 || hits[0].Distance(hits[1]) < 1.0 {
				continue
			}
			if p.Terrain.Blocked(geo.MidPoint(hits[0], hits[1])) {
				continue
			}
			streets = append(streets, Street{
				ID:     fmt.Sprintf("st_%s_g%d", p.ID, n),
				Points: hits,
				Width:  width,
				Class:  class,
			})
			n++
		}
	}
	return streets
}

// buildMixed nests an organic core inside a grid skirt: radial streets
// confined to an inner core, an explicit ring road at the core
// boundary, and grid families across the full radius that only emit
// the runs falling outside the core.
func buildMixed(src *rng.Source, p Params) ([]Street, *BlockPool) {
	coreR := p.Radius * 0.35

	core := p
	core.Radius = coreR
	streets := buildOrganic(src, core)

	ring := geo.ApproximateCircle(p.Center, coreR, 20)
	streets = append(streets, Street{
		ID:     fmt.Sprintf("st_%s_ring", p.ID),
		Points: append(ring.Vertices, ring.Vertices[0]),
		Width:  townRoadWidth,
		Class:  catalog.RoadTown,
	})

	spacing := src.Range(28, 42)
	streets = append(streets, mixedSegments(p, spacing, coreR)...)
	return streets, newBlockPool(src, p.Radius, spacing)
}

// mixedSegments walks each grid line in fixed steps and breaks it into
// runs whenever it dips inside the core or onto blocked terrain. Every
// run of at least two points becomes its own street.
func mixedSegments(p Params, spacing, coreR float64) []Street {
	const step = 8.0
	u := geo.Unit(p.MainAxis)
	dirs := [2]geo.Point2D{u, u.Perp()}
	outerR := p.Radius * 0.9

	var streets []Street
	n := 0
	var run []geo.Point2D
	flush := func() {
		if len(run) >= 2 {
			pts := make([]geo.Point2D, len(run))
			copy(pts, run)
			streets = append(streets, Street{
				ID:     fmt.Sprintf("st_%s_m%d", p.ID, n),
				Points: pts,
				Width:  townRoadWidth,
				Class:  catalog.RoadTown,
			})
			n++
		}
		run = run[:0]
	}

	for fam, dir := range dirs {
		off := dirs[1-fam]
		kmax := int(outerR / spacing)
		for k := -kmax; k <= kmax; k++ {
			base := p.Center.Add(off.Scale(float64(k) * spacing))
			for s := -p.Radius; s <= p.Radius; s += step {
				pt := base.Add(dir.Scale(s))
				d := pt.Distance(p.Center)
				if d > outerR || d < coreR+2 || p.Terrain.Blocked(pt) {
					flush()
					continue
				}
				run = append(run, pt)
			}
			flush()
		}
	}
	return streets
}
