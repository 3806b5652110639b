package layout

import (
	"math"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/rng"
)

// DeriveEntryPoints places the perimeter points where external roads
// meet the settlement. Grid layouts use the four cardinals of the main
// axis, clamped to the drawn connection count; everything else spreads
// entries around the circle with angular jitter.
func DeriveEntryPoints(src *rng.Source, p Params, sp catalog.SizeParams) []EntryPoint {
	count := sp.ConnectionsMin + src.IntN(sp.ConnectionsMax-sp.ConnectionsMin+1)
	if count < 1 {
		count = 1
	}
	road := roadClassFor(p.Size)

	if p.Layout == TypeGrid {
		if count > 4 {
			count = 4
		}
		points := make([]EntryPoint, 0, count)
		for i := 0; i < count; i++ {
			angle := p.MainAxis + float64(i)*math.Pi/2
			points = append(points, entryAt(p, angle, road))
		}
		return points
	}

	points := make([]EntryPoint, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i)/float64(count)*2*math.Pi + src.Range(-0.35, 0.35)
		points = append(points, entryAt(p, angle, road))
	}
	return points
}

func entryAt(p Params, angle float64, road catalog.RoadClass) EntryPoint {
	return EntryPoint{
		Position:  p.Center.Add(geo.Unit(angle).Scale(p.Radius)),
		Direction: angle,
		Road:      road,
	}
}

func roadClassFor(size catalog.SizeClass) catalog.RoadClass {
	switch size {
	case catalog.SizeCity, catalog.SizeTown:
		return catalog.RoadHighway
	case catalog.SizeVillage:
		return catalog.RoadTown
	}
	return catalog.RoadDirt
}
