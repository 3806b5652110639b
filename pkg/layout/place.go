package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/rng"
)

const (
	tierAAttempts    = 15  // randomized block/zone samples per building
	tierCAttempts    = 10  // desperation infill samples per building
	poolWindow       = 10  // block pool entries eligible for sampling
	maxBlockFailures = 6   // failures before a block leaves the pool
	walkStep         = 9.0 // tier B stride along street segments, meters
	smallArea        = 120.0
	alignLimit       = 45.0 // max distance to borrow a street's heading
)

// BuildingPad returns the minimum wall-to-wall gap between buildings
// at the given density. Past density ~2 the pad goes negative on
// purpose, permitting marginal overlap so dense rows pack tight.
func BuildingPad(density float64) float64 {
	return max(2.0-(density-1)*2.5, -0.75)
}

// StreetClearance returns the building-to-street buffer at the given
// density. Unlike BuildingPad it never goes below zero.
func StreetClearance(density float64) float64 {
	return max(1.5-(density-1)*1.5, 0)
}

// CategoryQuota is the number of buildings one category receives.
type CategoryQuota struct {
	Category catalog.Category `json:"category"`
	Count    int              `json:"count"`
}

// AllocateQuotas draws a share per category within its configured
// bounds and floors it against the target count. Rounding remainder is
// credited to residential so quotas sum exactly to target; if the
// shares oversubscribe the target, later categories are trimmed.
func AllocateQuotas(src *rng.Source, shares []catalog.CategoryShare, target int) []CategoryQuota {
	quotas := make([]CategoryQuota, len(shares))
	total := 0
	for i, share := range shares {
		count := int(src.Range(share.MinPct, share.MaxPct) * float64(target))
		quotas[i] = CategoryQuota{Category: share.Category, Count: count}
		total += count
	}

	rem := target - total
	if rem > 0 {
		for i := range quotas {
			if quotas[i].Category == catalog.CategoryResidential {
				quotas[i].Count += rem
				rem = 0
				break
			}
		}
	}
	for i := len(quotas) - 1; i >= 0 && rem < 0; i-- {
		cut := min(quotas[i].Count, -rem)
		quotas[i].Count -= cut
		rem += cut
	}
	return quotas
}

// Stats summarizes one placement run. Every quota unit ends up in
// exactly one of Placed, Dropped or Skipped, so the three always sum
// to the target for any composition with a residential share.
type Stats struct {
	Target       int             `json:"target"`
	Placed       int             `json:"placed"`
	Dropped      int             `json:"dropped"`
	Skipped      int             `json:"skipped"`
	FocalPlaced  bool            `json:"focal_placed"`
	FocalMissing bool            `json:"focal_missing"`
	Quotas       []CategoryQuota `json:"quotas"`
}

// PlaceBuildings runs quota allocation, focal placement and the
// three-tier search for every queued building spec. Buildings that fit
// nowhere are dropped and counted, never forced.
func PlaceBuildings(src *rng.Source, p Params, cat *catalog.Catalog, streets []Street, pool *BlockPool) ([]Building, Stats) {
	stats := Stats{Target: p.Target}
	if p.Target <= 0 {
		return nil, stats
	}

	quotas := AllocateQuotas(src, cat.Composition[p.Size], p.Target)
	stats.Quotas = append([]CategoryQuota(nil), quotas...)

	pad := BuildingPad(p.Density)
	clearance := StreetClearance(p.Density)
	placed := make([]Building, 0, p.Target)

	// The focal building goes at the center before anything else and
	// is charged against the quotas so the target is never exceeded.
	if focal, ok := cat.BySubtype(focalSubtype(p.Size, p.Layout)); ok && focal.AllowedIn(p.Size) {
		if b, fits := placeFocal(src, p, focal, placed, streets, pool, pad, clearance); fits {
			b.ID = buildingID(p.ID, len(placed))
			b.Settlement = p.ID
			placed = append(placed, b)
			stats.FocalPlaced = true
			consumeFocalQuota(quotas)
		}
	} else {
		stats.FocalMissing = true
	}

	// One spec per remaining quota unit, then big important structures
	// first: they claim space while the settlement is empty, generic
	// infill comes last.
	var queue []catalog.BuildingSpec
	for _, q := range quotas {
		if q.Count <= 0 {
			continue
		}
		eligible := cat.Eligible(q.Category, p.Size)
		if len(eligible) == 0 {
			stats.Skipped += q.Count
			continue
		}
		for i := 0; i < q.Count; i++ {
			queue = append(queue, rng.Pick(src, eligible))
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].Priority() != queue[j].Priority() {
			return queue[i].Priority() > queue[j].Priority()
		}
		return queue[i].Area() > queue[j].Area()
	})

	for _, spec := range queue {
		b, ok := placeOne(src, p, spec, placed, streets, pool, pad, clearance)
		if !ok {
			stats.Dropped++
			continue
		}
		b.ID = buildingID(p.ID, len(placed))
		b.Settlement = p.ID
		placed = append(placed, b)
	}

	stats.Placed = len(placed)
	return placed, stats
}

func buildingID(settlementID string, n int) string {
	return fmt.Sprintf("bldg_%s_%d", settlementID, n)
}

// focalSubtype names the landmark each settlement centers on.
func focalSubtype(size catalog.SizeClass, t Type) string {
	switch size {
	case catalog.SizeCity:
		return "cathedral"
	case catalog.SizeTown:
		if t == TypeGrid {
			return "town_hall"
		}
		return "church"
	case catalog.SizeVillage:
		return "church"
	}
	return "chapel"
}

// consumeFocalQuota charges the focal building to the civic quota,
// falling back to residential and then any nonzero quota, so the
// placed total never exceeds the target count.
func consumeFocalQuota(quotas []CategoryQuota) {
	for _, c := range []catalog.Category{catalog.CategoryCivic, catalog.CategoryResidential} {
		for i := range quotas {
			if quotas[i].Category == c && quotas[i].Count > 0 {
				quotas[i].Count--
				return
			}
		}
	}
	for i := range quotas {
		if quotas[i].Count > 0 {
			quotas[i].Count--
			return
		}
	}
}

// placeFocal tries the exact center first, then the four block centers
// adjacent to it when a pool exists, then three diagonal rings of
// offset candidates. Grid layouts align the focal to the main axis.
func placeFocal(src *rng.Source, p Params, spec catalog.BuildingSpec, placed []Building, streets []Street, pool *BlockPool, pad, clearance float64) (Building, bool) {
	var rot float64
	if p.Layout == TypeGrid {
		rot = p.MainAxis
	} else {
		rot = src.Angle()
	}

	candidates := []geo.Point2D{p.Center}
	if pool != nil && pool.Spacing > 0 {
		half := pool.Spacing / 2
		for i := 0; i < 4; i++ {
			ang := p.MainAxis + math.Pi/4 + float64(i)*math.Pi/2
			candidates = append(candidates, p.Center.Add(geo.Unit(ang).Scale(half*math.Sqrt2)))
		}
	}
	for ring := 1; ring <= 3; ring++ {
		r := float64(ring) * max(spec.Width, spec.Depth) * 0.75
		for i := 0; i < 4; i++ {
			ang := rot + math.Pi/4 + float64(i)*math.Pi/2 + src.Range(-0.3, 0.3)
			candidates = append(candidates, p.Center.Add(geo.Unit(ang).Scale(r)))
		}
	}

	for _, pos := range candidates {
		b := newBuilding(spec, pos, rot)
		if candidateFits(b, p, placed, streets, pad, clearance) {
			return b, true
		}
	}
	return Building{}, false
}

// placeOne tries the three placement tiers in order: randomized
// block-or-zone sampling, a walk along street edges, and for small
// homes and shops a final uniform scatter over the disk.
func placeOne(src *rng.Source, p Params, spec catalog.BuildingSpec, placed []Building, streets []Street, pool *BlockPool, pad, clearance float64) (Building, bool) {
	if b, ok := tierRandom(src, p, spec, placed, streets, pool, pad, clearance); ok {
		return b, true
	}
	if b, ok := tierStreetWalk(src, p, spec, placed, streets, pad, clearance); ok {
		return b, true
	}
	if smallSpec(spec) {
		if b, ok := tierInfill(src, p, spec, placed, streets, pad, clearance); ok {
			return b, true
		}
	}
	return Building{}, false
}

// smallSpec marks the buildings eligible for second-row and infill
// placement: compact housing and shops.
func smallSpec(spec catalog.BuildingSpec) bool {
	if spec.Area() >= smallArea {
		return false
	}
	return spec.Category == catalog.CategoryResidential ||
		spec.Category == catalog.CategoryCommercial
}

// tierRandom samples candidate positions. With a block pool available
// it leans on pooled blocks and their edge setbacks; otherwise it
// draws angle and radius inside the category's zone band.
func tierRandom(src *rng.Source, p Params, spec catalog.BuildingSpec, placed []Building, streets []Street, pool *BlockPool, pad, clearance float64) (Building, bool) {
	for attempt := 0; attempt < tierAAttempts; attempt++ {
		var b Building
		poolIdx := -1

		if pool != nil && len(pool.Blocks) > 0 {
			idx, ref, _ := pool.Sample(src, poolWindow)
			pos, rot, ok := blockEdgePosition(src, p, spec, pool, ref, clearance)
			if !ok {
				pool.Fail(idx)
				continue
			}
			b = newBuilding(spec, pos, rot)
			poolIdx = idx
		} else {
			inner, outer := zoneBand(spec.Category)
			r := p.Radius * src.Range(inner, outer)
			ang := src.Angle()
			pos := p.Center.Add(geo.Unit(ang).Scale(r))
			rot := ang + math.Pi/2 + src.Range(-0.2, 0.2)
			b = newBuilding(spec, pos, rot)
		}

		if candidateFits(b, p, placed, streets, pad, clearance) {
			return b, true
		}
		if poolIdx >= 0 {
			pool.Fail(poolIdx)
		}
	}
	return Building{}, false
}

// blockEdgePosition puts the building against one edge of a block,
// facing the street that runs along it. The setback keeps the near
// face strictly beyond half the street width plus clearance, so a
// building can never collide with its own block's street.
func blockEdgePosition(src *rng.Source, p Params, spec catalog.BuildingSpec, pool *BlockPool, ref BlockRef, clearance float64) (geo.Point2D, float64, bool) {
	half := pool.Spacing / 2
	setback := half - (townRoadWidth/2 + clearance + spec.Depth/2 + 0.5)
	maxAlong := half - (townRoadWidth/2 + clearance + spec.Width/2 + 0.5)
	if setback <= 0 || maxAlong <= 0 {
		return geo.Point2D{}, 0, false
	}

	edgeAngle := p.MainAxis + float64(src.IntN(4))*math.Pi/2
	along := src.Range(-maxAlong, maxAlong)

	center := pool.BlockCenter(ref, p.Center, p.MainAxis)
	pos := center.
		Add(geo.Unit(edgeAngle).Scale(setback)).
		Add(geo.Unit(edgeAngle + math.Pi/2).Scale(along))
	return pos, edgeAngle + math.Pi/2, true
}

// tierStreetWalk shuffles the streets, then walks each one in fixed
// steps trying both perpendicular sides in randomized order. Small
// homes and shops also try a second row one building depth further
// back.
func tierStreetWalk(src *rng.Source, p Params, spec catalog.BuildingSpec, placed []Building, streets []Street, pad, clearance float64) (Building, bool) {
	if len(streets) == 0 {
		return Building{}, false
	}
	rows := 1
	if smallSpec(spec) {
		rows = 2
	}

	for _, st := range rng.Shuffled(src, streets) {
		for i := 1; i < len(st.Points); i++ {
			seg := st.Points[i].Sub(st.Points[i-1])
			segLen := seg.Length()
			if segLen < 1e-9 {
				continue
			}
			dir := seg.Scale(1 / segLen)
			perp := dir.Perp()
			rot := dir.Angle()

			for s := 0.0; s <= segLen; s += walkStep {
				base := st.Points[i-1].Add(dir.Scale(s))
				sides := [2]float64{1, -1}
				if src.Prob(0.5) {
					sides[0], sides[1] = sides[1], sides[0]
				}
				for _, side := range sides {
					for row := 0; row < rows; row++ {
						offset := st.Width/2 + spec.Depth/2 + clearance + 0.5 + float64(row)*spec.Depth
						b := newBuilding(spec, base.Add(perp.Scale(side*offset)), rot)
						if candidateFits(b, p, placed, streets, pad, clearance) {
							return b, true
						}
					}
				}
			}
		}
	}
	return Building{}, false
}

// tierInfill scatters a small building uniformly over the disk (via
// the square-root radius transform), skipping water and aligning to
// the nearest street when one is close enough.
func tierInfill(src *rng.Source, p Params, spec catalog.BuildingSpec, placed []Building, streets []Street, pad, clearance float64) (Building, bool) {
	for attempt := 0; attempt < tierCAttempts; attempt++ {
		r := p.Radius * math.Sqrt(src.Next())
		pos := p.Center.Add(geo.Unit(src.Angle()).Scale(r))
		if p.Terrain.Water(pos) {
			continue
		}
		rot, ok := nearestStreetRotation(pos, streets)
		if !ok {
			rot = src.Angle()
		}
		b := newBuilding(spec, pos, rot)
		if candidateFits(b, p, placed, streets, pad, clearance) {
			return b, true
		}
	}
	return Building{}, false
}

// nearestStreetRotation borrows the heading of the closest street
// segment within alignLimit, judged by segment midpoint distance.
func nearestStreetRotation(pos geo.Point2D, streets []Street) (float64, bool) {
	best := alignLimit
	rot := 0.0
	found := false
	for _, st := range streets {
		for i := 1; i < len(st.Points); i++ {
			seg := st.Points[i].Sub(st.Points[i-1])
			if seg.Length() < 1e-9 {
				continue
			}
			d := pos.Distance(geo.MidPoint(st.Points[i-1], st.Points[i]))
			if d < best {
				best = d
				rot = seg.Angle()
				found = true
			}
		}
	}
	return rot, found
}

// candidateFits runs the bounds, building-overlap and street-clearance
// checks shared by every tier.
func candidateFits(b Building, p Params, placed []Building, streets []Street, pad, clearance float64) bool {
	if !insideBounds(b, p.Bounds) {
		return false
	}
	for i := range placed {
		if BuildingsOverlap(b, placed[i], pad) {
			return false
		}
	}
	return !StreetBlocks(b, streets, clearance)
}

// insideBounds requires the building's bounding box, inflated by a
// one-meter safety margin, to sit inside the map extent. A nil extent
// accepts everything.
func insideBounds(b Building, bounds *geo.Rect) bool {
	if bounds == nil {
		return true
	}
	mn, mx := b.Footprint().BoundingBox()
	return bounds.ContainsRect(geo.Rect{Min: mn, Max: mx}.Inflate(1.0))
}

// BuildingsOverlap reports whether two buildings' oriented footprints,
// each inflated by pad, intersect. It rejects the majority of pairs
// with a cheap axis-aligned distance check before running the
// separating-axis test. A negative pad permits that much wall overlap.
func BuildingsOverlap(a, b Building, pad float64) bool {
	limit := (a.Width+a.Depth+b.Width+b.Depth)/2 + 2*pad
	if math.Abs(a.Position.X-b.Position.X) > limit ||
		math.Abs(a.Position.Z-b.Position.Z) > limit {
		return false
	}
	fa := geo.Footprint(a.Position, a.Width+pad, a.Depth+pad, a.Rotation)
	fb := geo.Footprint(b.Position, b.Width+pad, b.Depth+pad, b.Rotation)
	return geo.PolygonsIntersect(fa, fb)
}

// StreetBlocks reports whether the building sits closer to any street
// segment than its minor half-extent plus half the street width plus
// the clearance.
func StreetBlocks(b Building, streets []Street, clearance float64) bool {
	minHalf := min(b.Width, b.Depth) / 2
	for _, st := range streets {
		limit := minHalf + st.Width/2 + clearance
		for i := 1; i < len(st.Points); i++ {
			if geo.SegmentDistance(b.Position, st.Points[i-1], st.Points[i]) < limit {
				return true
			}
		}
	}
	return false
}
