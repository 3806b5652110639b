package geo

// Footprint returns the oriented rectangle for a structure centered at
// center with the given width, depth, and rotation in radians. Corners are
// in CCW order.
func Footprint(center Point2D, width, depth, rotation float64) Polygon {
	hw, hd := width/2, depth/2
	corners := [4]Point2D{
		{-hw, -hd},
		{hw, -hd},
		{hw, hd},
		{-hw, hd},
	}
	pts := make([]Point2D, 4)
	for i, c := range corners {
		pts[i] = c.Rotate(rotation).Add(center)
	}
	return Polygon{Vertices: pts}
}

// PolygonsIntersect reports whether two convex polygons overlap, using the
// separating axis test over both polygons' edge normals. Polygons that
// merely touch along an edge count as overlapping.
func PolygonsIntersect(a, b Polygon) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

// hasSeparatingAxis checks the edge normals of a for an axis on which the
// projections of a and b do not overlap.
func hasSeparatingAxis(a, b Polygon) bool {
	n := len(a.Vertices)
	for i := 0; i < n; i++ {
		edge := a.Vertices[(i+1)%n].Sub(a.Vertices[i])
		if edge.Length() < 1e-12 {
			continue
		}
		axis := edge.Perp()
		aMin, aMax := projectRange(a, axis)
		bMin, bMax := projectRange(b, axis)
		if aMax < bMin || bMax < aMin {
			return true
		}
	}
	return false
}

// projectRange projects every vertex of p onto axis and returns the extent.
func projectRange(p Polygon, axis Point2D) (float64, float64) {
	lo := p.Vertices[0].Dot(axis)
	hi := lo
	for _, v := range p.Vertices[1:] {
		d := v.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// Rect is an axis-aligned box on the ground plane.
type Rect struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// RectAround returns the axis-aligned box extending half in each direction
// from center.
func RectAround(center Point2D, half float64) Rect {
	return Rect{
		Min: Point2D{center.X - half, center.Z - half},
		Max: Point2D{center.X + half, center.Z + half},
	}
}

// Contains returns true if p lies within the box (inclusive).
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Z >= r.Min.Z && p.Z <= r.Max.Z
}

// ContainsRect returns true if o lies entirely within the box.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

// Inflate returns the box grown by d on every side. Negative d shrinks it.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Min: Point2D{r.Min.X - d, r.Min.Z - d},
		Max: Point2D{r.Max.X + d, r.Max.Z + d},
	}
}
