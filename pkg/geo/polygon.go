package geo

import "math"

// Polygon is a closed polygon defined by its vertices in order.
type Polygon struct {
	Vertices []Point2D `json:"vertices"`
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Z
		area -= p.Vertices[j].X * p.Vertices[i].Z
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the centroid of the polygon.
func (p Polygon) Centroid() Point2D {
	n := len(p.Vertices)
	if n == 0 {
		return Point2D{}
	}
	a := p.SignedArea()
	if n < 3 || math.Abs(a) < 1e-12 {
		// Degenerate: return the vertex average.
		sum := Point2D{}
		for _, v := range p.Vertices {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cz := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Z - p.Vertices[j].X*p.Vertices[i].Z
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cz += (p.Vertices[i].Z + p.Vertices[j].Z) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point2D{cx * f, cz * f}
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point2D, Point2D) {
	if len(p.Vertices) == 0 {
		return Point2D{}, Point2D{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Z < minP.Z {
			minP.Z = v.Z
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Z > maxP.Z {
			maxP.Z = v.Z
		}
	}
	return minP, maxP
}

// Contains returns true if the point is inside the polygon using ray casting.
func (p Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Z > pt.Z) != (vj.Z > pt.Z) &&
			pt.X < (vj.X-vi.X)*(pt.Z-vi.Z)/(vj.Z-vi.Z)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
