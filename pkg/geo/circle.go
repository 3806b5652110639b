package geo

import "math"

// ApproximateCircle returns a polygon approximating a circle with the given
// center, radius, and number of segments. Vertices are in CCW order.
func ApproximateCircle(center Point2D, radius float64, segments int) Polygon {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point2D, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = center.Add(Unit(angle).Scale(radius))
	}
	return Polygon{Vertices: pts}
}

// LineCircleIntersections returns the intersection points of the segment
// from a to b with the circle at center with the given radius, ordered from
// a to b. A degenerate segment or negative discriminant yields no hits.
func LineCircleIntersections(a, b, center Point2D, radius float64) []Point2D {
	d := b.Sub(a)
	f := a.Sub(center)

	aa := d.Dot(d)
	if aa < 1e-12 {
		return nil
	}
	bb := 2 * f.Dot(d)
	cc := f.Dot(f) - radius*radius

	disc := bb*bb - 4*aa*cc
	if disc < 0 {
		return nil
	}

	var pts []Point2D
	sqrtDisc := math.Sqrt(disc)
	for _, sign := range []float64{-1, 1} {
		t := (-bb + sign*sqrtDisc) / (2 * aa)
		if t >= -0.001 && t <= 1.001 {
			t = math.Max(0, math.Min(1, t))
			pts = append(pts, a.Lerp(b, t))
		}
	}
	return pts
}
