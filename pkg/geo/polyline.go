package geo

import "math"

// Polyline is an ordered sequence of points forming a path.
type Polyline struct {
	Points []Point2D `json:"points"`
}

// NewPolyline creates a polyline from a list of points.
func NewPolyline(pts ...Point2D) Polyline {
	return Polyline{Points: pts}
}

// Length returns the total arc length of the polyline.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i-1].Distance(pl.Points[i])
	}
	return total
}

// PointAt returns the point at fraction t in [0,1] along the polyline length.
func (pl Polyline) PointAt(t float64) Point2D {
	if len(pl.Points) == 0 {
		return Point2D{}
	}
	if len(pl.Points) == 1 || t <= 0 {
		return pl.Points[0]
	}
	if t >= 1 {
		return pl.Points[len(pl.Points)-1]
	}

	totalLen := pl.Length()
	targetLen := t * totalLen
	walked := 0.0

	for i := 1; i < len(pl.Points); i++ {
		segLen := pl.Points[i-1].Distance(pl.Points[i])
		if walked+segLen >= targetLen {
			frac := (targetLen - walked) / segLen
			return pl.Points[i-1].Lerp(pl.Points[i], frac)
		}
		walked += segLen
	}
	return pl.Points[len(pl.Points)-1]
}

// NearestPoint returns the closest point on the polyline to p, and the distance.
func (pl Polyline) NearestPoint(p Point2D) (Point2D, float64) {
	if len(pl.Points) == 0 {
		return Point2D{}, math.MaxFloat64
	}
	if len(pl.Points) == 1 {
		return pl.Points[0], p.Distance(pl.Points[0])
	}

	bestPt := pl.Points[0]
	bestDist := p.Distance(pl.Points[0])

	for i := 1; i < len(pl.Points); i++ {
		pt, dist := nearestPointOnSegment(p, pl.Points[i-1], pl.Points[i])
		if dist < bestDist {
			bestDist = dist
			bestPt = pt
		}
	}
	return bestPt, bestDist
}

// SegmentDistance returns the distance from p to the segment ab.
// A degenerate (zero-length) segment collapses to point distance.
func SegmentDistance(p, a, b Point2D) float64 {
	_, d := nearestPointOnSegment(p, a, b)
	return d
}

// nearestPointOnSegment returns the closest point on segment ab to p.
func nearestPointOnSegment(p, a, b Point2D) (Point2D, float64) {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-12 {
		return a, p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return closest, p.Distance(closest)
}
