package geo

import "math"

// Point2D represents a point on the XZ ground plane of the map.
type Point2D struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Origin is the zero point.
var Origin = Point2D{0, 0}

// Pt is a shorthand constructor for Point2D.
func Pt(x, z float64) Point2D {
	return Point2D{X: x, Z: z}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Z - q.Z}
}

// Scale returns p * s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Z * s}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Z)
}

// Normalize returns the unit vector in the same direction.
// Returns zero vector if length is zero.
func (p Point2D) Normalize() Point2D {
	l := p.Length()
	if l < 1e-12 {
		return Point2D{}
	}
	return Point2D{p.X / l, p.Z / l}
}

// Dot returns the dot product of p and q.
func (p Point2D) Dot(q Point2D) float64 {
	return p.X*q.X + p.Z*q.Z
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// Angle returns the angle of the vector from the positive X axis in radians.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.Z, p.X)
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point2D) Rotate(angle float64) Point2D {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point2D{
		X: p.X*c - p.Z*s,
		Z: p.X*s + p.Z*c,
	}
}

// Unit returns the unit vector pointing at the given angle.
func Unit(angle float64) Point2D {
	return Point2D{X: math.Cos(angle), Z: math.Sin(angle)}
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (q.X-p.X)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Perp returns a vector perpendicular to p (rotated 90 degrees counterclockwise).
func (p Point2D) Perp() Point2D {
	return Point2D{-p.Z, p.X}
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point2D) Point2D {
	return p.Lerp(q, 0.5)
}
