package geo

import (
	"math"
	"testing"
)

func TestFootprintAxisAligned(t *testing.T) {
	fp := Footprint(Pt(10, 20), 8, 6, 0)
	if len(fp.Vertices) != 4 {
		t.Fatalf("expected 4 corners, got %d", len(fp.Vertices))
	}
	if !approxEqual(fp.Area(), 48, tolerance) {
		t.Errorf("expected area 48, got %f", fp.Area())
	}
	c := fp.Centroid()
	if !approxEqual(c.X, 10, tolerance) || !approxEqual(c.Z, 20, tolerance) {
		t.Errorf("expected centroid (10,20), got (%f,%f)", c.X, c.Z)
	}
	mn, mx := fp.BoundingBox()
	if !approxEqual(mn.X, 6, tolerance) || !approxEqual(mx.X, 14, tolerance) {
		t.Errorf("expected x span 6..14, got %f..%f", mn.X, mx.X)
	}
	if !approxEqual(mn.Z, 17, tolerance) || !approxEqual(mx.Z, 23, tolerance) {
		t.Errorf("expected z span 17..23, got %f..%f", mn.Z, mx.Z)
	}
}

func TestFootprintRotated(t *testing.T) {
	// 90 degree rotation swaps width and depth extents; area is unchanged.
	fp := Footprint(Pt(0, 0), 8, 6, math.Pi/2)
	if !approxEqual(fp.Area(), 48, tolerance) {
		t.Errorf("expected area 48, got %f", fp.Area())
	}
	mn, mx := fp.BoundingBox()
	if !approxEqual(mx.X-mn.X, 6, tolerance) {
		t.Errorf("expected x extent 6 after rotation, got %f", mx.X-mn.X)
	}
	if !approxEqual(mx.Z-mn.Z, 8, tolerance) {
		t.Errorf("expected z extent 8 after rotation, got %f", mx.Z-mn.Z)
	}
	if !fp.Contains(Pt(0, 0)) {
		t.Error("expected footprint to contain its center")
	}
}

func TestPolygonsIntersectOverlapping(t *testing.T) {
	a := Footprint(Pt(0, 0), 10, 10, 0)
	b := Footprint(Pt(5, 5), 10, 10, 0)
	if !PolygonsIntersect(a, b) {
		t.Error("expected overlapping squares to intersect")
	}
}

func TestPolygonsIntersectSeparate(t *testing.T) {
	a := Footprint(Pt(0, 0), 10, 10, 0)
	b := Footprint(Pt(20, 0), 10, 10, 0)
	if PolygonsIntersect(a, b) {
		t.Error("expected separated squares not to intersect")
	}
}

func TestPolygonsIntersectRotatedNear(t *testing.T) {
	// A 45-degree diamond placed diagonally off a square: their bounding
	// boxes overlap but the separating axis test must find the gap.
	a := Footprint(Pt(0, 0), 10, 10, 0)
	b := Footprint(Pt(10.5, 10.5), 10, 10, math.Pi/4)
	if PolygonsIntersect(a, b) {
		t.Error("expected diamond beyond the corner not to intersect")
	}
	// Moved inward it must intersect.
	c := Footprint(Pt(8, 8), 10, 10, math.Pi/4)
	if !PolygonsIntersect(a, c) {
		t.Error("expected diamond over the corner to intersect")
	}
}

func TestPolygonsIntersectContained(t *testing.T) {
	outer := Footprint(Pt(0, 0), 20, 20, 0)
	inner := Footprint(Pt(1, -1), 4, 4, 0.3)
	if !PolygonsIntersect(outer, inner) {
		t.Error("expected contained polygon to intersect")
	}
	if !PolygonsIntersect(inner, outer) {
		t.Error("expected containment to be symmetric")
	}
}

func TestPolygonsIntersectEmpty(t *testing.T) {
	a := Footprint(Pt(0, 0), 10, 10, 0)
	if PolygonsIntersect(a, Polygon{}) {
		t.Error("expected empty polygon not to intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := RectAround(Pt(0, 0), 10)
	if !r.Contains(Pt(5, -5)) {
		t.Error("expected (5,-5) inside")
	}
	if r.Contains(Pt(11, 0)) {
		t.Error("expected (11,0) outside")
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := RectAround(Pt(0, 0), 10)
	inner := RectAround(Pt(2, 2), 5)
	if !outer.ContainsRect(inner) {
		t.Error("expected inner rect contained")
	}
	if outer.ContainsRect(RectAround(Pt(8, 0), 5)) {
		t.Error("expected overhanging rect not contained")
	}
}

func TestRectInflate(t *testing.T) {
	r := RectAround(Pt(0, 0), 5).Inflate(2)
	if !approxEqual(r.Max.X, 7, tolerance) || !approxEqual(r.Min.Z, -7, tolerance) {
		t.Errorf("expected inflated bounds ±7, got %v", r)
	}
	s := RectAround(Pt(0, 0), 5).Inflate(-1)
	if !approxEqual(s.Max.X, 4, tolerance) {
		t.Errorf("expected shrunk bound 4, got %f", s.Max.X)
	}
}
