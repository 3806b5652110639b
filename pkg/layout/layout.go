// Package layout builds the internal geometry of a settlement: the
// street topology, perimeter entry points and collision-checked
// building placement. Everything here is a pure function of the
// supplied rng.Source, so identical seeds reproduce identical geometry.
package layout

import (
	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/rng"
	"github.com/duxbuse/townsmith/pkg/terrain"
)

// Type selects the street topology of a settlement.
type Type string

const (
	// TypeAuto leaves the topology to a weighted draw over the size
	// class's layout weights.
	TypeAuto    Type = ""
	TypeOrganic Type = "organic"
	TypeGrid    Type = "grid"
	TypeMixed   Type = "mixed"
)

// Known reports whether t is a recognized layout type.
func (t Type) Known() bool {
	switch t {
	case TypeAuto, TypeOrganic, TypeGrid, TypeMixed:
		return true
	}
	return false
}

// ChooseType draws a topology from the weight table by walking the
// cumulative distribution. A table summing to zero falls back to mixed
// rather than producing undefined behavior.
func ChooseType(src *rng.Source, w catalog.LayoutWeights) Type {
	total := w.Organic + w.Grid + w.Mixed
	if total <= 0 {
		return TypeMixed
	}
	v := src.Next() * total
	if v < w.Organic {
		return TypeOrganic
	}
	if v < w.Organic+w.Grid {
		return TypeGrid
	}
	return TypeMixed
}

// Params carries everything the street, entry and placement builders
// need for one settlement. Bounds and Terrain are optional; nil means
// unbounded open ground.
type Params struct {
	ID       string
	Center   geo.Point2D
	Radius   float64
	MainAxis float64 // dominant orientation, radians
	Size     catalog.SizeClass
	Layout   Type
	Density  float64
	Target   int // requested building count
	Bounds   *geo.Rect
	Terrain  *terrain.Grid
}

// Street is one road polyline local to a settlement.
type Street struct {
	ID     string            `json:"id"`
	Points []geo.Point2D     `json:"points"`
	Width  float64           `json:"width"`
	Class  catalog.RoadClass `json:"class"`
}

// Polyline returns the street's centerline.
func (s Street) Polyline() geo.Polyline {
	return geo.Polyline{Points: s.Points}
}

// EntryPoint is where an external road should meet the settlement; the
// handoff contract to the inter-settlement road network builder.
type EntryPoint struct {
	Position  geo.Point2D       `json:"position"`
	Direction float64           `json:"direction"` // outward angle, radians
	Road      catalog.RoadClass `json:"road"`
}
