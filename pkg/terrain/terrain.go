// Package terrain provides the terrain grid settlements are generated
// against. The generator only reads it; synthesis exists for the CLI,
// the server and tests, while a game engine is expected to supply its
// own grid.
package terrain

import (
	"math"

	"github.com/duxbuse/townsmith/pkg/geo"
)

// CellType classifies one terrain cell.
type CellType string

const (
	CellGrass  CellType = "grass"
	CellWater  CellType = "water"
	CellRiver  CellType = "river"
	CellHill   CellType = "hill"
	CellForest CellType = "forest"
)

// SteepElevation is the normalized elevation at or above which ground
// is too steep to build on or route streets through.
const SteepElevation = 0.8

// Cell is one sample of the terrain raster.
type Cell struct {
	Type      CellType `json:"type"`
	Elevation float64  `json:"elevation"`
}

// Grid is a uniform raster over the XZ ground plane. Cells are indexed
// [row][col] where row advances along +Z and col along +X from Origin.
// A nil *Grid is valid everywhere: all queries report open ground.
type Grid struct {
	Cells    [][]Cell    `json:"cells"`
	CellSize float64     `json:"cell_size"`
	Origin   geo.Point2D `json:"origin"`
}

// CellAt returns the cell containing p. The second result is false for
// a nil grid or a point outside it.
func (g *Grid) CellAt(p geo.Point2D) (Cell, bool) {
	if g == nil || g.CellSize <= 0 || len(g.Cells) == 0 {
		return Cell{}, false
	}
	col := int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	row := int(math.Floor((p.Z - g.Origin.Z) / g.CellSize))
	if row < 0 || row >= len(g.Cells) {
		return Cell{}, false
	}
	if col < 0 || col >= len(g.Cells[row]) {
		return Cell{}, false
	}
	return g.Cells[row][col], true
}

// Blocked reports whether p is unusable for streets and buildings:
// open water or ground at steep elevation. Points outside the grid are
// open.
func (g *Grid) Blocked(p geo.Point2D) bool {
	c, ok := g.CellAt(p)
	if !ok {
		return false
	}
	if c.Type == CellWater || c.Type == CellRiver {
		return true
	}
	return c.Elevation >= SteepElevation
}

// Water reports whether p lies on a water or river cell.
func (g *Grid) Water(p geo.Point2D) bool {
	c, ok := g.CellAt(p)
	return ok && (c.Type == CellWater || c.Type == CellRiver)
}

// WaterBody is an explicit lake or pond supplied alongside a grid.
// Placement does not consult it yet; it is carried for callers that
// track water as shapes rather than cells.
type WaterBody struct {
	Center geo.Point2D `json:"center"`
	Radius float64     `json:"radius"`
}

// Bounds returns the world-space rectangle the grid covers. The second
// result is false for a nil or empty grid.
func (g *Grid) Bounds() (geo.Rect, bool) {
	if g == nil || len(g.Cells) == 0 || len(g.Cells[0]) == 0 {
		return geo.Rect{}, false
	}
	w := float64(len(g.Cells[0])) * g.CellSize
	h := float64(len(g.Cells)) * g.CellSize
	return geo.Rect{
		Min: g.Origin,
		Max: geo.Pt(g.Origin.X+w, g.Origin.Z+h),
	}, true
}
