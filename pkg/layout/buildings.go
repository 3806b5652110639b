package layout

import (
	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
)

// floorHeight is the vertical meters per floor.
const floorHeight = 3.0

// Building is one placed structure, including the derived gameplay
// fields combat and fog-of-war systems read.
type Building struct {
	ID           string           `json:"id"`
	Settlement   string           `json:"settlement"`
	Category     catalog.Category `json:"category"`
	Subtype      string           `json:"subtype"`
	Position     geo.Point2D      `json:"position"`
	Width        float64          `json:"width"`
	Depth        float64          `json:"depth"`
	Height       float64          `json:"height"`
	Rotation     float64          `json:"rotation"`
	Floors       int              `json:"floors"`
	Garrison     int              `json:"garrison"`
	DefenseBonus float64          `json:"defense_bonus"`
	StealthBonus float64          `json:"stealth_bonus"`
}

// Footprint returns the building's oriented ground rectangle.
func (b Building) Footprint() geo.Polygon {
	return geo.Footprint(b.Position, b.Width, b.Depth, b.Rotation)
}

// newBuilding derives the height and gameplay fields from a spec.
// Garrison scales with floor area, defense with category and floor
// count, stealth inversely with height: tall landmarks are easy to
// spot, hovels are not.
func newBuilding(spec catalog.BuildingSpec, pos geo.Point2D, rotation float64) Building {
	height := float64(spec.Floors) * floorHeight
	return Building{
		Category:     spec.Category,
		Subtype:      spec.Subtype,
		Position:     pos,
		Width:        spec.Width,
		Depth:        spec.Depth,
		Height:       height,
		Rotation:     rotation,
		Floors:       spec.Floors,
		Garrison:     int(spec.Area() * float64(spec.Floors) / 50),
		DefenseBonus: defenseFor(spec),
		StealthBonus: min(max(0.5-height/60, 0.05), 0.5),
	}
}

func defenseFor(spec catalog.BuildingSpec) float64 {
	base := 0.0
	switch spec.Category {
	case catalog.CategoryInfrastructure:
		base = 0.2
	case catalog.CategoryCivic:
		base = 0.15
	case catalog.CategoryIndustrial:
		base = 0.1
	case catalog.CategoryCommercial:
		base = 0.05
	}
	return min(base+0.02*float64(spec.Floors), 0.5)
}
