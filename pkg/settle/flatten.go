package settle

import (
	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/layout"
)

// FlattenBuildings folds every settlement's buildings into one list
// for map-wide assembly. Each building keeps its settlement id, so the
// fold loses no ownership information.
func FlattenBuildings(settlements []*Settlement) []layout.Building {
	var out []layout.Building
	for _, s := range settlements {
		if s == nil {
			continue
		}
		out = append(out, s.Buildings...)
	}
	return out
}

// FlattenStreets folds every settlement's streets into one list.
func FlattenStreets(settlements []*Settlement) []layout.Street {
	var out []layout.Street
	for _, s := range settlements {
		if s == nil {
			continue
		}
		out = append(out, s.Streets...)
	}
	return out
}

// Summary aggregates a generated map for reporting.
type Summary struct {
	Settlements int                       `json:"settlements"`
	Buildings   int                       `json:"buildings"`
	Streets     int                       `json:"streets"`
	Dropped     int                       `json:"dropped"`
	ByCategory  map[catalog.Category]int  `json:"by_category"`
	BySize      map[catalog.SizeClass]int `json:"by_size"`
}

// Summarize is a read-only fold over completed settlements. The maps
// are for lookup; callers printing them should iterate the canonical
// catalog orders.
func Summarize(settlements []*Settlement) Summary {
	sum := Summary{
		ByCategory: make(map[catalog.Category]int),
		BySize:     make(map[catalog.SizeClass]int),
	}
	for _, s := range settlements {
		if s == nil {
			continue
		}
		sum.Settlements++
		sum.Buildings += len(s.Buildings)
		sum.Streets += len(s.Streets)
		sum.Dropped += s.Stats.Dropped
		sum.BySize[s.Size]++
		for _, b := range s.Buildings {
			sum.ByCategory[b.Category]++
		}
	}
	return sum
}
