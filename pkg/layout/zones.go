package layout

import "github.com/duxbuse/townsmith/pkg/catalog"

// zoneBand returns the normalized radius band a category prefers:
// civic buildings cluster at the center, agriculture sits at the
// fringe, housing spans most of the area in between.
func zoneBand(cat catalog.Category) (inner, outer float64) {
	switch cat {
	case catalog.CategoryCivic:
		return 0, 0.3
	case catalog.CategoryCommercial:
		return 0.1, 0.5
	case catalog.CategoryResidential:
		return 0.2, 0.85
	case catalog.CategoryIndustrial:
		return 0.55, 0.95
	case catalog.CategoryAgricultural:
		return 0.7, 1.0
	case catalog.CategoryInfrastructure:
		return 0.3, 0.9
	}
	return 0, 1
}
