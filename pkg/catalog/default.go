package catalog

// Default returns the built-in catalog. Dimensions are in meters and
// sized for RTS readability rather than realism; a cottage is one unit
// wide, a cathedral dominates a city block.
func Default() *Catalog {
	return &Catalog{
		Specs:       defaultSpecs(),
		Sizes:       defaultSizes(),
		Composition: defaultComposition(),
	}
}

func defaultSpecs() []BuildingSpec {
	all := []SizeClass{SizeHamlet, SizeVillage, SizeTown, SizeCity}
	return []BuildingSpec{
		// Residential
		{Category: CategoryResidential, Subtype: "hovel", Width: 5, Depth: 5, Floors: 1, Sizes: all},
		{Category: CategoryResidential, Subtype: "cottage", Width: 7, Depth: 6, Floors: 1, Sizes: []SizeClass{SizeHamlet, SizeVillage, SizeTown}},
		{Category: CategoryResidential, Subtype: "farmhouse", Width: 9, Depth: 8, Floors: 2, Sizes: []SizeClass{SizeHamlet, SizeVillage}},
		{Category: CategoryResidential, Subtype: "longhouse", Width: 14, Depth: 6, Floors: 1, Sizes: []SizeClass{SizeHamlet, SizeVillage}},
		{Category: CategoryResidential, Subtype: "house", Width: 8, Depth: 7, Floors: 2, Sizes: []SizeClass{SizeVillage, SizeTown, SizeCity}},
		{Category: CategoryResidential, Subtype: "row_house", Width: 6, Depth: 9, Floors: 2, Sizes: []SizeClass{SizeVillage, SizeTown, SizeCity}},
		{Category: CategoryResidential, Subtype: "townhouse", Width: 8, Depth: 10, Floors: 3, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryResidential, Subtype: "manor", Width: 16, Depth: 13, Floors: 2, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryResidential, Subtype: "tenement", Width: 14, Depth: 12, Floors: 4, Sizes: []SizeClass{SizeCity}},
		{Category: CategoryResidential, Subtype: "apartment_block", Width: 18, Depth: 14, Floors: 6, Sizes: []SizeClass{SizeCity}},

		// Commercial
		{Category: CategoryCommercial, Subtype: "market_stall", Width: 4, Depth: 3, Floors: 1, Sizes: all},
		{Category: CategoryCommercial, Subtype: "trading_post", Width: 11, Depth: 9, Floors: 2, Sizes: []SizeClass{SizeHamlet, SizeVillage}},
		{Category: CategoryCommercial, Subtype: "shop", Width: 7, Depth: 6, Floors: 2, Sizes: []SizeClass{SizeVillage, SizeTown, SizeCity}},
		{Category: CategoryCommercial, Subtype: "bakery", Width: 8, Depth: 7, Floors: 1, Sizes: []SizeClass{SizeVillage, SizeTown, SizeCity}},
		{Category: CategoryCommercial, Subtype: "tavern", Width: 12, Depth: 10, Floors: 2, Sizes: []SizeClass{SizeVillage, SizeTown, SizeCity}},
		{Category: CategoryCommercial, Subtype: "inn", Width: 14, Depth: 11, Floors: 3, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryCommercial, Subtype: "bank", Width: 13, Depth: 11, Floors: 3, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryCommercial, Subtype: "merchant_hall", Width: 16, Depth: 12, Floors: 3, Sizes: []SizeClass{SizeCity}},

		// Industrial
		{Category: CategoryIndustrial, Subtype: "smithy", Width: 9, Depth: 8, Floors: 1, Sizes: []SizeClass{SizeVillage, SizeTown, SizeCity}},
		{Category: CategoryIndustrial, Subtype: "workshop", Width: 10, Depth: 8, Floors: 1, Sizes: []SizeClass{SizeVillage, SizeTown, SizeCity}},
		{Category: CategoryIndustrial, Subtype: "sawmill", Width: 15, Depth: 10, Floors: 1, Sizes: []SizeClass{SizeVillage, SizeTown}},
		{Category: CategoryIndustrial, Subtype: "warehouse", Width: 18, Depth: 12, Floors: 2, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryIndustrial, Subtype: "brickworks", Width: 16, Depth: 12, Floors: 1, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryIndustrial, Subtype: "factory", Width: 24, Depth: 16, Floors: 3, Sizes: []SizeClass{SizeCity}},

		// Civic
		{Category: CategoryCivic, Subtype: "chapel", Width: 8, Depth: 6, Floors: 1, Sizes: []SizeClass{SizeHamlet, SizeVillage}},
		{Category: CategoryCivic, Subtype: "church", Width: 14, Depth: 9, Floors: 2, Sizes: []SizeClass{SizeVillage, SizeTown}},
		{Category: CategoryCivic, Subtype: "town_hall", Width: 16, Depth: 12, Floors: 3, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryCivic, Subtype: "school", Width: 13, Depth: 10, Floors: 2, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryCivic, Subtype: "courthouse", Width: 15, Depth: 12, Floors: 3, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryCivic, Subtype: "cathedral", Width: 26, Depth: 15, Floors: 4, Sizes: []SizeClass{SizeCity}},
		{Category: CategoryCivic, Subtype: "hospital", Width: 18, Depth: 14, Floors: 3, Sizes: []SizeClass{SizeCity}},

		// Agricultural
		{Category: CategoryAgricultural, Subtype: "barn", Width: 12, Depth: 9, Floors: 1, Sizes: []SizeClass{SizeHamlet, SizeVillage, SizeTown}},
		{Category: CategoryAgricultural, Subtype: "granary", Width: 9, Depth: 9, Floors: 2, Sizes: []SizeClass{SizeHamlet, SizeVillage, SizeTown}},
		{Category: CategoryAgricultural, Subtype: "stable", Width: 11, Depth: 7, Floors: 1, Sizes: all},
		{Category: CategoryAgricultural, Subtype: "orchard_shed", Width: 6, Depth: 5, Floors: 1, Sizes: []SizeClass{SizeHamlet, SizeVillage}},
		{Category: CategoryAgricultural, Subtype: "windmill", Width: 8, Depth: 8, Floors: 3, Sizes: []SizeClass{SizeVillage, SizeTown}},

		// Infrastructure
		{Category: CategoryInfrastructure, Subtype: "well", Width: 3, Depth: 3, Floors: 1, Sizes: all},
		{Category: CategoryInfrastructure, Subtype: "watchtower", Width: 6, Depth: 6, Floors: 4, Sizes: []SizeClass{SizeVillage, SizeTown, SizeCity}},
		{Category: CategoryInfrastructure, Subtype: "gatehouse", Width: 10, Depth: 8, Floors: 2, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryInfrastructure, Subtype: "depot", Width: 14, Depth: 10, Floors: 1, Sizes: []SizeClass{SizeTown, SizeCity}},
		{Category: CategoryInfrastructure, Subtype: "water_tower", Width: 7, Depth: 7, Floors: 3, Sizes: []SizeClass{SizeCity}},
	}
}

func defaultSizes() map[SizeClass]SizeParams {
	return map[SizeClass]SizeParams{
		SizeHamlet: {
			RadiusMin: 25, RadiusMax: 40,
			BuildingsMin: 4, BuildingsMax: 9,
			ConnectionsMin: 1, ConnectionsMax: 2,
			Layout: LayoutWeights{Organic: 0.8, Grid: 0.05, Mixed: 0.15},
		},
		SizeVillage: {
			RadiusMin: 50, RadiusMax: 80,
			BuildingsMin: 12, BuildingsMax: 25,
			ConnectionsMin: 2, ConnectionsMax: 3,
			Layout: LayoutWeights{Organic: 0.6, Grid: 0.15, Mixed: 0.25},
		},
		SizeTown: {
			RadiusMin: 90, RadiusMax: 140,
			BuildingsMin: 30, BuildingsMax: 60,
			ConnectionsMin: 3, ConnectionsMax: 4,
			Layout: LayoutWeights{Organic: 0.25, Grid: 0.35, Mixed: 0.4},
		},
		SizeCity: {
			RadiusMin: 150, RadiusMax: 220,
			BuildingsMin: 70, BuildingsMax: 120,
			ConnectionsMin: 4, ConnectionsMax: 6,
			Layout: LayoutWeights{Organic: 0.1, Grid: 0.4, Mixed: 0.5},
		},
	}
}

// Composition shares follow Categories order within each size so quota
// allocation walks them deterministically. Max shares sum to at most 1.
func defaultComposition() map[SizeClass][]CategoryShare {
	return map[SizeClass][]CategoryShare{
		SizeHamlet: {
			{Category: CategoryResidential, MinPct: 0.50, MaxPct: 0.62},
			{Category: CategoryCommercial, MinPct: 0.02, MaxPct: 0.06},
			{Category: CategoryIndustrial, MinPct: 0, MaxPct: 0},
			{Category: CategoryCivic, MinPct: 0, MaxPct: 0.04},
			{Category: CategoryAgricultural, MinPct: 0.15, MaxPct: 0.25},
			{Category: CategoryInfrastructure, MinPct: 0, MaxPct: 0.03},
		},
		SizeVillage: {
			{Category: CategoryResidential, MinPct: 0.42, MaxPct: 0.52},
			{Category: CategoryCommercial, MinPct: 0.08, MaxPct: 0.12},
			{Category: CategoryIndustrial, MinPct: 0.04, MaxPct: 0.08},
			{Category: CategoryCivic, MinPct: 0.04, MaxPct: 0.07},
			{Category: CategoryAgricultural, MinPct: 0.10, MaxPct: 0.16},
			{Category: CategoryInfrastructure, MinPct: 0.02, MaxPct: 0.05},
		},
		SizeTown: {
			{Category: CategoryResidential, MinPct: 0.40, MaxPct: 0.48},
			{Category: CategoryCommercial, MinPct: 0.12, MaxPct: 0.18},
			{Category: CategoryIndustrial, MinPct: 0.08, MaxPct: 0.12},
			{Category: CategoryCivic, MinPct: 0.06, MaxPct: 0.10},
			{Category: CategoryAgricultural, MinPct: 0.04, MaxPct: 0.08},
			{Category: CategoryInfrastructure, MinPct: 0.02, MaxPct: 0.04},
		},
		SizeCity: {
			{Category: CategoryResidential, MinPct: 0.38, MaxPct: 0.46},
			{Category: CategoryCommercial, MinPct: 0.14, MaxPct: 0.20},
			{Category: CategoryIndustrial, MinPct: 0.10, MaxPct: 0.14},
			{Category: CategoryCivic, MinPct: 0.08, MaxPct: 0.12},
			{Category: CategoryAgricultural, MinPct: 0, MaxPct: 0.03},
			{Category: CategoryInfrastructure, MinPct: 0.03, MaxPct: 0.05},
		},
	}
}
