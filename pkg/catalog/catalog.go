// Package catalog defines the building catalog: the set of building
// types a settlement can contain, per-size generation parameters, and
// the category composition each settlement size draws from.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category groups building types by their role in a settlement.
type Category string

const (
	CategoryResidential    Category = "residential"
	CategoryCommercial     Category = "commercial"
	CategoryIndustrial     Category = "industrial"
	CategoryCivic          Category = "civic"
	CategoryAgricultural   Category = "agricultural"
	CategoryInfrastructure Category = "infrastructure"
)

// Categories lists all categories in canonical order. Quota allocation
// iterates this order, never a map, so results stay deterministic.
var Categories = []Category{
	CategoryResidential,
	CategoryCommercial,
	CategoryIndustrial,
	CategoryCivic,
	CategoryAgricultural,
	CategoryInfrastructure,
}

// UnmarshalYAML rejects unknown category names.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch Category(s) {
	case CategoryResidential, CategoryCommercial, CategoryIndustrial,
		CategoryCivic, CategoryAgricultural, CategoryInfrastructure:
		*c = Category(s)
		return nil
	}
	return fmt.Errorf("unknown building category %q", s)
}

// SizeClass is the scale tier of a settlement.
type SizeClass string

const (
	SizeHamlet  SizeClass = "hamlet"
	SizeVillage SizeClass = "village"
	SizeTown    SizeClass = "town"
	SizeCity    SizeClass = "city"
)

// SizeClasses lists all size classes from smallest to largest.
var SizeClasses = []SizeClass{SizeHamlet, SizeVillage, SizeTown, SizeCity}

// UnmarshalYAML rejects unknown size class names.
func (s *SizeClass) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch SizeClass(raw) {
	case SizeHamlet, SizeVillage, SizeTown, SizeCity:
		*s = SizeClass(raw)
		return nil
	}
	return fmt.Errorf("unknown size class %q", raw)
}

// RoadClass is the grade of road connecting to or crossing a settlement.
type RoadClass string

const (
	RoadHighway RoadClass = "highway"
	RoadTown    RoadClass = "town"
	RoadDirt    RoadClass = "dirt"
)

// UnmarshalYAML rejects unknown road class names.
func (r *RoadClass) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch RoadClass(s) {
	case RoadHighway, RoadTown, RoadDirt:
		*r = RoadClass(s)
		return nil
	}
	return fmt.Errorf("unknown road class %q", s)
}

// LayoutWeights gives the relative probability of each street topology
// for a settlement size. Weights need not sum to one.
type LayoutWeights struct {
	Organic float64 `yaml:"organic" json:"organic"`
	Grid    float64 `yaml:"grid" json:"grid"`
	Mixed   float64 `yaml:"mixed" json:"mixed"`
}

// BuildingSpec describes one building type available for placement.
// Width and depth are ground footprint meters; floors scale height
// and garrison capacity.
type BuildingSpec struct {
	Category Category    `yaml:"category" json:"category"`
	Subtype  string      `yaml:"subtype" json:"subtype"`
	Width    float64     `yaml:"width" json:"width"`
	Depth    float64     `yaml:"depth" json:"depth"`
	Floors   int         `yaml:"floors" json:"floors"`
	Sizes    []SizeClass `yaml:"sizes" json:"sizes"`
}

// AllowedIn reports whether this building type may appear in a
// settlement of the given size.
func (b BuildingSpec) AllowedIn(size SizeClass) bool {
	for _, s := range b.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Area returns the ground footprint area in square meters.
func (b BuildingSpec) Area() float64 {
	return b.Width * b.Depth
}

// Priority ranks building types for placement order. Landmark and
// large civic or industrial types place first while space is plentiful;
// ordinary housing fills in afterwards.
func (b BuildingSpec) Priority() int {
	switch b.Subtype {
	case "cathedral", "town_hall", "church", "chapel", "factory", "warehouse", "hospital":
		return 3
	case "merchant_hall", "bank", "inn", "watchtower", "gatehouse", "courthouse":
		return 2
	}
	return 1
}

// CategoryShare bounds the fraction of a settlement's buildings drawn
// from one category.
type CategoryShare struct {
	Category Category `yaml:"category" json:"category"`
	MinPct   float64  `yaml:"min_pct" json:"min_pct"`
	MaxPct   float64  `yaml:"max_pct" json:"max_pct"`
}

// SizeParams holds the generation parameters for one settlement size.
type SizeParams struct {
	RadiusMin      float64       `yaml:"radius_min" json:"radius_min"`
	RadiusMax      float64       `yaml:"radius_max" json:"radius_max"`
	BuildingsMin   int           `yaml:"buildings_min" json:"buildings_min"`
	BuildingsMax   int           `yaml:"buildings_max" json:"buildings_max"`
	ConnectionsMin int           `yaml:"connections_min" json:"connections_min"`
	ConnectionsMax int           `yaml:"connections_max" json:"connections_max"`
	Layout         LayoutWeights `yaml:"layout" json:"layout"`
}

// Catalog is the full building catalog plus per-size tuning tables.
// The maps are lookup-only; all iteration happens over ordered slices.
type Catalog struct {
	Specs       []BuildingSpec                `yaml:"buildings" json:"buildings"`
	Sizes       map[SizeClass]SizeParams      `yaml:"sizes" json:"sizes"`
	Composition map[SizeClass][]CategoryShare `yaml:"composition" json:"composition"`
}

// BySubtype returns the building spec with the given subtype name.
func (c *Catalog) BySubtype(subtype string) (BuildingSpec, bool) {
	for _, s := range c.Specs {
		if s.Subtype == subtype {
			return s, true
		}
	}
	return BuildingSpec{}, false
}

// Eligible returns the building specs of one category allowed in the
// given settlement size, in catalog order.
func (c *Catalog) Eligible(cat Category, size SizeClass) []BuildingSpec {
	var out []BuildingSpec
	for _, s := range c.Specs {
		if s.Category == cat && s.AllowedIn(size) {
			out = append(out, s)
		}
	}
	return out
}
