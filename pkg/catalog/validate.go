package catalog

import (
	"fmt"

	"github.com/duxbuse/townsmith/pkg/validation"
)

// Validate checks the catalog for structural problems before any
// generation uses it.
func (c *Catalog) Validate() *validation.Report {
	r := validation.NewReport()

	validateSpecs(c, r)
	validateSizes(c, r)
	validateComposition(c, r)

	return r
}

func validateSpecs(c *Catalog, r *validation.Report) {
	if len(c.Specs) == 0 {
		r.AddError(validation.Result{
			Level:    validation.LevelSchema,
			Message:  "catalog must contain at least one building",
			Path:     "buildings",
			Expected: "at least 1 building spec",
		})
		return
	}

	seen := make(map[string]bool, len(c.Specs))
	for i, s := range c.Specs {
		path := fmt.Sprintf("buildings[%d]", i)
		if s.Subtype == "" {
			r.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Message: fmt.Sprintf("%s: subtype must not be empty", path),
				Path:    path + ".subtype",
			})
		} else if seen[s.Subtype] {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s: duplicate subtype %q", path, s.Subtype),
				Path:        path + ".subtype",
				ActualValue: s.Subtype,
				Expected:    "unique subtype names",
			})
		}
		seen[s.Subtype] = true

		if s.Width <= 0 || s.Depth <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s (%s): footprint must be positive", path, s.Subtype),
				Path:        path,
				ActualValue: fmt.Sprintf("%.1fx%.1f", s.Width, s.Depth),
				Expected:    "width > 0 and depth > 0",
			})
		}
		if s.Floors <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s (%s): floors must be > 0", path, s.Subtype),
				Path:        path + ".floors",
				ActualValue: s.Floors,
				Expected:    "> 0",
			})
		}
		if len(s.Sizes) == 0 {
			r.AddError(validation.Result{
				Level:    validation.LevelSchema,
				Message:  fmt.Sprintf("%s (%s): must be allowed in at least one settlement size", path, s.Subtype),
				Path:     path + ".sizes",
				Expected: "at least 1 size class",
			})
		}
	}
}

func validateSizes(c *Catalog, r *validation.Report) {
	for _, size := range SizeClasses {
		p, ok := c.Sizes[size]
		path := fmt.Sprintf("sizes.%s", size)
		if !ok {
			r.AddError(validation.Result{
				Level:    validation.LevelSchema,
				Message:  fmt.Sprintf("missing size parameters for %q", size),
				Path:     path,
				Expected: "radius, building count and connection ranges",
			})
			continue
		}

		if p.RadiusMin <= 0 || p.RadiusMin >= p.RadiusMax {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s: radius range must satisfy 0 < min < max", path),
				Path:        path,
				ActualValue: fmt.Sprintf("%.0f-%.0f", p.RadiusMin, p.RadiusMax),
			})
		}
		if p.BuildingsMin < 1 || p.BuildingsMin > p.BuildingsMax {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s: building count range must satisfy 1 <= min <= max", path),
				Path:        path,
				ActualValue: fmt.Sprintf("%d-%d", p.BuildingsMin, p.BuildingsMax),
			})
		}
		if p.ConnectionsMin < 1 || p.ConnectionsMin > p.ConnectionsMax {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s: connection range must satisfy 1 <= min <= max", path),
				Path:        path,
				ActualValue: fmt.Sprintf("%d-%d", p.ConnectionsMin, p.ConnectionsMax),
			})
		}

		w := p.Layout
		if w.Organic < 0 || w.Grid < 0 || w.Mixed < 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s: layout weights must be non-negative", path),
				Path:        path + ".layout",
				ActualValue: fmt.Sprintf("organic=%.2f grid=%.2f mixed=%.2f", w.Organic, w.Grid, w.Mixed),
			})
		} else if w.Organic+w.Grid+w.Mixed == 0 {
			r.AddWarning(validation.Result{
				Level:   validation.LevelSchema,
				Message: fmt.Sprintf("%s: all layout weights are zero, generation falls back to mixed", path),
				Path:    path + ".layout",
			})
		}
	}
}

func validateComposition(c *Catalog, r *validation.Report) {
	for _, size := range SizeClasses {
		shares, ok := c.Composition[size]
		path := fmt.Sprintf("composition.%s", size)
		if !ok || len(shares) == 0 {
			r.AddError(validation.Result{
				Level:    validation.LevelSchema,
				Message:  fmt.Sprintf("missing composition for %q", size),
				Path:     path,
				Expected: "at least 1 category share",
			})
			continue
		}

		seen := make(map[Category]bool, len(shares))
		maxSum := 0.0
		hasResidential := false
		for i, share := range shares {
			sp := fmt.Sprintf("%s[%d]", path, i)
			if seen[share.Category] {
				r.AddError(validation.Result{
					Level:       validation.LevelSchema,
					Message:     fmt.Sprintf("%s: repeated category %q", sp, share.Category),
					Path:        sp,
					ActualValue: string(share.Category),
				})
			}
			seen[share.Category] = true

			if share.MinPct < 0 || share.MinPct > share.MaxPct || share.MaxPct > 1 {
				r.AddError(validation.Result{
					Level:       validation.LevelSchema,
					Message:     fmt.Sprintf("%s (%s): share must satisfy 0 <= min <= max <= 1", sp, share.Category),
					Path:        sp,
					ActualValue: fmt.Sprintf("%.2f-%.2f", share.MinPct, share.MaxPct),
				})
			}
			maxSum += share.MaxPct
			if share.Category == CategoryResidential {
				hasResidential = true
			}

			if share.MaxPct > 0 && len(c.Eligible(share.Category, size)) == 0 {
				r.AddWarning(validation.Result{
					Level:   validation.LevelSchema,
					Message: fmt.Sprintf("%s: no %s building is allowed in a %s, its quota will be skipped", sp, share.Category, size),
					Path:    sp,
				})
			}
		}

		if maxSum > 1.001 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s: max shares sum to %.2f, quotas will be clipped by the building target", path, maxSum),
				Path:        path,
				ActualValue: maxSum,
				Expected:    "<= 1.0",
			})
		}
		if !hasResidential {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("%s: no residential share, unallocated buildings have nowhere to go", path),
				Path:        path,
				Suggestions: []string{"add a residential share so remainder buildings become housing"},
			})
		}
	}
}
