package terrain

import (
	"math"

	"github.com/furui/fastnoiselite-go"

	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/rng"
)

// SynthConfig tunes Synthesize. Zero values fall back to a 64x64 grid
// of 16 m cells centered on the origin.
type SynthConfig struct {
	Seed       int64
	Width      int     // cells along X
	Height     int     // cells along Z
	CellSize   float64 // meters per cell
	WaterLevel float64 // normalized elevation below which cells flood
	River      bool
}

const (
	defaultGridCells  = 64
	defaultCellSize   = 16.0
	defaultWaterLevel = 0.22

	hillElevation   = 0.7  // rendered as hill from here up
	forestThreshold = 0.35 // forest noise cutoff on open ground

	elevationFrequency = 0.05 // in cell index space
	forestFrequency    = 0.09
)

// Synthesize produces a terrain grid from layered value noise: an
// elevation field flooded below the water level, a forest mask on open
// ground, and optionally a river walked across the map following the
// elevation noise.
func Synthesize(cfg SynthConfig) *Grid {
	if cfg.Width <= 0 {
		cfg.Width = defaultGridCells
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultGridCells
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = defaultCellSize
	}
	if cfg.WaterLevel <= 0 {
		cfg.WaterLevel = defaultWaterLevel
	}

	elev := fastnoiselite.NewNoise()
	elev.Seed = int32(cfg.Seed)
	elev.Frequency = elevationFrequency

	forest := fastnoiselite.NewNoise()
	forest.Seed = int32(cfg.Seed) + 1
	forest.Frequency = forestFrequency

	g := &Grid{
		Cells:    make([][]Cell, cfg.Height),
		CellSize: cfg.CellSize,
		Origin: geo.Pt(
			-float64(cfg.Width)*cfg.CellSize/2,
			-float64(cfg.Height)*cfg.CellSize/2,
		),
	}

	for row := range g.Cells {
		cells := make([]Cell, cfg.Width)
		for col := range cells {
			v := elev.GetNoise2D(fastnoiselite.FNLfloat(col), fastnoiselite.FNLfloat(row))
			e := (float64(v) + 1) / 2

			c := Cell{Type: CellGrass, Elevation: e}
			switch {
			case e < cfg.WaterLevel:
				c.Type = CellWater
			case e >= hillElevation:
				c.Type = CellHill
			default:
				fv := forest.GetNoise2D(fastnoiselite.FNLfloat(col), fastnoiselite.FNLfloat(row))
				if float64(fv) > forestThreshold {
					c.Type = CellForest
				}
			}
			cells[col] = c
		}
		g.Cells[row] = cells
	}

	if cfg.River {
		carveRiver(g, cfg)
	}

	return g
}

// carveRiver walks from a random edge across the grid, steering each
// step toward higher guide-noise values within a narrow cone, and marks
// the cells it passes as river.
func carveRiver(g *Grid, cfg SynthConfig) {
	guide := fastnoiselite.NewNoise()
	guide.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	guide.Seed = int32(cfg.Seed) + 2

	src := rng.New(cfg.Seed)

	w := float64(cfg.Width)
	h := float64(cfg.Height)

	// Start on a random edge, in cell index space, heading at the
	// grid center with some jitter.
	var pos geo.Point2D
	switch src.IntN(4) {
	case 0:
		pos = geo.Pt(src.Next()*w, 0)
	case 1:
		pos = geo.Pt(src.Next()*w, h-1)
	case 2:
		pos = geo.Pt(0, src.Next()*h)
	default:
		pos = geo.Pt(w-1, src.Next()*h)
	}
	center := geo.Pt(w/2, h/2)
	dir := center.Sub(pos).Normalize().Rotate(src.Range(-0.2, 0.2))

	const stepSize = 1.0
	lookAhead := stepSize * 10
	maxSteps := 4 * (cfg.Width + cfg.Height)

	for step := 0; step < maxSteps; step++ {
		carveAt(g, cfg, pos)

		pos = pos.Add(dir.Scale(stepSize))
		if pos.X < -2 || pos.X > w+2 || pos.Z < -2 || pos.Z > h+2 {
			return
		}

		// Score a fan of candidate headings by the guide noise a few
		// steps ahead and steer toward the best one.
		best := 0.0
		bestScore := math.Inf(-1)
		for deg := -10.0; deg <= 10; deg++ {
			angle := deg * math.Pi / 180
			probe := pos.Add(dir.Rotate(angle).Scale(lookAhead))
			score := float64(guide.GetNoise2D(
				fastnoiselite.FNLfloat(probe.X), fastnoiselite.FNLfloat(probe.Z)))
			if score > bestScore {
				bestScore = score
				best = angle
			}
		}
		dir = dir.Rotate(best)
	}
}

func carveAt(g *Grid, cfg SynthConfig, pos geo.Point2D) {
	offsets := []geo.Point2D{
		{X: 0, Z: 0},
		{X: 0.5, Z: 0}, {X: -0.5, Z: 0},
		{X: 0, Z: 0.5}, {X: 0, Z: -0.5},
	}
	for _, off := range offsets {
		col := int(math.Floor(pos.X + off.X))
		row := int(math.Floor(pos.Z + off.Z))
		if row < 0 || row >= len(g.Cells) || col < 0 || col >= len(g.Cells[row]) {
			continue
		}
		c := &g.Cells[row][col]
		if c.Type == CellWater {
			continue
		}
		c.Type = CellRiver
		c.Elevation = math.Min(c.Elevation, cfg.WaterLevel)
	}
}
