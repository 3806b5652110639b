package layout

import (
	"math"

	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/rng"
)

// BlockRef addresses one candidate block of a grid or mixed layout in
// block coordinates relative to the settlement center.
type BlockRef struct {
	I        int `json:"i"`
	J        int `json:"j"`
	Failures int `json:"failures"`
}

// BlockPool is a shuffled pool of candidate blocks the placement
// engine samples from. Failing blocks drift to the back of the pool
// and are evicted entirely once saturated, so the search stops wasting
// attempts on full blocks.
type BlockPool struct {
	Blocks  []BlockRef `json:"blocks"`
	Spacing float64    `json:"spacing"`
}

func newBlockPool(src *rng.Source, radius, spacing float64) *BlockPool {
	pool := &BlockPool{Spacing: spacing}
	if spacing <= 0 {
		return pool
	}
	kmax := int(radius / spacing)
	for i := -kmax; i <= kmax; i++ {
		for j := -kmax; j <= kmax; j++ {
			cx := (float64(i) + 0.5) * spacing
			cz := (float64(j) + 0.5) * spacing
			if math.Hypot(cx, cz) <= radius-spacing/2 {
				pool.Blocks = append(pool.Blocks, BlockRef{I: i, J: j})
			}
		}
	}
	rng.Shuffle(src, pool.Blocks)
	return pool
}

// BlockCenter maps a block's integer coordinates to world space using
// the settlement center and main axis.
func (p *BlockPool) BlockCenter(ref BlockRef, center geo.Point2D, axis float64) geo.Point2D {
	local := geo.Pt(
		(float64(ref.I)+0.5)*p.Spacing,
		(float64(ref.J)+0.5)*p.Spacing,
	)
	return center.Add(local.Rotate(axis))
}

// Sample picks one of the first window blocks. Because failures push
// blocks backwards, recently failing blocks fall out of the window and
// are revisited less.
func (p *BlockPool) Sample(src *rng.Source, window int) (int, BlockRef, bool) {
	if p == nil || len(p.Blocks) == 0 {
		return 0, BlockRef{}, false
	}
	if window > len(p.Blocks) {
		window = len(p.Blocks)
	}
	idx := src.IntN(window)
	return idx, p.Blocks[idx], true
}

// Fail records a failed placement attempt against the block at idx.
// The block moves to the back of the pool, or out of it entirely once
// its failures exceed maxBlockFailures.
func (p *BlockPool) Fail(idx int) {
	if p == nil || idx < 0 || idx >= len(p.Blocks) {
		return
	}
	b := p.Blocks[idx]
	b.Failures++
	p.Blocks = append(p.Blocks[:idx], p.Blocks[idx+1:]...)
	if b.Failures > maxBlockFailures {
		return
	}
	p.Blocks = append(p.Blocks, b)
}
