package layout

import (
	"testing"

	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/rng"
)

func TestNewBlockPoolInsideRadius(t *testing.T) {
	src := rng.New(5)
	pool := newBlockPool(src, 100, 30)
	if len(pool.Blocks) == 0 {
		t.Fatal("expected blocks for a 100m radius at 30m spacing")
	}
	for _, ref := range pool.Blocks {
		c := pool.BlockCenter(ref, geo.Pt(0, 0), 0)
		if d := c.Length(); d > 100 {
			t.Errorf("block (%d,%d) center %.1f m out, beyond the radius", ref.I, ref.J, d)
		}
		if ref.Failures != 0 {
			t.Errorf("block (%d,%d) starts with %d failures, want 0", ref.I, ref.J, ref.Failures)
		}
	}
}

func TestBlockCenterFollowsAxis(t *testing.T) {
	pool := &BlockPool{Spacing: 30}
	ref := BlockRef{I: 1, J: 0}

	c := pool.BlockCenter(ref, geo.Pt(10, 20), 0)
	if c.X != 55 || c.Z != 35 {
		t.Errorf("unrotated center = %+v, want (55,35)", c)
	}

	// Rotating the axis keeps the block at the same distance.
	r := pool.BlockCenter(ref, geo.Pt(10, 20), 1.1)
	want := c.Sub(geo.Pt(10, 20)).Length()
	got := r.Sub(geo.Pt(10, 20)).Length()
	if diff := want - got; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("rotated distance %.6f, want %.6f", got, want)
	}
}

func TestPoolSampleStaysInWindow(t *testing.T) {
	src := rng.New(3)
	pool := &BlockPool{Spacing: 30}
	for i := 0; i < 30; i++ {
		pool.Blocks = append(pool.Blocks, BlockRef{I: i})
	}
	for i := 0; i < 200; i++ {
		idx, _, ok := pool.Sample(src, 10)
		if !ok {
			t.Fatal("sample from populated pool should succeed")
		}
		if idx >= 10 {
			t.Fatalf("sampled index %d outside window 10", idx)
		}
	}
}

func TestPoolSampleEmpty(t *testing.T) {
	src := rng.New(3)
	var pool *BlockPool
	if _, _, ok := pool.Sample(src, 10); ok {
		t.Error("nil pool should not sample")
	}
	if _, _, ok := (&BlockPool{}).Sample(src, 10); ok {
		t.Error("empty pool should not sample")
	}
}

func TestPoolFailMovesBlockBack(t *testing.T) {
	pool := &BlockPool{
		Spacing: 30,
		Blocks:  []BlockRef{{I: 0}, {I: 1}, {I: 2}},
	}
	pool.Fail(0)
	if len(pool.Blocks) != 3 {
		t.Fatalf("pool size = %d, want 3", len(pool.Blocks))
	}
	if pool.Blocks[0].I != 1 || pool.Blocks[2].I != 0 {
		t.Errorf("after fail, order = %v, want failed block at the back", pool.Blocks)
	}
	if pool.Blocks[2].Failures != 1 {
		t.Errorf("failures = %d, want 1", pool.Blocks[2].Failures)
	}
}

func TestPoolFailEvictsSaturatedBlock(t *testing.T) {
	pool := &BlockPool{Spacing: 30, Blocks: []BlockRef{{I: 0}}}
	for i := 0; i <= maxBlockFailures; i++ {
		pool.Fail(0)
	}
	if len(pool.Blocks) != 0 {
		t.Errorf("block should be evicted after %d failures, pool = %v", maxBlockFailures+1, pool.Blocks)
	}
}
