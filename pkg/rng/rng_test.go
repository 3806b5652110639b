package rng

import (
	"math"
	"testing"
)

func TestNextDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("draw %d diverged: %v vs %v", i, va, vb)
		}
	}
}

func TestNextRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 100 {
		t.Error("expected different seeds to produce different streams")
	}
}

func TestReseedReplaysStream(t *testing.T) {
	s := New(99)
	first := make([]float64, 50)
	for i := range first {
		first[i] = s.Next()
	}
	s.Reseed(99)
	for i := range first {
		if v := s.Next(); v != first[i] {
			t.Fatalf("draw %d after reseed: expected %v, got %v", i, first[i], v)
		}
	}
}

func TestIntN(t *testing.T) {
	s := New(3)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.IntN(5)
		if v < 0 || v >= 5 {
			t.Fatalf("IntN(5) returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected all 5 values over 1000 draws, saw %d", len(seen))
	}
	if s.IntN(0) != 0 {
		t.Error("IntN(0) should return 0")
	}
	if s.IntN(-3) != 0 {
		t.Error("IntN(-3) should return 0")
	}
}

func TestRangeBounds(t *testing.T) {
	s := New(11)
	for i := 0; i < 1000; i++ {
		v := s.Range(-4, 9)
		if v < -4 || v >= 9 {
			t.Fatalf("Range(-4,9) returned %v", v)
		}
	}
}

func TestAngleBounds(t *testing.T) {
	s := New(5)
	for i := 0; i < 1000; i++ {
		a := s.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle returned %v", a)
		}
	}
}

func TestProbExtremes(t *testing.T) {
	s := New(8)
	for i := 0; i < 100; i++ {
		if s.Prob(0) {
			t.Fatal("Prob(0) returned true")
		}
		if !s.Prob(1.0) {
			t.Fatal("Prob(1.0) returned false")
		}
	}
}

func TestPick(t *testing.T) {
	s := New(21)
	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		seen[Pick(s, items)] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all 3 items picked over 300 draws, saw %d", len(seen))
	}
	if v := Pick(s, []string(nil)); v != "" {
		t.Errorf("expected zero value from empty pick, got %q", v)
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	s := New(17)
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := Shuffled(s, in)

	if len(out) != len(in) {
		t.Fatalf("expected %d elements, got %d", len(in), len(out))
	}
	counts := make(map[int]int)
	for _, v := range out {
		counts[v]++
	}
	for _, v := range in {
		if counts[v] != 1 {
			t.Errorf("element %d appears %d times", v, counts[v])
		}
	}
	// Original must be untouched.
	for i, v := range in {
		if v != i+1 {
			t.Errorf("input mutated at %d: %d", i, v)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := New(123)
	b := New(123)
	xs := Shuffled(a, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	ys := Shuffled(b, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	for i := range xs {
		if xs[i] != ys[i] {
			t.Fatalf("shuffles diverged at %d: %d vs %d", i, xs[i], ys[i])
		}
	}
}
