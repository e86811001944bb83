package core

import "testing"

func TestRNGDeterministicForSeed(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}

func TestRNGRangeBounds(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 4)
		if v < 2 || v >= 4 {
			t.Fatalf("Range(2,4) produced %f", v)
		}
	}
	if got := r.Range(5, 5); got != 5 {
		t.Fatalf("empty range returned %f, want lower bound", got)
	}
}
