package sand

import (
	"testing"

	"github.com/burakssen/sandbox/internal/core"
)

func TestSandLeavesFirstRowOnTenthStep(t *testing.T) {
	world := newTestWorld(t, 1, 5)
	if world.Config().Params.GravitySand != 0.1 {
		t.Fatalf("default sand gravity = %f, scenario expects 0.1", world.Config().Params.GravitySand)
	}
	world.Paint(0, 0, Sand)

	for step := 1; step <= 9; step++ {
		world.Step(0.016)
		if materialAt(world, 0, 0) != Sand {
			t.Fatalf("sand left row 0 early, at step %d", step)
		}
	}
	world.Step(0.016)
	if materialAt(world, 0, 0) != Empty || materialAt(world, 0, 1) != Sand {
		t.Fatalf("after step 10 column = %v, want sand in row 1", world.Column(0))
	}
	if v := world.At(0, 1).Velocity; v < 1 {
		t.Fatalf("velocity after step 10 = %f, want >= 1", v)
	}
}

func TestEachCellEvaluatedOncePerStep(t *testing.T) {
	world := newTestWorld(t, 16, 16)
	rng := core.NewRNG(9)
	mats := []Material{Empty, Empty, Sand, Water, Oil, Stone}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			world.Paint(x, y, mats[int(rng.Range(0, float64(len(mats))))])
		}
	}
	// Lifetime is meaningless for falling materials, so it tags each cell
	// with an identity that travels through swaps.
	cells := world.Grid()
	for i := range cells {
		cells[i].Lifetime = float32(i + 1)
	}

	for tick := 0; tick < 60; tick++ {
		dynamic := 0
		for _, c := range world.Grid() {
			if c.Material.Falls() {
				dynamic++
			}
		}
		seen := map[float32]bool{}
		calls := 0
		world.onEval = func(x, y int, m Material) {
			calls++
			c := world.At(x, y)
			if c.Material != m {
				t.Fatalf("tick %d: evaluated %v at (%d,%d) holding %v", tick, m, x, y, c.Material)
			}
			if c.Touched() {
				t.Fatalf("tick %d: evaluated touched cell at (%d,%d)", tick, x, y)
			}
			if seen[c.Lifetime] {
				t.Fatalf("tick %d: cell %v evaluated twice", tick, c.Lifetime)
			}
			seen[c.Lifetime] = true
		}
		world.Step(0.016)
		if calls > dynamic {
			t.Fatalf("tick %d: %d evaluations for %d falling cells", tick, calls, dynamic)
		}
	}
}

func TestFireEvaluatedOncePerStep(t *testing.T) {
	world := newTestWorld(t, 12, 12)
	world.PaintRect(0, 4, 12, 12, Fire)
	// Fire only moves into Empty, so a position evaluated twice would mean
	// one fire cell was evaluated twice.
	for tick := 0; tick < 10; tick++ {
		seen := map[[2]int]bool{}
		world.onEval = func(x, y int, m Material) {
			if m != Fire {
				t.Fatalf("tick %d: unexpected %v evaluation", tick, m)
			}
			key := [2]int{x, y}
			if seen[key] {
				t.Fatalf("tick %d: fire at (%d,%d) evaluated twice", tick, x, y)
			}
			seen[key] = true
		}
		world.Step(0.05)
	}
}

func TestStoneNeverMoves(t *testing.T) {
	world := newTestWorld(t, 5, 5)
	world.Paint(2, 1, Stone)
	world.PaintRect(0, 0, 5, 1, Sand)
	world.Paint(2, 2, Fire)
	for i := 0; i < 100; i++ {
		world.Step(0.05)
		if materialAt(world, 2, 1) != Stone {
			t.Fatalf("stone moved at step %d", i)
		}
	}
}

func TestBottomRowIsNotScannedForGravity(t *testing.T) {
	world := newTestWorld(t, 3, 2)
	world.Paint(1, 1, Water)
	for i := 0; i < 50; i++ {
		world.Step(0.016)
	}
	if materialAt(world, 1, 1) != Water || world.At(1, 1).Velocity != 0 {
		t.Fatalf("bottom row water changed: %+v", world.At(1, 1))
	}
}

func TestResetReseedsDeterministically(t *testing.T) {
	run := func(world *World) []Cell {
		world.PaintRect(2, 0, 14, 4, Sand)
		world.PaintRect(0, 6, 16, 8, Water)
		world.PaintRect(4, 10, 12, 11, Oil)
		world.Paint(8, 12, Fire)
		for i := 0; i < 80; i++ {
			world.Step(0.03)
		}
		return append([]Cell(nil), world.Grid()...)
	}

	a := newTestWorld(t, 16, 16)
	b := newTestWorld(t, 16, 16)
	first := run(a)
	if got := run(b); !equalCells(first, got) {
		t.Fatal("same seed produced different grids")
	}

	a.Reset(0)
	if a.Tick() != 0 || a.Count(Empty) != 16*16 {
		t.Fatal("Reset did not clear the world")
	}
	if got := run(a); !equalCells(first, got) {
		t.Fatal("Reset(0) did not restore the configured seed")
	}
}

func equalCells(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
