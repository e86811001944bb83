package app

import (
	"flag"
	"testing"

	"github.com/burakssen/sandbox/internal/core"
	"github.com/burakssen/sandbox/internal/sims/sand"
)

func newSandSession(t *testing.T, radius int) (*Session, *sand.World) {
	t.Helper()
	world := sand.New(20, 10)
	return NewSession(world, 1, radius), world
}

func TestSessionKeysSelectBrushes(t *testing.T) {
	s, _ := newSandSession(t, 0)
	if !s.HandleKey('2') {
		t.Fatal("digit 2 should be bound")
	}
	if b, _ := s.Brush(); b.Value != uint8(sand.Water) {
		t.Fatalf("brush after '2' = %+v, want water", b)
	}
	if s.HandleKey('z') {
		t.Fatal("z should be unbound")
	}
	s.HandleKey(']')
	s.HandleKey(']')
	s.HandleKey('[')
	if s.Radius() != 1 {
		t.Fatalf("radius=%d, want 1", s.Radius())
	}
	s.SetRadius(1000)
	if s.Radius() != maxBrushRadius {
		t.Fatalf("radius=%d, want clamp to %d", s.Radius(), maxBrushRadius)
	}
}

func TestSessionStrokeFillsGaps(t *testing.T) {
	s, world := newSandSession(t, 0)
	s.HandleKey('4')
	s.Press(0, 5, false)
	s.Press(9, 5, false)
	s.Release()
	for x := 0; x <= 9; x++ {
		if world.At(x, 5).Material != sand.Stone {
			t.Fatalf("cell (%d,5) = %v, want stone", x, world.At(x, 5).Material)
		}
	}

	s.Press(15, 0, false)
	if world.At(9, 5).Material != sand.Stone || world.Count(sand.Stone) != 11 {
		t.Fatal("a new stroke must not connect to the previous one")
	}

	s.Press(15, 0, true)
	if world.At(15, 0).Material != sand.Empty {
		t.Fatal("erase should paint empty")
	}
}

func TestSessionPauseAndSingleStep(t *testing.T) {
	s, world := newSandSession(t, 0)
	if !s.Advance(0.016) || world.Tick() != 1 {
		t.Fatal("running session should step")
	}
	s.HandleKey(' ')
	if s.Advance(0.016) || world.Tick() != 1 {
		t.Fatal("paused session stepped")
	}
	s.HandleKey('n')
	if !s.Advance(0.016) || world.Tick() != 2 {
		t.Fatal("single step did not run while paused")
	}
	if s.Advance(0.016) {
		t.Fatal("single step ran twice")
	}
}

func TestSessionClearAndReset(t *testing.T) {
	s, world := newSandSession(t, 2)
	s.HandleKey('1')
	s.Press(10, 5, false)
	if world.Count(sand.Sand) != 13 {
		t.Fatalf("disc stamp painted %d cells, want 13", world.Count(sand.Sand))
	}
	s.HandleKey('c')
	if world.Count(sand.Empty) != 200 {
		t.Fatal("clear left material behind")
	}
	s.Press(3, 3, false)
	s.Advance(0.016)
	s.HandleKey('r')
	if world.Tick() != 0 || world.Count(sand.Empty) != 200 {
		t.Fatal("reset should clear the world")
	}
}

func TestScreenToGrid(t *testing.T) {
	size := core.Size{W: 10, H: 5}
	if x, y, ok := ScreenToGrid(13, 7, 4, size); !ok || x != 3 || y != 1 {
		t.Fatalf("ScreenToGrid = %d,%d,%v", x, y, ok)
	}
	if _, _, ok := ScreenToGrid(40, 0, 4, size); ok {
		t.Fatal("pixel past the grid should be rejected")
	}
	if _, _, ok := ScreenToGrid(-1, 0, 4, size); ok {
		t.Fatal("negative pixel should be rejected")
	}
}

func TestConfigSimOptions(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "64", "-seed", "5", "-tuning", "t.yaml"}); err != nil {
		t.Fatal(err)
	}
	opts := cfg.SimOptions()
	if opts["w"] != "64" || opts["seed"] != "5" || opts["tuning"] != "t.yaml" {
		t.Fatalf("unexpected options %v", opts)
	}
	if _, ok := opts["h"]; ok {
		t.Fatal("unset height should not be passed")
	}
}
