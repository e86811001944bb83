package sand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedRand returns the same draws forever, pinning every probabilistic branch.
type fixedRand struct {
	f float64
	b bool
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Bool() bool       { return r.b }

func (r fixedRand) Range(lo, hi float64) float64 { return lo + r.f*(hi-lo) }

func newTestWorld(t *testing.T, w, h int) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 42
	world, err := NewWithConfig(cfg)
	require.NoError(t, err)
	return world
}

func newFixedWorld(t *testing.T, w, h int, r fixedRand) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	world, err := NewWithRand(cfg, r)
	require.NoError(t, err)
	return world
}

func materialAt(w *World, x, y int) Material { return w.At(x, y).Material }
