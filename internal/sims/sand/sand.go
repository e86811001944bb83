// Package sand implements a falling-sand cellular automaton: sand, water and
// oil fall and displace each other by density, stone stays put and fire rises,
// spreads, ignites oil and burns out.
package sand

import (
	"fmt"

	"github.com/burakssen/sandbox/internal/core"
)

// Rand is the randomness the material rules draw from. *core.RNG satisfies
// it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Bool() bool
	Range(lo, hi float64) float64
}

// World owns the grid and advances it one tick per Step.
type World struct {
	cfg Config

	grid    *core.Grid[Cell]
	display []uint8

	rng     Rand
	ownsRNG bool

	rules [3]fallRule
	tick  uint64

	// onEval observes every rule evaluation; nil outside tests.
	onEval func(x, y int, m Material)
}

// New returns a sand world with the provided dimensions using defaults. It
// panics when w or h is not positive.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	world, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return world
}

// NewWithConfig returns a world seeded from cfg.Seed.
func NewWithConfig(cfg Config) (*World, error) {
	return NewWithRand(cfg, nil)
}

// NewWithRand returns a world drawing randomness from rng. Reset leaves an
// injected source untouched; a nil rng gets a generator seeded from cfg.Seed
// that Reset reseeds.
func NewWithRand(cfg Config, rng Rand) (*World, error) {
	grid, err := core.NewGrid[Cell](cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("sand world: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	owns := rng == nil
	if owns {
		rng = core.NewRNG(cfg.Seed)
	}
	return &World{
		cfg:     cfg,
		grid:    grid,
		display: make([]uint8, cfg.Width*cfg.Height),
		rng:     rng,
		ownsRNG: owns,
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Tick returns the number of completed steps since construction or Reset.
func (w *World) Tick() uint64 { return w.tick }

// Reset clears the grid and, when the world owns its generator, reseeds it.
// A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if w.ownsRNG {
		w.rng = core.NewRNG(effective)
	}
	w.tick = 0
	w.Clear()
}

func init() {
	core.Register("sand", func(opts map[string]string) (core.Sim, error) {
		cfg := FromMap(opts)
		if path := opts["tuning"]; path != "" {
			if err := LoadTuning(path, &cfg); err != nil {
				return nil, err
			}
		}
		return NewWithConfig(cfg)
	})
}
