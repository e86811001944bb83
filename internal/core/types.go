package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Step advances one tick; dt is the elapsed wall time in seconds.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(dt float64)
	Cells() []uint8
}

// Painter is implemented by sims that accept brush strokes from a driver.
type Painter interface {
	PaintValue(x, y int, value uint8)
	Clear()
}

// PaletteProvider maps the values returned by Sim.Cells to colors.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Brush describes one paintable value offered on a toolbar.
type Brush struct {
	Value uint8
	Label string
	Key   rune
}

// BrushProvider lists the paintable values in toolbar order.
type BrushProvider interface {
	Brushes() []Brush
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
