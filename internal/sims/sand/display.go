package sand

import (
	"image/color"

	"github.com/burakssen/sandbox/internal/core"
)

var sandPalette = [materialCount]color.RGBA{
	Empty: {R: 12, G: 12, B: 16, A: 255},
	Sand:  {R: 214, G: 180, B: 110, A: 255},
	Water: {R: 48, G: 110, B: 220, A: 255},
	Oil:   {R: 92, G: 62, B: 30, A: 255},
	Stone: {R: 128, G: 128, B: 132, A: 255},
	Fire:  {R: 255, G: 110, B: 30, A: 255},
}

// Palette exposes the color palette indexed by material value.
func (w *World) Palette() []color.RGBA {
	return sandPalette[:]
}

// Brushes lists the paintable materials with their number-key shortcuts.
func (w *World) Brushes() []core.Brush {
	return []core.Brush{
		{Value: uint8(Sand), Label: "Sand", Key: '1'},
		{Value: uint8(Water), Label: "Water", Key: '2'},
		{Value: uint8(Oil), Label: "Oil", Key: '3'},
		{Value: uint8(Stone), Label: "Stone", Key: '4'},
		{Value: uint8(Fire), Label: "Fire", Key: '5'},
		{Value: uint8(Empty), Label: "Erase", Key: '0'},
	}
}
