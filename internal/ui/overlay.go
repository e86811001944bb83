//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/burakssen/sandbox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BrushState is the driver state the overlay reports on.
type BrushState interface {
	Sim() core.Sim
	Brush() (core.Brush, bool)
	Radius() int
	Status() string
}

type tickCounter interface {
	Tick() uint64
}

// Overlay draws the brush cursor and a status line on top of the grid.
type Overlay struct {
	state      BrushState
	scale      int
	showStatus bool
	palette    []color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(state BrushState, scale int) *Overlay {
	o := &Overlay{state: state, scale: max(scale, 1), showStatus: true}
	if p, ok := state.Sim().(core.PaletteProvider); ok {
		o.palette = p.Palette()
	}
	return o
}

// Update toggles the status line with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.state.Sim().Size()
	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 && mx < size.W*o.scale && my < size.H*o.scale {
		o.drawCursor(screen, mx/o.scale, my/o.scale)
	}
	if !o.showStatus {
		return
	}
	status := o.state.Status()
	if tc, ok := o.state.Sim().(tickCounter); ok {
		status = fmt.Sprintf("%s  tick:%d  tps:%.0f", status, tc.Tick(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrint(screen, status)
}

func (o *Overlay) drawCursor(screen *ebiten.Image, cx, cy int) {
	r := o.state.Radius()
	s := float32(o.scale)
	x := float32(cx-r) * s
	y := float32(cy-r) * s
	side := float32(2*r+1) * s

	outline := color.RGBA{R: 230, G: 230, B: 230, A: 200}
	if b, ok := o.state.Brush(); ok && int(b.Value) < len(o.palette) {
		c := o.palette[b.Value]
		outline = color.RGBA{R: c.R, G: c.G, B: c.B, A: 220}
	}
	vector.StrokeRect(screen, x, y, side, side, 1, outline, false)
}
