//go:build ebiten

package app

import (
	"image/color"

	"github.com/burakssen/sandbox/internal/core"
	"github.com/burakssen/sandbox/internal/render"
	"github.com/burakssen/sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int
	chars    []rune
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	var palette []color.RGBA
	if p, ok := sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	session := NewSession(sim, cfg.Seed, cfg.Brush)
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H, palette),
		hud:      ui.NewHUD(sim, cfg.HUD),
		overlay:  ui.NewOverlay(session, cfg.Scale),
		scale:    cfg.Scale,
		hudWidth: cfg.HUD,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.session.HandleKey(r)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.session.SetRadius(g.session.Radius() + 1)
		} else {
			g.session.SetRadius(g.session.Radius() - 1)
		}
	}

	g.handleMouse()
	g.hud.Update(g.gridPixelWidth())
	g.overlay.Update()

	g.session.Advance(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		g.session.Release()
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := ScreenToGrid(mx, my, g.scale, g.session.Sim().Size())
	if !ok {
		g.session.Release()
		return
	}
	g.session.Press(x, y, right)
}

func (g *Game) gridPixelWidth() int {
	return g.session.Sim().Size().W * g.scale
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim().Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridPixelWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return s.W*g.scale + max(g.hudWidth, 0), s.H * g.scale
}
