// Package term drives a simulation inside a terminal. Each terminal cell shows
// two grid rows using the upper half block: the foreground colors the top row
// and the background the bottom row. The last terminal row is a status line.
package term

import (
	"context"
	"image/color"
	"time"

	"github.com/burakssen/sandbox/internal/app"
	"github.com/burakssen/sandbox/internal/core"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// GridSize returns the grid dimensions that fill a terminal of cols×rows.
func GridSize(cols, rows int) core.Size {
	return core.Size{W: max(cols, 1), H: max(2*(rows-1), 2)}
}

// Driver owns the terminal screen and the session it presents.
type Driver struct {
	screen  tcell.Screen
	session *app.Session
	timer   *core.FixedStep
	styles  []tcell.Color
	status  tcell.Style
}

// New constructs a driver. The screen must already be initialized.
func New(screen tcell.Screen, session *app.Session, tps int) *Driver {
	d := &Driver{
		screen:  screen,
		session: session,
		timer:   core.NewFixedStep(tps),
		status:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	if p, ok := session.Sim().(core.PaletteProvider); ok {
		d.styles = colorsFor(p.Palette())
	}
	return d
}

func colorsFor(palette []color.RGBA) []tcell.Color {
	out := make([]tcell.Color, len(palette))
	for i, c := range palette {
		out[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return out
}

// Run processes input and steps the simulation until the user quits or ctx is
// cancelled. Input is polled on its own goroutine; all simulation access
// happens on the caller's goroutine.
func (d *Driver) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d.screen.EnableMouse()
	events := make(chan tcell.Event, 64)
	go pollEvents(ctx, d.screen, events)

	ticker := time.NewTicker(d.timer.Step())
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !d.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if d.timer.ShouldStep() {
				d.session.Advance(d.timer.DT())
			}
			d.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx is
// done. events is closed only when the screen stops delivering.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (d *Driver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		d.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

// handleKey applies a key press and reports whether the driver keeps running.
func (d *Driver) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		if r == 'q' || r == 'Q' {
			return false
		}
		d.session.HandleKey(r)
	}
	return true
}

func (d *Driver) handleMouse(col, row int, buttons tcell.ButtonMask) {
	switch {
	case buttons&tcell.WheelUp != 0:
		d.session.SetRadius(d.session.Radius() + 1)
		return
	case buttons&tcell.WheelDown != 0:
		d.session.SetRadius(d.session.Radius() - 1)
		return
	}
	left := buttons&tcell.Button1 != 0
	right := buttons&tcell.Button2 != 0
	if !left && !right {
		d.session.Release()
		return
	}
	size := d.session.Sim().Size()
	x, y := col, row*2
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		d.session.Release()
		return
	}
	d.session.Press(x, y, right)
}

// Draw renders the grid and status line and shows the screen.
func (d *Driver) Draw() {
	sim := d.session.Sim()
	size := sim.Size()
	cells := sim.Cells()
	cols, rows := d.screen.Size()
	gridRows := rows - 1

	for row := 0; row < gridRows && row*2 < size.H; row++ {
		for x := 0; x < cols && x < size.W; x++ {
			top := d.colorOf(cells[row*2*size.W+x])
			bottom := tcell.ColorBlack
			if row*2+1 < size.H {
				bottom = d.colorOf(cells[(row*2+1)*size.W+x])
			}
			d.screen.SetContent(x, row, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}

	status := []rune(d.session.Status() + "  [0-5] brush  [ ] size  space pause  n step  c clear  q quit")
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		d.screen.SetContent(x, rows-1, r, nil, d.status)
	}
	d.screen.Show()
}

func (d *Driver) colorOf(v uint8) tcell.Color {
	if int(v) < len(d.styles) {
		return d.styles[v]
	}
	return tcell.ColorGray
}
