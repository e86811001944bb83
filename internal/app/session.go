package app

import (
	"fmt"

	"github.com/burakssen/sandbox/internal/core"
)

const maxBrushRadius = 32

// Session holds the driver-side state shared by every front-end: the selected
// brush, pause state and the stroke in progress. It is not safe for concurrent
// use; drivers call it from the goroutine that steps the sim.
type Session struct {
	sim     core.Sim
	painter core.Painter
	brushes []core.Brush

	brush  int
	radius int

	paused   bool
	tickOnce bool
	seed     int64

	stroking     bool
	lastX, lastY int
}

// NewSession wraps sim for interactive use.
func NewSession(sim core.Sim, seed int64, radius int) *Session {
	s := &Session{sim: sim, seed: seed}
	if p, ok := sim.(core.Painter); ok {
		s.painter = p
	}
	if bp, ok := sim.(core.BrushProvider); ok {
		s.brushes = bp.Brushes()
	}
	s.SetRadius(radius)
	return s
}

// Sim returns the wrapped simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Brushes lists the available brushes.
func (s *Session) Brushes() []core.Brush { return s.brushes }

// Brush returns the selected brush. ok is false when the sim is not paintable.
func (s *Session) Brush() (core.Brush, bool) {
	if len(s.brushes) == 0 {
		return core.Brush{}, false
	}
	return s.brushes[s.brush], true
}

// SelectBrush selects the brush at index i.
func (s *Session) SelectBrush(i int) bool {
	if i < 0 || i >= len(s.brushes) {
		return false
	}
	s.brush = i
	return true
}

// Radius returns the brush radius in cells.
func (s *Session) Radius() int { return s.radius }

// SetRadius sets the brush radius, clamped to [0, maxBrushRadius].
func (s *Session) SetRadius(r int) {
	s.radius = max(0, min(r, maxBrushRadius))
}

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// HandleKey applies a typed character. It reports whether the key was bound.
func (s *Session) HandleKey(r rune) bool {
	for i, b := range s.brushes {
		if b.Key == r {
			s.brush = i
			return true
		}
	}
	switch r {
	case ' ':
		s.paused = !s.paused
	case 'n', 'N':
		s.tickOnce = true
	case 'c', 'C':
		if s.painter != nil {
			s.painter.Clear()
		}
	case 'r', 'R':
		s.sim.Reset(s.seed)
	case '[':
		s.SetRadius(s.radius - 1)
	case ']':
		s.SetRadius(s.radius + 1)
	default:
		return false
	}
	return true
}

// Advance steps the sim once unless paused. A pending single step runs even
// while paused.
func (s *Session) Advance(dt float64) bool {
	if s.paused && !s.tickOnce {
		return false
	}
	s.sim.Step(dt)
	s.tickOnce = false
	return true
}

// Press paints at grid cell (x, y) and starts or continues a stroke. erase
// paints Empty regardless of the selected brush.
func (s *Session) Press(x, y int, erase bool) {
	value, ok := s.strokeValue(erase)
	if !ok {
		return
	}
	if !s.stroking {
		s.lastX, s.lastY = x, y
		s.stroking = true
	}
	s.line(s.lastX, s.lastY, x, y, value)
	s.lastX, s.lastY = x, y
}

// Release ends the current stroke.
func (s *Session) Release() { s.stroking = false }

func (s *Session) strokeValue(erase bool) (uint8, bool) {
	if s.painter == nil {
		return 0, false
	}
	if erase {
		return 0, true
	}
	b, ok := s.Brush()
	return b.Value, ok
}

// line stamps the brush along the Bresenham line between two cells so fast
// mouse motion leaves no gaps.
func (s *Session) line(x0, y0, x1, y1 int, value uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.stamp(x0, y0, value)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (s *Session) stamp(cx, cy int, value uint8) {
	core.StampDisc(s.painter, cx, cy, s.radius, value)
}

// Status summarizes the session for status lines.
func (s *Session) Status() string {
	label := "-"
	if b, ok := s.Brush(); ok {
		label = b.Label
	}
	state := "running"
	if s.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  brush:%s r=%d  %s", s.sim.Name(), label, s.radius, state)
}

// ScreenToGrid maps a pixel position to a grid cell for the given scale. ok
// is false outside the grid.
func ScreenToGrid(px, py, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	return x, y, x < size.W && y < size.H
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
