package sand

const (
	ruleSand = iota
	ruleWater
	ruleOil
)

// fallRule carries the gravity constants of one falling material.
type fallRule struct {
	gravity          float32
	maxVelocity      float32
	diagonalVelocity float32
	// passable lists what the material sinks through.
	passable materialSet
}

func (w *World) loadRules() {
	p := &w.cfg.Params
	w.rules[ruleSand] = fallRule{float32(p.GravitySand), float32(p.MaxVelocitySand), float32(p.DiagonalVelocitySand), sandPassable}
	w.rules[ruleWater] = fallRule{float32(p.GravityWater), float32(p.MaxVelocityWater), float32(p.DiagonalVelocityWater), waterPassable}
	w.rules[ruleOil] = fallRule{float32(p.GravityOil), float32(p.MaxVelocityOil), float32(p.DiagonalVelocityOil), emptyOnly}
}

func (w *World) updateSand(x, y int) {
	r := w.rules[ruleSand]
	if w.fall(x, y, r) || !w.blockedBelow(x, y, r.passable) {
		return
	}
	if w.tryMove(x, y, x+w.side(), y+1, r.passable, r.diagonalVelocity) {
		return
	}
	w.grid.At(x, y).Velocity = 0
}

func (w *World) updateWater(x, y int) {
	w.updateLiquid(x, y, w.rules[ruleWater])
}

func (w *World) updateOil(x, y int) {
	g := w.grid
	c := g.At(x, y)
	c.touched = true
	if w.nextTo(x, y, Fire) {
		*c = Cell{Material: Fire, Lifetime: w.fireLifetime(), touched: true}
		return
	}
	if y+1 < g.H && g.At(x, y+1).Material == Water {
		c.Velocity = 0
		w.tryMove(x, y, x+w.side(), y, emptyOnly, 0)
		return
	}
	w.updateLiquid(x, y, w.rules[ruleOil])
}

// updateLiquid falls, then slides diagonally, then spreads sideways.
func (w *World) updateLiquid(x, y int, r fallRule) {
	if w.fall(x, y, r) || !w.blockedBelow(x, y, r.passable) {
		return
	}
	if w.tryMove(x, y, x+w.side(), y+1, r.passable, r.diagonalVelocity) {
		return
	}
	if w.tryMove(x, y, x+w.side(), y, emptyOnly, 0) {
		return
	}
	w.grid.At(x, y).Velocity = 0
}

// fall accelerates the cell at (x, y) and drops it as far as its velocity
// carries it through passable cells. It reports whether the cell moved.
func (w *World) fall(x, y int, r fallRule) bool {
	g := w.grid
	src := g.Index(x, y)
	c := &g.Cells()[src]
	c.touched = true

	v := c.Velocity + r.gravity
	if v > r.maxVelocity {
		v = r.maxVelocity
	}
	c.Velocity = v

	target := y + int(v)
	if target > g.H-1 {
		target = g.H - 1
	}
	landing := y
	for ny := y + 1; ny <= target; ny++ {
		if !r.passable.has(g.At(x, ny).Material) {
			break
		}
		landing = ny
	}
	if landing == y {
		return false
	}
	w.swap(src, g.Index(x, landing))
	return true
}

// blockedBelow reports whether the cell under (x, y) stops a fall. A particle
// that is slower than one cell per tick over a passable cell is not blocked;
// it keeps its velocity and waits.
func (w *World) blockedBelow(x, y int, passable materialSet) bool {
	if y+1 >= w.grid.H {
		return true
	}
	return !passable.has(w.grid.At(x, y+1).Material)
}

// tryMove swaps the cell at (x, y) into (nx, ny) when the destination holds a
// material from set. The moving cell's velocity becomes v.
func (w *World) tryMove(x, y, nx, ny int, set materialSet, v float32) bool {
	g := w.grid
	if !g.InBounds(nx, ny) {
		return false
	}
	dst := g.Index(nx, ny)
	cells := g.Cells()
	if !set.has(cells[dst].Material) {
		return false
	}
	src := g.Index(x, y)
	cells[src].Velocity = v
	w.swap(src, dst)
	return true
}

func (w *World) side() int {
	if w.rng.Bool() {
		return 1
	}
	return -1
}

func (w *World) nextTo(x, y int, m Material) bool {
	return w.At(x-1, y).Material == m ||
		w.At(x+1, y).Material == m ||
		w.At(x, y-1).Material == m ||
		w.At(x, y+1).Material == m
}

// updateFire burns down the fire at (x, y), then lets it rise or drift.
func (w *World) updateFire(x, y int, dt float64) {
	p := &w.cfg.Params
	c := w.grid.At(x, y)
	c.touched = true

	c.Lifetime -= float32(dt * (1 + w.rng.Float64()))
	if c.Lifetime <= 0 || (float64(c.Lifetime) < p.FireFlickerThreshold && w.rng.Float64() < p.FireFlickerChance) {
		*c = Cell{touched: true}
		return
	}

	nx, ny := x, y
	if w.rng.Float64() < p.FireRiseChance && w.tryMove(x, y, x, y-1, emptyOnly, 0) {
		ny = y - 1
	} else if w.rng.Float64() < p.FireSpreadChance {
		dx := w.side()
		if w.tryMove(x, y, x+dx, y, emptyOnly, 0) {
			nx = x + dx
		}
	}

	cur := w.grid.At(nx, ny)
	if float64(cur.Lifetime) < p.FireSmokeThreshold && w.rng.Float64() < p.FireSmokeChance {
		*cur = Cell{touched: true}
	}
}
