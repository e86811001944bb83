package sand

// Step advances the world by one tick. dt is the elapsed time in seconds and
// only drives fire decay; gravity accumulates a fixed amount per tick.
//
// Falling materials are scanned bottom-up so a particle that lands in a lower
// row is never revisited, with one sub-pass per material so denser materials
// settle a row before lighter ones. Fire is scanned top-down for the same
// reason in the opposite direction.
func (w *World) Step(dt float64) {
	g := w.grid
	cells := g.Cells()
	for i := range cells {
		cells[i].touched = false
	}
	w.loadRules()

	for y := g.H - 2; y >= 0; y-- {
		w.scanRow(y, Sand, w.updateSand)
		w.scanRow(y, Water, w.updateWater)
		w.scanRow(y, Oil, w.updateOil)
	}

	for y := 1; y < g.H; y++ {
		row := y * g.W
		for x := 0; x < g.W; x++ {
			c := &cells[row+x]
			if c.Material != Fire || c.touched {
				continue
			}
			w.evaluated(x, y, Fire)
			w.updateFire(x, y, dt)
		}
	}

	w.tick++
	w.refreshDisplay()
}

func (w *World) scanRow(y int, m Material, rule func(x, y int)) {
	cells := w.grid.Cells()
	row := y * w.grid.W
	for x := 0; x < w.grid.W; x++ {
		c := &cells[row+x]
		if c.Material != m || c.touched {
			continue
		}
		w.evaluated(x, y, m)
		rule(x, y)
	}
}

func (w *World) evaluated(x, y int, m Material) {
	if w.onEval != nil {
		w.onEval(x, y, m)
	}
}
