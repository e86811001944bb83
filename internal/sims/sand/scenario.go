package sand

// Count returns the number of cells holding m.
func (w *World) Count(m Material) int {
	n := 0
	for _, c := range w.grid.Cells() {
		if c.Material == m {
			n++
		}
	}
	return n
}

// Column returns the materials of column x from top to bottom.
func (w *World) Column(x int) []Material {
	if x < 0 || x >= w.grid.W {
		return nil
	}
	col := make([]Material, w.grid.H)
	for y := range col {
		col[y] = w.grid.At(x, y).Material
	}
	return col
}

// Stratified reports whether column x never holds a denser material above a
// lighter one.
func (w *World) Stratified(x int) bool {
	if x < 0 || x >= w.grid.W {
		return false
	}
	prev := -1
	for y := 0; y < w.grid.H; y++ {
		d := w.grid.At(x, y).Material.Density()
		if d < prev {
			return false
		}
		prev = d
	}
	return true
}

// AllStratified reports whether every column is stratified.
func (w *World) AllStratified() bool {
	for x := 0; x < w.grid.W; x++ {
		if !w.Stratified(x) {
			return false
		}
	}
	return true
}

// PaintRect paints the rectangle [x0,x1)×[y0,y1), clipped to the grid.
func (w *World) PaintRect(x0, y0, x1, y1 int, m Material) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			w.Paint(x, y, m)
		}
	}
}

// SeedLayers stacks layers top to bottom, each depth rows deep, in columns
// [x0, x1) starting at the top row, and closes the floor with stone.
func (w *World) SeedLayers(x0, x1, depth int, layers ...Material) {
	for i, m := range layers {
		w.PaintRect(x0, i*depth, x1, (i+1)*depth, m)
	}
	w.PaintRect(0, w.grid.H-1, w.grid.W, w.grid.H, Stone)
}

// SeedInvertedLayers stacks sand over water over oil. It is the worst case
// for density sorting.
func (w *World) SeedInvertedLayers(x0, x1, depth int) {
	w.SeedLayers(x0, x1, depth, Sand, Water, Oil)
}

// RunUntilStratified steps until every column is stratified or maxTicks is
// reached. It returns the ticks taken and whether stratification happened.
func (w *World) RunUntilStratified(maxTicks int, dt float64) (int, bool) {
	for i := 0; i < maxTicks; i++ {
		if w.AllStratified() {
			return i, true
		}
		w.Step(dt)
	}
	return maxTicks, w.AllStratified()
}
