package sand

// Width returns the number of columns.
func (w *World) Width() int { return w.grid.W }

// Height returns the number of rows.
func (w *World) Height() int { return w.grid.H }

// Grid exposes the cell array in row-major order. Callers must not mutate it.
func (w *World) Grid() []Cell { return w.grid.Cells() }

// At returns the cell at (x, y). Out of range coordinates yield an Empty cell.
func (w *World) At(x, y int) Cell {
	if !w.grid.InBounds(x, y) {
		return Cell{}
	}
	return *w.grid.At(x, y)
}

// Cells exposes the per-cell material values for renderers.
func (w *World) Cells() []uint8 { return w.display }

// Paint replaces the cell at (x, y) with a fresh cell of material m. Fire
// receives a random lifetime. Out of range coordinates and unknown materials
// are ignored.
func (w *World) Paint(x, y int, m Material) {
	if !w.grid.InBounds(x, y) || !m.Valid() {
		return
	}
	c := Cell{Material: m}
	if m == Fire {
		c.Lifetime = w.fireLifetime()
	}
	i := w.grid.Index(x, y)
	w.grid.Cells()[i] = c
	w.display[i] = uint8(m)
}

// PaintValue paints using a raw material value, as drivers hold them.
func (w *World) PaintValue(x, y int, value uint8) { w.Paint(x, y, Material(value)) }

// Clear resets every cell to Empty.
func (w *World) Clear() {
	w.grid.Fill(Cell{})
	for i := range w.display {
		w.display[i] = uint8(Empty)
	}
}

// swap exchanges the full state of two cells, touched flag included.
func (w *World) swap(i, j int) {
	w.grid.Swap(i, j)
}

func (w *World) refreshDisplay() {
	for i, c := range w.grid.Cells() {
		w.display[i] = uint8(c.Material)
	}
}

func (w *World) fireLifetime() float32 {
	p := &w.cfg.Params
	return float32(w.rng.Range(p.FireLifetimeMin, p.FireLifetimeMax))
}
