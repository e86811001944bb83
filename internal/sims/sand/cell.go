package sand

// Cell is the state of one grid position. Velocity applies to falling
// materials and Lifetime to fire; both are zero for every other material.
type Cell struct {
	Material Material
	touched  bool
	Velocity float32
	Lifetime float32
}

// Touched reports whether the cell was evaluated or moved during the current
// tick.
func (c Cell) Touched() bool { return c.touched }
