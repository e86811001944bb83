package core

// StampDisc paints value into every cell within radius r of (cx, cy). A
// non-positive radius paints the centre cell only.
func StampDisc(p Painter, cx, cy, r int, value uint8) {
	if r <= 0 {
		p.PaintValue(cx, cy, value)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				p.PaintValue(cx+dx, cy+dy, value)
			}
		}
	}
}
