package physics

// --- Axis-aligned rectangle ---
//
// Backs obstacles, the goal, and widget hit boxes.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Collides reports whether the particle's bounding square overlaps the
// rectangle. Bounds are inclusive, so touching counts.
func Collides(p *Particle, r Rect) bool {
	return p.Pos.X+p.Radius >= r.X && p.Pos.X-p.Radius <= r.X+r.W &&
		p.Pos.Y+p.Radius >= r.Y && p.Pos.Y-p.Radius <= r.Y+r.H
}
