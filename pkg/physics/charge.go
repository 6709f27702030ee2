package physics

import "image/color"

// --- Stationary point charge ---
type Charge struct {
	Pos    Vec2
	Val    int // signed charge, in slider units
	Mass   float64
	Radius float64
	Held   bool // being dragged by the mouse
}

// NewCharge places a stationary charge. A fresh charge starts held so
// it follows the cursor until the button is released.
func NewCharge(val int, pos Vec2) *Charge {
	return &Charge{
		Pos:    pos,
		Val:    val,
		Mass:   1,
		Radius: 10,
		Held:   true,
	}
}

func (c *Charge) Color() color.RGBA {
	switch {
	case c.Val > 0:
		return color.RGBA{255, 0, 0, 255}
	case c.Val < 0:
		return color.RGBA{0, 0, 255, 255}
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

// Hit tests a click against the charge's bounding square.
func (c *Charge) Hit(x, y float64) bool {
	return x >= c.Pos.X-c.Radius && x <= c.Pos.X+c.Radius &&
		y >= c.Pos.Y-c.Radius && y <= c.Pos.Y+c.Radius
}

// --- Controlled particle ---
//
// The single dynamic body. Mass and charge are overwritten from the
// sliders every frame; Start is the fixed launch point.
type Particle struct {
	Charge
	Vel   Vec2
	Acc   Vec2
	Start Vec2
}

func NewParticle(start Vec2) *Particle {
	return &Particle{
		Charge: Charge{Pos: start, Val: 1, Mass: 1, Radius: 10},
		Start:  start,
	}
}

// Step advances one frame of explicit Euler. Position moves on the
// previous velocity and velocity on the previous acceleration before
// the new force is folded in; the resulting one-frame lag between a
// force and its effect is part of the game's trajectories and the
// update order must not change.
func (p *Particle) Step(force Vec2) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel = p.Vel.Add(p.Acc)
	p.Acc = force.Mul(1 / p.Mass)
}

// Reset returns the particle to the launch point at rest.
func (p *Particle) Reset() {
	p.Pos = p.Start
	p.Vel = Vec2{}
	p.Acc = Vec2{}
}
