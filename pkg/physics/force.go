package physics

import "math"

type ForceKind int

const (
	Electrostatic ForceKind = iota
	Gravitational
)

// --- Tuning constants ---
//
// Overridable from a config file; see pkg/simulation.LoadTuning.
type Tuning struct {
	CoulombK float64 `json:"coulomb_k"`
	GravityG float64 `json:"gravity_g"`
	SoftCore float64 `json:"soft_core"` // minimum distance, in multiples of the particle radius
}

func DefaultTuning() Tuning {
	return Tuning{
		CoulombK: 20,
		GravityG: 0.02,
		SoftCore: 4,
	}
}

// softDist floors the separation so force magnitudes stay bounded at
// close range.
func (t Tuning) softDist(a, b *Charge) float64 {
	d := Dist(a.Pos, b.Pos)
	if floor := t.SoftCore * a.Radius; d < floor {
		return floor
	}
	return d
}

// ElectrostaticForce is the Coulomb magnitude between two charges.
// Direction is not encoded here. Symmetric in its arguments.
func ElectrostaticForce(a, b *Charge, t Tuning) float64 {
	d := t.softDist(a, b)
	return t.CoulombK * math.Abs(float64(a.Val)) * math.Abs(float64(b.Val)) / (d * d)
}

// GravitationalForce is the gravitational magnitude between two
// charges. Always attractive; symmetric in its arguments.
func GravitationalForce(a, b *Charge, t Tuning) float64 {
	d := t.softDist(a, b)
	return t.GravityG * a.Mass * b.Mass / (d * d)
}

// Pull is one charge's contribution to the net force, kept so the UI
// can draw a force line from the particle toward End.
type Pull struct {
	Charge *Charge
	End    Vec2
}

// pullScale stretches a force component into a visible line length.
const pullScale = 25000

// NetForce sums one force kind over all placed charges acting on the
// particle and reports the per-charge pulls for visualization.
//
// Direction is resolved per axis: each component is |cos|/|sin| of the
// elevation angle times the magnitude, with the sign decided by an
// independent position comparison on that axis. This is not a true
// unit-vector projection, but it is how the game has always resolved
// forces and trajectories depend on it.
func NetForce(kind ForceKind, p *Particle, charges []*Charge, t Tuning) (Vec2, []Pull) {
	var total Vec2
	pulls := make([]Pull, 0, len(charges))
	for _, c := range charges {
		if c.Pos == p.Pos {
			// coincident pair has no defined direction; contributes nothing
			continue
		}

		var mag float64
		attract := true
		switch kind {
		case Gravitational:
			mag = GravitationalForce(&p.Charge, c, t)
		case Electrostatic:
			mag = ElectrostaticForce(&p.Charge, c, t)
			attract = !((p.Val > 0 && c.Val > 0) || (p.Val < 0 && c.Val < 0))
		}

		ang := Angle(p.Pos, c.Pos)
		fx := math.Abs(math.Cos(ang) * mag)
		fy := math.Abs(math.Sin(ang) * mag)

		end := p.Pos
		if attract == (p.Pos.X > c.Pos.X) {
			total.X -= fx
			end.X -= pullScale * fx
		} else {
			total.X += fx
			end.X += pullScale * fx
		}
		if attract == (p.Pos.Y > c.Pos.Y) {
			total.Y -= fy
			end.Y -= pullScale * fy
		} else {
			total.Y += fy
			end.Y += pullScale * fy
		}

		pulls = append(pulls, Pull{Charge: c, End: end})
	}
	return total, pulls
}
