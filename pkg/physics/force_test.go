package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chargeAt(val int, x, y float64) *Charge {
	c := NewCharge(val, Vec2{X: x, Y: y})
	c.Held = false
	return c
}

func TestForceSymmetry(t *testing.T) {
	tn := DefaultTuning()
	a := chargeAt(5, 100, 200)
	b := chargeAt(-3, 400, 350)
	b.Mass = 7

	assert.Equal(t, ElectrostaticForce(a, b, tn), ElectrostaticForce(b, a, tn))
	assert.Equal(t, GravitationalForce(a, b, tn), GravitationalForce(b, a, tn))
}

func TestSoftCoreClamp(t *testing.T) {
	tn := DefaultTuning()
	a := chargeAt(2, 0, 0)

	// floor is 4x the 10px radius; below it the magnitude is constant
	floored := ElectrostaticForce(a, chargeAt(3, 40, 0), tn)
	for _, d := range []float64{1, 5, 20, 39.9} {
		assert.Equal(t, floored, ElectrostaticForce(a, chargeAt(3, d, 0), tn), "distance %v", d)
	}
	assert.Less(t, ElectrostaticForce(a, chargeAt(3, 50, 0), tn), floored)

	flooredG := GravitationalForce(a, chargeAt(3, 40, 0), tn)
	assert.Equal(t, flooredG, GravitationalForce(a, chargeAt(3, 5, 0), tn))
}

func TestForceMagnitudes(t *testing.T) {
	tn := DefaultTuning()
	a := chargeAt(2, 0, 0)
	b := chargeAt(-3, 100, 0)
	b.Mass = 5

	assert.InDelta(t, 20*2*3/1e4, ElectrostaticForce(a, b, tn), 1e-15)
	assert.InDelta(t, 0.02*1*5/1e4, GravitationalForce(a, b, tn), 1e-15)
}

func TestNetForceEmpty(t *testing.T) {
	tn := DefaultTuning()
	p := NewParticle(Vec2{50, 300})

	total, pulls := NetForce(Gravitational, p, nil, tn)
	assert.Equal(t, Vec2{}, total)
	assert.Empty(t, pulls)

	total, pulls = NetForce(Electrostatic, p, []*Charge{}, tn)
	assert.Equal(t, Vec2{}, total)
	assert.Empty(t, pulls)
}

func TestNetForceSkipsCoincident(t *testing.T) {
	tn := DefaultTuning()
	p := NewParticle(Vec2{50, 300})
	p.Val = 5

	total, pulls := NetForce(Electrostatic, p, []*Charge{chargeAt(1, 50, 300)}, tn)
	assert.Equal(t, Vec2{}, total)
	assert.Empty(t, pulls)
	assert.False(t, math.IsNaN(total.X))
}

func TestLikeChargesRepel(t *testing.T) {
	tn := DefaultTuning()
	p := NewParticle(Vec2{100, 300})
	p.Val = 5

	// like-signed charge to the right pushes the particle left
	total, _ := NetForce(Electrostatic, p, []*Charge{chargeAt(1, 200, 300)}, tn)
	assert.Negative(t, total.X)
	assert.Zero(t, total.Y)

	p.Val = -5
	total, _ = NetForce(Electrostatic, p, []*Charge{chargeAt(-1, 200, 300)}, tn)
	assert.Negative(t, total.X)
}

func TestUnlikeChargesAttract(t *testing.T) {
	tn := DefaultTuning()
	p := NewParticle(Vec2{100, 300})
	p.Val = -5

	total, _ := NetForce(Electrostatic, p, []*Charge{chargeAt(1, 200, 300)}, tn)
	assert.Positive(t, total.X)
	assert.Zero(t, total.Y)
}

func TestGravityAlwaysAttracts(t *testing.T) {
	tn := DefaultTuning()
	p := NewParticle(Vec2{100, 300})
	p.Val = 5

	// like signs would repel electrostatically; gravity still pulls right
	total, _ := NetForce(Gravitational, p, []*Charge{chargeAt(1, 200, 300)}, tn)
	assert.Positive(t, total.X)
}

func TestAxisWiseResolution(t *testing.T) {
	tn := DefaultTuning()
	p := NewParticle(Vec2{100, 100})
	p.Val = -1
	c := chargeAt(1, 200, 200)

	total, pulls := NetForce(Electrostatic, p, []*Charge{c}, tn)
	require.Len(t, pulls, 1)

	// each component is |cos|/|sin| of the elevation angle times the
	// magnitude, signed by the per-axis position comparison
	mag := ElectrostaticForce(&p.Charge, c, tn)
	want := mag * math.Sqrt2 / 2
	assert.InDelta(t, want, total.X, 1e-12)
	assert.InDelta(t, want, total.Y, 1e-12)

	// pull endpoint stretches the same components for the overlay
	assert.InDelta(t, p.Pos.X+25000*want, pulls[0].End.X, 1e-9)
	assert.InDelta(t, p.Pos.Y+25000*want, pulls[0].End.Y, 1e-9)
	assert.Same(t, c, pulls[0].Charge)
}

func TestNetForceSums(t *testing.T) {
	tn := DefaultTuning()
	p := NewParticle(Vec2{100, 300})
	p.Val = -1

	// symmetric charges left and right cancel on x
	charges := []*Charge{chargeAt(1, 0, 300), chargeAt(1, 200, 300)}
	total, pulls := NetForce(Electrostatic, p, charges, tn)
	assert.InDelta(t, 0, total.X, 1e-12)
	assert.Len(t, pulls, 2)
}
