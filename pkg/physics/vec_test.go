package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecOps(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	assert.Equal(t, Vec2{4, 2}, a.Add(b))
	assert.Equal(t, Vec2{2, 6}, a.Sub(b))
	assert.Equal(t, Vec2{6, 8}, a.Mul(2))
	assert.Equal(t, 5.0, a.Len())
}

func TestDist(t *testing.T) {
	assert.Equal(t, 5.0, Dist(Vec2{0, 0}, Vec2{3, 4}))
	assert.Equal(t, 5.0, Dist(Vec2{3, 4}, Vec2{0, 0}))
	assert.Equal(t, 0.0, Dist(Vec2{7, 7}, Vec2{7, 7}))
}

func TestAngle(t *testing.T) {
	// horizontal pair: no elevation
	assert.InDelta(t, 0, Angle(Vec2{0, 0}, Vec2{100, 0}), 1e-12)
	// a directly below b (screen coordinates grow downward)
	assert.InDelta(t, math.Pi/2, Angle(Vec2{0, 100}, Vec2{0, 0}), 1e-12)
	// a directly above b
	assert.InDelta(t, -math.Pi/2, Angle(Vec2{0, 0}, Vec2{0, 100}), 1e-12)
	// 45 degrees
	assert.InDelta(t, math.Pi/4, Angle(Vec2{100, 100}, Vec2{0, 0}), 1e-12)
}
