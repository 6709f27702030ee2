package physics

import "math"

// --- 2D vector ---
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist is the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Angle is the elevation of a over b with respect to the horizontal,
// taken as asin of the vertical component over the separation.
// Callers must guarantee a != b; coincident points have no angle.
func Angle(a, b Vec2) float64 {
	return math.Asin((a.Y - b.Y) / Dist(a, b))
}
