package physics

import "math"

// Vector2 is a 2D vector value. The zero value is the origin.
type Vector2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by factor.
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Clamp limits each component independently to [lo, hi].
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{
		X: math.Min(math.Max(v.X, lo.X), hi.X),
		Y: math.Min(math.Max(v.Y, lo.Y), hi.Y),
	}
}

// Length returns the magnitude of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate rotates v counter-clockwise by angle radians around the origin.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Splat returns a vector with both components set to s.
func Splat(s float64) Vector2 {
	return Vector2{X: s, Y: s}
}

// FromAngle returns the vector of the given magnitude pointing along angle.
func FromAngle(angle, magnitude float64) Vector2 {
	return Vector2{
		X: math.Cos(angle) * magnitude,
		Y: math.Sin(angle) * magnitude,
	}
}
