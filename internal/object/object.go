// Package object holds the game entities and their per-frame update rules.
package object

import "github.com/tomz197/asteroidy/internal/physics"

// Viewport is the size of the drawable surface, supplied every tick.
type Viewport struct {
	Width  float64
	Height float64
}

// Pose is what a renderer needs to place an entity.
type Pose struct {
	Position physics.Vector2
	Angle    float64
}

// Renderable is implemented by every entity that can be drawn.
type Renderable interface {
	// Pose returns the entity's position and heading.
	Pose() Pose
	// Shape returns the polygon in local space, centered on the origin with
	// angle 0 pointing along +X. Callers must not modify it.
	Shape() []physics.Vector2
}

// WorldShape returns the shape of r rotated by its heading and translated to
// its position, appended to dst.
func WorldShape(dst []physics.Vector2, r Renderable) []physics.Vector2 {
	pose := r.Pose()
	for _, p := range r.Shape() {
		dst = append(dst, p.Rotate(pose.Angle).Add(pose.Position))
	}
	return dst
}

// outOfBounds reports whether a box of the given size at pos lies past any
// viewport edge. Positions exactly on an edge are in bounds.
func outOfBounds(pos physics.Vector2, size float64, vp Viewport) bool {
	return pos.X < 0 || pos.X > vp.Width-size ||
		pos.Y < 0 || pos.Y > vp.Height-size
}
