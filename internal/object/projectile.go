package object

import (
	"slices"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/physics"
)

// rocketShape is a short dart with its tip along +X.
var rocketShape = []physics.Vector2{
	{X: 2, Y: 0},
	{X: -2, Y: -1},
	{X: -2, Y: 1},
}

// Projectile is a rocket flying straight along the heading it was fired with.
// It never inherits the ship's momentum.
type Projectile struct {
	Body  physics.Body
	Speed float64 // Cruise speed, reached by accelerating at Speed units/s²
	Size  float64 // Expiry bounding box

	shape []physics.Vector2
}

// NewProjectile creates a projectile at rest at pos, pointing along angle.
func NewProjectile(pos physics.Vector2, angle float64, t config.Tuning) *Projectile {
	return &Projectile{
		Body:  physics.Body{Position: pos, Angle: angle},
		Speed: t.RocketSpeed,
		Size:  t.ProjectileSize,
		shape: slices.Clone(rocketShape),
	}
}

// Update accelerates the rocket along its heading, never past Speed, and
// advances its position.
func (p *Projectile) Update(dt float64) {
	if dt <= 0 {
		return
	}
	// Velocity stays collinear with the heading, so its length is the speed.
	accel := min(p.Speed, (p.Speed-p.Body.Velocity.Length())/dt)
	if accel < 0 {
		accel = 0
	}
	p.Body.Integrate(dt, physics.FromAngle(p.Body.Angle, accel))
}

// Expired reports whether the projectile has left the viewport.
func (p *Projectile) Expired(vp Viewport) bool {
	return outOfBounds(p.Body.Position, p.Size, vp)
}

// Pose implements Renderable.
func (p *Projectile) Pose() Pose {
	return Pose{Position: p.Body.Position, Angle: p.Body.Angle}
}

// Shape implements Renderable.
func (p *Projectile) Shape() []physics.Vector2 {
	return p.shape
}
