package object

import (
	"math"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/input"
	"github.com/tomz197/asteroidy/internal/physics"
)

// shipShape is a triangle with its nose along +X.
var shipShape = []physics.Vector2{
	{X: 10, Y: 0},
	{X: -6, Y: -6},
	{X: -3, Y: 0},
	{X: -6, Y: 6},
}

// Player is the ship. It owns every projectile it has fired.
type Player struct {
	Body        physics.Body
	Projectiles []*Projectile

	Acceleration float64 // Thrust, units per second²
	TurnRate     float64 // Radians per second
	MaxSpeed     float64 // Per-axis velocity cap
	Size         float64 // Wrap bounding box

	shape []physics.Vector2
}

// NewPlayer creates a player at rest at the tuning's spawn point.
func NewPlayer(t config.Tuning) *Player {
	return &Player{
		Body: physics.Body{
			Position: physics.Vector2{X: t.SpawnX, Y: t.SpawnY},
			Angle:    t.SpawnAngle,
		},
		Acceleration: t.Acceleration,
		TurnRate:     t.TurnRate,
		MaxSpeed:     t.MaxSpeed,
		Size:         t.PlayerSize,
		shape:        shipShape,
	}
}

// UpdateMovement applies turning and thrust from in and moves the ship.
func (p *Player) UpdateMovement(dt float64, in input.State) {
	// Thrust uses the heading from before this tick's turn.
	var thrust physics.Vector2
	if in.MoveForward {
		thrust = physics.FromAngle(p.Body.Angle, p.Acceleration)
	}

	// Left and right held together cancel exactly.
	var turn float64
	if in.TurnLeft {
		turn--
	}
	if in.TurnRight {
		turn++
	}
	if turn != 0 {
		p.Body.Angle = normalizeAngle(p.Body.Angle + turn*p.TurnRate*dt)
	}

	p.Body.Accelerate(dt, thrust)
	p.Body.ClampSpeed(p.MaxSpeed)
	p.Body.Move(dt)
}

// UpdateCollision wraps the ship to the opposite edge when it leaves the
// viewport. Each axis is handled independently; velocity and heading are kept.
func (p *Player) UpdateCollision(vp Viewport) {
	pos := &p.Body.Position

	if pos.X < 0 {
		pos.X = vp.Width - p.Size
	} else if pos.X > vp.Width-p.Size {
		pos.X = 0
	}

	if pos.Y < 0 {
		pos.Y = vp.Height - p.Size
	} else if pos.Y > vp.Height-p.Size {
		pos.Y = 0
	}
}

// CheckPlayer is where ship-destroying collisions will be resolved.
// Nothing can hit the ship yet.
func (p *Player) CheckPlayer() {}

// Fire creates a projectile at the ship's position and heading and adds it to
// the ship's collection.
func (p *Player) Fire(t config.Tuning) *Projectile {
	proj := NewProjectile(p.Body.Position, p.Body.Angle, t)
	p.Projectiles = append(p.Projectiles, proj)
	return proj
}

// PruneProjectiles removes every projectile outside vp and returns how many
// were removed.
func (p *Player) PruneProjectiles(vp Viewport) int {
	kept := p.Projectiles[:0] // reuse backing array
	for _, proj := range p.Projectiles {
		if !proj.Expired(vp) {
			kept = append(kept, proj)
		}
	}
	removed := len(p.Projectiles) - len(kept)
	clear(p.Projectiles[len(kept):])
	p.Projectiles = kept
	return removed
}

// Pose implements Renderable.
func (p *Player) Pose() Pose {
	return Pose{Position: p.Body.Position, Angle: p.Body.Angle}
}

// Shape implements Renderable.
func (p *Player) Shape() []physics.Vector2 {
	return p.shape
}

// normalizeAngle keeps an angle in [-π, π] so it does not grow without bound.
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
