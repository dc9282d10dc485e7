package loop

import (
	"time"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/input"
	"github.com/tomz197/asteroidy/internal/object"
)

// Session is one continuous play session: the ship, its projectiles and the
// controller state. It holds no global state and is driven by the caller.
type Session struct {
	Tuning config.Tuning
	Player *object.Player
	Input  input.State

	prevFire bool
	viewport object.Viewport
	ticks    uint64
}

// StepResult summarizes what a tick changed.
type StepResult struct {
	Spawned bool // A projectile was fired this tick
	Pruned  int  // Projectiles removed for leaving the viewport
}

// NewSession creates a session with the ship at its spawn point.
func NewSession(t config.Tuning) *Session {
	return &Session{
		Tuning: t,
		Player: object.NewPlayer(t),
	}
}

// Apply feeds press/release events into the controller state. Events for a
// tick must be applied before Step is called for it.
func (s *Session) Apply(events []input.Event) {
	s.Input.ApplyAll(events)
}

// Step advances the simulation by dt seconds:
//  1. ship movement, then screen wrap
//  2. every projectile moves
//  3. projectiles outside vp are removed
//  4. a projectile is fired if fire went from released to pressed
//
// Firing last keeps a new projectile out of this tick's expiry check.
func (s *Session) Step(dt float64, in input.State, vp object.Viewport) StepResult {
	var res StepResult
	p := s.Player

	p.UpdateMovement(dt, in)
	p.UpdateCollision(vp)
	p.CheckPlayer()

	for _, proj := range p.Projectiles {
		proj.Update(dt)
	}
	res.Pruned = p.PruneProjectiles(vp)

	fireEdge := in.Fire && !s.prevFire
	s.prevFire = in.Fire
	if fireEdge {
		p.Fire(s.Tuning)
		res.Spawned = true
	}

	s.viewport = vp
	s.ticks++
	return res
}

// Renderables returns the ship followed by every live projectile, as of the
// last completed Step.
func (s *Session) Renderables() []object.Renderable {
	out := make([]object.Renderable, 0, 1+len(s.Player.Projectiles))
	out = append(out, s.Player)
	for _, proj := range s.Player.Projectiles {
		out = append(out, proj)
	}
	return out
}

// Viewport returns the bounds used by the last Step.
func (s *Session) Viewport() object.Viewport {
	return s.viewport
}

// Ticks returns how many times Step has run.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// ClampDelta converts a frame duration to seconds, mapping negative values to
// zero and capping at maxFrame so a stalled frame cannot skip projectiles past
// the viewport bounds in one step.
func ClampDelta(d, maxFrame time.Duration) float64 {
	if d < 0 {
		d = 0
	}
	if maxFrame > 0 && d > maxFrame {
		d = maxFrame
	}
	return d.Seconds()
}
