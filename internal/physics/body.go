package physics

// Body is the minimal kinematic state shared by every moving entity.
// Angle is in radians; 0 points along +X and positive values turn towards +Y.
type Body struct {
	Position Vector2
	Velocity Vector2
	Angle    float64
}

// Integrate advances the body by dt seconds under a constant acceleration.
// Velocity is updated first and the new velocity moves the position.
// dt must be finite and non-negative; callers clamp frame time before stepping.
func (b *Body) Integrate(dt float64, acceleration Vector2) {
	b.Velocity = b.Velocity.Add(acceleration.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Accelerate applies acceleration to the velocity only.
func (b *Body) Accelerate(dt float64, acceleration Vector2) {
	b.Velocity = b.Velocity.Add(acceleration.Scale(dt))
}

// Move advances the position by the current velocity.
func (b *Body) Move(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// ClampSpeed caps each velocity component to [-maxSpeed, maxSpeed].
// This is an axis-aligned cap, not a limit on the vector magnitude.
func (b *Body) ClampSpeed(maxSpeed float64) {
	b.Velocity = b.Velocity.Clamp(Splat(-maxSpeed), Splat(maxSpeed))
}
