package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// View resolution - the logical playfield every frontend scales to fit.
const (
	ViewWidth  = 800
	ViewHeight = 600
)

// Window title for the desktop frontend.
const WindowTitle = "Asteroidy"

// Player
const (
	Acceleration = 200.0 // Thrust, units per second²
	TurnRate     = 3.5   // Radians per second
	MaxSpeed     = 300.0 // Per-axis velocity cap
	PlayerSize   = 10.0  // Bounding box used by the wrap thresholds
	SpawnX       = ViewWidth / 2
	SpawnY       = ViewHeight / 2
	SpawnAngle   = -math.Pi / 2 // Pointing up
)

// Projectiles
const (
	RocketSpeed    = 200.0
	ProjectileSize = 2.0
)

// Frame timing
const (
	TargetFPS    = 60
	MaxFrameTime = 100 * time.Millisecond
)

// Inactivity (remote sessions only)
const (
	InactivityDisconnectUser = 120 // Seconds
)

// Tuning holds the simulation parameters for one session.
type Tuning struct {
	Acceleration   float64
	TurnRate       float64
	MaxSpeed       float64
	RocketSpeed    float64
	PlayerSize     float64
	ProjectileSize float64
	SpawnX         float64
	SpawnY         float64
	SpawnAngle     float64
	MaxFrameTime   time.Duration
	TargetFPS      int
}

// Default returns the built-in tuning.
func Default() Tuning {
	return Tuning{
		Acceleration:   Acceleration,
		TurnRate:       TurnRate,
		MaxSpeed:       MaxSpeed,
		RocketSpeed:    RocketSpeed,
		PlayerSize:     PlayerSize,
		ProjectileSize: ProjectileSize,
		SpawnX:         SpawnX,
		SpawnY:         SpawnY,
		SpawnAngle:     SpawnAngle,
		MaxFrameTime:   MaxFrameTime,
		TargetFPS:      TargetFPS,
	}
}

// FrameTime is the target duration of one loop iteration.
func (t Tuning) FrameTime() time.Duration {
	return time.Second / time.Duration(t.TargetFPS)
}

// Load returns the default tuning with ASTEROIDY_* environment overrides applied.
// Values that fail to parse keep their default; the problems are returned joined
// so the caller can warn about them. The returned Tuning is always usable.
func Load() (Tuning, error) {
	t := Default()
	var errs []error

	floats := []struct {
		key   string
		dst   *float64
		check func(float64) error
	}{
		{"ASTEROIDY_ACCELERATION", &t.Acceleration, positive},
		{"ASTEROIDY_TURN_RATE", &t.TurnRate, nil},
		{"ASTEROIDY_MAX_SPEED", &t.MaxSpeed, positive},
		{"ASTEROIDY_ROCKET_SPEED", &t.RocketSpeed, positive},
		{"ASTEROIDY_PLAYER_SIZE", &t.PlayerSize, fitsView},
		{"ASTEROIDY_PROJECTILE_SIZE", &t.ProjectileSize, fitsView},
		{"ASTEROIDY_SPAWN_X", &t.SpawnX, nil},
		{"ASTEROIDY_SPAWN_Y", &t.SpawnY, nil},
	}
	for _, f := range floats {
		v, err := GetEnvFloat(f.key, *f.dst)
		if err == nil && f.check != nil {
			if err = f.check(v); err != nil {
				err = fmt.Errorf("%s: %w", f.key, err)
			}
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*f.dst = v
	}

	var err error
	if t.MaxFrameTime, err = GetEnvDuration("ASTEROIDY_MAX_FRAME_TIME", t.MaxFrameTime); err != nil {
		errs = append(errs, err)
	}
	if t.TargetFPS, err = GetEnvInt("ASTEROIDY_FPS", t.TargetFPS); err != nil {
		errs = append(errs, err)
	}

	return t, errors.Join(errs...)
}

// positive rejects zero. Speeds and thrust of zero leave the ship or its
// rockets unable to move.
func positive(v float64) error {
	if v <= 0 {
		return fmt.Errorf("%v must be greater than 0", v)
	}
	return nil
}

// fitsView rejects sizes that do not fit inside the playfield.
func fitsView(v float64) error {
	if v >= min(ViewWidth, ViewHeight) {
		return fmt.Errorf("%v must be smaller than the %dx%d view", v, ViewWidth, ViewHeight)
	}
	return nil
}
