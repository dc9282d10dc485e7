package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/physics"
)

func TestProjectileFirstUpdate(t *testing.T) {
	proj := NewProjectile(physics.Vector2{X: 100, Y: 100}, 0, config.Default())
	require.Equal(t, 200.0, proj.Speed)

	proj.Update(0.05)

	// v = 200*0.05 = 10, then x = 100 + 10*0.05.
	assert.Equal(t, physics.Vector2{X: 10, Y: 0}, proj.Body.Velocity)
	assert.Equal(t, physics.Vector2{X: 100.5, Y: 100}, proj.Body.Position)
}

func TestProjectileReachesCruiseSpeed(t *testing.T) {
	proj := NewProjectile(physics.Vector2{X: 0, Y: 0}, 0.7, config.Default())

	prev := proj.Body.Position
	for i := 0; i < 200; i++ {
		proj.Update(1.0 / 60)
		require.LessOrEqual(t, proj.Body.Velocity.Length(), proj.Speed+1e-9)
		moved := proj.Body.Position.Add(prev.Scale(-1))
		require.InDelta(t, 0.7, math.Atan2(moved.Y, moved.X), 1e-9)
		prev = proj.Body.Position
	}
	assert.InDelta(t, proj.Speed, proj.Body.Velocity.Length(), 1e-9)
}

func TestProjectileZeroDelta(t *testing.T) {
	proj := NewProjectile(physics.Vector2{X: 5, Y: 5}, 1, config.Default())
	proj.Update(0)
	assert.Equal(t, physics.Vector2{X: 5, Y: 5}, proj.Body.Position)
	assert.Equal(t, physics.Vector2{}, proj.Body.Velocity)
}

func TestProjectileExpired(t *testing.T) {
	tests := []struct {
		name    string
		pos     physics.Vector2
		expired bool
	}{
		{"inside", physics.Vector2{X: 400, Y: 300}, false},
		{"origin", physics.Vector2{X: 0, Y: 0}, false},
		{"far corner exact", physics.Vector2{X: 798, Y: 598}, false},
		{"left", physics.Vector2{X: -0.01, Y: 300}, true},
		{"right", physics.Vector2{X: 798.01, Y: 300}, true},
		{"top", physics.Vector2{X: 400, Y: -1}, true},
		{"bottom", physics.Vector2{X: 400, Y: 599}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := NewProjectile(tt.pos, 0, config.Default())
			assert.Equal(t, tt.expired, proj.Expired(testViewport))
		})
	}
}

func TestProjectileOwnsShape(t *testing.T) {
	a := NewProjectile(physics.Vector2{}, 0, config.Default())
	b := NewProjectile(physics.Vector2{}, 0, config.Default())

	a.Shape()[0] = physics.Vector2{X: 99}

	assert.Equal(t, rocketShape[0], b.Shape()[0])
}
