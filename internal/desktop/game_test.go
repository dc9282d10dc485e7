package desktop

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/input"
	"github.com/tomz197/asteroidy/internal/object"
)

// fakeKeys replays scripted transitions, one tick at a time.
type fakeKeys struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

func (f *fakeKeys) JustPressed(k ebiten.Key) bool  { return f.pressed[k] }
func (f *fakeKeys) JustReleased(k ebiten.Key) bool { return f.released[k] }

func (f *fakeKeys) set(pressed, released []ebiten.Key) {
	f.pressed = make(map[ebiten.Key]bool)
	f.released = make(map[ebiten.Key]bool)
	for _, k := range pressed {
		f.pressed[k] = true
	}
	for _, k := range released {
		f.released[k] = true
	}
}

func newTestGame() (*Game, *fakeKeys) {
	keys := &fakeKeys{}
	return newGame(config.Default(), keys, log.New(io.Discard)), keys
}

func TestKeyTrackerSharedAction(t *testing.T) {
	kt := newKeyTracker()
	keys := &fakeKeys{}

	keys.set([]ebiten.Key{ebiten.KeyW}, nil)
	assert.Equal(t, []input.Event{input.Press(input.ActionThrust)}, kt.poll(keys))

	keys.set([]ebiten.Key{ebiten.KeyArrowUp}, nil)
	assert.Empty(t, kt.poll(keys), "second key for a held action is not a new press")

	keys.set(nil, []ebiten.Key{ebiten.KeyW})
	assert.Empty(t, kt.poll(keys), "action stays held while another key is down")

	keys.set(nil, []ebiten.Key{ebiten.KeyArrowUp})
	assert.Equal(t, []input.Event{input.Release(input.ActionThrust)}, kt.poll(keys))
}

func TestUpdateFiresOnPressEdge(t *testing.T) {
	g, keys := newTestGame()

	keys.set([]ebiten.Key{ebiten.KeySpace}, nil)
	require.NoError(t, g.Update())

	keys.set(nil, nil)
	for i := 0; i < 30; i++ {
		require.NoError(t, g.Update())
	}
	assert.Len(t, g.Session().Player.Projectiles, 1)
	assert.True(t, g.Session().Input.Fire)

	keys.set(nil, []ebiten.Key{ebiten.KeySpace})
	require.NoError(t, g.Update())
	keys.set([]ebiten.Key{ebiten.KeySpace}, nil)
	require.NoError(t, g.Update())

	assert.Len(t, g.Session().Player.Projectiles, 2)
}

func TestUpdateQuit(t *testing.T) {
	g, keys := newTestGame()

	keys.set([]ebiten.Key{ebiten.KeyEscape}, nil)

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Zero(t, g.Session().Ticks())
}

func TestLayoutSetsViewport(t *testing.T) {
	g, keys := newTestGame()

	w, h := g.Layout(0, 0)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	w, h = g.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	keys.set(nil, nil)
	require.NoError(t, g.Update())
	assert.Equal(t, object.Viewport{Width: 1024, Height: 768}, g.Session().Viewport())
}
