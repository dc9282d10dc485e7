package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/asteroidy/internal/input"
)

// keyActions maps keyboard keys to actions. Several keys may share an action.
var keyActions = map[ebiten.Key]input.Action{
	ebiten.KeyW:          input.ActionThrust,
	ebiten.KeyArrowUp:    input.ActionThrust,
	ebiten.KeyA:          input.ActionTurnLeft,
	ebiten.KeyArrowLeft:  input.ActionTurnLeft,
	ebiten.KeyD:          input.ActionTurnRight,
	ebiten.KeyArrowRight: input.ActionTurnRight,
	ebiten.KeySpace:      input.ActionFire,
	ebiten.KeyEscape:     input.ActionQuit,
}

// KeySource reports key transitions for the current tick.
type KeySource interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// ebitenKeys reads transitions from ebiten's input state.
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// keyTracker turns per-key transitions into per-action events. An action
// stays pressed while any of its keys is down.
type keyTracker struct {
	down map[ebiten.Key]bool
}

func newKeyTracker() *keyTracker {
	return &keyTracker{down: make(map[ebiten.Key]bool, len(keyActions))}
}

// poll returns the action transitions caused by this tick's key changes.
func (kt *keyTracker) poll(src KeySource) []input.Event {
	before := kt.heldActions()

	for k := range keyActions {
		if src.JustPressed(k) {
			kt.down[k] = true
		}
		if src.JustReleased(k) {
			delete(kt.down, k)
		}
	}

	after := kt.heldActions()
	var events []input.Event
	for _, a := range []input.Action{input.ActionThrust, input.ActionTurnLeft, input.ActionTurnRight, input.ActionFire, input.ActionQuit} {
		if before[a] != after[a] {
			events = append(events, input.Event{Action: a, Pressed: after[a]})
		}
	}
	return events
}

func (kt *keyTracker) heldActions() map[input.Action]bool {
	held := make(map[input.Action]bool, len(kt.down))
	for k := range kt.down {
		held[keyActions[k]] = true
	}
	return held
}
