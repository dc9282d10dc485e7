// Package input turns device key presses into the controller state the
// simulation reads every frame.
package input

// Action is a logical control independent of the device that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionThrust
	ActionTurnLeft
	ActionTurnRight
	ActionFire
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionThrust:    "thrust",
	ActionTurnLeft:  "turn_left",
	ActionTurnRight: "turn_right",
	ActionFire:      "fire",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Event is a single press or release notification for an action.
type Event struct {
	Action  Action
	Pressed bool
}

// Press returns a press event for a.
func Press(a Action) Event { return Event{Action: a, Pressed: true} }

// Release returns a release event for a.
func Release(a Action) Event { return Event{Action: a} }
