package input

// State is the controller snapshot read by the simulation each tick.
// Every field is level-triggered: true while the action is held.
// Fire is turned into an edge by the caller comparing consecutive ticks.
type State struct {
	MoveForward bool
	TurnLeft    bool
	TurnRight   bool
	Fire        bool
}

// Apply updates the state from one event. Repeated presses are idempotent and
// actions that are not part of the controller (quit) are ignored.
func (s *State) Apply(ev Event) {
	switch ev.Action {
	case ActionThrust:
		s.MoveForward = ev.Pressed
	case ActionTurnLeft:
		s.TurnLeft = ev.Pressed
	case ActionTurnRight:
		s.TurnRight = ev.Pressed
	case ActionFire:
		s.Fire = ev.Pressed
	}
}

// ApplyAll applies events in order.
func (s *State) ApplyAll(events []Event) {
	for _, ev := range events {
		s.Apply(ev)
	}
}

// QuitRequested reports whether events contain a quit press.
func QuitRequested(events []Event) bool {
	for _, ev := range events {
		if ev.Action == ActionQuit && ev.Pressed {
			return true
		}
	}
	return false
}
