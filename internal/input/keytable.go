package input

const escape = '\x1b'

// byteActions maps single terminal bytes to actions.
var byteActions = map[byte]Action{
	'w': ActionThrust, 'W': ActionThrust, 'i': ActionThrust, 'I': ActionThrust,
	'a': ActionTurnLeft, 'A': ActionTurnLeft, 'j': ActionTurnLeft, 'J': ActionTurnLeft,
	'd': ActionTurnRight, 'D': ActionTurnRight, 'l': ActionTurnRight, 'L': ActionTurnRight,
	' ': ActionFire,
	'q': ActionQuit, 'Q': ActionQuit,
	'\x03': ActionQuit, // Ctrl+C in raw mode
}

// csiActions maps the final byte of an ESC [ sequence (arrow keys) to actions.
var csiActions = map[byte]Action{
	'A': ActionThrust,
	'C': ActionTurnRight,
	'D': ActionTurnLeft,
}

// ActionForByte returns the action bound to a single terminal byte.
func ActionForByte(b byte) Action {
	return byteActions[b]
}

// parseBytes converts raw terminal bytes into the actions they trigger and
// returns the trailing bytes of an escape sequence that has not finished
// arriving. An ESC followed by anything other than '[' is quit; a lone ESC at
// the end of buf is left in rest for the caller to resolve.
func parseBytes(buf []byte) (actions []Action, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != escape {
			if a := ActionForByte(b); a != ActionNone {
				actions = append(actions, a)
			}
			continue
		}

		if i+1 == len(buf) {
			return actions, buf[i:]
		}
		if buf[i+1] != '[' {
			actions = append(actions, ActionQuit)
			continue
		}

		end := csiEnd(buf, i+2)
		if end < 0 {
			return actions, buf[i:]
		}
		if a, ok := csiActions[buf[end]]; ok && end == i+2 {
			actions = append(actions, a)
		}
		i = end
	}
	return actions, nil
}

// csiEnd returns the index of the final byte of a CSI sequence whose
// parameters start at from, or -1 if the sequence is incomplete.
func csiEnd(buf []byte, from int) int {
	for j := from; j < len(buf); j++ {
		if b := buf[j]; b >= 0x40 && b <= 0x7e {
			return j
		}
	}
	return -1
}
