package input

import (
	"io"
	"sync"
	"time"
)

// Terminals never report key releases, so a held key is inferred from
// auto-repeat bytes. A fresh press stays held for KeyRepeatDelay, which is
// longer than the delay before the first repeat. Once repeats arrive the key
// is released KeyHoldDuration after the last one.
const (
	KeyRepeatDelay  = 600 * time.Millisecond
	KeyHoldDuration = 120 * time.Millisecond
)

// EscapeTimeout is how long an ESC may wait for the rest of an arrow key
// sequence before it is read as a lone ESC (quit).
const EscapeTimeout = 50 * time.Millisecond

// tracked lists the actions whose held state the stream synthesizes.
var tracked = [...]Action{ActionThrust, ActionTurnLeft, ActionTurnRight, ActionFire, ActionQuit}

// Stream delivers terminal bytes via a channel and converts them into
// press/release events.
type Stream struct {
	ch           chan byte
	done         chan struct{}
	stopOnce     sync.Once
	lastSeen     map[Action]time.Time
	held         map[Action]bool
	repeating    map[Action]bool
	repeatDelay  time.Duration
	hold         time.Duration
	pending      []byte
	pendingSince time.Time
	lastActivity time.Time
	closed       bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error (EOF on disconnect) or once Stop
// has been called and the next byte arrives.
func StartStream(r io.ByteReader) *Stream {
	s := NewStream(KeyRepeatDelay, KeyHoldDuration)
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case <-s.done:
				return
			default:
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// NewStream creates a stream without a reader; bytes are supplied with Feed.
// A fresh press is held for repeatDelay, a repeating key for hold.
func NewStream(repeatDelay, hold time.Duration) *Stream {
	return &Stream{
		ch:           make(chan byte, 128),
		done:         make(chan struct{}),
		lastSeen:     make(map[Action]time.Time, len(tracked)),
		held:         make(map[Action]bool, len(tracked)),
		repeating:    make(map[Action]bool, len(tracked)),
		repeatDelay:  repeatDelay,
		hold:         hold,
		lastActivity: time.Now(),
	}
}

// Feed queues bytes as if they had been read from the terminal.
func (s *Stream) Feed(p []byte) {
	for _, b := range p {
		s.ch <- b
	}
}

// Stop releases the reader goroutine. The stream must not be polled afterwards.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Poll drains all available bytes without blocking and returns the press and
// release transitions observed at time now.
func (s *Stream) Poll(now time.Time) []Event {
	buf := s.pending
	received := 0
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			received++
		default:
			break drain
		}
	}

	if received > 0 {
		s.lastActivity = now
	}

	actions, rest := parseBytes(buf)
	actions, s.pending = s.resolvePending(actions, rest, now)

	for _, a := range actions {
		// A byte for a key that is still held is auto-repeat.
		s.repeating[a] = s.held[a]
		s.lastSeen[a] = now
	}

	var events []Event
	for _, a := range tracked {
		window := s.repeatDelay
		if s.repeating[a] {
			window = s.hold
		}
		held := !s.lastSeen[a].IsZero() && now.Sub(s.lastSeen[a]) < window
		if held != s.held[a] {
			s.held[a] = held
			events = append(events, Event{Action: a, Pressed: held})
		}
	}
	return events
}

// resolvePending keeps an unfinished escape sequence for the next poll. Once
// it has waited EscapeTimeout, or the input has ended, a lone ESC becomes
// quit and a truncated sequence is dropped.
func (s *Stream) resolvePending(actions []Action, rest []byte, now time.Time) ([]Action, []byte) {
	if len(rest) == 0 {
		s.pendingSince = time.Time{}
		return actions, nil
	}
	if s.pendingSince.IsZero() {
		s.pendingSince = now
	}
	if !s.closed && now.Sub(s.pendingSince) < EscapeTimeout {
		return actions, append([]byte(nil), rest...)
	}

	s.pendingSince = time.Time{}
	if len(rest) == 1 {
		actions = append(actions, ActionQuit)
	}
	return actions, nil
}

// Reset forgets every held key and any partial escape sequence, emitting nothing.
func (s *Stream) Reset() {
	clear(s.lastSeen)
	clear(s.held)
	clear(s.repeating)
	s.pending = nil
	s.pendingSince = time.Time{}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// LastActivity returns when the last byte was received.
func (s *Stream) LastActivity() time.Time {
	return s.lastActivity
}
