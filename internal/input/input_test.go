package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Action
		rest string
	}{
		{"letters", "wad ", []Action{ActionThrust, ActionTurnLeft, ActionTurnRight, ActionFire}, ""},
		{"vim keys", "ijl", []Action{ActionThrust, ActionTurnLeft, ActionTurnRight}, ""},
		{"arrows", "\x1b[A\x1b[D\x1b[C", []Action{ActionThrust, ActionTurnLeft, ActionTurnRight}, ""},
		{"down arrow ignored", "\x1b[B", nil, ""},
		{"modified arrow ignored", "\x1b[1;5A", nil, ""},
		{"escape then key quits", "\x1bw", []Action{ActionQuit, ActionThrust}, ""},
		{"trailing escape held back", "w\x1b", []Action{ActionThrust}, "\x1b"},
		{"partial arrow held back", " \x1b[", []Action{ActionFire}, "\x1b["},
		{"unbound", "xyz", nil, ""},
		{"quit", "Q", []Action{ActionQuit}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := parseBytes([]byte(tt.in))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, string(rest))
		})
	}
}

func TestStreamSynthesizesPressAndRelease(t *testing.T) {
	s := NewStream(100*time.Millisecond, 100*time.Millisecond)
	start := time.Now()

	s.Feed([]byte("w"))
	assert.Equal(t, []Event{Press(ActionThrust)}, s.Poll(start))

	// Auto-repeat inside the hold window keeps the key held without new events.
	s.Feed([]byte("w"))
	assert.Empty(t, s.Poll(start.Add(50*time.Millisecond)))
	assert.Empty(t, s.Poll(start.Add(140*time.Millisecond)))

	assert.Equal(t, []Event{Release(ActionThrust)}, s.Poll(start.Add(151*time.Millisecond)))
	assert.Empty(t, s.Poll(start.Add(time.Second)))
}

func TestStreamMultipleKeys(t *testing.T) {
	s := NewStream(100*time.Millisecond, 100*time.Millisecond)
	now := time.Now()

	s.Feed([]byte("a\x1b[C "))
	events := s.Poll(now)

	assert.ElementsMatch(t, []Event{
		Press(ActionTurnLeft),
		Press(ActionTurnRight),
		Press(ActionFire),
	}, events)
	assert.Equal(t, now, s.LastActivity())
}

func TestStreamClosedOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" ")))

	require.Eventually(t, func() bool {
		s.Poll(time.Now())
		return s.Closed()
	}, time.Second, time.Millisecond)
}

func TestStreamReset(t *testing.T) {
	s := NewStream(100*time.Millisecond, 100*time.Millisecond)
	now := time.Now()

	s.Feed([]byte(" "))
	require.Equal(t, []Event{Press(ActionFire)}, s.Poll(now))

	s.Reset()
	assert.Empty(t, s.Poll(now.Add(time.Millisecond)))
}

func TestStreamHeldKeyFiresOnce(t *testing.T) {
	s := NewStream(KeyRepeatDelay, KeyHoldDuration)
	start := time.Now()
	frame := time.Second / 60

	// First byte at 0, auto-repeat from 500ms every 33ms until 1s.
	nextRepeat := 500 * time.Millisecond
	presses, releases := 0, 0
	for elapsed := time.Duration(0); elapsed <= 1500*time.Millisecond; elapsed += frame {
		if elapsed == 0 {
			s.Feed([]byte(" "))
		}
		for nextRepeat <= elapsed && nextRepeat <= time.Second {
			s.Feed([]byte(" "))
			nextRepeat += 33 * time.Millisecond
		}
		for _, ev := range s.Poll(start.Add(elapsed)) {
			require.Equal(t, ActionFire, ev.Action)
			if ev.Pressed {
				presses++
			} else {
				releases++
			}
		}
	}

	assert.Equal(t, 1, presses)
	assert.Equal(t, 1, releases)
}

func TestStreamRepeatUsesShortHold(t *testing.T) {
	s := NewStream(600*time.Millisecond, 100*time.Millisecond)
	start := time.Now()

	s.Feed([]byte("w"))
	require.Equal(t, []Event{Press(ActionThrust)}, s.Poll(start))
	assert.Empty(t, s.Poll(start.Add(400*time.Millisecond)))

	s.Feed([]byte("w"))
	assert.Empty(t, s.Poll(start.Add(500*time.Millisecond)))
	assert.Equal(t, []Event{Release(ActionThrust)}, s.Poll(start.Add(601*time.Millisecond)))

	// The next byte is a fresh press again.
	s.Feed([]byte("w"))
	assert.Equal(t, []Event{Press(ActionThrust)}, s.Poll(start.Add(700*time.Millisecond)))
	assert.Empty(t, s.Poll(start.Add(1200*time.Millisecond)))
}

func TestStreamArrowSplitAcrossPolls(t *testing.T) {
	s := NewStream(100*time.Millisecond, 100*time.Millisecond)
	now := time.Now()

	s.Feed([]byte{'\x1b'})
	assert.Empty(t, s.Poll(now))

	s.Feed([]byte("["))
	assert.Empty(t, s.Poll(now.Add(10*time.Millisecond)))

	s.Feed([]byte("A"))
	events := s.Poll(now.Add(20 * time.Millisecond))
	assert.Equal(t, []Event{Press(ActionThrust)}, events)
	assert.False(t, QuitRequested(events))
}

func TestStreamLoneEscapeQuitsAfterTimeout(t *testing.T) {
	s := NewStream(100*time.Millisecond, 100*time.Millisecond)
	now := time.Now()

	s.Feed([]byte{'\x1b'})
	assert.Empty(t, s.Poll(now))
	assert.Empty(t, s.Poll(now.Add(EscapeTimeout/2)))

	assert.True(t, QuitRequested(s.Poll(now.Add(EscapeTimeout))))
}

// byteAtATime reads one byte per call so a pipe writer blocks until each
// byte has been consumed.
type byteAtATime struct{ r io.Reader }

func (b byteAtATime) ReadByte() (byte, error) {
	var p [1]byte
	_, err := io.ReadFull(b.r, p[:])
	return p[0], err
}

func TestStreamStopReleasesReader(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	s := StartStream(byteAtATime{pr})
	s.Stop()

	go pw.Write([]byte(" "))

	select {
	case _, ok := <-s.ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still running after Stop")
	}
}
