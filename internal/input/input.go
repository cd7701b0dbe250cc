// Package input turns a raw terminal byte stream into the normalized
// per-tick input vector the simulation consumes.
package input

import (
	"bufio"
	"time"

	"github.com/novakj/ringside/internal/fight"
)

// keyHoldDuration is how long a direction key counts as "held" after its
// last byte. Terminals auto-repeat held keys, so a short window tracks the
// repeat stream closely.
const keyHoldDuration = 40 * time.Millisecond

// chargeHoldDuration is the window for the punch/kick keys. It must bridge
// the terminal's initial auto-repeat delay, otherwise a held charge would
// release itself before the first repeat arrives.
const chargeHoldDuration = 600 * time.Millisecond

// keyState tracks the last time each key was seen.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	up      time.Time
	down    time.Time
	punch   time.Time
	kick    time.Time
	enter   time.Time
	escape  time.Time
	number  time.Time
	numeral int
}

// Stream delivers input bytes via a channel and tracks key state so
// simultaneous holds can be detected across reads.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The channel closes when the reader fails (EOF, closed session).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numeral: -1},
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Frame is one sampling of the control state: the simulation vector plus the
// meta keys the front end cares about.
type Frame struct {
	Vector fight.Input
	Quit   bool
	Enter  bool
	Escape bool
	Number int // -1 when no digit was pressed recently
}

// Read drains all pending bytes (non-blocking) and reports the current
// control state. Arrow-key escape sequences and letter keys both work.
func Read(s *Stream) Frame {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return Frame{Quit: true, Number: -1}
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}
		applyByte(&s.state, b, now)
	}

	var vec fight.Input
	if now.Sub(s.state.left) < keyHoldDuration {
		vec.X = -1
	}
	if now.Sub(s.state.right) < keyHoldDuration {
		vec.X = 1
	}
	if now.Sub(s.state.up) < keyHoldDuration {
		vec.Y = 1
	}
	if now.Sub(s.state.down) < keyHoldDuration {
		vec.Y = -1
	}
	vec.PunchHeld = now.Sub(s.state.punch) < chargeHoldDuration
	vec.KickHeld = now.Sub(s.state.kick) < chargeHoldDuration

	frame := Frame{
		Vector: vec,
		Quit:   now.Sub(s.state.quit) < keyHoldDuration,
		Enter:  now.Sub(s.state.enter) < keyHoldDuration,
		Escape: now.Sub(s.state.escape) < keyHoldDuration,
		Number: -1,
	}
	if now.Sub(s.state.number) < keyHoldDuration {
		frame.Number = s.state.numeral
	}
	return frame
}

// applyByte updates the key state timestamps for a single input byte.
func applyByte(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case 'j', 'J':
		state.punch = now
	case 'k', 'K':
		state.kick = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numeral = int(b - '0')
	}
}
