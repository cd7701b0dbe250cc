package input

import "testing"

// feed builds a stream preloaded with bytes, as if the reader goroutine had
// already delivered them.
func feed(bytes ...byte) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numeral: -1},
	}
	for _, b := range bytes {
		s.ch <- b
	}
	return s
}

func TestReadLetterKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		check func(t *testing.T, f Frame)
	}{
		{"a moves left", []byte{'a'}, func(t *testing.T, f Frame) {
			if f.Vector.X != -1 {
				t.Errorf("X = %v, want -1", f.Vector.X)
			}
		}},
		{"d moves right", []byte{'d'}, func(t *testing.T, f Frame) {
			if f.Vector.X != 1 {
				t.Errorf("X = %v, want 1", f.Vector.X)
			}
		}},
		{"w points up", []byte{'w'}, func(t *testing.T, f Frame) {
			if f.Vector.Y != 1 {
				t.Errorf("Y = %v, want 1", f.Vector.Y)
			}
		}},
		{"s points down", []byte{'s'}, func(t *testing.T, f Frame) {
			if f.Vector.Y != -1 {
				t.Errorf("Y = %v, want -1", f.Vector.Y)
			}
		}},
		{"j holds punch", []byte{'j'}, func(t *testing.T, f Frame) {
			if !f.Vector.PunchHeld {
				t.Error("PunchHeld = false")
			}
		}},
		{"k holds kick", []byte{'k'}, func(t *testing.T, f Frame) {
			if !f.Vector.KickHeld {
				t.Error("KickHeld = false")
			}
		}},
		{"q quits", []byte{'q'}, func(t *testing.T, f Frame) {
			if !f.Quit {
				t.Error("Quit = false")
			}
		}},
		{"ctrl-c quits", []byte{'\x03'}, func(t *testing.T, f Frame) {
			if !f.Quit {
				t.Error("Quit = false")
			}
		}},
		{"enter", []byte{'\r'}, func(t *testing.T, f Frame) {
			if !f.Enter {
				t.Error("Enter = false")
			}
		}},
		{"digit", []byte{'4'}, func(t *testing.T, f Frame) {
			if f.Number != 4 {
				t.Errorf("Number = %d, want 4", f.Number)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Read(feed(tt.bytes...)))
		})
	}
}

func TestReadArrowSequences(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		wantX float64
		wantY float64
	}{
		{"up arrow", []byte{'\x1b', '[', 'A'}, 0, 1},
		{"down arrow", []byte{'\x1b', '[', 'B'}, 0, -1},
		{"right arrow", []byte{'\x1b', '[', 'C'}, 1, 0},
		{"left arrow", []byte{'\x1b', '[', 'D'}, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Read(feed(tt.bytes...))
			if f.Vector.X != tt.wantX || f.Vector.Y != tt.wantY {
				t.Errorf("vector = (%v, %v), want (%v, %v)", f.Vector.X, f.Vector.Y, tt.wantX, tt.wantY)
			}
			// A complete arrow sequence is not a bare escape press.
			if f.Escape {
				t.Error("arrow sequence reported Escape")
			}
		})
	}
}

func TestReadBareEscape(t *testing.T) {
	f := Read(feed('\x1b'))
	if !f.Escape {
		t.Error("Escape = false")
	}
	if f.Vector != (Frame{}.Vector) {
		t.Errorf("vector = %+v, want zero", f.Vector)
	}
}

func TestReadSimultaneousHolds(t *testing.T) {
	f := Read(feed('a', 'j'))
	if f.Vector.X != -1 || !f.Vector.PunchHeld {
		t.Errorf("vector = %+v, want left movement with punch held", f.Vector)
	}
}

func TestReadEmptyStream(t *testing.T) {
	f := Read(feed())
	if f.Vector != (Frame{}.Vector) || f.Quit || f.Enter || f.Escape {
		t.Errorf("frame = %+v, want all-neutral", f)
	}
	if f.Number != -1 {
		t.Errorf("Number = %d, want -1", f.Number)
	}
}

func TestReadClosedStreamQuits(t *testing.T) {
	s := feed()
	close(s.ch)
	f := Read(s)
	if !f.Quit {
		t.Error("closed stream did not request quit")
	}
}
