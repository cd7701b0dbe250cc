// Package audio plays synthesized combat cues through the system speaker.
// Every call is fire-and-forget: the simulation never waits on playback and
// a failed or disabled engine degrades to silence.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/novakj/ringside/internal/fight"
)

// Ensure the engine satisfies the simulation's audio collaborator contract.
var _ fight.Sound = (*Engine)(nil)

const sampleRate = beep.SampleRate(44100)

// Engine synthesizes short sine bursts for match events.
type Engine struct {
	enabled bool
}

// NewEngine initializes the speaker. A nil error means cues will play; on
// error the returned engine is silent but still safe to use.
func NewEngine() (*Engine, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Engine{}, fmt.Errorf("init speaker: %w", err)
	}
	return &Engine{enabled: true}, nil
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}

// tone plays a sine burst of the given frequency and duration.
func (e *Engine) tone(freq float64, d time.Duration) {
	if e == nil || !e.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Attack plays the swing cue. A heavy (max-charge) release lands lower and
// longer than a light one.
func (e *Engine) Attack(heavy bool) {
	if heavy {
		e.tone(220, 120*time.Millisecond)
		return
	}
	e.tone(440, 60*time.Millisecond)
}

// Hit plays the connect cue.
func (e *Engine) Hit() {
	e.tone(110, 90*time.Millisecond)
}

// Block plays the deflect cue.
func (e *Engine) Block() {
	e.tone(880, 40*time.Millisecond)
}

// KO plays the match-end stinger.
func (e *Engine) KO() {
	e.tone(55, 400*time.Millisecond)
}
