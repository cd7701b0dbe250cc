// Package loop provides the fixed-timestep scheduler and the frame-paced
// terminal front end that drives a match.
package loop

import "time"

// Simulation timing. The simulation always steps by TimeStep regardless of
// how fast frames actually arrive; MaxFrameTime caps catch-up after a stall
// so a long hiccup never produces a burst of hundreds of ticks.
const (
	TickRate     = 60
	TimeStep     = 1.0 / TickRate // seconds per simulation tick
	MaxFrameTime = 1.0            // seconds of real time consumed per frame at most
)

// Loop converts irregular per-frame wall-clock deltas into zero or more
// fixed-size simulation ticks via an accumulator.
type Loop struct {
	step     float64
	maxFrame float64
	acc      float64
	update   func(dt float64)
	running  bool
}

// New creates a stopped loop invoking update once per fixed step.
func New(step, maxFrame float64, update func(dt float64)) *Loop {
	return &Loop{step: step, maxFrame: maxFrame, update: update}
}

// Start enables tick delivery. Idempotent.
func (l *Loop) Start() {
	l.running = true
}

// Stop disables tick delivery, including the remainder of a frame already
// being consumed. Idempotent.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop delivers ticks.
func (l *Loop) Running() bool {
	return l.running
}

// Frame feeds one rendered frame's elapsed real time into the accumulator
// and invokes the update callback once per whole timestep available. A
// stopped loop consumes nothing.
func (l *Loop) Frame(elapsed float64) {
	if !l.running {
		return
	}
	if elapsed > l.maxFrame {
		elapsed = l.maxFrame
	}
	l.acc += elapsed
	for l.acc >= l.step {
		if !l.running {
			return
		}
		l.update(l.step)
		l.acc -= l.step
	}
}

// FrameDuration is a convenience wrapper over Frame for callers measuring
// with the time package.
func (l *Loop) FrameDuration(elapsed time.Duration) {
	l.Frame(elapsed.Seconds())
}
