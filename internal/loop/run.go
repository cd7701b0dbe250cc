package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/novakj/ringside/internal/draw"
	"github.com/novakj/ringside/internal/fight"
	"github.com/novakj/ringside/internal/input"
	"github.com/novakj/ringside/internal/score"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Phase is the front end's screen phase, distinct from any fighter state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseFighting
	PhaseResult
)

// Options configures a Run session.
type Options struct {
	// TermSizeFunc reports terminal dimensions; defaults to stdout probing.
	TermSizeFunc draw.TermSizeFunc
	// Sound is the optional audio collaborator.
	Sound fight.Sound
	// Store is the optional persistence collaborator for match outcomes.
	Store *score.Store
	// Level is the starting AI difficulty (1-5).
	Level int
	// Seed fixes the AI random source; 0 seeds from the clock.
	Seed int64
}

// session holds everything alive during one Run call. Match-scoped pieces
// (fighters, manager, scheduler) are rebuilt for every match.
type session struct {
	opts   Options
	stream *input.Stream
	out    io.Writer

	canvas *draw.Canvas
	cw     *draw.ChunkWriter

	level int
	rng   *rand.Rand

	player   *fight.Fighter
	cpu      *fight.Fighter
	manager  *fight.Manager
	gameLoop *Loop
	source   *frameSource
	hud      *hud

	phase   Phase
	running bool
}

// frameSource feeds the most recent sampled input vector to the Manager.
type frameSource struct {
	vec fight.Input
}

func (s *frameSource) Sample() fight.Input { return s.vec }

// Run drives matches on the given reader/writer pair until the player quits
// or the stream ends. It follows the Input → Update → Draw cycle at a fixed
// frame rate; the simulation itself steps on the Loop's fixed timestep.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Level < 1 || opts.Level > 5 {
		opts.Level = 2
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return err
	}

	s := &session{
		opts:    opts,
		stream:  input.StartStream(r),
		out:     w,
		canvas:  draw.NewScaledCanvas(termWidth, termHeight, arenaViewWidth, arenaViewHeight),
		cw:      draw.NewChunkWriter(w, 0, 0),
		level:   opts.Level,
		rng:     rand.New(rand.NewSource(seed)),
		phase:   PhaseTitle,
		running: true,
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()
	for s.running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		frame := input.Read(s.stream)
		if frame.Quit {
			break
		}

		if err := s.resize(); err != nil {
			return err
		}

		switch s.phase {
		case PhaseTitle:
			s.updateTitle(frame)
		case PhaseFighting:
			s.source.vec = frame.Vector
			s.gameLoop.FrameDuration(delta)
			if s.manager.Over() {
				s.phase = PhaseResult
				if stinger, ok := s.opts.Sound.(interface{ KO() }); ok {
					stinger.KO()
				}
			}
		case PhaseResult:
			s.updateResult(frame)
		}

		s.drawFrame()

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// resize tracks terminal size changes and keeps the canvas scaled.
func (s *session) resize() error {
	termWidth, termHeight, err := s.opts.TermSizeFunc()
	if err != nil {
		return err
	}
	s.canvas.Resize(termWidth, termHeight)
	return nil
}

// startMatch builds fresh fighters and wiring. Fighters are never reused
// between matches.
func (s *session) startMatch() {
	s.player = fight.NewFighter("player", fight.ArenaWidth*0.3, true)
	s.cpu = fight.NewFighter("cpu", fight.ArenaWidth*0.7, false)
	s.player.SetSound(s.opts.Sound)
	s.cpu.SetSound(s.opts.Sound)

	if s.hud != nil {
		s.hud.detach()
	}
	s.hud = newHUD(s.player, s.cpu)

	s.source = &frameSource{}
	s.manager = fight.NewManager(s.player, s.cpu, fight.NewAI(s.level, s.rng), s.source)
	s.gameLoop = New(TimeStep, MaxFrameTime, s.manager.Update)
	s.manager.SetStopper(s.gameLoop)
	if s.opts.Store != nil {
		s.manager.SetOutcomeSink(s.opts.Store)
	}
	s.gameLoop.Start()
	s.phase = PhaseFighting
}

func (s *session) updateTitle(frame input.Frame) {
	if frame.Number >= 1 && frame.Number <= 5 {
		s.level = frame.Number
	}
	if frame.Enter {
		s.startMatch()
	}
}

func (s *session) updateResult(frame input.Frame) {
	if frame.Enter {
		s.startMatch()
	}
	if frame.Escape {
		s.phase = PhaseTitle
	}
}
