package loop

import (
	"fmt"
	"strings"

	"github.com/novakj/ringside/internal/draw"
	"github.com/novakj/ringside/internal/fight"
)

// The canvas logical space is the arena itself: x matches world coordinates,
// y is world y shifted so the highest jump stays on screen and the ground
// line sits near the bottom.
const (
	arenaViewWidth  = fight.ArenaWidth
	arenaViewHeight = 120.0
	groundViewY     = 100.0 // world y=0 maps here
)

// Fighter silhouette dimensions in world units.
const (
	bodyWidth    = 36.0
	bodyHeight   = 46.0
	crouchHeight = 28.0
	armLength    = 22.0
	armThickness = 6.0
)

// hud mirrors the externally observed fighter attributes through reactive
// subscriptions, so the overlay text reflects every change without the
// renderer reaching into the simulation mid-tick.
type hud struct {
	left, right   hudSide
	unsubscribers []func()
}

type hudSide struct {
	name   string
	health float64
	state  fight.State
	charge float64
	windUp float64
	attack fight.AttackType
}

func newHUD(player, cpu *fight.Fighter) *hud {
	h := &hud{
		left:  hudSide{name: strings.ToUpper(player.ID), health: player.Health.Peek(), state: player.State.Peek()},
		right: hudSide{name: strings.ToUpper(cpu.ID), health: cpu.Health.Peek(), state: cpu.State.Peek()},
	}
	h.watch(player, &h.left)
	h.watch(cpu, &h.right)
	return h
}

func (h *hud) watch(f *fight.Fighter, side *hudSide) {
	h.unsubscribers = append(h.unsubscribers,
		f.Health.Subscribe(func(v float64) { side.health = v }),
		f.State.Subscribe(func(v fight.State) { side.state = v }),
		f.ChargeLevel.Subscribe(func(v float64) { side.charge = v }),
		f.WindUpProgress.Subscribe(func(v float64) { side.windUp = v }),
		f.AttackType.Subscribe(func(v fight.AttackType) { side.attack = v }),
	)
}

func (h *hud) detach() {
	for _, unsub := range h.unsubscribers {
		unsub()
	}
	h.unsubscribers = nil
}

// drawFrame clears and redraws the whole terminal for the current phase.
func (s *session) drawFrame() {
	draw.ClearScreen(s.cw)
	s.canvas.Clear()

	switch s.phase {
	case PhaseTitle:
		s.drawTitle()
	case PhaseFighting:
		s.drawArena()
		s.canvas.Render(s.cw)
		s.drawHUD()
	case PhaseResult:
		s.drawArena()
		s.canvas.Render(s.cw)
		s.drawHUD()
		s.drawResult()
	}

	_ = s.cw.Flush()
}

// drawArena paints the ground line and both fighters onto the canvas.
func (s *session) drawArena() {
	s.canvas.HLine(0, arenaViewWidth, groundViewY+1)
	s.drawFighter(s.player)
	s.drawFighter(s.cpu)
}

// drawFighter renders one fighter's silhouette from peeked reactive state.
func (s *session) drawFighter(f *fight.Fighter) {
	x := f.X.Peek()
	feet := f.Y.Peek() + groundViewY
	st := f.State.Peek()

	height := bodyHeight
	if st == fight.StateBlockingLow || st == fight.StateStunned {
		height = crouchHeight
	}

	s.canvas.FillRect(x-bodyWidth/2, feet-height, bodyWidth, height)

	// Head marker above the body so facing reads at a glance.
	headX := x
	if f.FacingRight.Peek() {
		headX += bodyWidth / 4
	} else {
		headX -= bodyWidth / 4
	}
	s.canvas.FillRect(headX-4, feet-height-8, 8, 8)

	// Raised guard or extended attack limb.
	dir := -1.0
	if f.FacingRight.Peek() {
		dir = 1.0
	}
	switch st {
	case fight.StateBlockingHigh:
		s.canvas.FillRect(x+dir*bodyWidth/2, feet-height, armThickness, height/2)
	case fight.StateBlockingLow:
		s.canvas.FillRect(x+dir*bodyWidth/2, feet-height/2, armThickness, height/2)
	case fight.StateAttacking:
		armY := feet - height + 8
		switch f.AttackHeight.Peek() {
		case fight.HeightMid:
			armY = feet - height/2
		case fight.HeightLow:
			armY = feet - 8
		}
		armX := x + dir*bodyWidth/2
		if dir < 0 {
			armX -= armLength
		}
		s.canvas.FillRect(armX, armY, armLength, armThickness)
	}
}

// drawHUD overlays names, health bars, charge meters, and state labels.
func (s *session) drawHUD() {
	width := s.canvas.TerminalWidth()
	half := width / 2

	s.cw.WriteAt(2, 1, s.hudLine(&s.hud.left))
	rightLine := s.hudLine(&s.hud.right)
	s.cw.WriteAt(max(half+1, width-len([]rune(rightLine))-1), 1, rightLine)

	timer := fmt.Sprintf("%05.1f", s.manager.Elapsed())
	s.cw.WriteAt(max(1, half-len(timer)/2), 1, timer)

	s.cw.WriteAt(2, 2, s.meterLine(&s.hud.left))
	rightMeter := s.meterLine(&s.hud.right)
	s.cw.WriteAt(max(half+1, width-len([]rune(rightMeter))-1), 2, rightMeter)
}

// hudLine formats "NAME ██████░░░░ state".
func (s *session) hudLine(side *hudSide) string {
	const cells = 10
	filled := int(side.health / fight.MaxHealth * cells)
	var bar strings.Builder
	for i := 0; i < cells; i++ {
		if i < filled {
			bar.WriteRune('█')
		} else {
			bar.WriteRune('░')
		}
	}
	return fmt.Sprintf("%s %s %3.0f %s", side.name, bar.String(), side.health, side.state)
}

// meterLine shows wind-up and charge as shade intensity; the wind-up fills
// first, the charge catches up behind it.
func (s *session) meterLine(side *hudSide) string {
	if side.charge <= 0 && side.windUp <= 0 {
		return strings.Repeat(" ", 16)
	}
	const cells = 8
	var meter strings.Builder
	meter.WriteString(string(draw.ShadeLevel(side.windUp)))
	meter.WriteByte(' ')
	filled := int(side.charge * cells)
	for i := 0; i < cells; i++ {
		if i < filled {
			meter.WriteRune('▓')
		} else {
			meter.WriteRune('░')
		}
	}
	if side.attack != fight.AttackNone {
		meter.WriteByte(' ')
		meter.WriteString(side.attack.String())
	}
	return meter.String()
}
