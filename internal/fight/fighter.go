// Package fight implements the two-combatant match simulation: the per-fighter
// state machine and physics, pairwise collision, hit resolution, and the AI
// opponent. The simulation is deterministic: it advances only through fixed
// Update ticks and keeps its own clock, so delayed effects never depend on
// wall-clock timers.
package fight

import (
	"math"

	"github.com/novakj/ringside/internal/physics"
	"github.com/novakj/ringside/internal/reactive"
)

// State is a fighter's discrete behavioral state.
type State int

const (
	StateIdle State = iota
	StateMoving
	StateCharging
	StateAttacking
	StateBlockingHigh
	StateBlockingLow
	StateJumping
	StateStunned
	StateOverheated
)

var stateNames = map[State]string{
	StateIdle:         "idle",
	StateMoving:       "moving",
	StateCharging:     "charging",
	StateAttacking:    "attacking",
	StateBlockingHigh: "blocking_high",
	StateBlockingLow:  "blocking_low",
	StateJumping:      "jumping",
	StateStunned:      "stunned",
	StateOverheated:   "overheated",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Blocking reports whether the state is either block height.
func (s State) Blocking() bool {
	return s == StateBlockingHigh || s == StateBlockingLow
}

// AttackType identifies which attack a fighter is charging or throwing.
type AttackType int

const (
	AttackNone AttackType = iota
	AttackPunch
	AttackKick
)

func (a AttackType) String() string {
	switch a {
	case AttackPunch:
		return "punch"
	case AttackKick:
		return "kick"
	default:
		return "none"
	}
}

// AttackHeight is the vertical line an attack is aimed at. The zero value is
// mid, matching a neutral stick on release.
type AttackHeight int

const (
	HeightMid AttackHeight = iota
	HeightHigh
	HeightLow
)

func (h AttackHeight) String() string {
	switch h {
	case HeightHigh:
		return "high"
	case HeightLow:
		return "low"
	default:
		return "mid"
	}
}

// Sound receives fire-and-forget audio cues from the simulation. No return
// value of a sound call ever affects the match.
type Sound interface {
	// Attack is invoked on attack execution; heavy distinguishes a fully
	// charged release from a light one.
	Attack(heavy bool)
	// Hit is invoked when an attack lands for full damage.
	Hit()
	// Block is invoked on a perfect or chip block.
	Block()
}

// PendingTransition is a scheduled state reversion. It fires only if the
// fighter is still in From when FireAt is reached on the fighter's own clock;
// otherwise it is silently dropped.
type PendingTransition struct {
	From   State
	To     State
	FireAt float64
}

// Fighter is one combatant: a state machine plus a 1D-horizontal /
// jump-vertical physics body. All externally observed attributes are reactive
// values so renderers can subscribe; everything else is internal bookkeeping.
//
// A Fighter is built once per match and mutated only by its own Update call,
// plus the hit-resolution entry points used by the Manager.
type Fighter struct {
	ID string

	X              *reactive.Value[float64]
	Y              *reactive.Value[float64]
	FacingRight    *reactive.Value[bool]
	State          *reactive.Value[State]
	Health         *reactive.Value[float64]
	ChargeLevel    *reactive.Value[float64]
	WindUpProgress *reactive.Value[float64]
	AttackType     *reactive.Value[AttackType]
	AttackHeight   *reactive.Value[AttackHeight]

	sound Sound

	now      float64 // accumulated simulation time, advances by dt per tick
	velY     float64
	grounded bool
	jumpHeld bool // previous tick's up-axis hold, for jump edge detection

	chargeStart    float64
	releasedCharge float64 // chargeLevel captured at the instant of release
	maxCharged     bool    // release fell in [MaxChargeTime, OverheatTime)

	pending []PendingTransition
}

// NewFighter creates a grounded, idle fighter at the given x position.
func NewFighter(id string, x float64, facingRight bool) *Fighter {
	return &Fighter{
		ID:             id,
		X:              reactive.New(x),
		Y:              reactive.New(GroundY),
		FacingRight:    reactive.New(facingRight),
		State:          reactive.New(StateIdle),
		Health:         reactive.New(MaxHealth),
		ChargeLevel:    reactive.New(0.0),
		WindUpProgress: reactive.New(0.0),
		AttackType:     reactive.New(AttackNone),
		AttackHeight:   reactive.New(HeightMid),
		grounded:       true,
	}
}

// SetSound attaches the audio collaborator. A nil sound is fine.
func (f *Fighter) SetSound(s Sound) {
	f.sound = s
}

// Grounded reports whether the fighter is standing on the ground.
func (f *Fighter) Grounded() bool {
	return f.grounded
}

// ReleasedCharge returns the charge level captured at the last release.
func (f *Fighter) ReleasedCharge() float64 {
	return f.releasedCharge
}

// MaxCharged reports whether the last release happened inside the max-charge
// window, before overheating.
func (f *Fighter) MaxCharged() bool {
	return f.maxCharged
}

// Pending returns a copy of the scheduled state reversions.
func (f *Fighter) Pending() []PendingTransition {
	out := make([]PendingTransition, len(f.pending))
	copy(out, f.pending)
	return out
}

// ForceState overwrites the current state directly. It exists for test and
// debug seeding only; gameplay code must go through Update and the Manager.
func (f *Fighter) ForceState(s State) {
	f.State.Set(s)
}

// Update advances the fighter by one fixed tick. Rules run in a fixed
// priority order: due reversions, vertical physics, blocking, jump takeoff,
// horizontal movement, then charge/attack handling.
func (f *Fighter) Update(dt float64, in Input) {
	f.now += dt
	f.firePending()
	f.integrateVertical(dt)

	// The up axis is overloaded: a rising edge while grounded in a neutral
	// stance starts a jump, a sustained hold engages the high block.
	st := f.State.Peek()
	upHeld := in.Y > BlockThreshold
	jumpEdge := f.grounded && upHeld && !f.jumpHeld && (st == StateIdle || st == StateMoving)
	f.jumpHeld = upHeld

	f.applyBlocking(in, jumpEdge)
	f.applyJump(jumpEdge)
	f.applyMovement(dt, in)
	f.applyCharge(in)
}

// firePending applies every due reversion whose originating state still
// holds. Superseded reversions are dropped without effect.
func (f *Fighter) firePending() {
	kept := f.pending[:0]
	for _, p := range f.pending {
		if p.FireAt > f.now {
			kept = append(kept, p)
			continue
		}
		if f.State.Peek() == p.From {
			f.State.Set(p.To)
			if p.From == StateAttacking {
				// The attack whiffed; discard the spent charge.
				f.AttackType.Set(AttackNone)
				f.ChargeLevel.Set(0)
				f.WindUpProgress.Set(0)
			}
		}
	}
	f.pending = kept
}

func (f *Fighter) schedule(from, to State, delay float64) {
	f.pending = append(f.pending, PendingTransition{From: from, To: to, FireAt: f.now + delay})
}

// integrateVertical applies gravity while airborne and handles touchdown.
func (f *Fighter) integrateVertical(dt float64) {
	if f.grounded {
		return
	}
	f.velY += Gravity * dt
	y := f.Y.Peek() + f.velY*dt
	if y >= GroundY {
		y = GroundY
		f.velY = 0
		f.grounded = true
		if f.State.Peek() == StateJumping {
			f.State.Set(StateIdle)
		}
	}
	f.Y.Set(y)
}

func (f *Fighter) applyBlocking(in Input, jumpEdge bool) {
	if jumpEdge {
		return
	}
	st := f.State.Peek()
	if st != StateIdle && st != StateMoving && !st.Blocking() {
		return
	}
	switch {
	case in.Y > BlockThreshold:
		f.State.Set(StateBlockingHigh)
	case in.Y < -BlockThreshold:
		f.State.Set(StateBlockingLow)
	default:
		if st.Blocking() {
			f.State.Set(StateIdle)
		}
	}
}

func (f *Fighter) applyJump(jumpEdge bool) {
	if !jumpEdge || !f.grounded {
		return
	}
	st := f.State.Peek()
	if st != StateIdle && st != StateMoving {
		return
	}
	f.State.Set(StateJumping)
	f.velY = JumpVelocity
	f.grounded = false
}

func (f *Fighter) applyMovement(dt float64, in Input) {
	if in.X == 0 {
		if f.State.Peek() == StateMoving {
			f.State.Set(StateIdle)
		}
		return
	}
	if !f.grounded {
		// Airborne steering moves and turns the body without touching state.
		f.X.Set(physics.Clamp(f.X.Peek()+in.X*MoveSpeed*dt, 0, ArenaWidth))
		f.FacingRight.Set(in.X > 0)
		return
	}
	st := f.State.Peek()
	if st != StateIdle && st != StateMoving {
		return
	}
	f.State.Set(StateMoving)
	f.X.Set(physics.Clamp(f.X.Peek()+in.X*MoveSpeed*dt, 0, ArenaWidth))
	f.FacingRight.Set(in.X > 0)
}

func (f *Fighter) applyCharge(in Input) {
	held := in.PunchHeld || in.KickHeld
	st := f.State.Peek()

	if st == StateCharging {
		elapsed := f.now - f.chargeStart
		if !held {
			f.releaseCharge(in, elapsed)
			return
		}
		f.ChargeLevel.Set(math.Min(elapsed/MaxChargeTime, 1))
		f.WindUpProgress.Set(math.Min(elapsed/WindUpTime, 1))
		if elapsed > OverheatTime {
			f.State.Set(StateOverheated)
			f.ChargeLevel.Set(0)
			f.WindUpProgress.Set(0)
			f.AttackType.Set(AttackNone)
			f.schedule(StateOverheated, StateIdle, OverheatCooldown)
		}
		return
	}

	// Charges start only from a grounded neutral stance. Punch wins a tie.
	if held && (st == StateIdle || st == StateMoving) && f.grounded {
		f.State.Set(StateCharging)
		f.chargeStart = f.now
		f.ChargeLevel.Set(0)
		f.WindUpProgress.Set(0)
		if in.PunchHeld {
			f.AttackType.Set(AttackPunch)
		} else {
			f.AttackType.Set(AttackKick)
		}
	}
}

// releaseCharge reads the stick at the instant of release to aim the attack,
// then executes it. The charge level is left intact for the Manager's damage
// calculation.
func (f *Fighter) releaseCharge(in Input, elapsed float64) {
	switch {
	case in.Y > BlockThreshold:
		f.AttackHeight.Set(HeightHigh)
	case in.Y < -BlockThreshold:
		f.AttackHeight.Set(HeightLow)
	default:
		f.AttackHeight.Set(HeightMid)
	}

	f.State.Set(StateAttacking)
	f.releasedCharge = f.ChargeLevel.Peek()
	f.maxCharged = elapsed >= MaxChargeTime && elapsed < OverheatTime
	if f.sound != nil {
		f.sound.Attack(f.maxCharged)
	}
	f.schedule(StateAttacking, StateIdle, AttackDuration)
}

// ApplyHit lands full damage on the fighter and stuns it. Health never drops
// below zero. Called by the Manager during hit resolution only.
func (f *Fighter) ApplyHit(damage float64) {
	f.Health.Set(math.Max(0, f.Health.Peek()-damage))
	f.State.Set(StateStunned)
	f.schedule(StateStunned, StateIdle, StunDuration)
}

// ApplyChip lands chip damage through a block without stunning.
func (f *Fighter) ApplyChip(damage float64) {
	f.Health.Set(math.Max(0, f.Health.Peek()-damage))
}

// ConsumeAttack ends the current attack immediately so a single release
// cannot connect again on later ticks.
func (f *Fighter) ConsumeAttack() {
	f.State.Set(StateIdle)
	f.AttackType.Set(AttackNone)
	f.ChargeLevel.Set(0)
	f.WindUpProgress.Set(0)
}
