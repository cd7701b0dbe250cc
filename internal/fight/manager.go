package fight

import "github.com/novakj/ringside/internal/physics"

// Stopper is the scheduler handle the Manager halts when the match ends.
type Stopper interface {
	Stop()
}

// Outcome is the final result of a match, reported once to the sink.
type Outcome struct {
	Winner       string // empty on a double KO
	Loser        string
	WinnerHealth float64
	Elapsed      float64 // simulated seconds
}

// OutcomeSink receives the match outcome at KO. It is never read back by the
// simulation.
type OutcomeSink interface {
	MatchEnded(Outcome)
}

// Manager drives one match: it gathers both fighters' inputs, updates the
// fighters in a fixed order, resolves body collision, resolves hits in both
// directions, and detects the KO. One Update call is one simulation tick.
type Manager struct {
	A *Fighter // human side, always updated first
	B *Fighter // AI side

	ai      *AI
	source  InputSource
	stopper Stopper
	sink    OutcomeSink

	elapsed float64
	over    bool
	outcome Outcome
}

// NewManager wires a match together. source supplies fighter A's input; B is
// driven by the AI controller.
func NewManager(a, b *Fighter, ai *AI, source InputSource) *Manager {
	return &Manager{A: a, B: b, ai: ai, source: source}
}

// SetStopper attaches the scheduler to halt on KO.
func (m *Manager) SetStopper(s Stopper) {
	m.stopper = s
}

// SetOutcomeSink attaches the persistence/UI collaborator.
func (m *Manager) SetOutcomeSink(s OutcomeSink) {
	m.sink = s
}

// Over reports whether the match has ended.
func (m *Manager) Over() bool {
	return m.over
}

// Outcome returns the final result; only meaningful once Over is true.
func (m *Manager) Outcome() Outcome {
	return m.outcome
}

// Elapsed returns the simulated match time in seconds.
func (m *Manager) Elapsed() float64 {
	return m.elapsed
}

// Update advances the whole match by one fixed tick. Inputs for both sides
// are sampled against the pre-tick world, then A updates before B, collision
// resolves before hit detection, and hits resolve A-against-B before
// B-against-A.
func (m *Manager) Update(dt float64) {
	if m.over {
		return
	}
	m.elapsed += dt

	inA := m.source.Sample()
	inB := m.ai.Input(m.B, m.A)

	m.A.Update(dt, inA)
	m.B.Update(dt, inB)

	if Colliding(m.A, m.B) {
		ResolvePush(m.A, m.B)
	}

	m.resolveHit(m.A, m.B)
	m.resolveHit(m.B, m.A)

	m.checkKO()
}

// resolveHit applies one attacker/defender pairing. A connecting attack is
// consumed immediately, whatever the defender's guard did to it, so the same
// release never lands twice.
func (m *Manager) resolveHit(att, def *Fighter) {
	if att.State.Peek() != StateAttacking {
		return
	}
	if physics.Gap(att.X.Peek(), def.X.Peek()) > Reach*AttackRangeScale {
		return
	}

	height := att.AttackHeight.Peek()
	guard := def.State.Peek()

	switch {
	case guard == StateBlockingHigh && height == HeightHigh,
		guard == StateBlockingLow && height == HeightLow:
		// Perfect block: no damage, defender holds its guard.
		if att.sound != nil {
			att.sound.Block()
		}
	case guard.Blocking() && height == HeightMid:
		def.ApplyChip(ChipDamage)
		if att.sound != nil {
			att.sound.Block()
		}
	default:
		def.ApplyHit(damageFor(att.AttackType.Peek(), att.ReleasedCharge()))
		if att.sound != nil {
			att.sound.Hit()
		}
	}
	att.ConsumeAttack()
}

// damageFor selects the damage tier from the attack type and the charge level
// captured at release.
func damageFor(attack AttackType, charge float64) float64 {
	heavy := charge >= HighChargeThreshold
	switch attack {
	case AttackKick:
		if heavy {
			return KickDamageHeavy
		}
		return KickDamageLight
	default:
		if heavy {
			return PunchDamageHeavy
		}
		return PunchDamageLight
	}
}

// checkKO ends the match on the first tick either fighter's health reaches
// zero. The scheduler is stopped exactly once and the outcome reported once.
func (m *Manager) checkKO() {
	aHealth := m.A.Health.Peek()
	bHealth := m.B.Health.Peek()
	if aHealth > 0 && bHealth > 0 {
		return
	}

	m.over = true
	switch {
	case aHealth <= 0 && bHealth <= 0:
		m.outcome = Outcome{Elapsed: m.elapsed}
	case bHealth <= 0:
		m.outcome = Outcome{Winner: m.A.ID, Loser: m.B.ID, WinnerHealth: aHealth, Elapsed: m.elapsed}
	default:
		m.outcome = Outcome{Winner: m.B.ID, Loser: m.A.ID, WinnerHealth: bHealth, Elapsed: m.elapsed}
	}

	if m.stopper != nil {
		m.stopper.Stop()
	}
	if m.sink != nil {
		m.sink.MatchEnded(m.outcome)
	}
}
