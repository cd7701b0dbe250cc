package fight

import (
	"math/rand"
	"testing"
)

type countStopper struct{ stops int }

func (s *countStopper) Stop() { s.stops++ }

type captureSink struct {
	reports int
	out     Outcome
}

func (s *captureSink) MatchEnded(o Outcome) {
	s.reports++
	s.out = o
}

// seedAttack puts a fighter mid-attack as if a charge had just been released.
func seedAttack(f *Fighter, attack AttackType, height AttackHeight, charge float64) {
	f.State.Set(StateAttacking)
	f.AttackType.Set(attack)
	f.AttackHeight.Set(height)
	f.releasedCharge = charge
}

func TestResolveHitClassification(t *testing.T) {
	tests := []struct {
		name       string
		guard      State
		height     AttackHeight
		wantHealth float64
		wantState  State
	}{
		{"perfect high block", StateBlockingHigh, HeightHigh, MaxHealth, StateBlockingHigh},
		{"perfect low block", StateBlockingLow, HeightLow, MaxHealth, StateBlockingLow},
		{"mid chips high guard", StateBlockingHigh, HeightMid, MaxHealth - ChipDamage, StateBlockingHigh},
		{"mid chips low guard", StateBlockingLow, HeightMid, MaxHealth - ChipDamage, StateBlockingLow},
		{"mismatched guard", StateBlockingHigh, HeightLow, MaxHealth - PunchDamageLight, StateStunned},
		{"no guard", StateIdle, HeightMid, MaxHealth - PunchDamageLight, StateStunned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := NewFighter("a", 400, true)
			def := NewFighter("b", 440, false)
			seedAttack(att, AttackPunch, tt.height, 0.3)
			def.State.Set(tt.guard)

			m := NewManager(att, def, NewAI(3, rand.New(rand.NewSource(1))), InputFunc(func() Input { return Input{} }))
			m.resolveHit(att, def)

			if got := def.Health.Peek(); got != tt.wantHealth {
				t.Errorf("defender health = %v, want %v", got, tt.wantHealth)
			}
			if got := def.State.Peek(); got != tt.wantState {
				t.Errorf("defender state = %v, want %v", got, tt.wantState)
			}
			// Whatever the guard did, the attack is spent.
			if got := att.State.Peek(); got != StateIdle {
				t.Errorf("attacker state = %v, want idle", got)
			}
			if got := att.AttackType.Peek(); got != AttackNone {
				t.Errorf("attacker attackType = %v, want none", got)
			}
		})
	}
}

func TestResolveHitRange(t *testing.T) {
	cutoff := Reach * AttackRangeScale

	tests := []struct {
		name string
		gap  float64
		hits bool
	}{
		{"at the edge", cutoff, true},
		{"just beyond", cutoff + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := NewFighter("a", 400, true)
			def := NewFighter("b", 400+tt.gap, false)
			seedAttack(att, AttackKick, HeightMid, 0)

			m := NewManager(att, def, NewAI(3, rand.New(rand.NewSource(1))), InputFunc(func() Input { return Input{} }))
			m.resolveHit(att, def)

			hit := def.Health.Peek() < MaxHealth
			if hit != tt.hits {
				t.Errorf("gap %v: hit = %v, want %v", tt.gap, hit, tt.hits)
			}
			if !tt.hits && att.State.Peek() != StateAttacking {
				t.Error("out-of-range swing consumed the attack")
			}
		})
	}
}

func TestDamageTiers(t *testing.T) {
	tests := []struct {
		attack AttackType
		charge float64
		want   float64
	}{
		{AttackPunch, 0, PunchDamageLight},
		{AttackPunch, HighChargeThreshold - 0.01, PunchDamageLight},
		{AttackPunch, HighChargeThreshold, PunchDamageHeavy},
		{AttackPunch, 1, PunchDamageHeavy},
		{AttackKick, 0.5, KickDamageLight},
		{AttackKick, 1, KickDamageHeavy},
	}
	for _, tt := range tests {
		if got := damageFor(tt.attack, tt.charge); got != tt.want {
			t.Errorf("damageFor(%v, %v) = %v, want %v", tt.attack, tt.charge, got, tt.want)
		}
	}
}

func TestKOStopsSchedulerExactlyOnce(t *testing.T) {
	a := NewFighter("a", 400, true)
	b := NewFighter("b", 430, false)
	seedAttack(a, AttackPunch, HeightMid, 0)
	b.Health.Set(1)

	stopper := &countStopper{}
	sink := &captureSink{}
	// Level 5 never guesses: it reads the mid attack and blocks low, so the
	// chip is what finishes the match.
	m := NewManager(a, b, NewAI(5, rand.New(rand.NewSource(1))), InputFunc(func() Input { return Input{} }))
	m.SetStopper(stopper)
	m.SetOutcomeSink(sink)

	m.Update(1.0 / 60.0)

	if !m.Over() {
		t.Fatal("match not over after lethal chip")
	}
	if got := b.Health.Peek(); got != 0 {
		t.Errorf("loser health = %v, want 0", got)
	}
	if stopper.stops != 1 {
		t.Errorf("scheduler stopped %d times, want 1", stopper.stops)
	}
	if sink.reports != 1 {
		t.Errorf("outcome reported %d times, want 1", sink.reports)
	}

	out := sink.out
	if out.Winner != "a" || out.Loser != "b" {
		t.Errorf("outcome winner/loser = %q/%q, want a/b", out.Winner, out.Loser)
	}
	if out.WinnerHealth != MaxHealth {
		t.Errorf("winner health = %v, want %v", out.WinnerHealth, MaxHealth)
	}

	// A finished match ignores further ticks.
	m.Update(1.0 / 60.0)
	if stopper.stops != 1 || sink.reports != 1 {
		t.Errorf("post-KO tick re-fired: stops=%d reports=%d", stopper.stops, sink.reports)
	}
}

func TestDoubleKO(t *testing.T) {
	a := NewFighter("a", 400, true)
	b := NewFighter("b", 500, false)
	a.Health.Set(0)
	b.Health.Set(0)

	sink := &captureSink{}
	m := NewManager(a, b, NewAI(3, rand.New(rand.NewSource(1))), InputFunc(func() Input { return Input{} }))
	m.SetOutcomeSink(sink)
	m.checkKO()

	if !m.Over() {
		t.Fatal("double KO did not end the match")
	}
	if sink.out.Winner != "" {
		t.Errorf("winner = %q, want empty on double KO", sink.out.Winner)
	}
}

func TestFullChargePunchScenario(t *testing.T) {
	a := NewFighter("a", 400, true)
	b := NewFighter("b", 450, false)

	// Hold punch for exactly MaxChargeTime, then let go with a neutral stick.
	tick := 0
	source := InputFunc(func() Input {
		tick++
		if tick <= 9 {
			return Input{PunchHeld: true}
		}
		return Input{}
	})

	// Level 0 never opens an attack of its own, so only A's punch can land.
	m := NewManager(a, b, NewAI(0, rand.New(rand.NewSource(7))), source)
	for i := 0; i < 10; i++ {
		m.Update(chargeDT)
	}

	if !a.MaxCharged() {
		t.Error("full-duration hold not released at max charge")
	}
	if got := a.ReleasedCharge(); got != 1.0 {
		t.Errorf("released charge = %v, want exactly 1.0", got)
	}
	if got := a.AttackHeight.Peek(); got != HeightMid {
		t.Errorf("attack height = %v, want mid for a neutral release", got)
	}
	// The release tick also resolves the hit and consumes the attack.
	if got := a.State.Peek(); got != StateIdle {
		t.Errorf("attacker state after resolution = %v, want idle", got)
	}

	// The defender ate either the heavy punch or, if its guard was up, chip.
	got := b.Health.Peek()
	if got != MaxHealth-PunchDamageHeavy && got != MaxHealth-ChipDamage {
		t.Errorf("defender health = %v, want %v or %v", got, MaxHealth-PunchDamageHeavy, MaxHealth-ChipDamage)
	}
}

func TestElapsedAccumulates(t *testing.T) {
	a := NewFighter("a", 100, true)
	b := NewFighter("b", 700, false)
	m := NewManager(a, b, NewAI(0, rand.New(rand.NewSource(1))), InputFunc(func() Input { return Input{} }))

	for i := 0; i < 10; i++ {
		m.Update(chargeDT)
	}
	if got := m.Elapsed(); got != 10*chargeDT {
		t.Errorf("elapsed = %v, want %v", got, 10*chargeDT)
	}
}
