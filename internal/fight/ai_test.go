package fight

import (
	"math/rand"
	"testing"
)

func newTestAI(level int) *AI {
	return NewAI(level, rand.New(rand.NewSource(1)))
}

func TestAIDifficultyScaling(t *testing.T) {
	tests := []struct {
		level          int
		wantMistake    float64
		wantAggression float64
	}{
		{0, 0.5, 0},
		{1, 0.4, 0.2},
		{3, 0.2, 0.6},
		{5, 0, 1.0},
		{6, 0, 1.2}, // mistake rate floors at zero, aggression keeps growing
	}
	for _, tt := range tests {
		ai := newTestAI(tt.level)
		if !almost(ai.mistakeRate, tt.wantMistake) {
			t.Errorf("level %d mistakeRate = %v, want %v", tt.level, ai.mistakeRate, tt.wantMistake)
		}
		if !almost(ai.aggression, tt.wantAggression) {
			t.Errorf("level %d aggression = %v, want %v", tt.level, ai.aggression, tt.wantAggression)
		}
		if ai.Level() != tt.level {
			t.Errorf("Level() = %d, want %d", ai.Level(), tt.level)
		}
	}
}

func TestAIAdvancesWhenFar(t *testing.T) {
	ai := newTestAI(3)

	self := NewFighter("cpu", 100, true)
	opp := NewFighter("player", 700, false)
	if got := ai.Input(self, opp); got.X != 1 {
		t.Errorf("advance right: X = %v, want 1", got.X)
	}

	self = NewFighter("cpu", 700, false)
	opp = NewFighter("player", 100, true)
	if got := ai.Input(self, opp); got.X != -1 {
		t.Errorf("advance left: X = %v, want -1", got.X)
	}
}

func TestAIDefendsAgainstAttack(t *testing.T) {
	// Level 5 makes no guard mistakes, so the choice is deterministic.
	ai := newTestAI(5)
	self := NewFighter("cpu", 400, false)

	tests := []struct {
		name   string
		height AttackHeight
		wantY  float64
	}{
		{"matches a high attack", HeightHigh, 1},
		{"ducks a low attack", HeightLow, -1},
		{"ducks a mid attack", HeightMid, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opp := NewFighter("player", 430, true)
			opp.State.Set(StateAttacking)
			opp.AttackHeight.Set(tt.height)

			got := ai.Input(self, opp)
			if got.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", got.Y, tt.wantY)
			}
			if got.PunchHeld || got.KickHeld {
				t.Error("defending input holds an attack button")
			}
		})
	}
}

func TestAIDefendsAgainstTelegraphedCharge(t *testing.T) {
	ai := newTestAI(5)
	self := NewFighter("cpu", 400, false)
	opp := NewFighter("player", 430, true)
	opp.State.Set(StateCharging)
	opp.ChargeLevel.Set(AIThreatCharge + 0.1)

	if got := ai.Input(self, opp); got.Y == 0 {
		t.Error("no guard raised against a charged opponent")
	}

	// A barely started charge is not yet a threat.
	opp.ChargeLevel.Set(AIThreatCharge - 0.1)
	if got := ai.Input(self, opp); got.Y != 0 {
		t.Errorf("Y = %v, want 0 against an early charge at level 5", got.Y)
	}
}

func TestAIHoldsOwnChargeUnderThreat(t *testing.T) {
	// A charging AI commits: it keeps the button down even while the
	// opponent is attacking.
	ai := newTestAI(5)
	self := NewFighter("cpu", 400, false)
	self.State.Set(StateCharging)
	self.AttackType.Set(AttackKick)
	self.ChargeLevel.Set(0.4)

	opp := NewFighter("player", 430, true)
	opp.State.Set(StateAttacking)

	got := ai.Input(self, opp)
	if !got.KickHeld {
		t.Errorf("input = %+v, want kick still held", got)
	}
}

func TestAIReleasesNearFullCharge(t *testing.T) {
	ai := newTestAI(3)
	self := NewFighter("cpu", 400, false)
	self.State.Set(StateCharging)
	self.AttackType.Set(AttackPunch)
	opp := NewFighter("player", 430, true)

	self.ChargeLevel.Set(AIReleaseCharge - 0.01)
	if got := ai.Input(self, opp); !got.PunchHeld {
		t.Errorf("input = %+v, want punch held below release threshold", got)
	}

	self.ChargeLevel.Set(AIReleaseCharge)
	got := ai.Input(self, opp)
	if got.PunchHeld || got.KickHeld {
		t.Errorf("input = %+v, want buttons released at threshold", got)
	}
}

func TestAILevelZeroNeverAttacks(t *testing.T) {
	ai := newTestAI(0)
	self := NewFighter("cpu", 400, false)
	opp := NewFighter("player", 430, true)

	for i := 0; i < 100; i++ {
		got := ai.Input(self, opp)
		if got.PunchHeld || got.KickHeld {
			t.Fatalf("iteration %d: level 0 opened an attack: %+v", i, got)
		}
	}
}
