package fight

import (
	"math/rand"

	"github.com/novakj/ringside/internal/physics"
)

// AI synthesizes an input vector for the machine-controlled fighter. It keeps
// no intention between ticks: every decision is a pure function of the
// current world state and the injected random source, so a seeded source
// replays identically.
type AI struct {
	level       int
	mistakeRate float64
	aggression  float64
	rng         *rand.Rand
}

// NewAI creates a controller for the given difficulty level. Higher levels
// make fewer defensive mistakes and attack more often.
func NewAI(level int, rng *rand.Rand) *AI {
	mistake := 0.5 - float64(level)*0.1
	if mistake < 0 {
		mistake = 0
	}
	return &AI{
		level:       level,
		mistakeRate: mistake,
		aggression:  float64(level) * 0.2,
		rng:         rng,
	}
}

// Level returns the configured difficulty level.
func (ai *AI) Level() int {
	return ai.level
}

// Input produces one tick's controls for self against opp.
func (ai *AI) Input(self, opp *Fighter) Input {
	oppState := opp.State.Peek()
	threatened := oppState == StateAttacking ||
		(oppState == StateCharging && opp.ChargeLevel.Peek() > AIThreatCharge)

	if threatened && self.State.Peek() != StateCharging {
		return ai.defend(opp)
	}

	if st := self.State.Peek(); st == StateCharging {
		return ai.holdCharge(self)
	}

	gap := opp.X.Peek() - self.X.Peek()
	if physics.Gap(self.X.Peek(), opp.X.Peek()) > AICloseRange {
		return Input{X: physics.Sign(gap)}
	}

	// In range: open a charge with probability scaling with aggression.
	if ai.rng.Float64() < ai.aggression {
		if ai.rng.Float64() < 0.5 {
			return Input{PunchHeld: true}
		}
		return Input{KickHeld: true}
	}
	return Input{}
}

// defend picks a block against an incoming or telegraphed attack. With
// probability mistakeRate the guess is random instead of matching the
// opponent's aim.
func (ai *AI) defend(opp *Fighter) Input {
	if ai.rng.Float64() < ai.mistakeRate {
		if ai.rng.Float64() < 0.5 {
			return Input{Y: 1}
		}
		return Input{Y: -1}
	}
	// A mid attack cannot be matched by any height, so anything short of a
	// telegraphed high attack gets the low block; chip beats a clean hit.
	if opp.AttackHeight.Peek() == HeightHigh {
		return Input{Y: 1}
	}
	return Input{Y: -1}
}

// holdCharge keeps the attack button down until the charge is nearly full,
// then releases with a randomly aimed height.
func (ai *AI) holdCharge(self *Fighter) Input {
	if self.ChargeLevel.Peek() < AIReleaseCharge {
		switch self.AttackType.Peek() {
		case AttackKick:
			return Input{KickHeld: true}
		default:
			return Input{PunchHeld: true}
		}
	}
	switch ai.rng.Intn(3) {
	case 0:
		return Input{Y: 1}
	case 1:
		return Input{Y: -1}
	default:
		return Input{}
	}
}
