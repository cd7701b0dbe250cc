package fight

// Combat tuning constants.
// All tunable match parameters are centralized here for easy adjustment.

// Arena geometry. The vertical axis grows downward; ground level is 0 and a
// jumping fighter moves to negative y.
const (
	ArenaWidth = 800.0
	GroundY    = 0.0

	// Reach is the fighter body width: bodies closer than this overlap, and
	// attacks connect within Reach * AttackRangeScale.
	Reach            = 60.0
	AttackRangeScale = 1.5
)

// Movement and jump physics.
const (
	MoveSpeed    = 220.0  // horizontal units per second
	JumpVelocity = -320.0 // initial vertical velocity on takeoff
	Gravity      = 980.0  // downward acceleration, units per second²
)

// Charge timing. WindUpTime < MaxChargeTime so the wind-up cue saturates
// before the charge itself does.
const (
	WindUpTime       = 0.3 // seconds until windUpProgress reaches 1
	MaxChargeTime    = 1.0 // seconds until chargeLevel reaches 1
	OverheatTime     = 2.0 // holding past this discards the charge
	OverheatCooldown = 1.2 // seconds locked out after overheating
)

// Attack resolution.
const (
	AttackDuration      = 0.25 // seconds before a whiffed attack returns to idle
	StunDuration        = 0.5  // seconds a struck fighter stays stunned
	HighChargeThreshold = 0.9  // released charge at or above this is the heavy tier
	BlockThreshold      = 0.5  // |input.y| beyond this engages a block / picks a height
)

// Damage amounts, subtracted from a 0-100 health pool.
const (
	MaxHealth        = 100.0
	PunchDamageLight = 6.0
	PunchDamageHeavy = 14.0
	KickDamageLight  = 9.0
	KickDamageHeavy  = 20.0
	ChipDamage       = 2.0
)

// AI behavior.
const (
	AICloseRange    = Reach * 2.0 // beyond this the AI advances
	AIThreatCharge  = 0.5         // opponent charge level the AI reacts to
	AIReleaseCharge = 0.95        // AI lets go of a held charge at this level
)
