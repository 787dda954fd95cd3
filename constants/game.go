package constants

// Movement
const (
	// PlayerStep is the horizontal distance covered per tick while a direction is held
	PlayerStep = 2

	// CPUStep is the CPU's horizontal distance per tick toward its target
	CPUStep = 1

	// JumpVelocityStart is the initial upward jump velocity
	JumpVelocityStart = -4

	// JumpGravityPeriod is the number of jump ticks between unit velocity gains
	JumpGravityPeriod = 3
)

// Ball flight
const (
	// ServeVelocity is the vertical launch velocity of a serve toss
	ServeVelocity = -5

	// BallTerminalVelocity caps downward ball speed
	BallTerminalVelocity = 8

	// BallGravityBucket is the number of gravity ticks sharing one period entry
	BallGravityBucket = 16
)

// Racket
const (
	// SwingFrameCounterStart is the swing length in ticks
	SwingFrameCounterStart = 12

	// SwingFramesPerSprite is the number of ticks each swing sprite frame is shown
	SwingFramesPerSprite = 4

	// HitVelocityDivisor converts the racket's leading-edge offset into horizontal ball speed
	HitVelocityDivisor = 3

	// HitLiftDivisor converts the racket height offset into vertical ball speed
	HitLiftDivisor = 4

	// HitLiftBase is the upward velocity every return starts from
	HitLiftBase = -4

	// HitBoxRaise lifts the racket above the actor's head at the start of a swing
	HitBoxRaise = 4

	MaxHitSpeed = 3
)

// CPU opponent
const (
	// SwingDelayMin is the resting reaction delay; the CPU never swings at this value
	SwingDelayMin = 0

	// SwingDelayBase, SwingDelayJitter and SwingDelaySpeedFactor shape the randomized reaction distance
	SwingDelayBase        = 10
	SwingDelayJitter      = 24
	SwingDelaySpeedFactor = 4

	// LandingTravelFast, LandingTravelMedium and LandingTravelSlow map ball speed classes to expected travel
	LandingTravelFast   = 170
	LandingTravelMedium = 140
	LandingTravelSlow   = 85

	// LandingSpeedFactor is subtracted per unit of ball speed from the expected travel
	LandingSpeedFactor = 5

	// LandingJumpDivisor scales the striker's jump height into extra travel
	LandingJumpDivisor = 2

	// CPUDefaultX is where the CPU waits without a landing prediction (three-quarter court)
	CPUDefaultX = ScreenWidth * 3 / 4
)

// Match
const (
	// MatchLength is the number of sets in a match
	MatchLength = 3

	// ScoreWon marks a side that has taken the current game
	ScoreWon = 5

	// ScoreAdvantage is the raw score one point past deuce
	ScoreAdvantage = 4

	// ScoreDeuce is the score both sides fall back to when tied at advantage
	ScoreDeuce = 3

	// OverlayCapacity bounds the overlay queue
	OverlayCapacity = MatchLength + 2
)

// Overlay durations, in ticks
const (
	OutDuration       = 60
	SetWinDuration    = 120
	StandingsDuration = 180
)
