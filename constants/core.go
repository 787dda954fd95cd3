package constants

// Game Loop Timing
const (
	// TickRate is the number of simulation ticks per second (vertical blank rate)
	TickRate = 60

	// MaxCatchUpTicks bounds how many ticks the runner replays after a stall
	MaxCatchUpTicks = 4
)

// Playfield, in simulation pixels
const (
	ScreenWidth  = 240
	ScreenHeight = 160

	// Ground is the y coordinate of the court surface
	Ground = 136
)

// Terminal projection: simulation pixels per terminal cell
const (
	PixelsPerColumn = 3
	PixelsPerRow    = 8

	// CourtRowOffset leaves room for the scoreboard above the court
	CourtRowOffset = 2
)
