package components

import "github.com/lixenwraith/vi-tennis/constants"

// Color is a BGR555 display color code; 0 means unset
type Color uint16

// Side identifies one of the two competitors
type Side uint8

const (
	SidePlayer Side = iota
	SideCPU
)

// Color returns the side's marker color
func (s Side) Color() Color {
	if s == SideCPU {
		return constants.ColorCPU
	}
	return constants.ColorPlayer
}

func (s Side) String() string {
	if s == SideCPU {
		return "CPU"
	}
	return "Player"
}

// Score is the point and set record of a match
// Points run 0..5: 4 is advantage, 5 is a won game
type Score struct {
	Player int
	CPU    int

	// SetWins holds the winner color of each completed set in order; 0 = not played
	SetWins       [constants.MatchLength]Color
	SetsCompleted int
}

// Points returns the point counter of a side
func (s Score) Points(side Side) int {
	if side == SideCPU {
		return s.CPU
	}
	return s.Player
}

// Winner returns the side holding a won game, if any
func (s Score) Winner() (Side, bool) {
	switch {
	case s.Player == constants.ScoreWon:
		return SidePlayer, true
	case s.CPU == constants.ScoreWon:
		return SideCPU, true
	}
	return SidePlayer, false
}

// Deuce reports whether both sides are tied at the deuce score
func (s Score) Deuce() bool {
	return s.Player == constants.ScoreDeuce && s.CPU == constants.ScoreDeuce
}

// Slot markers for standings rendering
const (
	MarkerCompleted = "X"
	MarkerPending   = "-"
)

// StandingsSlot is one set's entry in a standings snapshot
type StandingsSlot struct {
	Color  Color
	Marker string
}

// Standings is a copy of all set slots taken when a set concludes
type Standings [constants.MatchLength]StandingsSlot
