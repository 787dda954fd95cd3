package systems

import (
	"fmt"

	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
)

// AwardPoint gives side one point and normalizes the result
// Both at advantage fall back to deuce; advantage against a side below deuce wins the game outright
// A raw advantage against deuce is left as-is
func AwardPoint(s *components.Score, side components.Side) {
	if side == components.SideCPU {
		s.CPU++
	} else {
		s.Player++
	}

	if s.Player == constants.ScoreAdvantage && s.CPU == constants.ScoreAdvantage {
		s.Player = constants.ScoreDeuce
		s.CPU = constants.ScoreDeuce
	}
	if s.Player == constants.ScoreAdvantage && s.CPU < constants.ScoreDeuce {
		s.Player = constants.ScoreWon
	}
	if s.CPU == constants.ScoreAdvantage && s.Player < constants.ScoreDeuce {
		s.CPU = constants.ScoreWon
	}

	if s.Player > constants.ScoreWon || s.CPU > constants.ScoreWon {
		panic(fmt.Sprintf("fault: score out of range %d-%d", s.Player, s.CPU))
	}
}

// ResetPoints clears both point counters for the next game
func ResetPoints(s *components.Score) {
	s.Player = 0
	s.CPU = 0
}
