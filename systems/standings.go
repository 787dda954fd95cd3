package systems

import (
	"fmt"

	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
)

// RecordSetWin stores side as winner of the next set slot
// Recording more sets than the match length is a logic fault
func RecordSetWin(s *components.Score, side components.Side) {
	if s.SetsCompleted >= constants.MatchLength {
		panic(fmt.Sprintf("fault: standings overflow, %d sets already recorded", s.SetsCompleted))
	}
	s.SetsCompleted++
	s.SetWins[s.SetsCompleted-1] = side.Color()
}

// Snapshot copies the set slots for overlay display; unplayed slots are neutral
func Snapshot(s components.Score) components.Standings {
	var st components.Standings
	for i, winner := range s.SetWins {
		if winner != 0 {
			st[i] = components.StandingsSlot{Color: winner, Marker: components.MarkerCompleted}
		} else {
			st[i] = components.StandingsSlot{Color: constants.ColorWhite, Marker: components.MarkerPending}
		}
	}
	return st
}

// CheckForMatchWinner reports which sides have won more than one set
func CheckForMatchWinner(setWins [constants.MatchLength]components.Color) (playerWins, cpuWins bool) {
	playerSets, cpuSets := 0, 0
	for _, c := range setWins {
		switch c {
		case constants.ColorPlayer:
			playerSets++
		case constants.ColorCPU:
			cpuSets++
		}
	}
	return playerSets > 1, cpuSets > 1
}
