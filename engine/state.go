package engine

import (
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/systems"
)

// State is the complete simulation state of one tick
// It is a plain value: copying it snapshots the game, and Step never mutates its input
type State struct {
	// ===== Actors =====

	Player components.Player
	CPU    components.Player
	Ball   components.Ball

	// ===== Match =====

	Score    components.Score
	Overlays OverlayQueue

	// Phase is what the tick presents; PhaseOverlay whenever a banner is queued
	Phase Phase
	// Resume is the gameplay phase underneath any overlay; equals Phase otherwise
	Resume Phase

	// CPUSwingDelay is the CPU's remaining reaction budget for the current return
	CPUSwingDelay int

	// Sticky once raised; a new match clears them
	PlayerMatchWinner bool
	CPUMatchWinner    bool
}

// NewState returns a fresh match with the human about to serve
func NewState() State {
	s := State{
		Player:        components.NewPlayer(),
		CPU:           components.NewCPU(),
		Ball:          components.NewBall(),
		Phase:         PhaseAwaitingServe,
		Resume:        PhaseAwaitingServe,
		CPUSwingDelay: constants.SwingDelayMin,
	}
	systems.SetUpServe(&s.Ball, s.Player)
	return s
}

// MatchDecided reports whether either match-winner flag is raised
func (s State) MatchDecided() bool {
	return s.PlayerMatchWinner || s.CPUMatchWinner
}

// MatchWinner returns the side that took the match
func (s State) MatchWinner() (components.Side, bool) {
	switch {
	case s.PlayerMatchWinner:
		return components.SidePlayer, true
	case s.CPUMatchWinner:
		return components.SideCPU, true
	}
	return components.SidePlayer, false
}

// settle records the gameplay phase and derives the visible one from the overlay queue
func (s *State) settle(p Phase) {
	s.Resume = p
	if s.Overlays.Empty() {
		s.Phase = p
	} else {
		s.Phase = PhaseOverlay
	}
}
