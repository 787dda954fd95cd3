package engine

// Phase is the single gameplay phase of the simulation
type Phase uint8

const (
	// PhaseAwaitingServe holds both actors in stance with the ball beside the server
	PhaseAwaitingServe Phase = iota
	// PhaseServeActive is the toss before the server makes contact
	PhaseServeActive
	// PhaseRally is live play after the first contact
	PhaseRally
	// PhaseOverlay suspends gameplay while a banner is shown; State.Resume is the phase underneath
	PhaseOverlay
	// PhaseMatchOver freezes play until a new match is started
	PhaseMatchOver
)

var phaseNames = [...]string{
	PhaseAwaitingServe: "awaiting_serve",
	PhaseServeActive:   "serve_active",
	PhaseRally:         "rally",
	PhaseOverlay:       "overlay",
	PhaseMatchOver:     "match_over",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}
