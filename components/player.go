package components

import (
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/vmath"
)

// HitBox is the racket contact square of an actor's active swing; only Enabled gates collision
type HitBox struct {
	X, Y    int
	Size    int
	Enabled bool

	// DebugColor draws the box outline when non-zero
	DebugColor Color
}

// Square returns the box extents for collision testing
func (h HitBox) Square() vmath.Square {
	return vmath.Square{X: h.X, Y: h.Y, Size: h.Size}
}

// Player is one side of the court, human or CPU
// For the CPU, X is the right edge of its sprite and the racket swings to the left
type Player struct {
	X, Y          int
	Width, Height int

	// JumpVelocity is applied to Y every tick while JumpPhase > 0
	JumpVelocity int
	// JumpPhase counts jump ticks; 0 means grounded
	JumpPhase int

	// SwingFrames counts down the active swing; the hit-box is live while > 0
	SwingFrames int
	HitBox      HitBox

	IsCPU bool
}

// NewPlayer returns the human actor in starting stance
func NewPlayer() Player {
	p := Player{HitBox: HitBox{Size: constants.HitBoxSize}}
	p.ResetStance()
	return p
}

// NewCPU returns the CPU actor in starting stance
func NewCPU() Player {
	p := Player{IsCPU: true, HitBox: HitBox{Size: constants.HitBoxSize}}
	p.ResetStance()
	return p
}

// ResetStance puts the actor back at its starting position with no swing or jump
func (p *Player) ResetStance() {
	p.Width = constants.PlayerWidth
	p.Height = constants.PlayerHeight
	p.Y = constants.Ground - constants.PlayerHeight
	if p.IsCPU {
		p.X = constants.ScreenWidth - constants.PlayerWidth - constants.PlayerStartInset
	} else {
		p.X = constants.PlayerStartInset
	}
	p.JumpVelocity = 0
	p.JumpPhase = 0
	p.SwingFrames = 0
	p.HitBox.Enabled = false
}

// StartSwing arms the racket for a full swing
func (p *Player) StartSwing() {
	p.SwingFrames = constants.SwingFrameCounterStart
	p.HitBox.Enabled = true
}

// Grounded reports whether no jump is in progress
func (p Player) Grounded() bool {
	return p.JumpPhase == 0
}

// Side returns which side the actor plays for
func (p Player) Side() Side {
	if p.IsCPU {
		return SideCPU
	}
	return SidePlayer
}
