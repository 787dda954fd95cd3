package physics

import (
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
)

// IntegrateBall advances the ball one tick: constant horizontal speed, gravity on the vertical
// A ball below the playfield is inert: its velocity is zeroed and it is not moved
func IntegrateBall(b *components.Ball, gravityClock int) {
	if !b.InPlay() {
		b.VelX = 0
		b.VelY = 0
		return
	}
	b.X += b.VelX
	b.VelY = BallGravity(b.VelY, gravityClock)
	b.Y += b.VelY
}

// Boing bounces the ball off the ground line, returns true if a bounce occurred
func Boing(b *components.Ball) bool {
	if b.Y-b.Size >= constants.Ground {
		b.VelY = -b.VelY
		b.Y += b.VelY
		return true
	}
	return false
}

// StartJump launches a grounded actor, returns false if a jump is already in progress
func StartJump(p *components.Player) bool {
	if !p.Grounded() {
		return false
	}
	p.JumpVelocity = constants.JumpVelocityStart
	p.JumpPhase = 1
	return true
}

// IntegrateJump advances an active jump one tick
// The jump ends and the actor's feet are put back on the ground line once they pass it
func IntegrateJump(p *components.Player) {
	if p.JumpPhase == 0 {
		return
	}
	p.JumpVelocity = JumpGravity(p.JumpVelocity, p.JumpPhase)
	p.Y += p.JumpVelocity
	p.JumpPhase++

	if p.Y+p.Height > constants.Ground {
		p.Y = constants.Ground - p.Height
		p.JumpVelocity = 0
		p.JumpPhase = 0
	}
}
