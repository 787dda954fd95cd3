package physics

import (
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/vmath"
)

// RacketBallCollision tests the ball center against the striker's hit-box
// On contact the ball takes new velocities and true is returned; the caller must reset the gravity clock
func RacketBallCollision(p components.Player, b *components.Ball) bool {
	hb := p.HitBox
	if !hb.Enabled {
		return false
	}

	cx, cy := b.Center()
	if !hb.Square().ContainsPoint(cx, cy) {
		return false
	}

	b.VelX = HitVelocityX(p)
	b.VelY = HitVelocityY(p)
	return true
}

// HitVelocityX derives horizontal return speed from the racket's leading edge offset
// Player returns travel right, CPU returns travel left
func HitVelocityX(p components.Player) int {
	hb := p.HitBox
	if p.IsCPU {
		lead := p.X - (hb.X + hb.Size)
		return -vmath.Clamp(lead/constants.HitVelocityDivisor, 1, constants.MaxHitSpeed)
	}
	lead := hb.X - p.X
	return vmath.Clamp(lead/constants.HitVelocityDivisor, 1, constants.MaxHitSpeed)
}

// HitVelocityY derives vertical return speed from how far the racket has dropped below the actor's top
func HitVelocityY(p components.Player) int {
	return constants.HitLiftBase + (p.HitBox.Y-p.Y)/constants.HitLiftDivisor
}
