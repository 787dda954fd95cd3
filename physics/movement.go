package physics

import (
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
)

// UpdateHitBox places the racket for the current swing frame and consumes that frame
// With no frames left the box is disabled
func UpdateHitBox(p *components.Player) {
	if p.SwingFrames == 0 {
		p.HitBox.Enabled = false
		return
	}

	progress := constants.SwingFrameCounterStart - p.SwingFrames
	if p.IsCPU {
		p.HitBox.X = p.X - p.Width/2 - p.HitBox.Size - progress
	} else {
		p.HitBox.X = p.X + p.Width/2 + progress
	}
	p.HitBox.Y = p.Y - constants.HitBoxRaise + progress

	p.SwingFrames--
}

// SwingSpriteFrame returns which of the three swing sprite frames is showing
func SwingSpriteFrame(swingFrames int) int {
	frame := (constants.SwingFrameCounterStart - swingFrames) / constants.SwingFramesPerSprite
	if frame > 2 {
		frame = 2
	}
	return frame
}
