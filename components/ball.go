package components

import (
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/vmath"
)

// Ball is the single tennis ball
type Ball struct {
	X, Y       int
	VelX, VelY int
	Size       int

	// HasBounced is set on a ground bounce and cleared when the human returns the ball
	HasBounced bool

	// LandingX is the CPU's predicted landing x; 0 means no prediction
	LandingX int

	// LandingDebug draws a landing marker in this color when non-zero
	LandingDebug Color
}

// NewBall returns a motionless ball of standard size
func NewBall() Ball {
	return Ball{Size: constants.BallSize}
}

// Center returns the ball's center point, used for contact tests
func (b Ball) Center() (int, int) {
	return vmath.Center(b.X, b.Y, b.Size)
}

// InPlay reports whether the ball is still within the visible playfield height
func (b Ball) InPlay() bool {
	return b.Y <= constants.ScreenHeight
}

// Incoming reports whether the ball travels toward the human side
func (b Ball) Incoming() bool {
	return b.VelX <= 0
}
