package physics

import "github.com/lixenwraith/vi-tennis/constants"

// ballGravityPeriod holds ticks between unit velocity gains, indexed by gravity clock bucket
// Periods shrink as the clock advances so downward acceleration grows with flight time
var ballGravityPeriod = [...]int{4, 3, 3, 2, 2, 1}

// BallGravity returns the ball's vertical velocity after one gravity tick
// gravityClock is the number of ticks since the last serve or racket contact
func BallGravity(velY, gravityClock int) int {
	idx := gravityClock / constants.BallGravityBucket
	if idx >= len(ballGravityPeriod) {
		idx = len(ballGravityPeriod) - 1
	}
	if idx < 0 {
		idx = 0
	}
	if gravityClock%ballGravityPeriod[idx] == 0 {
		velY++
	}
	if velY > constants.BallTerminalVelocity {
		velY = constants.BallTerminalVelocity
	}
	return velY
}

// JumpGravity returns an actor's jump velocity after one jump tick
func JumpGravity(velJump, jumpPhase int) int {
	if jumpPhase%constants.JumpGravityPeriod == 0 {
		return velJump + 1
	}
	return velJump
}
