package systems

import (
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/vmath"
)

// MoveCPU steps the CPU one unit toward the predicted landing point
// Without a prediction it drifts toward the three-quarter court default
func MoveCPU(cpu *components.Player, landingX int) {
	if landingX == 0 {
		landingX = constants.CPUDefaultX
	}
	cpu.X = vmath.StepToward(cpu.X, landingX, constants.CPUStep, constants.CPUStep)
}

// PredictLanding estimates where a ball just struck by striker will land
// Speed classes map to travel constants, corrected by the striker's jump height and ball speed
func PredictLanding(b components.Ball, striker components.Player) int {
	var travel int
	switch b.VelX {
	case 3:
		travel = constants.LandingTravelFast
	case 2:
		travel = constants.LandingTravelMedium
	default:
		travel = constants.LandingTravelSlow
	}

	jumpHeight := constants.Ground - striker.Height - striker.Y
	jumpCorrection := jumpHeight * b.VelX / constants.LandingJumpDivisor
	speedCorrection := b.VelX * constants.LandingSpeedFactor

	x := b.X + travel + jumpCorrection - speedCorrection

	// Out of bounds: wait at three-quarter court
	if x == 0 || x > constants.CourtEdgeRight {
		x = constants.CPUDefaultX
	}
	// Short balls: commit to the bounce from the baseline instead of rushing the net
	if x < constants.NetBoundaryRight+constants.PlayerWidth {
		x = constants.CourtEdgeRight
	}
	return x
}

// SwingDelay returns the CPU reaction distance armed when the human strikes the ball
// Jitter comes from the tick counter; deep landings halve the distance so the CPU swings later
func SwingDelay(tick uint32, velX, landingX int) int {
	delay := constants.SwingDelayBase +
		vmath.Intn(tick, constants.SwingDelayJitter) +
		velX*constants.SwingDelaySpeedFactor
	if landingX >= constants.ScreenWidth-constants.PlayerWidth {
		delay /= 2
	}
	return delay
}

// ShouldSwing reports whether the ball has closed within the CPU's armed reaction distance
func ShouldSwing(cpu components.Player, b components.Ball, delay int) bool {
	return delay > constants.SwingDelayMin && cpu.X-b.X-delay <= 0
}
