package systems

import (
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
)

// ResetActors returns both actors to their starting stance
func ResetActors(player, cpu *components.Player) {
	player.ResetStance()
	cpu.ResetStance()
}

// SetUpServe holds the ball motionless beside the server, clearing any landing prediction
func SetUpServe(b *components.Ball, server components.Player) {
	offset := server.Width - constants.ServeBallInset
	if server.IsCPU {
		offset = -offset
	}
	b.X = server.X + offset
	b.Y = server.Y
	b.VelX = 0
	b.VelY = 0
	b.LandingX = 0
}

// LaunchServe tosses the ball straight up
func LaunchServe(b *components.Ball) {
	b.VelX = 0
	b.VelY = constants.ServeVelocity
}

// ExitCheck is the result of testing the ball against the serve window and court limits
type ExitCheck struct {
	// Reserve means the toss dropped past the server and must be taken again
	Reserve bool

	// Point is set when the ball left the court; Scorer took the point
	Point  bool
	Scorer components.Side

	// Out is set when the ball left the court without bouncing
	Out bool
}

// CheckExit evaluates the ball after integration
// Conditions are tested in fixed order; the first matching court exit wins
func CheckExit(server components.Player, b components.Ball) ExitCheck {
	var res ExitCheck

	if b.Y > server.Y+b.Size {
		res.Reserve = true
	}

	switch {
	case (b.HasBounced && b.X > constants.ScreenWidth) || (!b.HasBounced && b.X < constants.CourtEdgeLeft):
		res.Point = true
		res.Scorer = components.SidePlayer
		res.Out = !b.HasBounced
	case (!b.HasBounced && b.X > constants.CourtEdgeRight) || (b.HasBounced && b.X < 0):
		res.Point = true
		res.Scorer = components.SideCPU
		res.Out = !b.HasBounced
	}

	return res
}

// BounceFault tests a bounce against the striker's own half
// incoming is the ball direction sampled before the bounce
// A ball heading to the human bouncing past the left net boundary was returned short by the CPU;
// a ball heading to the CPU bouncing before the right net boundary was returned short by the human
func BounceFault(b components.Ball, incoming bool) (scorer components.Side, fault bool) {
	if incoming && b.X > constants.NetBoundaryLeft {
		return components.SidePlayer, true
	}
	if !incoming && b.X < constants.NetBoundaryRight {
		return components.SideCPU, true
	}
	return components.SidePlayer, false
}
