package engine

import (
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/input"
	"github.com/lixenwraith/vi-tennis/physics"
	"github.com/lixenwraith/vi-tennis/systems"
)

// Result is the outcome of one Step
type Result struct {
	State  State
	Clock  Clock
	Events Events
}

// Step advances the simulation by one tick
// prev is read only; the returned state is a new value. Stages run in a fixed order and
// several of them end the tick early, in which case the clock is returned unchanged
func Step(prev State, clk Clock, in input.Frame) Result {
	next := prev
	var ev Events

	// Banner on screen: tick it, hold the actors, nothing else moves
	if !prev.Overlays.Empty() {
		if next.Overlays.Tick() {
			ev |= EventOverlayClosed
		}
		systems.ResetActors(&next.Player, &next.CPU)
		next.settle(prev.Resume)
		return Result{State: next, Clock: clk, Events: ev}
	}

	if prev.MatchDecided() {
		systems.ResetActors(&next.Player, &next.CPU)
		if in.JustPressed(input.ButtonStart) {
			return Result{State: NewState(), Clock: clk, Events: EventNewMatch}
		}
		next.settle(PhaseMatchOver)
		return Result{State: next, Clock: clk}
	}

	phase := prev.Resume

	// A side that reached 5 on the previous tick takes the set
	if side, won := prev.Score.Winner(); won {
		systems.RecordSetWin(&next.Score, side)
		next.Overlays.Push(standingsMessage(next.Score))
		next.Overlays.Push(setWonMessage(side))
		systems.ResetPoints(&next.Score)
		ev |= setEvent(side)
	}

	playerWins, cpuWins := systems.CheckForMatchWinner(prev.Score.SetWins)
	if (playerWins && !prev.PlayerMatchWinner) || (cpuWins && !prev.CPUMatchWinner) {
		ev |= EventMatchWon
	}
	next.PlayerMatchWinner = prev.PlayerMatchWinner || playerWins
	next.CPUMatchWinner = prev.CPUMatchWinner || cpuWins

	player, cpu, ball := &next.Player, &next.CPU, &next.Ball
	incoming := ball.Incoming()

	if physics.Boing(ball) {
		ball.HasBounced = true
		ev |= EventBounce
		if scorer, fault := systems.BounceFault(*ball, incoming); fault {
			next.Overlays.Push(outMessage())
			systems.AwardPoint(&next.Score, scorer)
			systems.ResetActors(player, cpu)
			systems.SetUpServe(ball, prev.Player)
			ev |= EventOut | pointEvent(scorer)
			next.settle(PhaseAwaitingServe)
			return Result{State: next, Clock: clk, Events: ev}
		}
	}

	switch phase {
	case PhaseAwaitingServe:
		systems.ResetActors(player, cpu)
		systems.SetUpServe(ball, prev.Player)
		if in.JustPressed(input.ButtonSwing) {
			systems.LaunchServe(ball)
			clk.Gravity = 0
			phase = PhaseServeActive
			ev |= EventServe
		}
		next.settle(phase)
		return Result{State: next, Clock: clk, Events: ev}

	case PhaseRally:
		if in.Down(input.ButtonRight) && player.X+player.Width < constants.NetBoundaryLeft {
			player.X += constants.PlayerStep
		}
		if in.Down(input.ButtonLeft) && player.X > 0 {
			player.X -= constants.PlayerStep
		}
		if in.JustPressed(input.ButtonJump) {
			physics.StartJump(player)
		}
	}

	if in.JustPressed(input.ButtonSwing) && !player.HitBox.Enabled && incoming {
		player.StartSwing()
	}

	if systems.ShouldSwing(*cpu, *ball, prev.CPUSwingDelay) {
		cpu.StartSwing()
		next.CPUSwingDelay = constants.SwingDelayMin
	}

	physics.UpdateHitBox(player)
	physics.UpdateHitBox(cpu)
	systems.MoveCPU(cpu, ball.LandingX)
	physics.IntegrateBall(ball, clk.Gravity)

	exit := systems.CheckExit(*player, *ball)
	if exit.Reserve && phase == PhaseServeActive {
		phase = PhaseAwaitingServe
		ev |= EventReserve
	}
	if exit.Point {
		systems.AwardPoint(&next.Score, exit.Scorer)
		if exit.Out {
			next.Overlays.Push(outMessage())
			ev |= EventOut
		}
		phase = PhaseAwaitingServe
		ev |= pointEvent(exit.Scorer)
	}

	physics.IntegrateJump(player)

	if physics.RacketBallCollision(*player, ball) {
		clk.Gravity = 0
		ball.LandingX = systems.PredictLanding(*ball, *player)
		next.CPUSwingDelay = systems.SwingDelay(clk.Tick, ball.VelX, ball.LandingX)
		ball.HasBounced = false
		phase = PhaseRally
		ev |= EventPlayerHit
	}
	if physics.RacketBallCollision(*cpu, ball) {
		clk.Gravity = 0
		ball.LandingX = 0
		ev |= EventCPUHit
	}

	next.settle(phase)
	return Result{State: next, Clock: clk.Advance(), Events: ev}
}

func pointEvent(side components.Side) Events {
	if side == components.SideCPU {
		return EventPointCPU
	}
	return EventPointPlayer
}

func setEvent(side components.Side) Events {
	if side == components.SideCPU {
		return EventSetCPU
	}
	return EventSetPlayer
}
