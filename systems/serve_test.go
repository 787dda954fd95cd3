package systems

import (
	"testing"

	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
)

func TestSetUpServe(t *testing.T) {
	player := components.NewPlayer()
	b := components.NewBall()
	b.VelX, b.VelY, b.LandingX = 3, -2, 150

	SetUpServe(&b, player)

	if b.X != player.X+player.Width-constants.ServeBallInset || b.Y != player.Y {
		t.Errorf("ball not beside server: (%d,%d)", b.X, b.Y)
	}
	if b.VelX != 0 || b.VelY != 0 || b.LandingX != 0 {
		t.Errorf("serve setup should clear motion and prediction, got %+v", b)
	}

	cpu := components.NewCPU()
	SetUpServe(&b, cpu)
	if b.X >= cpu.X {
		t.Errorf("CPU serve should hold the ball on its racket side, got x=%d anchor=%d", b.X, cpu.X)
	}
}

func TestCheckExit(t *testing.T) {
	server := components.NewPlayer()
	inCourt := server.Y

	tests := []struct {
		name string
		ball components.Ball
		want ExitCheck
	}{
		{"in play", components.Ball{X: 100, Y: inCourt, Size: 4}, ExitCheck{}},
		{"dropped toss", components.Ball{X: 32, Y: server.Y + 5, Size: 4}, ExitCheck{Reserve: true}},
		{"toss at threshold", components.Ball{X: 32, Y: server.Y + 4, Size: 4}, ExitCheck{}},
		{"cpu hit long", components.Ball{X: constants.CourtEdgeLeft - 1, Y: inCourt, Size: 4},
			ExitCheck{Point: true, Scorer: components.SidePlayer, Out: true}},
		{"passed cpu after bounce", components.Ball{X: constants.ScreenWidth + 1, Y: inCourt, Size: 4, HasBounced: true},
			ExitCheck{Point: true, Scorer: components.SidePlayer}},
		{"player hit long", components.Ball{X: constants.CourtEdgeRight + 1, Y: inCourt, Size: 4},
			ExitCheck{Point: true, Scorer: components.SideCPU, Out: true}},
		{"passed player after bounce", components.Ball{X: -1, Y: inCourt, Size: 4, HasBounced: true},
			ExitCheck{Point: true, Scorer: components.SideCPU}},
		{"bounced, between edges", components.Ball{X: constants.CourtEdgeRight + 1, Y: inCourt, Size: 4, HasBounced: true},
			ExitCheck{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckExit(server, tt.ball); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBounceFault(t *testing.T) {
	tests := []struct {
		name      string
		x         int
		incoming  bool
		wantSide  components.Side
		wantFault bool
	}{
		{"cpu return lands on cpu half", constants.NetBoundaryLeft + 1, true, components.SidePlayer, true},
		{"cpu return lands on player half", constants.NetBoundaryLeft, true, components.SidePlayer, false},
		{"player return lands on player half", constants.NetBoundaryRight - 1, false, components.SideCPU, true},
		{"player return lands on cpu half", constants.NetBoundaryRight, false, components.SidePlayer, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, fault := BounceFault(components.Ball{X: tt.x}, tt.incoming)
			if fault != tt.wantFault || (fault && side != tt.wantSide) {
				t.Errorf("got (%v,%v), want (%v,%v)", side, fault, tt.wantSide, tt.wantFault)
			}
		})
	}
}
