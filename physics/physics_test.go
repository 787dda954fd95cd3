package physics

import (
	"testing"

	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
)

func TestBallGravityAccelerates(t *testing.T) {
	early, late := 0, 0
	for clock := 0; clock < constants.BallGravityBucket; clock++ {
		early = BallGravity(early, clock)
	}
	for clock := 5 * constants.BallGravityBucket; clock < 6*constants.BallGravityBucket; clock++ {
		late = BallGravity(late, clock)
	}
	if late <= early {
		t.Errorf("expected stronger acceleration later in flight: early gain %d, late gain %d", early, late)
	}
}

func TestBallGravityTerminalVelocity(t *testing.T) {
	v := constants.BallTerminalVelocity
	for clock := 0; clock < 200; clock++ {
		v = BallGravity(v, clock)
		if v > constants.BallTerminalVelocity {
			t.Fatalf("velocity %d exceeded terminal velocity at clock %d", v, clock)
		}
	}
}

func TestIntegrateBallOutOfPlayIsInert(t *testing.T) {
	b := components.NewBall()
	b.X, b.Y = 100, constants.ScreenHeight+1
	b.VelX, b.VelY = 3, 2

	IntegrateBall(&b, 10)

	if b.VelX != 0 || b.VelY != 0 {
		t.Errorf("expected frozen velocity, got (%d,%d)", b.VelX, b.VelY)
	}
	if b.X != 100 || b.Y != constants.ScreenHeight+1 {
		t.Errorf("expected ball not to move, got (%d,%d)", b.X, b.Y)
	}
}

func TestIntegrateBallMoves(t *testing.T) {
	b := components.NewBall()
	b.X, b.Y = 50, 50
	b.VelX, b.VelY = 2, -3

	IntegrateBall(&b, 1)

	if b.X != 52 {
		t.Errorf("expected X=52, got %d", b.X)
	}
	if b.VelY != -3 || b.Y != 47 {
		t.Errorf("expected VelY=-3 Y=47 on a non-gain tick, got VelY=%d Y=%d", b.VelY, b.Y)
	}
}

func TestBoing(t *testing.T) {
	b := components.NewBall()
	b.Y = constants.Ground + b.Size - 1
	b.VelY = 5
	if Boing(&b) {
		t.Fatal("ball above the bounce line should not bounce")
	}

	b.Y = constants.Ground + b.Size
	if !Boing(&b) {
		t.Fatal("expected bounce at the ground line")
	}
	if b.VelY != -5 {
		t.Errorf("expected inverted velocity -5, got %d", b.VelY)
	}
	if b.Y != constants.Ground+b.Size-5 {
		t.Errorf("expected one bounce step applied, got Y=%d", b.Y)
	}
}

func TestJumpLandsOnGround(t *testing.T) {
	p := components.NewPlayer()
	if !StartJump(&p) {
		t.Fatal("grounded player should be able to jump")
	}
	if StartJump(&p) {
		t.Fatal("airborne player should not jump again")
	}

	peak := p.Y
	for i := 0; i < 200 && p.JumpPhase != 0; i++ {
		IntegrateJump(&p)
		if p.Y < peak {
			peak = p.Y
		}
	}

	if p.JumpPhase != 0 {
		t.Fatal("jump did not resolve")
	}
	if p.Y+p.Height != constants.Ground {
		t.Errorf("expected feet on ground line, got bottom %d", p.Y+p.Height)
	}
	if peak >= constants.Ground-constants.PlayerHeight {
		t.Error("expected the jump to leave the ground")
	}
}

func TestUpdateHitBoxPlacement(t *testing.T) {
	p := components.NewPlayer()
	p.StartSwing()
	UpdateHitBox(&p)

	if !p.HitBox.Enabled {
		t.Fatal("hit-box should be enabled during a swing")
	}
	if p.HitBox.X != p.X+p.Width/2 || p.HitBox.Y != p.Y-constants.HitBoxRaise {
		t.Errorf("unexpected first-frame box at (%d,%d)", p.HitBox.X, p.HitBox.Y)
	}
	if p.SwingFrames != constants.SwingFrameCounterStart-1 {
		t.Errorf("expected one frame consumed, got %d", p.SwingFrames)
	}

	for p.SwingFrames > 0 {
		UpdateHitBox(&p)
	}
	UpdateHitBox(&p)
	if p.HitBox.Enabled {
		t.Error("hit-box should be disabled once the swing ends")
	}

	cpu := components.NewCPU()
	cpu.StartSwing()
	UpdateHitBox(&cpu)
	if cpu.HitBox.X+cpu.HitBox.Size >= cpu.X {
		t.Errorf("CPU racket should be left of its anchor, box at %d anchor %d", cpu.HitBox.X, cpu.X)
	}
}

func TestRacketBallCollisionInclusiveEdges(t *testing.T) {
	p := components.NewPlayer()
	p.StartSwing()
	UpdateHitBox(&p)
	hb := p.HitBox

	place := func(cx, cy int) components.Ball {
		b := components.NewBall()
		b.X = cx - b.Size/2
		b.Y = cy - b.Size/2
		return b
	}

	hits := [][2]int{
		{hb.X, hb.Y},
		{hb.X + hb.Size, hb.Y},
		{hb.X, hb.Y + hb.Size},
		{hb.X + hb.Size, hb.Y + hb.Size},
	}
	for _, c := range hits {
		b := place(c[0], c[1])
		if !RacketBallCollision(p, &b) {
			t.Errorf("expected hit with center on edge (%d,%d)", c[0], c[1])
		}
		if b.VelX <= 0 {
			t.Errorf("player return should travel right, got VelX=%d", b.VelX)
		}
		if b.VelY >= 0 {
			t.Errorf("return should lift the ball, got VelY=%d", b.VelY)
		}
	}

	mid := hb.Y + hb.Size/2
	misses := [][2]int{
		{hb.X - 1, mid},
		{hb.X + hb.Size + 1, mid},
		{hb.X + hb.Size/2, hb.Y - 1},
		{hb.X + hb.Size/2, hb.Y + hb.Size + 1},
	}
	for _, c := range misses {
		b := place(c[0], c[1])
		if RacketBallCollision(p, &b) {
			t.Errorf("expected miss with center one unit outside at (%d,%d)", c[0], c[1])
		}
	}

	p.HitBox.Enabled = false
	b := place(hb.X+1, hb.Y+1)
	if RacketBallCollision(p, &b) {
		t.Error("disabled hit-box must not collide")
	}
}

func TestHitVelocityXRange(t *testing.T) {
	for _, isCPU := range []bool{false, true} {
		p := components.NewPlayer()
		if isCPU {
			p = components.NewCPU()
		}
		p.StartSwing()
		for p.SwingFrames > 0 {
			UpdateHitBox(&p)
			v := HitVelocityX(p)
			if isCPU && (v > -1 || v < -constants.MaxHitSpeed) {
				t.Errorf("CPU velocity %d out of range", v)
			}
			if !isCPU && (v < 1 || v > constants.MaxHitSpeed) {
				t.Errorf("player velocity %d out of range", v)
			}
		}
	}
}

func TestSwingSpriteFrame(t *testing.T) {
	if SwingSpriteFrame(constants.SwingFrameCounterStart) != 0 {
		t.Error("first swing tick should show frame 0")
	}
	if SwingSpriteFrame(0) != 2 {
		t.Error("frame should cap at 2")
	}
}
