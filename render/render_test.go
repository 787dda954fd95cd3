package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/physics"
	"github.com/lixenwraith/vi-tennis/status"
	"github.com/lixenwraith/vi-tennis/systems"
)

func newTestRenderer(t *testing.T, opts Options) (tcell.SimulationScreen, *TerminalRenderer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen, NewTerminalRenderer(screen, opts)
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

func cellAt(screen tcell.SimulationScreen, x, y int) (rune, tcell.Color) {
	ch, _, style, _ := screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return ch, fg
}

func TestPointLabel(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, "0"}, {1, "15"}, {2, "30"}, {3, "40"}, {4, "AD"}, {5, "W"}, {6, "?"}, {-1, "?"},
	}
	for _, tt := range tests {
		if got := PointLabel(tt.points); got != tt.want {
			t.Errorf("PointLabel(%d) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestSetLabels(t *testing.T) {
	if got := SetLabels(); got != "S1  S2  S3" {
		t.Errorf("SetLabels() = %q", got)
	}
}

func TestGameColor(t *testing.T) {
	if got := GameColor(constants.ColorRed); got != tcell.NewRGBColor(248, 0, 0) {
		t.Errorf("red = %v", got)
	}
	if got := GameColor(constants.ColorCyan); got != tcell.NewRGBColor(0, 248, 248) {
		t.Errorf("cyan = %v", got)
	}
}

func TestRenderAwaitingServe(t *testing.T) {
	screen, r := newTestRenderer(t, DefaultOptions())
	r.RenderFrame(engine.NewState(), nil)

	if row := rowText(screen, 0); !strings.HasPrefix(row, "Player 0") || !strings.HasSuffix(row, "0 CPU") {
		t.Errorf("scoreboard = %q", row)
	}
	if row := rowText(screen, 7); !strings.Contains(row, "Press B to serve") {
		t.Errorf("prompt row = %q", row)
	}

	// Player at x=20,y=104 and CPU spanning 188..204 on the same rows
	if ch, fg := cellAt(screen, 6, 15); ch != '█' || fg != GameColor(constants.ColorPlayer) {
		t.Errorf("player cell = %q %v", ch, fg)
	}
	if ch, fg := cellAt(screen, 62, 15); ch != '█' || fg != GameColor(constants.ColorCPU) {
		t.Errorf("cpu cell = %q %v", ch, fg)
	}
	if ch, _ := cellAt(screen, 11, 15); ch != '●' {
		t.Errorf("ball cell = %q", ch)
	}
}

func TestRenderDeuce(t *testing.T) {
	screen, r := newTestRenderer(t, DefaultOptions())
	s := engine.NewState()
	s.Score.Player, s.Score.CPU = constants.ScoreDeuce, constants.ScoreDeuce
	r.RenderFrame(s, nil)

	row := rowText(screen, 0)
	if !strings.Contains(row, "Deuce") || !strings.HasPrefix(row, "Player 40") || !strings.HasSuffix(row, "40 CPU") {
		t.Errorf("scoreboard = %q", row)
	}
}

func TestRenderOverlay(t *testing.T) {
	screen, r := newTestRenderer(t, DefaultOptions())
	s := engine.NewState()
	s.Overlays.Push(engine.Message{Text: "Out", Remaining: constants.OutDuration, Color: constants.ColorWhite})
	s.Phase = engine.PhaseOverlay
	r.RenderFrame(s, nil)

	if row := rowText(screen, 12); strings.TrimSpace(row) != "Out" {
		t.Errorf("banner row = %q", row)
	}
	if row := rowText(screen, 7); strings.Contains(row, "Press") {
		t.Errorf("prompt shown under a banner: %q", row)
	}
	if ch, _ := cellAt(screen, 6, 15); ch == '█' {
		t.Error("actors drawn under a banner")
	}
}

func TestRenderStandingsOverlay(t *testing.T) {
	screen, r := newTestRenderer(t, DefaultOptions())
	var score components.Score
	systems.RecordSetWin(&score, components.SidePlayer)

	s := engine.NewState()
	s.Overlays.Push(engine.Message{
		Text:      "Match Standings",
		Remaining: constants.StandingsDuration,
		Color:     constants.ColorWhite,
		Kind:      engine.MessageStandings,
		Standings: systems.Snapshot(score),
	})
	r.RenderFrame(s, nil)

	if row := rowText(screen, 10); strings.TrimSpace(row) != "Match Standings" {
		t.Errorf("title row = %q", row)
	}
	if row := rowText(screen, 12); strings.TrimSpace(row) != "S1  S2  S3" {
		t.Errorf("labels row = %q", row)
	}
	if ch, fg := cellAt(screen, 36, 13); ch != 'X' || fg != GameColor(constants.ColorPlayer) {
		t.Errorf("slot 1 = %q %v", ch, fg)
	}
	if ch, fg := cellAt(screen, 40, 13); ch != '-' || fg != GameColor(constants.ColorWhite) {
		t.Errorf("slot 2 = %q %v", ch, fg)
	}
}

func TestRenderDebugLayers(t *testing.T) {
	s := engine.NewState()
	s.Phase, s.Resume = engine.PhaseRally, engine.PhaseRally
	s.Ball = components.Ball{X: 100, Y: 40, VelX: 2, Size: constants.BallSize, LandingX: 180}
	s.Player.StartSwing()
	physics.UpdateHitBox(&s.Player)

	stats := []status.Entry{{Key: "ticks", Value: "5"}}

	screen, r := newTestRenderer(t, DefaultOptions())
	r.RenderFrame(s, stats)
	if ch, _ := cellAt(screen, 60, 19); ch == '▼' {
		t.Error("landing marker drawn without debug")
	}
	if ch, _ := cellAt(screen, 9, 14); ch == '┌' {
		t.Error("hit-box outline drawn without debug")
	}

	r.SetDebug(true)
	r.RenderFrame(s, stats)
	if ch, _ := cellAt(screen, 60, 19); ch != '▼' {
		t.Errorf("landing marker = %q", ch)
	}
	if ch, _ := cellAt(screen, 9, 14); ch != '┌' {
		t.Errorf("hit-box corner = %q", ch)
	}
	if row := rowText(screen, 22); row != "ticks=5" {
		t.Errorf("status bar = %q", row)
	}
}

func TestRenderMatchOver(t *testing.T) {
	screen, r := newTestRenderer(t, DefaultOptions())
	s := engine.NewState()
	s.CPUMatchWinner = true
	s.Phase, s.Resume = engine.PhaseMatchOver, engine.PhaseMatchOver
	r.RenderFrame(s, nil)

	if row := rowText(screen, 11); strings.TrimSpace(row) != "CPU wins the match" {
		t.Errorf("banner row = %q", row)
	}
	if row := rowText(screen, 13); !strings.Contains(row, "Press Enter for a new match") {
		t.Errorf("restart row = %q", row)
	}
}

func TestRenderSmallScreenClips(t *testing.T) {
	screen, r := newTestRenderer(t, DefaultOptions())
	screen.SetSize(10, 4)
	r.UpdateDimensions()

	s := engine.NewState()
	s.Ball.Y = constants.ScreenHeight + 20
	r.SetDebug(true)
	r.RenderFrame(s, []status.Entry{{Key: "k", Value: "v"}})
}
