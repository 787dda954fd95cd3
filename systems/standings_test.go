package systems

import (
	"testing"

	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
)

func TestCheckForMatchWinner(t *testing.T) {
	p := components.Color(constants.ColorPlayer)
	c := components.Color(constants.ColorCPU)

	tests := []struct {
		name              string
		slots             [constants.MatchLength]components.Color
		wantPlayer, wantC bool
	}{
		{"empty", [constants.MatchLength]components.Color{}, false, false},
		{"one player set", [constants.MatchLength]components.Color{p, 0, 0}, false, false},
		{"one each", [constants.MatchLength]components.Color{p, c, 0}, false, false},
		{"player two straight", [constants.MatchLength]components.Color{p, p, 0}, true, false},
		{"cpu in three", [constants.MatchLength]components.Color{c, p, c}, false, true},
		{"player in three", [constants.MatchLength]components.Color{p, c, p}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotP, gotC := CheckForMatchWinner(tt.slots)
			if gotP != tt.wantPlayer || gotC != tt.wantC {
				t.Errorf("got (%v,%v), want (%v,%v)", gotP, gotC, tt.wantPlayer, tt.wantC)
			}
		})
	}
}

func TestRecordSetWinAndSnapshot(t *testing.T) {
	var s components.Score
	RecordSetWin(&s, components.SideCPU)

	if s.SetsCompleted != 1 {
		t.Fatalf("expected 1 set completed, got %d", s.SetsCompleted)
	}
	if s.SetWins[0] != constants.ColorCPU {
		t.Errorf("expected CPU color in slot 0, got %#x", s.SetWins[0])
	}

	st := Snapshot(s)
	if st[0].Marker != components.MarkerCompleted || st[0].Color != constants.ColorCPU {
		t.Errorf("unexpected slot 0 %+v", st[0])
	}
	for i := 1; i < constants.MatchLength; i++ {
		if st[i].Marker != components.MarkerPending || st[i].Color != constants.ColorWhite {
			t.Errorf("slot %d should be neutral, got %+v", i, st[i])
		}
	}
}

func TestRecordSetWinOverflowPanics(t *testing.T) {
	var s components.Score
	for i := 0; i < constants.MatchLength; i++ {
		RecordSetWin(&s, components.SidePlayer)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on standings overflow")
		}
	}()
	RecordSetWin(&s, components.SidePlayer)
}
