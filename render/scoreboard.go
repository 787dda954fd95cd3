package render

import (
	"fmt"

	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/systems"
)

var pointLabels = [...]string{"0", "15", "30", "40", "AD", "W"}

// PointLabel returns the tennis call for a raw point value
func PointLabel(points int) string {
	if points < 0 || points >= len(pointLabels) {
		return "?"
	}
	return pointLabels[points]
}

// SetLabels returns the header row of the standings display
func SetLabels() string {
	s := ""
	for i := 0; i < constants.MatchLength; i++ {
		if i > 0 {
			s += "  "
		}
		s += fmt.Sprintf("S%d", i+1)
	}
	return s
}

// drawScoreboard writes the point calls on row 0 and the running standings on row 1
func (r *TerminalRenderer) drawScoreboard(score components.Score) {
	left := "Player " + PointLabel(score.Points(components.SidePlayer))
	right := PointLabel(score.Points(components.SideCPU)) + " CPU"

	r.drawText(0, 0, left, gameStyle(constants.ColorPlayer))
	r.drawText(r.fieldCols-len(right), 0, right, gameStyle(constants.ColorCPU))
	if score.Deuce() {
		r.drawCentered(0, "Deuce", gameStyle(constants.ColorWhite))
	}

	// Compact form: "S1 X  S2 -  S3 -"
	st := systems.Snapshot(score)
	x := (r.fieldCols - (len(st)*6 - 2)) / 2
	for i, slot := range st {
		label := fmt.Sprintf("S%d ", i+1)
		r.drawText(x, 1, label, gameStyle(constants.ColorWhite))
		r.drawText(x+len(label), 1, slot.Marker, gameStyle(slot.Color))
		x += 6
	}
}

// drawStandings draws the labels row with each slot marker under its label in the winner's color
func (r *TerminalRenderer) drawStandings(row int, st components.Standings) {
	labels := SetLabels()
	x := (r.fieldCols - len(labels)) / 2
	r.drawText(x, row, labels, gameStyle(constants.ColorWhite))
	for i, slot := range st {
		r.drawText(x+i*4+1, row+1, slot.Marker, gameStyle(slot.Color))
	}
}
