package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tennis/components"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/physics"
	"github.com/lixenwraith/vi-tennis/status"
)

const netHeight = 24

// Options control the optional layers of a frame
type Options struct {
	// Debug draws hit-box outlines and the status bar
	Debug bool
	// LandingMarker draws the CPU's predicted landing point in debug mode
	LandingMarker bool

	// ServeKey and StartKey name the keys shown in prompts
	ServeKey string
	StartKey string
}

// DefaultOptions matches the default key map
func DefaultOptions() Options {
	return Options{LandingMarker: true, ServeKey: "B", StartKey: "Enter"}
}

// TerminalRenderer draws engine state onto a tcell screen
// The playfield is scaled to PixelsPerColumn by PixelsPerRow cells, below a two-row scoreboard
type TerminalRenderer struct {
	screen tcell.Screen
	opts   Options

	width, height int
	fieldCols     int
	fieldRows     int
}

func NewTerminalRenderer(screen tcell.Screen, opts Options) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:    screen,
		opts:      opts,
		fieldCols: constants.ScreenWidth / constants.PixelsPerColumn,
		fieldRows: constants.ScreenHeight / constants.PixelsPerRow,
	}
	r.width, r.height = screen.Size()
	return r
}

// SetDebug toggles the debug layers
func (r *TerminalRenderer) SetDebug(on bool) { r.opts.Debug = on }

func (r *TerminalRenderer) Debug() bool { return r.opts.Debug }

// UpdateDimensions re-reads the screen size after a resize
func (r *TerminalRenderer) UpdateDimensions() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame draws one complete frame; stats feed the debug status bar
func (r *TerminalRenderer) RenderFrame(s engine.State, stats []status.Entry) {
	r.screen.Clear()
	r.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))

	r.drawScoreboard(s.Score)
	r.drawCourt()

	front, banner := s.Overlays.Front()
	if !banner {
		r.drawActor(s.Player)
		r.drawActor(s.CPU)
		r.drawBall(s.Ball)
	}

	switch {
	case banner:
		r.drawOverlay(front)
	case s.Phase == engine.PhaseAwaitingServe:
		r.drawCentered(r.courtRow(constants.ScreenHeight/4), fmt.Sprintf("Press %s to serve", r.opts.ServeKey), tcell.StyleDefault.Background(RgbBackground).Foreground(RgbPrompt))
	case s.Phase == engine.PhaseMatchOver:
		r.drawMatchOver(s)
	}

	if r.opts.Debug {
		r.drawStatusBar(stats)
	}

	r.screen.Show()
}

// courtRow maps a playfield y to a screen row
func (r *TerminalRenderer) courtRow(y int) int {
	return constants.CourtRowOffset + y/constants.PixelsPerRow
}

// courtCol maps a playfield x to a screen column
func (r *TerminalRenderer) courtCol(x int) int {
	return x / constants.PixelsPerColumn
}

func (r *TerminalRenderer) drawCourt() {
	floor := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbCourt)
	row := r.courtRow(constants.Ground)
	for x := r.courtCol(constants.CourtEdgeLeft); x <= r.courtCol(constants.CourtEdgeRight); x++ {
		r.setCell(x, row, '▀', floor)
	}

	net := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbNet)
	col := r.courtCol((constants.NetBoundaryLeft + constants.NetBoundaryRight) / 2)
	for y := r.courtRow(constants.Ground - netHeight); y < row; y++ {
		r.setCell(col, y, '┃', net)
	}
}

// drawActor fills the actor's cells and the racket of an active swing
func (r *TerminalRenderer) drawActor(p components.Player) {
	left := p.X
	if p.IsCPU {
		left = p.X - p.Width
	}
	style := gameStyle(p.Side().Color())
	r.fillRect(left, p.Y, p.Width, p.Height, '█', style)

	hb := p.HitBox
	if !hb.Enabled {
		return
	}
	racket := [...]rune{'/', '|', '\\'}
	if p.IsCPU {
		racket = [...]rune{'\\', '|', '/'}
	}
	frame := physics.SwingSpriteFrame(p.SwingFrames)
	r.setCell(r.courtCol(hb.X+hb.Size/2), r.courtRow(hb.Y+hb.Size/2), racket[frame], gameStyle(constants.ColorWhite))

	if r.opts.Debug {
		c := hb.DebugColor
		if c == 0 {
			c = constants.ColorYellow
		}
		r.outlineRect(hb.X, hb.Y, hb.Size, hb.Size, gameStyle(c))
	}
}

func (r *TerminalRenderer) drawBall(b components.Ball) {
	if !b.InPlay() {
		return
	}
	cx, cy := b.Center()
	r.setCell(r.courtCol(cx), r.courtRow(cy), '●', tcell.StyleDefault.Background(RgbBackground).Foreground(RgbBall))

	if r.opts.Debug && r.opts.LandingMarker && b.LandingX != 0 {
		c := b.LandingDebug
		if c == 0 {
			c = constants.ColorMagenta
		}
		r.setCell(r.courtCol(b.LandingX), r.courtRow(constants.Ground), '▼', gameStyle(c))
	}
}

func (r *TerminalRenderer) drawOverlay(m engine.Message) {
	mid := r.courtRow(constants.ScreenHeight / 2)
	switch m.Kind {
	case engine.MessageStandings:
		r.drawCentered(mid-2, m.Text, gameStyle(m.Color))
		r.drawStandings(mid, m.Standings)
	default:
		r.drawCentered(mid, m.Text, gameStyle(m.Color))
	}
}

func (r *TerminalRenderer) drawMatchOver(s engine.State) {
	side, ok := s.MatchWinner()
	if !ok {
		return
	}
	mid := r.courtRow(constants.ScreenHeight / 2)
	r.drawCentered(mid-1, side.String()+" wins the match", gameStyle(side.Color()))
	r.drawCentered(mid+1, fmt.Sprintf("Press %s for a new match", r.opts.StartKey), tcell.StyleDefault.Background(RgbBackground).Foreground(RgbPrompt))
}

// drawStatusBar writes key=value pairs on the row below the playfield
func (r *TerminalRenderer) drawStatusBar(stats []status.Entry) {
	parts := make([]string, 0, len(stats))
	for _, e := range stats {
		parts = append(parts, e.Key+"="+e.Value)
	}
	row := constants.CourtRowOffset + r.fieldRows
	r.drawText(0, row, strings.Join(parts, " "), tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar))
}

// ===== Cell primitives =====

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// fillRect covers every cell touched by the playfield rectangle
func (r *TerminalRenderer) fillRect(x, y, w, h int, ch rune, style tcell.Style) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := r.courtRow(y); row <= r.courtRow(y+h-1); row++ {
		for col := r.courtCol(x); col <= r.courtCol(x+w-1); col++ {
			r.setCell(col, row, ch, style)
		}
	}
}

// outlineRect marks the corner cells of the playfield rectangle
func (r *TerminalRenderer) outlineRect(x, y, w, h int, style tcell.Style) {
	x0, x1 := r.courtCol(x), r.courtCol(x+w-1)
	y0, y1 := r.courtRow(y), r.courtRow(y+h-1)
	r.setCell(x0, y0, '┌', style)
	r.setCell(x1, y0, '┐', style)
	r.setCell(x0, y1, '└', style)
	r.setCell(x1, y1, '┘', style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.setCell(x+i, y, ch, style)
	}
}

// drawCentered centers text over the playfield width
func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	n := len([]rune(text))
	r.drawText((r.fieldCols-n)/2, y, text, style)
}
