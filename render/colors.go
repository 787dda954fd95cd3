package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tennis/components"
)

// Terminal palette for scenery; actors and banners use their game colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbCourt      = tcell.NewRGBColor(40, 90, 60)    // Court floor line
	RgbNet        = tcell.NewRGBColor(200, 200, 200) // Net posts
	RgbBall       = tcell.NewRGBColor(230, 230, 60)  // Ball
	RgbStatusBar  = tcell.NewRGBColor(180, 180, 180) // Debug status text
	RgbPrompt     = tcell.NewRGBColor(255, 165, 0)   // Serve and restart prompts
)

// GameColor converts a 15-bit BGR game color to a terminal color
func GameColor(c components.Color) tcell.Color {
	r := int32(c&0x1F) << 3
	g := int32((c>>5)&0x1F) << 3
	b := int32((c>>10)&0x1F) << 3
	return tcell.NewRGBColor(r, g, b)
}

// gameStyle is the default style drawn in a game color
func gameStyle(c components.Color) tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(GameColor(c))
}
