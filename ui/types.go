// Package ui renders the walker's screen-space overlays: the HUD and the
// quiz dialog.
package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Accent      rl.Color
	Good        rl.Color
	Bad         rl.Color

	Padding        int32
	LineHeight     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:  rl.LightGray,
		ValueColor:  rl.RayWhite,
		Accent:      rl.Color{R: 255, G: 210, B: 80, A: 255},
		Good:        rl.Color{R: 100, G: 200, B: 100, A: 255},
		Bad:         rl.Color{R: 220, G: 90, B: 80, A: 255},

		Padding:        10,
		LineHeight:     18,
		FontSize:       14,
		HeaderFontSize: 18,
	}
}

// Renderer handles UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// wrapText splits text into lines no wider than maxWidth pixels.
func wrapText(text string, fontSize, maxWidth int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		joined := line + " " + word
		if rl.MeasureText(joined, fontSize) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = joined
	}
	return append(lines, line)
}
