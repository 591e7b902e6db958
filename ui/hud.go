package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the walker's overlay.
type HUDData struct {
	Clock    string
	Asked    int
	Correct  int
	Streak   int
	FPS      int32
	Captured bool

	// PromptKind names the sign offering its quiz, empty for no prompt.
	PromptKind string

	DebugLines []string

	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	theme := h.renderer.Theme

	// Clock banner, top center
	clockW := rl.MeasureText(data.Clock, 30)
	clockX := data.ScreenWidth/2 - clockW/2
	h.renderer.DrawPanel(clockX-12, 8, clockW+24, 42)
	rl.DrawText(data.Clock, clockX, 15, 30, theme.ValueColor)

	// Score, top left
	score := fmt.Sprintf("Signs: %d/%d", data.Correct, data.Asked)
	rl.DrawText(score, 10, 10, 20, theme.ValueColor)
	if data.Streak > 1 {
		rl.DrawText(fmt.Sprintf("Streak: %d", data.Streak), 10, 34, 16, theme.Accent)
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", data.FPS), 10, 56, 14, theme.LabelColor)

	if data.PromptKind != "" {
		h.drawPrompt(data)
	}

	if data.Captured {
		h.drawCrosshair(data.ScreenWidth/2, data.ScreenHeight/2)
	} else {
		hint := "Click to look around - Tab releases the cursor"
		hintW := rl.MeasureText(hint, 16)
		rl.DrawText(hint, data.ScreenWidth/2-hintW/2, data.ScreenHeight/2+40, 16, theme.Accent)
	}

	if len(data.DebugLines) > 0 {
		h.drawDebug(data)
	}

	h.DrawControls(data.ScreenHeight)
}

// drawPrompt shows the quiz offer above the bottom edge.
func (h *HUD) drawPrompt(data HUDData) {
	text := fmt.Sprintf("Press E to answer the %s sign", data.PromptKind)
	w := rl.MeasureText(text, 20)
	x := data.ScreenWidth/2 - w/2
	y := data.ScreenHeight - 90

	h.renderer.DrawPanel(x-14, y-8, w+28, 38)
	rl.DrawText(text, x, y, 20, h.renderer.Theme.Accent)
}

func (h *HUD) drawCrosshair(cx, cy int32) {
	c := rl.Color{R: 255, G: 255, B: 255, A: 200}
	rl.DrawLine(cx-7, cy, cx+7, cy, c)
	rl.DrawLine(cx, cy-7, cx, cy+7, c)
}

// drawDebug lists the debug lines under the minimap, right aligned.
func (h *HUD) drawDebug(data HUDData) {
	theme := h.renderer.Theme
	y := int32(230)
	for _, line := range data.DebugLines {
		w := rl.MeasureText(line, theme.FontSize)
		rl.DrawText(line, data.ScreenWidth-w-14, y, theme.FontSize, theme.LabelColor)
		y += theme.LineHeight
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	controls := "[WASD] walk  [Shift] sprint  [E] answer  [1-4] time of day  [T] stop clock  [F3] debug"
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
