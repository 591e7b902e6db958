package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	dialogWidth  = 560
	dialogPad    = 16
	optionHeight = 40
	optionGap    = 8
)

// QuizView is the drawable state of the open quiz dialog.
type QuizView struct {
	Prompt   string
	Options  []string
	Answered bool
	Choice   int // Chosen option, valid once Answered
	Answer   int // Correct option index
	Correct  bool
	Explain  string
}

// QuizDialog renders the centered question dialog.
type QuizDialog struct {
	renderer *Renderer
}

// NewQuizDialog creates a quiz dialog renderer.
func NewQuizDialog() *QuizDialog {
	return &QuizDialog{renderer: NewRenderer()}
}

// Draw renders the dialog and reports clicks: the chosen option index, -1
// for none, and whether the continue button fired. The number keys drive
// the same actions from the keyboard.
func (d *QuizDialog) Draw(view QuizView, screenW, screenH int32) (choice int, cont bool) {
	choice = -1
	theme := d.renderer.Theme

	textW := int32(dialogWidth - 2*dialogPad)
	promptLines := wrapText(view.Prompt, 18, textW)

	var explainLines []string
	if view.Answered {
		explainLines = wrapText(view.Explain, theme.FontSize, textW)
	}

	height := int32(dialogPad) + 26 // Title row
	height += int32(len(promptLines))*22 + 10
	height += int32(len(view.Options)) * (optionHeight + optionGap)
	if view.Answered {
		height += 28 + int32(len(explainLines))*theme.LineHeight + optionHeight + dialogPad
	}
	height += dialogPad

	x := screenW/2 - dialogWidth/2
	y := screenH/2 - height/2
	d.renderer.DrawPanel(x, y, dialogWidth, height)

	cy := y + dialogPad
	rl.DrawText("SIGN CHECK", x+dialogPad, cy, theme.HeaderFontSize, theme.Accent)
	cy += 26

	for _, line := range promptLines {
		rl.DrawText(line, x+dialogPad, cy, 18, theme.ValueColor)
		cy += 22
	}
	cy += 10

	for i, opt := range view.Options {
		label := fmt.Sprintf("%d.  %s", i+1, opt)
		bounds := rl.NewRectangle(float32(x+dialogPad), float32(cy), float32(textW), optionHeight)

		if !view.Answered {
			if gui.Button(bounds, label) {
				choice = i
			}
		} else {
			d.drawAnsweredOption(bounds, label, i, view)
		}
		cy += optionHeight + optionGap
	}

	if view.Answered {
		verdict := "Correct!"
		color := theme.Good
		if !view.Correct {
			verdict = "Not quite."
			color = theme.Bad
		}
		rl.DrawText(verdict, x+dialogPad, cy, 20, color)
		cy += 28

		for _, line := range explainLines {
			rl.DrawText(line, x+dialogPad, cy, theme.FontSize, theme.LabelColor)
			cy += theme.LineHeight
		}
		cy += dialogPad

		bounds := rl.NewRectangle(float32(x+dialogPad), float32(cy), float32(textW), optionHeight)
		if gui.Button(bounds, "Continue  [Enter]") {
			cont = true
		}
	}

	return choice, cont
}

// drawAnsweredOption renders a locked option row: the right answer in
// green, a wrong pick in red, the rest muted.
func (d *QuizDialog) drawAnsweredOption(bounds rl.Rectangle, label string, i int, view QuizView) {
	theme := d.renderer.Theme

	color := theme.LabelColor
	if i == view.Answer {
		color = theme.Good
	} else if i == view.Choice {
		color = theme.Bad
	}

	rl.DrawRectangleLinesEx(bounds, 1, color)
	rl.DrawText(label, int32(bounds.X)+10, int32(bounds.Y)+12, theme.FontSize, color)
}
