package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/signwalk/systems"
)

// handleInput processes keyboard and mouse input and returns the movement
// intent for this frame.
func (g *Game) handleInput() systems.MoveIntent {
	// Mouse capture: Tab toggles, clicking into the world grabs.
	if rl.IsKeyPressed(rl.KeyTab) {
		g.setCaptured(!g.captured)
	}
	if !g.captured && g.active == nil && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.setCaptured(true)
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		g.debug = !g.debug
	}

	// While a quiz dialog is open the number keys answer it, so they must
	// not fall through to the clock checkpoints below.
	if g.active != nil {
		g.handleQuizKeys()
		return systems.MoveIntent{}
	}

	// Day clock controls
	if rl.IsKeyPressed(rl.KeyT) {
		g.clock.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		g.clock.JumpTo(systems.PhaseDawn)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		g.clock.JumpTo(systems.PhaseNoon)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		g.clock.JumpTo(systems.PhaseDusk)
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		g.clock.JumpTo(systems.PhaseMidnight)
	}

	if g.hasNearSign && rl.IsKeyPressed(rl.KeyE) {
		g.openQuiz()
	}

	if g.captured {
		delta := rl.GetMouseDelta()
		g.cam.Look(delta.X, delta.Y)
	}

	return g.moveIntent()
}

// moveIntent reads the held movement keys. Walking needs the captured
// cursor, matching the look control.
func (g *Game) moveIntent() systems.MoveIntent {
	if !g.captured {
		return systems.MoveIntent{}
	}
	return systems.MoveIntent{
		Forward: rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Back:    rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:    rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:   rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Sprint:  rl.IsKeyDown(rl.KeyLeftShift),
	}
}

// handleQuizKeys answers or dismisses the open quiz with the keyboard.
// The buttons in the dialog are the mouse path to the same calls.
func (g *Game) handleQuizKeys() {
	if !g.active.answered {
		keys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour}
		for i, key := range keys {
			if i < len(g.active.question.Options) && rl.IsKeyPressed(key) {
				g.answerQuiz(i)
				return
			}
		}
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		g.closeQuiz()
	}
}

// setCaptured grabs or releases the cursor.
func (g *Game) setCaptured(captured bool) {
	if captured == g.captured {
		return
	}
	g.captured = captured
	if g.headless {
		return
	}
	if captured {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}
