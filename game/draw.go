package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/renderer"
	"github.com/pthm-cable/signwalk/systems"
	"github.com/pthm-cable/signwalk/telemetry"
	"github.com/pthm-cable/signwalk/ui"
)

// Draw renders the frame and closes the tick Update left open.
func (g *Game) Draw() {
	pc := g.perfCollector
	pc.StartPhase(telemetry.PhaseRender)
	pc.RecordFrame()

	cfg := config.Cfg()
	cel := systems.Celestial(g.clock.Phase, cfg)

	rl.BeginDrawing()
	rl.ClearBackground(renderer.SkyColor(cel))

	tx, ty, tz := g.cam.Target()
	cam3d := rl.Camera3D{
		Position:   rl.NewVector3(g.cam.X, g.cam.Y, g.cam.Z),
		Target:     rl.NewVector3(tx, ty, tz),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       70,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(cam3d)
	renderer.DrawCelestials(cel)
	g.cityRenderer.Draw(g.layout, cel)
	g.drawSignals(cel)
	g.drawSigns(cel)
	g.drawBirds(cfg)
	rl.EndMode3D()

	g.drawOverlay(cfg)

	rl.EndDrawing()
	pc.EndTick()
}

func (g *Game) drawSignals(cel systems.CelestialState) {
	query := g.signalFilter.Query()
	for query.Next() {
		pos, sig := query.Get()
		g.cityRenderer.DrawSignal(pos.X, pos.Z, sig.State, cel)
	}
}

func (g *Game) drawSigns(cel systems.CelestialState) {
	query := g.signFilter.Query()
	for query.Next() {
		pos, sign := query.Get()
		highlight := g.hasNearSign && query.Entity() == g.nearSign
		g.cityRenderer.DrawSign(pos.X, pos.Z, *sign, highlight, cel)
	}
}

func (g *Game) drawBirds(cfg *config.Config) {
	now := g.wallNow()
	query := g.birdFilter.Query()
	for query.Next() {
		pos, bird := query.Get()
		flap := systems.FlapPhase(now, bird.FlapOffset, cfg.Birds.FlapHz)
		g.cityRenderer.DrawBird(*pos, *bird, flap)
	}
}

// drawOverlay paints the screen-space layers: minimap, HUD and the quiz
// dialog when one is open.
func (g *Game) drawOverlay(cfg *config.Config) {
	g.minimapRenderer.Draw(g.minimap, g.layout, g.player.X, g.player.Z, g.cam.Yaw)
	if g.debug {
		g.minimapRenderer.DrawColliders(g.minimap, g.colliders.All())
	}

	g.hud.Draw(ui.HUDData{
		Clock:        systems.ClockText(g.clock.Phase),
		Asked:        g.session.Asked,
		Correct:      g.session.Correct,
		Streak:       g.session.Streak,
		FPS:          rl.GetFPS(),
		Captured:     g.captured,
		PromptKind:   g.promptKind(),
		DebugLines:   g.debugLines(),
		ScreenWidth:  int32(cfg.Screen.Width),
		ScreenHeight: int32(cfg.Screen.Height),
	})

	if g.active != nil {
		view := ui.QuizView{
			Prompt:   g.active.question.Prompt,
			Options:  g.active.question.Options,
			Answered: g.active.answered,
			Choice:   g.active.choice,
			Answer:   g.active.question.Answer,
			Correct:  g.active.correct,
			Explain:  g.active.question.Explain,
		}
		choice, cont := g.quizDialog.Draw(view, int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		if choice >= 0 {
			g.answerQuiz(choice)
		}
		if cont {
			g.closeQuiz()
		}
	}
}

// promptKind names the sign offering its quiz, empty when none is in range
// or a dialog is already open.
func (g *Game) promptKind() string {
	if !g.hasNearSign || g.active != nil {
		return ""
	}
	_, sign := g.signMapper.Get(g.nearSign)
	return sign.Kind.String()
}

func (g *Game) debugLines() []string {
	if !g.debug {
		return nil
	}
	stats := g.perfCollector.Stats()
	clockMode := "running"
	if !g.clock.Auto {
		clockMode = "stopped"
	}
	return []string{
		fmt.Sprintf("pos %.1f %.1f  yaw %.2f", g.player.X, g.player.Z, g.cam.Yaw),
		fmt.Sprintf("vel %.2f %.2f", g.player.VX, g.player.VZ),
		fmt.Sprintf("phase %.3f  clock %s", g.clock.Phase, clockMode),
		fmt.Sprintf("tick %d  elapsed %.1fs", g.tick, g.elapsed),
		fmt.Sprintf("tick avg %v  tps %.0f", stats.AvgTickDuration, stats.TicksPerSecond),
	}
}
