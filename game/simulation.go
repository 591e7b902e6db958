package game

import (
	"math"

	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/systems"
	"github.com/pthm-cable/signwalk/telemetry"
)

// step advances the simulation by dt seconds. Input has already been read;
// everything else runs in a fixed phase order so headless and graphical
// runs behave the same.
func (g *Game) step(dt float32, intent systems.MoveIntent) {
	cfg := config.Cfg()
	pc := g.perfCollector

	pc.StartPhase(telemetry.PhaseMovement)
	g.updateMovement(dt, intent)

	pc.StartPhase(telemetry.PhaseSignals)
	g.signalSystem.Update(dt)

	pc.StartPhase(telemetry.PhaseDaylight)
	g.clock.Advance(dt, cfg.Derived.CycleSpeed)

	pc.StartPhase(telemetry.PhaseBirds)
	g.birdSystem.Update(dt, g.wallNow())

	pc.StartPhase(telemetry.PhaseQuiz)
	g.updateQuizProximity(cfg)

	pc.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.elapsed += float64(dt)
	g.flushTelemetry()
}

// updateMovement integrates the walker and keeps the camera pinned to the
// eye. Covered distance feeds the stats window.
func (g *Game) updateMovement(dt float32, intent systems.MoveIntent) {
	px, pz := g.player.X, g.player.Z

	g.mover.Step(&g.player, intent, g.cam.Yaw, dt)
	g.cam.MoveTo(g.player.X, g.player.Y, g.player.Z)

	dx := float64(g.player.X - px)
	dz := float64(g.player.Z - pz)
	g.collector.AddDistance(math.Sqrt(dx*dx + dz*dz))
}
