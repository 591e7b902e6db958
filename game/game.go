package game

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/signwalk/camera"
	"github.com/pthm-cable/signwalk/components"
	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/quiz"
	"github.com/pthm-cable/signwalk/renderer"
	"github.com/pthm-cable/signwalk/systems"
	"github.com/pthm-cable/signwalk/telemetry"
	"github.com/pthm-cable/signwalk/ui"
)

// HeadlessDT is the fixed timestep for headless runs.
const HeadlessDT = 1.0 / 60.0

// Options configures a new game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
}

// Game holds the complete game state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Entity mappers and filters
	signalMapper *ecs.Map2[components.Position, components.Signal]
	signMapper   *ecs.Map2[components.Position, components.Sign]
	birdMapper   *ecs.Map2[components.Position, components.Bird]
	signalFilter *ecs.Filter2[components.Position, components.Signal]
	signFilter   *ecs.Filter2[components.Position, components.Sign]
	birdFilter   *ecs.Filter2[components.Position, components.Bird]

	signalSystem *systems.SignalSystem
	birdSystem   *systems.BirdSystem

	// Static world
	colliders *systems.ColliderSet
	layout    *systems.Layout

	// Player
	player  systems.PlayerState
	mover   *systems.Mover
	cam     *camera.FirstPerson
	minimap *camera.Minimap

	// Renderers. Construction touches no GPU state, so headless runs can
	// build them and simply never draw.
	cityRenderer    *renderer.City
	minimapRenderer *renderer.MinimapRenderer
	hud             *ui.HUD
	quizDialog      *ui.QuizDialog

	// Day/night
	clock *systems.DayClock

	// Quiz state
	session     *quiz.Session
	active      *activeQuiz
	nearSign    ecs.Entity
	hasNearSign bool

	// Telemetry
	sessionID     string
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Input state
	captured bool
	debug    bool

	tick      int32
	elapsed   float64 // Accumulated simulation seconds
	startWall time.Time
	rngSeed   int64
	headless  bool
}

// NewGameWithOptions creates a game from the given options. Config must be
// initialized before calling this.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:        world,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		signalMapper: ecs.NewMap2[components.Position, components.Signal](world),
		signMapper:   ecs.NewMap2[components.Position, components.Sign](world),
		birdMapper:   ecs.NewMap2[components.Position, components.Bird](world),
		signalFilter: ecs.NewFilter2[components.Position, components.Signal](world),
		signFilter:   ecs.NewFilter2[components.Position, components.Sign](world),
		birdFilter:   ecs.NewFilter2[components.Position, components.Bird](world),
		logStats:     opts.LogStats,
		startWall:    time.Now(),
		rngSeed:      opts.Seed,
		headless:     opts.Headless,
	}

	g.signalSystem = systems.NewSignalSystem(world, cfg)
	g.birdSystem = systems.NewBirdSystem(world, cfg)

	// Static city
	g.colliders = systems.NewColliderSet()
	g.layout = systems.GenerateLayout(opts.Seed, g.colliders, cfg)
	g.mover = systems.NewMover(g.colliders, cfg)
	g.clock = systems.NewDayClock()

	g.cityRenderer = renderer.NewCity(cfg)
	g.minimapRenderer = renderer.NewMinimapRenderer(cfg)
	g.hud = ui.NewHUD()
	g.quizDialog = ui.NewQuizDialog()

	g.session = quiz.NewSession()
	g.sessionID = newSessionID()

	window := opts.StatsWindowSec
	if window <= 0 {
		window = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(window)
	g.perfCollector = telemetry.NewPerfCollector(60)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	// Minimap in the top-right corner, covering the walkable world
	mapSize := float32(200)
	g.minimap = camera.NewMinimap(float32(cfg.Screen.Width)-mapSize-10, 10,
		mapSize, float32(cfg.World.BoundLimit)+10)

	g.spawnWorld()
	g.spawnPlayer()

	slog.Info("session start",
		"session", g.sessionID,
		"seed", opts.Seed,
		"buildings", len(g.layout.Buildings),
		"trees", len(g.layout.Trees),
		"signals", len(g.layout.Signals),
		"signs", len(g.layout.Signs),
		"colliders", g.colliders.Len(),
	)

	return g, nil
}

// Update advances one frame in graphical mode. The tick stays open for
// Draw, which books the render phase and closes it.
func (g *Game) Update() {
	pc := g.perfCollector
	pc.StartTick()

	pc.StartPhase(telemetry.PhaseInput)
	intent := g.handleInput()

	dt := rl.GetFrameTime()
	maxDT := float32(config.Cfg().Player.MaxDT)
	if dt > maxDT {
		dt = maxDT
	}

	g.step(dt, intent)
}

// UpdateHeadless advances one fixed tick without reading input.
func (g *Game) UpdateHeadless() {
	pc := g.perfCollector
	pc.StartTick()
	g.step(HeadlessDT, systems.MoveIntent{})
	pc.EndTick()
}

// Tick returns the current tick count.
func (g *Game) Tick() int32 {
	return g.tick
}

// wallNow returns real seconds since the game started. Bird flapping is
// keyed to this clock, not to simulation time, so wings keep beating when
// the day clock is frozen.
func (g *Game) wallNow() float64 {
	return time.Since(g.startWall).Seconds()
}

// Unload writes the session summary and closes all outputs.
func (g *Game) Unload() {
	if err := g.outputManager.WriteSummary(g.summaryRows()); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close outputs", "error", err)
	}

	slog.Info("session summary",
		"session", g.sessionID,
		"asked", g.session.Asked,
		"correct", g.session.Correct,
		"wrong", g.session.Wrong,
		"accuracy", g.session.Accuracy(),
		"best_streak", g.session.BestStreak,
		"elapsed_sec", g.elapsed,
	)
}
