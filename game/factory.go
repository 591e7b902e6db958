package game

import (
	"math"

	"github.com/pthm-cable/signwalk/camera"
	"github.com/pthm-cable/signwalk/components"
	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/systems"
)

// spawnWorld turns the generated layout's spots into ECS entities and seeds
// the ambient birds.
func (g *Game) spawnWorld() {
	cfg := config.Cfg()

	for _, spot := range g.layout.Signals {
		pos := &components.Position{X: spot.X, Y: 0, Z: spot.Z}
		// Zero value is a fresh red; jitter the timer so intersections
		// that boot together do not switch together.
		sig := &components.Signal{
			Timer: g.rng.Float32() * float32(cfg.Signals.RedSeconds),
		}
		g.signalMapper.NewEntity(pos, sig)
	}

	for _, spot := range g.layout.Signs {
		pos := &components.Position{X: spot.X, Y: 0, Z: spot.Z}
		sign := &components.Sign{Kind: spot.Kind, Facing: spot.Facing}
		g.signMapper.NewEntity(pos, sign)
	}

	g.spawnBirds(cfg)
}

// spawnBirds seeds the configured flock with random positions, headings and
// wing-beat offsets.
func (g *Game) spawnBirds(cfg *config.Config) {
	bound := float32(cfg.Birds.WrapBound)
	for i := 0; i < cfg.Birds.Count; i++ {
		heading := g.rng.Float64() * 2 * math.Pi
		speed := cfg.Birds.SpeedMin + g.rng.Float64()*(cfg.Birds.SpeedMax-cfg.Birds.SpeedMin)

		pos := &components.Position{
			X: (g.rng.Float32()*2 - 1) * bound,
			Y: float32(cfg.Birds.Altitude),
			Z: (g.rng.Float32()*2 - 1) * bound,
		}
		bird := &components.Bird{
			DirX:       float32(math.Cos(heading)),
			DirZ:       float32(math.Sin(heading)),
			Speed:      float32(speed),
			FlapOffset: g.rng.Float32() * 2 * math.Pi,
		}
		g.birdMapper.NewEntity(pos, bird)
	}
}

// spawnPlayer places the walker at the central road crossing, eye pinned at
// the configured height.
func (g *Game) spawnPlayer() {
	cfg := config.Cfg()

	// The middle road line crosses itself at an intersection, which is
	// guaranteed free of buildings.
	lines := cfg.Derived.RoadLines
	cross := lines[len(lines)/2]

	g.player = systems.PlayerState{
		X: cross,
		Y: float32(cfg.Player.EyeHeight),
		Z: cross,
	}
	g.cam = camera.NewFirstPerson(g.player.X, g.player.Y, g.player.Z)
}
