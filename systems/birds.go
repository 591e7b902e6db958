package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/signwalk/components"
	"github.com/pthm-cable/signwalk/config"
)

// StepBird advances one bird along its straight flight line. Past the wrap
// bound on either axis the bird teleports to the opposite edge and keeps
// flying, so the flock never thins out.
func StepBird(pos *components.Position, b *components.Bird, dt, bound float32) {
	pos.X += b.DirX * b.Speed * dt
	pos.Z += b.DirZ * b.Speed * dt

	if pos.X > bound {
		pos.X = -bound
	} else if pos.X < -bound {
		pos.X = bound
	}
	if pos.Z > bound {
		pos.Z = -bound
	} else if pos.Z < -bound {
		pos.Z = bound
	}
}

// FlapPhase returns the wing beat phase in [-1, 1] for a wall-clock moment.
// Flapping runs on wall time rather than sim time, so wings keep beating
// while the day clock is frozen or jumped around.
func FlapPhase(nowSec float64, offset float32, flapHz float64) float32 {
	return float32(math.Sin(2 * math.Pi * flapHz * (nowSec + float64(offset))))
}

// BirdSystem moves the ambient flock and bobs each bird on its flap phase.
type BirdSystem struct {
	filter *ecs.Filter2[components.Position, components.Bird]

	bound    float32
	altitude float32
	bob      float32
	flapHz   float64
}

// NewBirdSystem creates a bird system over the world.
func NewBirdSystem(w *ecs.World, cfg *config.Config) *BirdSystem {
	return &BirdSystem{
		filter:   ecs.NewFilter2[components.Position, components.Bird](w),
		bound:    float32(cfg.Birds.WrapBound),
		altitude: float32(cfg.Birds.Altitude),
		bob:      float32(cfg.Birds.BobAmplitude),
		flapHz:   cfg.Birds.FlapHz,
	}
}

// Update advances all birds by dt sim seconds at the given wall-clock time.
func (s *BirdSystem) Update(dt float32, nowSec float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, bird := query.Get()
		StepBird(pos, bird, dt, s.bound)
		pos.Y = s.altitude + s.bob*FlapPhase(nowSec, bird.FlapOffset, s.flapHz)
	}
}
