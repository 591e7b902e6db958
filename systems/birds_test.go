package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/signwalk/components"
)

// TestStepBird_Advance verifies straight-line flight.
func TestStepBird_Advance(t *testing.T) {
	pos := &components.Position{X: 10, Z: -5}
	bird := &components.Bird{DirX: 0.6, DirZ: 0.8, Speed: 10}

	StepBird(pos, bird, 0.5, 160)

	if math.Abs(float64(pos.X-13)) > 0.001 {
		t.Errorf("X = %f, want 13", pos.X)
	}
	if math.Abs(float64(pos.Z-(-1))) > 0.001 {
		t.Errorf("Z = %f, want -1", pos.Z)
	}
}

// TestStepBird_Wrap verifies the edge teleport on each axis and direction.
func TestStepBird_Wrap(t *testing.T) {
	tests := []struct {
		name       string
		start      components.Position
		dirX, dirZ float32
		wantX      float32
		wantZ      float32
	}{
		{"east edge", components.Position{X: 159, Z: 0}, 1, 0, -160, 0},
		{"west edge", components.Position{X: -159, Z: 0}, -1, 0, 160, 0},
		{"south edge", components.Position{X: 0, Z: 159}, 0, 1, 0, -160},
		{"north edge", components.Position{X: 0, Z: -159}, 0, -1, 0, 160},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := tc.start
			bird := &components.Bird{DirX: tc.dirX, DirZ: tc.dirZ, Speed: 10}

			StepBird(&pos, bird, 1, 160)

			if pos.X != tc.wantX || pos.Z != tc.wantZ {
				t.Errorf("wrapped to (%f, %f), want (%f, %f)", pos.X, pos.Z, tc.wantX, tc.wantZ)
			}
			if bird.DirX != tc.dirX || bird.DirZ != tc.dirZ {
				t.Error("wrap changed the flight direction")
			}
		})
	}
}

// TestStepBird_InsideBoundNoWrap verifies flight inside the bound is untouched.
func TestStepBird_InsideBoundNoWrap(t *testing.T) {
	pos := &components.Position{X: 100, Z: -100}
	bird := &components.Bird{DirX: 1, DirZ: 0, Speed: 10}

	StepBird(pos, bird, 1, 160)
	if pos.X != 110 || pos.Z != -100 {
		t.Errorf("position = (%f, %f), want (110, -100)", pos.X, pos.Z)
	}
}

// TestFlapPhase_WallClock verifies the flap phase is a pure periodic
// function of wall time.
func TestFlapPhase_WallClock(t *testing.T) {
	const hz = 6.0

	a := FlapPhase(1.234, 0, hz)
	b := FlapPhase(1.234, 0, hz)
	if a != b {
		t.Error("same wall time gave different phases")
	}

	// One full wing beat later the phase repeats.
	next := FlapPhase(1.234+1/hz, 0, hz)
	if math.Abs(float64(a-next)) > 0.0001 {
		t.Errorf("phase after one period = %f, want %f", next, a)
	}

	// Offsets separate birds at the same instant.
	shifted := FlapPhase(1.234, 0.04, hz)
	if math.Abs(float64(a-shifted)) < 0.0001 {
		t.Error("offset bird flaps in sync with the unshifted one")
	}

	if p := FlapPhase(77.7, 0.5, hz); p < -1 || p > 1 {
		t.Errorf("phase %f out of [-1, 1]", p)
	}
}

// TestBirdSystem_Update verifies flock movement and flap bobbing together.
func TestBirdSystem_Update(t *testing.T) {
	cfg := testCfg(t)
	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Bird](world)

	e := mapper.NewEntity(
		&components.Position{X: 0, Y: 0, Z: 0},
		&components.Bird{DirX: 1, DirZ: 0, Speed: 12, FlapOffset: 0.25},
	)

	sys := NewBirdSystem(world, cfg)
	now := 3.75
	sys.Update(0.5, now)

	pos, bird := mapper.Get(e)
	if math.Abs(float64(pos.X-6)) > 0.001 {
		t.Errorf("X = %f, want 6", pos.X)
	}

	wantY := float32(cfg.Birds.Altitude) + float32(cfg.Birds.BobAmplitude)*FlapPhase(now, bird.FlapOffset, cfg.Birds.FlapHz)
	if math.Abs(float64(pos.Y-wantY)) > 0.001 {
		t.Errorf("Y = %f, want %f", pos.Y, wantY)
	}
}
