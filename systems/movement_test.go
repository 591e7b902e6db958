package systems

import (
	"math"
	"testing"
)

const testDT = float32(1.0 / 60.0)

// TestStep_FrictionDecay verifies coasting velocity decays exponentially and
// never quite reaches zero.
func TestStep_FrictionDecay(t *testing.T) {
	cfg := testCfg(t)
	m := NewMover(NewColliderSet(), cfg)

	p := &PlayerState{X: 0, Z: 0, VX: 10}
	m.Step(p, MoveIntent{}, 0, testDT)

	want := 10 * float32(math.Exp(float64(-float32(cfg.Player.Friction)*testDT)))
	if math.Abs(float64(p.VX-want)) > 0.001 {
		t.Errorf("VX after one step = %f, want %f", p.VX, want)
	}

	prev := p.VX
	for i := 0; i < 120; i++ {
		m.Step(p, MoveIntent{}, 0, testDT)
		if p.VX >= prev {
			t.Fatalf("step %d: decay not monotone: %f -> %f", i, prev, p.VX)
		}
		prev = p.VX
	}
	if p.VX <= 0 {
		t.Errorf("VX reached %f, exponential decay never crosses zero", p.VX)
	}
}

// TestStep_DiagonalNormalized verifies diagonal input is no faster than a
// single axis.
func TestStep_DiagonalNormalized(t *testing.T) {
	cfg := testCfg(t)
	m := NewMover(NewColliderSet(), cfg)

	straight := &PlayerState{}
	m.Step(straight, MoveIntent{Forward: true}, 0, testDT)
	diagonal := &PlayerState{}
	m.Step(diagonal, MoveIntent{Forward: true, Right: true}, 0, testDT)

	speedStraight := math.Sqrt(float64(straight.VX*straight.VX + straight.VZ*straight.VZ))
	speedDiagonal := math.Sqrt(float64(diagonal.VX*diagonal.VX + diagonal.VZ*diagonal.VZ))
	if math.Abs(speedStraight-speedDiagonal) > 0.001 {
		t.Errorf("diagonal speed %f != straight speed %f", speedDiagonal, speedStraight)
	}
}

// TestStep_SprintFaster verifies sprinting accelerates harder than walking.
func TestStep_SprintFaster(t *testing.T) {
	cfg := testCfg(t)
	m := NewMover(NewColliderSet(), cfg)

	walk := &PlayerState{}
	m.Step(walk, MoveIntent{Forward: true}, 0, testDT)
	sprint := &PlayerState{}
	m.Step(sprint, MoveIntent{Forward: true, Sprint: true}, 0, testDT)

	if sprint.VZ <= walk.VZ {
		t.Errorf("sprint VZ %f not above walk VZ %f", sprint.VZ, walk.VZ)
	}
}

// TestStep_YawRotatesIntent verifies forward input follows the camera yaw.
func TestStep_YawRotatesIntent(t *testing.T) {
	cfg := testCfg(t)
	m := NewMover(NewColliderSet(), cfg)

	tests := []struct {
		name   string
		yaw    float32
		wantVX float32 // Sign only, 0 means near zero
		wantVZ float32
	}{
		{"yaw 0 moves +z", 0, 0, 1},
		{"yaw pi/2 moves +x", math.Pi / 2, 1, 0},
		{"yaw pi moves -z", math.Pi, 0, -1},
		{"yaw 3pi/2 moves -x", 3 * math.Pi / 2, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &PlayerState{}
			m.Step(p, MoveIntent{Forward: true}, tc.yaw, testDT)

			checkAxis := func(axis string, got, want float32) {
				switch {
				case want > 0 && got <= 0.01:
					t.Errorf("%s = %f, want positive", axis, got)
				case want < 0 && got >= -0.01:
					t.Errorf("%s = %f, want negative", axis, got)
				case want == 0 && math.Abs(float64(got)) > 0.01:
					t.Errorf("%s = %f, want near zero", axis, got)
				}
			}
			checkAxis("VX", p.VX, tc.wantVX)
			checkAxis("VZ", p.VZ, tc.wantVZ)
		})
	}
}

// TestStep_AxisSeparatedSlide verifies a wall on x lets the player keep
// sliding along z with the x velocity zeroed.
func TestStep_AxisSeparatedSlide(t *testing.T) {
	cfg := testCfg(t)
	cs := NewColliderSet()
	cs.AddBox(10, 0, 10, 200) // Long wall east of the player
	m := NewMover(cs, cfg)

	p := &PlayerState{X: 2, Z: 0, VX: 200, VZ: 30}
	m.Step(p, MoveIntent{}, 0, testDT)

	if p.X != 2 {
		t.Errorf("X = %f, want rollback to 2", p.X)
	}
	if p.VX != 0 {
		t.Errorf("VX = %f, want 0 after hitting the wall", p.VX)
	}
	if p.Z <= 0 {
		t.Errorf("Z = %f, want forward progress along the wall", p.Z)
	}
	if p.VZ <= 0 {
		t.Errorf("VZ = %f, want sliding velocity preserved", p.VZ)
	}
}

// TestStep_BoundaryClamp verifies the world edge is exact and kills the
// outward velocity component.
func TestStep_BoundaryClamp(t *testing.T) {
	cfg := testCfg(t)
	m := NewMover(NewColliderSet(), cfg)
	bound := float32(cfg.World.BoundLimit)

	p := &PlayerState{X: bound - 0.1, VX: 100, VZ: 5}
	m.Step(p, MoveIntent{}, 0, testDT)

	if p.X != bound {
		t.Errorf("X = %f, want clamp to %f", p.X, bound)
	}
	if p.VX != 0 {
		t.Errorf("VX = %f, want 0 at the boundary", p.VX)
	}
	if p.VZ == 0 {
		t.Error("VZ zeroed by an x-axis clamp")
	}

	p = &PlayerState{Z: -bound + 0.1, VZ: -100}
	m.Step(p, MoveIntent{}, 0, testDT)
	if p.Z != -bound {
		t.Errorf("Z = %f, want clamp to %f", p.Z, -bound)
	}
	if p.VZ != 0 {
		t.Errorf("VZ = %f, want 0 at the boundary", p.VZ)
	}
}

// TestStep_EyeHeightPinned verifies y never leaves eye height.
func TestStep_EyeHeightPinned(t *testing.T) {
	cfg := testCfg(t)
	m := NewMover(NewColliderSet(), cfg)

	p := &PlayerState{Y: 57}
	for i := 0; i < 10; i++ {
		m.Step(p, MoveIntent{Forward: true, Sprint: true}, 1.3, testDT)
		if p.Y != float32(cfg.Player.EyeHeight) {
			t.Fatalf("Y = %f, want pinned to %f", p.Y, cfg.Player.EyeHeight)
		}
	}
}
