package systems

import (
	"math"

	"github.com/pthm-cable/signwalk/config"
)

// PlayerState is the walker's kinematic state. Y stays pinned to eye height,
// vertical velocity does not exist.
type PlayerState struct {
	X, Y, Z float32
	VX, VZ  float32
}

// MoveIntent is the digested movement input for one frame.
type MoveIntent struct {
	Forward, Back bool
	Left, Right   bool
	Sprint        bool
}

// Mover integrates player movement against the collider set.
type Mover struct {
	colliders *ColliderSet

	eyeHeight float32
	radius    float32
	walkAccel float32
	sprint    float32
	friction  float32
	bound     float32
}

// NewMover creates a movement integrator over the given colliders.
func NewMover(colliders *ColliderSet, cfg *config.Config) *Mover {
	return &Mover{
		colliders: colliders,
		eyeHeight: float32(cfg.Player.EyeHeight),
		radius:    float32(cfg.Player.Radius),
		walkAccel: float32(cfg.Player.WalkAccel),
		sprint:    float32(cfg.Player.SprintAccel),
		friction:  float32(cfg.Player.Friction),
		bound:     float32(cfg.World.BoundLimit),
	}
}

// Step advances the player by one frame. Order matters: friction first, then
// input acceleration, then per-axis moves with rollback, then the world
// boundary clamp. Resolving x before z lets the player slide along walls
// instead of sticking to them.
func (m *Mover) Step(p *PlayerState, intent MoveIntent, yaw float32, dt float32) {
	// Exponential friction, frame rate independent.
	decay := float32(math.Exp(float64(-m.friction * dt)))
	p.VX *= decay
	p.VZ *= decay

	// Local intent, normalized so diagonals are not faster.
	var mx, mz float32
	if intent.Forward {
		mz++
	}
	if intent.Back {
		mz--
	}
	if intent.Right {
		mx++
	}
	if intent.Left {
		mx--
	}
	if mx != 0 || mz != 0 {
		inv := 1 / float32(math.Sqrt(float64(mx*mx+mz*mz)))
		mx *= inv
		mz *= inv

		accel := m.walkAccel
		if intent.Sprint {
			accel = m.sprint
		}

		// Rotate into world space around the camera yaw.
		sin := float32(math.Sin(float64(yaw)))
		cos := float32(math.Cos(float64(yaw)))
		dirX := mz*sin + mx*cos
		dirZ := mz*cos - mx*sin

		p.VX += dirX * accel * dt
		p.VZ += dirZ * accel * dt
	}

	// Axis-separated moves: try x, roll back on hit and kill that velocity
	// component, then the same for z against the settled x.
	newX := p.X + p.VX*dt
	if m.colliders.HitAny(newX, p.Z, m.radius) {
		p.VX = 0
	} else {
		p.X = newX
	}

	newZ := p.Z + p.VZ*dt
	if m.colliders.HitAny(p.X, newZ, m.radius) {
		p.VZ = 0
	} else {
		p.Z = newZ
	}

	// World boundary clamp, with the matching velocity zeroed on contact.
	if p.X < -m.bound || p.X > m.bound {
		p.X = clampFloat(p.X, -m.bound, m.bound)
		p.VX = 0
	}
	if p.Z < -m.bound || p.Z > m.bound {
		p.Z = clampFloat(p.Z, -m.bound, m.bound)
		p.VZ = 0
	}

	p.Y = m.eyeHeight
}
