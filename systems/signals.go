// Package systems contains the simulation logic for the city.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/signwalk/components"
	"github.com/pthm-cable/signwalk/config"
)

// StepSignal advances one traffic light by dt seconds. The timer accumulates
// inside the current phase; crossing the phase duration moves the light to
// the next phase and resets the timer to zero, dropping any overshoot. The
// sequence is red, green, yellow, back to red.
func StepSignal(sig *components.Signal, sc config.SignalsConfig, dt float32) {
	sig.Timer += dt
	if sig.Timer <= phaseDuration(sig.State, sc) {
		return
	}
	sig.Timer = 0
	switch sig.State {
	case components.SignalRed:
		sig.State = components.SignalGreen
	case components.SignalGreen:
		sig.State = components.SignalYellow
	case components.SignalYellow:
		sig.State = components.SignalRed
	}
}

// phaseDuration returns how long a phase holds, in seconds.
func phaseDuration(state components.SignalState, sc config.SignalsConfig) float32 {
	switch state {
	case components.SignalGreen:
		return float32(sc.GreenSeconds)
	case components.SignalYellow:
		return float32(sc.YellowSeconds)
	default:
		return float32(sc.RedSeconds)
	}
}

// SignalColor returns the emissive lens color for a phase.
func SignalColor(state components.SignalState) config.RGB {
	switch state {
	case components.SignalGreen:
		return config.RGB{R: 40, G: 220, B: 60}
	case components.SignalYellow:
		return config.RGB{R: 250, G: 210, B: 40}
	default:
		return config.RGB{R: 230, G: 40, B: 40}
	}
}

// SignalSystem steps every traffic light. Each light runs its own timer, so
// intersections drift apart and never sync up unless spawned that way.
type SignalSystem struct {
	filter *ecs.Filter1[components.Signal]
	sc     config.SignalsConfig
}

// NewSignalSystem creates a signal system over the world.
func NewSignalSystem(w *ecs.World, cfg *config.Config) *SignalSystem {
	return &SignalSystem{
		filter: ecs.NewFilter1[components.Signal](w),
		sc:     cfg.Signals,
	}
}

// Update advances all signals by dt seconds.
func (s *SignalSystem) Update(dt float32) {
	query := s.filter.Query()
	for query.Next() {
		sig := query.Get()
		StepSignal(sig, s.sc, dt)
	}
}
