// Package components defines ECS components for the city simulation.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y, Z float32
}

// Bird holds the flight state of one ambient bird.
// Direction is a unit vector in the horizontal plane; FlapOffset desyncs
// the wing beat between birds.
type Bird struct {
	DirX       float32
	DirZ       float32
	Speed      float32 // World units per second
	FlapOffset float32 // Phase offset in seconds
}

// SignalState is a traffic light phase.
type SignalState uint8

const (
	SignalRed    SignalState = iota // Stop
	SignalGreen                     // Go
	SignalYellow                    // Clear the intersection
)

// String returns the readable phase name.
func (s SignalState) String() string {
	switch s {
	case SignalRed:
		return "red"
	case SignalGreen:
		return "green"
	case SignalYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Signal holds the state of one traffic light.
// The zero value is a fresh red light, which is the boot state of every
// intersection. Timer counts seconds spent in the current phase.
type Signal struct {
	State SignalState
	Timer float32
}

// SignKind identifies a traffic sign type.
type SignKind uint8

const (
	SignStop SignKind = iota
	SignYield
	SignSpeedLimit
	SignCrosswalk
	SignSchoolZone
	SignNoEntry
	SignMainRoad
	SignDeadEnd

	SignKindCount // Number of sign kinds, keep last
)

// String returns the readable sign name.
func (k SignKind) String() string {
	switch k {
	case SignStop:
		return "stop"
	case SignYield:
		return "yield"
	case SignSpeedLimit:
		return "speed limit"
	case SignCrosswalk:
		return "crosswalk"
	case SignSchoolZone:
		return "school zone"
	case SignNoEntry:
		return "no entry"
	case SignMainRoad:
		return "main road"
	case SignDeadEnd:
		return "dead end"
	default:
		return "unknown"
	}
}

// Sign holds one roadside traffic sign.
// Facing is the yaw in radians the plate points toward; Asked tracks whether
// the current approach already offered its quiz, and rearms when the player
// leaves the trigger radius.
type Sign struct {
	Kind   SignKind
	Facing float32
	Asked  bool
}
