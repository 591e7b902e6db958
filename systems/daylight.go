package systems

import (
	"fmt"
	"math"

	"github.com/pthm-cable/signwalk/config"
)

// Day phase checkpoints. Phase 0 is dawn, which the clock face reads as 06:00.
const (
	PhaseDawn     = 0.0
	PhaseNoon     = 0.25
	PhaseDusk     = 0.5
	PhaseMidnight = 0.75
)

// DayClock tracks the day/night phase in [0, 1). Auto-advance runs the cycle
// from real time; jumping to a checkpoint freezes it until toggled back.
type DayClock struct {
	Phase float32
	Auto  bool
}

// NewDayClock returns a clock at dawn with auto-cycling on.
func NewDayClock() *DayClock {
	return &DayClock{Phase: PhaseDawn, Auto: true}
}

// Advance moves the phase forward by dt seconds of real time when
// auto-cycling. The phase wraps back into [0, 1).
func (c *DayClock) Advance(dt, cycleSpeed float32) {
	if !c.Auto {
		return
	}
	c.Phase = wrapPhase(c.Phase + dt*cycleSpeed)
}

// JumpTo snaps the clock to a phase and disables auto-cycling, so a chosen
// time of day holds until the player resumes the cycle.
func (c *DayClock) JumpTo(phase float32) {
	c.Phase = wrapPhase(phase)
	c.Auto = false
}

// Toggle flips auto-cycling.
func (c *DayClock) Toggle() {
	c.Auto = !c.Auto
}

// wrapPhase maps any phase into [0, 1).
func wrapPhase(p float32) float32 {
	p -= float32(math.Floor(float64(p)))
	if p < 0 || p >= 1 {
		return 0
	}
	return p
}

// CelestialState is everything the renderer needs to light one frame,
// derived purely from the day phase.
type CelestialState struct {
	SunX, SunY, SunZ    float32
	MoonX, MoonY, MoonZ float32

	SunVisible  bool
	MoonVisible bool

	DayFactor   float32 // max(0, sin(2*pi*phase)), 0 all night
	NightFactor float32 // 1 - DayFactor

	SunIntensity     float32 // Directional light scale
	AmbientIntensity float32 // Flat light floor

	Sky config.RGB // Sky and fog color after the two-segment blend

	LampIntensity float32 // Street lamp brightness
	LampGlow      bool    // Glow spheres toggle on above the threshold
}

// Celestial computes the lighting state for a phase. The sun rides a circle
// in the x/y plane at a fixed z; the moon sits diametrically opposite, so
// one rises as the other sets.
func Celestial(phase float32, cfg *config.Config) CelestialState {
	dl := cfg.Daylight
	angle := float64(wrapPhase(phase)) * 2 * math.Pi
	radius := float32(dl.OrbitRadius)

	sunX := float32(math.Cos(angle)) * radius
	sunY := float32(math.Sin(angle)) * radius
	orbitZ := float32(dl.OrbitZ)

	margin := float32(dl.HorizonMargin)
	day := clamp01(float32(math.Sin(angle)))
	night := 1 - day

	s := CelestialState{
		SunX: sunX, SunY: sunY, SunZ: orbitZ,
		MoonX: -sunX, MoonY: -sunY, MoonZ: orbitZ,

		// The sun stays visible a little below the horizon for the glow;
		// the moon only appears once the sun is past that band, so both
		// bodies are never drawn at once.
		SunVisible:  sunY > -margin,
		MoonVisible: sunY < -margin,

		DayFactor:   day,
		NightFactor: night,

		SunIntensity:     float32(dl.SunMax) * day,
		AmbientIntensity: float32(dl.AmbientBase) + float32(dl.AmbientMax)*day,

		Sky: skyBlend(day, cfg),
	}

	s.LampIntensity = float32(dl.LampScale) * maxFloat(0, night-float32(dl.LampThreshold))
	s.LampGlow = s.LampIntensity > float32(dl.GlowThreshold)
	return s
}

// skyBlend maps the day factor onto the three color stops. Above the gate
// the sky blends sunset to day, below it night to sunset; both segments meet
// at the sunset stop, so the color is continuous across the gate.
func skyBlend(day float32, cfg *config.Config) config.RGB {
	gate := float32(cfg.Daylight.BlendGate)
	d := cfg.Derived
	if day >= gate {
		t := clamp01((day - gate) / (1 - gate))
		return mixRGB(d.SunsetRGB, d.DayRGB, t)
	}
	t := clamp01(day / gate)
	return mixRGB(d.NightRGB, d.SunsetRGB, t)
}

// mixRGB linearly interpolates between two colors.
func mixRGB(a, b config.RGB, t float32) config.RGB {
	return config.RGB{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
	}
}

// maxFloat returns the larger of two float32 values.
func maxFloat(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// ClockText renders the phase as a 24h wall clock. Phase 0 reads 06:00,
// noon falls at phase 0.25 and midnight at 0.75.
func ClockText(phase float32) string {
	totalMin := int(float64(wrapPhase(phase))*24*60) + 6*60
	h := (totalMin / 60) % 24
	m := totalMin % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
