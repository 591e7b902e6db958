package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/systems"
)

// SkyColor converts the blended sky triple into a raylib clear color.
func SkyColor(cel systems.CelestialState) rl.Color {
	return rl.Color{
		R: uint8(clampChan(cel.Sky.R)),
		G: uint8(clampChan(cel.Sky.G)),
		B: uint8(clampChan(cel.Sky.B)),
		A: 255,
	}
}

// Shade scales a base color by the current light level so geometry darkens
// through the night instead of staying fullbright.
func Shade(base config.RGB, cel systems.CelestialState) rl.Color {
	level := cel.AmbientIntensity + cel.SunIntensity*0.6
	if level > 1 {
		level = 1
	}
	return rl.Color{
		R: uint8(clampChan(base.R * level)),
		G: uint8(clampChan(base.G * level)),
		B: uint8(clampChan(base.B * level)),
		A: 255,
	}
}

// DrawCelestials draws the sun and moon discs at their orbit positions.
// Call inside BeginMode3D. Bodies below the horizon margin are culled by
// the visibility flags.
func DrawCelestials(cel systems.CelestialState) {
	if cel.SunVisible {
		pos := rl.NewVector3(cel.SunX, cel.SunY, cel.SunZ)
		rl.DrawSphere(pos, 14, rl.Color{R: 255, G: 235, B: 120, A: 255})
	}
	if cel.MoonVisible {
		pos := rl.NewVector3(cel.MoonX, cel.MoonY, cel.MoonZ)
		rl.DrawSphere(pos, 10, rl.Color{R: 226, G: 230, B: 240, A: 255})
	}
}

func clampChan(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
