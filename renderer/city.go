// Package renderer provides drawing for the 3D city and the minimap.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/signwalk/components"
	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/systems"
)

// Stacked y offsets keep the flat layers from z-fighting.
const (
	sidewalkY  = 0.02
	roadY      = 0.04
	markingY   = 0.06
	signalPole = 4.6
	lampPole   = 4.2
)

var blockPalette = []config.RGB{
	{R: 188, G: 170, B: 152},
	{R: 166, G: 158, B: 150},
	{R: 196, G: 182, B: 160},
	{R: 154, G: 144, B: 140},
	{R: 178, G: 162, B: 170},
}

// City draws the static town and the dynamic roadside pieces. All Draw
// methods must run inside BeginMode3D.
type City struct {
	cfg *config.Config
}

// NewCity creates a city renderer.
func NewCity(cfg *config.Config) *City {
	return &City{cfg: cfg}
}

// Draw renders the ground, roads and every static prop in the layout.
func (c *City) Draw(layout *systems.Layout, cel systems.CelestialState) {
	c.drawGround(cel)
	c.drawRoads(cel)

	for _, cw := range layout.Crosswalks {
		c.drawCrosswalk(cw, cel)
	}
	c.drawParking(layout.Parking, cel)

	for i, b := range layout.Buildings {
		c.drawBuilding(i, b, cel)
	}
	for _, lamp := range layout.Lamps {
		c.drawLamp(lamp, cel)
	}
	for _, tree := range layout.Trees {
		c.drawTree(tree, cel)
	}
}

func (c *City) drawGround(cel systems.CelestialState) {
	extent := float32(c.cfg.World.BoundLimit)*2 + 80
	grass := Shade(config.RGB{R: 96, G: 142, B: 88}, cel)
	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(extent, extent), grass)
}

// drawRoads lays the pavement and asphalt stripes over each road line on
// both axes, with dashed center markings.
func (c *City) drawRoads(cel systems.CelestialState) {
	extent := float32(c.cfg.World.BoundLimit)*2 + 40
	roadW := float32(c.cfg.World.RoadHalfWidth) * 2
	paveW := roadW + float32(c.cfg.World.SidewalkWidth)*2

	pavement := Shade(config.RGB{R: 150, G: 148, B: 144}, cel)
	asphalt := Shade(config.RGB{R: 62, G: 62, B: 66}, cel)

	for _, line := range c.cfg.Derived.RoadLines {
		// Road running along x at z=line
		rl.DrawPlane(rl.NewVector3(0, sidewalkY, line), rl.NewVector2(extent, paveW), pavement)
		rl.DrawPlane(rl.NewVector3(0, roadY, line), rl.NewVector2(extent, roadW), asphalt)
		// Road running along z at x=line
		rl.DrawPlane(rl.NewVector3(line, sidewalkY, 0), rl.NewVector2(paveW, extent), pavement)
		rl.DrawPlane(rl.NewVector3(line, roadY, 0), rl.NewVector2(roadW, extent), asphalt)
	}

	c.drawCenterDashes(extent, cel)
}

func (c *City) drawCenterDashes(extent float32, cel systems.CelestialState) {
	dash := Shade(config.RGB{R: 230, G: 200, B: 60}, cel)
	const dashLen, dashGap = 2.5, 5.5

	half := extent / 2
	for _, line := range c.cfg.Derived.RoadLines {
		for s := -half; s < half; s += dashLen + dashGap {
			mid := s + dashLen/2
			rl.DrawPlane(rl.NewVector3(mid, markingY, line), rl.NewVector2(dashLen, 0.3), dash)
			rl.DrawPlane(rl.NewVector3(line, markingY, mid), rl.NewVector2(0.3, dashLen), dash)
		}
	}
}

// drawCrosswalk paints the zebra stripes across the road. Stripes stack
// along the walking direction.
func (c *City) drawCrosswalk(cw systems.Crosswalk, cel systems.CelestialState) {
	paint := Shade(config.RGB{R: 235, G: 235, B: 235}, cel)
	span := float32(c.cfg.World.RoadHalfWidth) * 2

	const stripes = 5
	step := span / stripes
	start := -span/2 + step/2

	for i := 0; i < stripes; i++ {
		offset := start + float32(i)*step
		if cw.AlongZ {
			pos := rl.NewVector3(cw.X, markingY, cw.Z+offset)
			rl.DrawPlane(pos, rl.NewVector2(3.0, step*0.55), paint)
		} else {
			pos := rl.NewVector3(cw.X+offset, markingY, cw.Z)
			rl.DrawPlane(pos, rl.NewVector2(step*0.55, 3.0), paint)
		}
	}
}

func (c *City) drawParking(lot systems.ParkingLot, cel systems.CelestialState) {
	slab := Shade(config.RGB{R: 120, G: 120, B: 124}, cel)
	paint := Shade(config.RGB{R: 225, G: 225, B: 225}, cel)

	rl.DrawPlane(rl.NewVector3(lot.X, sidewalkY, lot.Z), rl.NewVector2(lot.W, lot.D), slab)

	// Bay dividers across the middle of the lot
	const bays = 6
	step := lot.W / bays
	for i := 0; i <= bays; i++ {
		x := lot.X - lot.W/2 + float32(i)*step
		rl.DrawPlane(rl.NewVector3(x, markingY, lot.Z), rl.NewVector2(0.25, lot.D*0.55), paint)
	}
}

func (c *City) drawBuilding(i int, b systems.Building, cel systems.CelestialState) {
	var base config.RGB
	switch b.Kind {
	case systems.BuildingTower:
		base = config.RGB{R: 122, G: 142, B: 168}
	case systems.BuildingSchool:
		base = config.RGB{R: 172, G: 102, B: 78}
	default:
		base = blockPalette[i%len(blockPalette)]
	}

	pos := rl.NewVector3(b.X, b.H/2, b.Z)
	rl.DrawCube(pos, b.W, b.H, b.D, Shade(base, cel))
	rl.DrawCubeWires(pos, b.W, b.H, b.D, Shade(config.RGB{R: 40, G: 40, B: 44}, cel))

	// Window lights come on together with the lamp glow.
	if cel.LampGlow {
		c.drawWindows(i, b)
	}
}

// drawWindows lights a subset of window slots on the z faces. The subset is
// hashed from the building index, so the pattern holds frame to frame.
func (c *City) drawWindows(i int, b systems.Building) {
	lit := rl.Color{R: 255, G: 214, B: 140, A: 255}

	cols := int(b.W / 6)
	rows := int(b.H / 7)
	if cols < 1 || rows < 1 {
		return
	}

	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if (i*31+r*17+col*7)%5 > 1 {
				continue
			}
			x := b.X - b.W/2 + (float32(col)+0.5)*b.W/float32(cols)
			y := (float32(r) + 0.5) * b.H / float32(rows)
			rl.DrawCube(rl.NewVector3(x, y, b.Z+b.D/2+0.03), 1.1, 1.6, 0.05, lit)
			rl.DrawCube(rl.NewVector3(x, y, b.Z-b.D/2-0.03), 1.1, 1.6, 0.05, lit)
		}
	}
}

// drawLamp draws a street lamp. The head warms up with the lamp ramp and
// gets a glow sphere once the glow threshold trips.
func (c *City) drawLamp(lamp systems.Lamp, cel systems.CelestialState) {
	pole := Shade(config.RGB{R: 70, G: 74, B: 80}, cel)
	rl.DrawCylinder(rl.NewVector3(lamp.X, 0, lamp.Z), 0.07, 0.12, lampPole, 8, pole)

	head := rl.NewVector3(lamp.X, lampPole+0.15, lamp.Z)
	lit := cel.LampIntensity
	headColor := rl.Color{
		R: uint8(90 + 165*lit),
		G: uint8(90 + 110*lit),
		B: uint8(90 + 40*lit),
		A: 255,
	}
	rl.DrawSphere(head, 0.25, headColor)

	if cel.LampGlow {
		glow := rl.Color{R: 255, G: 205, B: 120, A: 255}
		rl.DrawSphere(head, 0.9, rl.Fade(glow, 0.16*lit))
	}
}

func (c *City) drawTree(tree systems.Tree, cel systems.CelestialState) {
	trunkH := tree.Height * 0.45
	trunk := Shade(config.RGB{R: 110, G: 82, B: 56}, cel)
	crown := Shade(config.RGB{R: 58, G: 124, B: 62}, cel)

	rl.DrawCylinder(rl.NewVector3(tree.X, 0, tree.Z), 0.14, 0.2, trunkH, 7, trunk)
	rl.DrawSphere(rl.NewVector3(tree.X, trunkH+tree.Crown*0.7, tree.Z), tree.Crown, crown)
}

// DrawSignal draws a traffic light pole with its three lenses. Only the
// active lens is lit, the others stay dark housings.
func (c *City) DrawSignal(x, z float32, state components.SignalState, cel systems.CelestialState) {
	pole := Shade(config.RGB{R: 60, G: 64, B: 70}, cel)
	rl.DrawCylinder(rl.NewVector3(x, 0, z), 0.08, 0.11, signalPole, 8, pole)

	housing := rl.NewVector3(x, signalPole-0.6, z)
	rl.DrawCube(housing, 0.45, 1.25, 0.45, Shade(config.RGB{R: 36, G: 38, B: 42}, cel))

	lensY := []float32{signalPole - 0.2, signalPole - 0.6, signalPole - 1.0}
	order := []components.SignalState{components.SignalRed, components.SignalYellow, components.SignalGreen}

	for i, s := range order {
		pos := rl.NewVector3(x, lensY[i], z)
		if s == state {
			lit := systems.SignalColor(s)
			rl.DrawSphere(pos, 0.17, rl.Color{R: uint8(lit.R), G: uint8(lit.G), B: uint8(lit.B), A: 255})
		} else {
			rl.DrawSphere(pos, 0.15, rl.Color{R: 45, G: 47, B: 50, A: 255})
		}
	}
}

// DrawSign draws a roadside sign post and plate. The plate's thin axis
// follows the facing yaw so it reads from the road it serves; highlight
// wires mark the sign currently offering its quiz.
func (c *City) DrawSign(x, z float32, sign components.Sign, highlight bool, cel systems.CelestialState) {
	post := Shade(config.RGB{R: 120, G: 124, B: 130}, cel)
	rl.DrawCylinder(rl.NewVector3(x, 0, z), 0.05, 0.07, 2.3, 6, post)

	plate := rl.NewVector3(x, 2.5, z)
	w, h, d := plateDims(sign.Facing)
	color := Shade(plateColor(sign.Kind), cel)
	rl.DrawCube(plate, w, h, d, color)

	if highlight {
		rl.DrawCubeWires(plate, w+0.25, h+0.25, d+0.25, rl.Color{R: 255, G: 255, B: 255, A: 230})
	}
}

// plateDims picks the plate box extents from the facing yaw. Yaw 0 faces
// +z, so a large |sin(yaw)| means an x-facing normal and a plate thin in x.
func plateDims(facing float32) (w, h, d float32) {
	if absSin(facing) > 0.7 {
		return 0.1, 0.9, 0.9
	}
	return 0.9, 0.9, 0.1
}

func plateColor(kind components.SignKind) config.RGB {
	switch kind {
	case components.SignStop:
		return config.RGB{R: 205, G: 40, B: 40}
	case components.SignYield:
		return config.RGB{R: 235, G: 220, B: 215}
	case components.SignSpeedLimit:
		return config.RGB{R: 240, G: 240, B: 240}
	case components.SignCrosswalk:
		return config.RGB{R: 45, G: 95, B: 200}
	case components.SignSchoolZone:
		return config.RGB{R: 240, G: 205, B: 50}
	case components.SignNoEntry:
		return config.RGB{R: 215, G: 55, B: 50}
	case components.SignMainRoad:
		return config.RGB{R: 248, G: 215, B: 75}
	default:
		return config.RGB{R: 70, G: 110, B: 190}
	}
}

// DrawBird draws one flock member as a body bar with a flap-tilted wing
// bar. Orientation snaps to the dominant travel axis.
func (c *City) DrawBird(pos components.Position, bird components.Bird, flap float32) {
	body := rl.Color{R: 52, G: 54, B: 60, A: 255}
	wing := rl.Color{R: 74, G: 76, B: 84, A: 255}

	alongX := abs(bird.DirX) > abs(bird.DirZ)
	center := rl.NewVector3(pos.X, pos.Y, pos.Z)

	if alongX {
		rl.DrawCube(center, 0.55, 0.16, 0.22, body)
		rl.DrawCube(rl.NewVector3(pos.X, pos.Y+flap*0.22, pos.Z), 0.3, 0.06, 1.5, wing)
	} else {
		rl.DrawCube(center, 0.22, 0.16, 0.55, body)
		rl.DrawCube(rl.NewVector3(pos.X, pos.Y+flap*0.22, pos.Z), 1.5, 0.06, 0.3, wing)
	}
}

// Unload frees resources (none for this renderer).
func (c *City) Unload() {}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func absSin(yaw float32) float32 {
	return abs(float32(math.Sin(float64(yaw))))
}
