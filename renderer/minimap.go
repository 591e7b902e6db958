package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/signwalk/camera"
	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/systems"
)

// MinimapRenderer paints the top-down overview into the minimap rect.
type MinimapRenderer struct {
	cfg *config.Config
}

// NewMinimapRenderer creates a minimap renderer.
func NewMinimapRenderer(cfg *config.Config) *MinimapRenderer {
	return &MinimapRenderer{cfg: cfg}
}

// Draw renders the map backdrop, roads, blocks and the player marker.
// Call outside BeginMode3D, it is a screen-space overlay.
func (r *MinimapRenderer) Draw(mm *camera.Minimap, layout *systems.Layout, px, pz, yaw float32) {
	frame := rl.NewRectangle(mm.ScreenX-3, mm.ScreenY-3, mm.Size+6, mm.Size+6)
	rl.DrawRectangleRec(frame, rl.Color{R: 12, G: 16, B: 20, A: 200})
	rl.DrawRectangleLinesEx(frame, 2, rl.Color{R: 90, G: 100, B: 110, A: 255})

	r.drawRoads(mm)
	r.drawBlocks(mm, layout)
	r.drawPlayer(mm, px, pz, yaw)

	rl.DrawText("N", int32(mm.ScreenX+mm.Size/2-4), int32(mm.ScreenY+2), 12, rl.RayWhite)
}

func (r *MinimapRenderer) drawRoads(mm *camera.Minimap) {
	road := rl.Color{R: 70, G: 72, B: 76, A: 255}
	roadW := mm.ScaleLen(float32(r.cfg.World.RoadHalfWidth) * 2)
	if roadW < 2 {
		roadW = 2
	}

	for _, line := range r.cfg.Derived.RoadLines {
		_, sy := mm.Project(0, line)
		rl.DrawRectangleRec(rl.NewRectangle(mm.ScreenX, sy-roadW/2, mm.Size, roadW), road)
		sx, _ := mm.Project(line, 0)
		rl.DrawRectangleRec(rl.NewRectangle(sx-roadW/2, mm.ScreenY, roadW, mm.Size), road)
	}
}

func (r *MinimapRenderer) drawBlocks(mm *camera.Minimap, layout *systems.Layout) {
	for _, b := range layout.Buildings {
		if !mm.OnMap(b.X, b.Z, b.W/2) {
			continue
		}
		color := rl.Color{R: 140, G: 132, B: 120, A: 255}
		switch b.Kind {
		case systems.BuildingTower:
			color = rl.Color{R: 110, G: 126, B: 150, A: 255}
		case systems.BuildingSchool:
			color = rl.Color{R: 160, G: 96, B: 74, A: 255}
		}
		sx, sy := mm.Project(b.X-b.W/2, b.Z-b.D/2)
		rl.DrawRectangleRec(rl.NewRectangle(sx, sy, mm.ScaleLen(b.W), mm.ScaleLen(b.D)), color)
	}

	lot := layout.Parking
	sx, sy := mm.Project(lot.X-lot.W/2, lot.Z-lot.D/2)
	rl.DrawRectangleRec(rl.NewRectangle(sx, sy, mm.ScaleLen(lot.W), mm.ScaleLen(lot.D)),
		rl.Color{R: 96, G: 98, B: 102, A: 255})

	green := rl.Color{R: 70, G: 140, B: 75, A: 255}
	for _, tree := range layout.Trees {
		if !mm.OnMap(tree.X, tree.Z, 0) {
			continue
		}
		tx, ty := mm.Project(tree.X, tree.Z)
		rl.DrawCircleV(rl.NewVector2(tx, ty), 1.5, green)
	}
}

func (r *MinimapRenderer) drawPlayer(mm *camera.Minimap, px, pz, yaw float32) {
	sx, sy := mm.Project(px, pz)
	center := rl.NewVector2(sx, sy)

	// Heading tick: yaw 0 faces +z, which projects downward on the map.
	dirX := float32(math.Sin(float64(yaw)))
	dirZ := float32(math.Cos(float64(yaw)))
	tip := rl.NewVector2(sx+dirX*mm.ScaleLen(10), sy+dirZ*mm.ScaleLen(10))

	rl.DrawLineEx(center, tip, 2, rl.Color{R: 255, G: 220, B: 90, A: 255})
	rl.DrawCircleV(center, 3, rl.RayWhite)
}

// DrawColliders overlays the collision footprints, for the debug view.
func (r *MinimapRenderer) DrawColliders(mm *camera.Minimap, colliders []systems.Collider) {
	outline := rl.Color{R: 235, G: 80, B: 200, A: 220}
	for _, c := range colliders {
		if !mm.OnMap(c.X, c.Z, c.HalfW) {
			continue
		}
		sx, sy := mm.Project(c.X-c.HalfW, c.Z-c.HalfD)
		rect := rl.NewRectangle(sx, sy, mm.ScaleLen(c.HalfW*2), mm.ScaleLen(c.HalfD*2))
		rl.DrawRectangleLinesEx(rect, 1, outline)
	}
}
