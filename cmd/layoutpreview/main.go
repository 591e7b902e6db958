// Layout preview tool - interactive city generation with sliders.
//
// Usage: go run ./cmd/layoutpreview
package main

import (
	"fmt"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/signwalk/camera"
	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// LayoutParams holds the tweakable generation parameters.
type LayoutParams struct {
	RoadHalfWidth float32
	RoadMargin    float32
	TreeAttempts  int
	TreeMaxRadius float32
	Seed          int64
}

func defaultParams(cfg *config.Config) LayoutParams {
	return LayoutParams{
		RoadHalfWidth: float32(cfg.World.RoadHalfWidth),
		RoadMargin:    float32(cfg.World.RoadMargin),
		TreeAttempts:  cfg.Trees.Attempts,
		TreeMaxRadius: float32(cfg.Trees.MaxRadius),
		Seed:          12345,
	}
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "City Layout Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams(cfg)

	worldHalf := float32(cfg.World.BoundLimit) + 10
	mm := camera.NewMinimap(10, 10, previewSize, worldHalf)

	var layout *systems.Layout
	var colliders *systems.ColliderSet
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			applyParams(cfg, params)
			colliders = systems.NewColliderSet()
			layout = systems.GenerateLayout(params.Seed, colliders, cfg)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawLayout(mm, cfg, layout)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Buildings: %d  Trees: %d  Lamps: %d", len(layout.Buildings), len(layout.Trees), len(layout.Lamps)), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Signals: %d  Signs: %d  Colliders: %d", len(layout.Signals), len(layout.Signs), colliders.Len()), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("City Layout Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Road half width slider
		rl.DrawText("Road half width", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRoadHalf := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"2", "8",
			params.RoadHalfWidth, 2, 8,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.RoadHalfWidth), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newRoadHalf != params.RoadHalfWidth {
			params.RoadHalfWidth = newRoadHalf
			needsRegen = true
		}
		panelY += 35

		// Road margin slider
		rl.DrawText("Road margin (building keep-out)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newMargin := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "6",
			params.RoadMargin, 0, 6,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.RoadMargin), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newMargin != params.RoadMargin {
			params.RoadMargin = newMargin
			needsRegen = true
		}
		panelY += 35

		// Tree attempts slider
		rl.DrawText("Tree attempts (per tree)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newAttempts := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"4", "32",
			float32(params.TreeAttempts), 4, 32,
		)
		rl.DrawText(fmt.Sprintf("%d", params.TreeAttempts), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newAttempts) != params.TreeAttempts {
			params.TreeAttempts = int(newAttempts)
			needsRegen = true
		}
		panelY += 35

		// Tree max radius slider
		rl.DrawText("Tree ring max radius", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newMaxRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"6", "20",
			params.TreeMaxRadius, 6, 20,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.TreeMaxRadius), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newMaxRadius != params.TreeMaxRadius {
			params.TreeMaxRadius = newMaxRadius
			needsRegen = true
		}
		panelY += 35

		// Seed slider
		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "99999",
			float32(params.Seed), 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int64(newSeed) != params.Seed {
			params.Seed = int64(newSeed)
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText(params))
		}

		rl.EndDrawing()
	}
}

// applyParams writes the slider values into the config the generator reads.
func applyParams(cfg *config.Config, params LayoutParams) {
	cfg.World.RoadHalfWidth = float64(params.RoadHalfWidth)
	cfg.World.RoadMargin = float64(params.RoadMargin)
	cfg.Trees.Attempts = params.TreeAttempts
	cfg.Trees.MaxRadius = float64(params.TreeMaxRadius)
}

// drawLayout paints the generated city top-down into the preview rect.
func drawLayout(mm *camera.Minimap, cfg *config.Config, layout *systems.Layout) {
	rl.DrawRectangleRec(rl.NewRectangle(mm.ScreenX, mm.ScreenY, mm.Size, mm.Size),
		rl.Color{R: 225, G: 235, B: 222, A: 255})

	// Roads on both axes
	road := rl.Color{R: 150, G: 152, B: 156, A: 255}
	roadW := mm.ScaleLen(float32(cfg.World.RoadHalfWidth) * 2)
	for _, line := range cfg.Derived.RoadLines {
		_, sy := mm.Project(0, line)
		rl.DrawRectangleRec(rl.NewRectangle(mm.ScreenX, sy-roadW/2, mm.Size, roadW), road)
		sx, _ := mm.Project(line, 0)
		rl.DrawRectangleRec(rl.NewRectangle(sx-roadW/2, mm.ScreenY, roadW, mm.Size), road)
	}

	for _, cw := range layout.Crosswalks {
		sx, sy := mm.Project(cw.X, cw.Z)
		rl.DrawCircleV(rl.NewVector2(sx, sy), 2, rl.White)
	}

	lot := layout.Parking
	lx, ly := mm.Project(lot.X-lot.W/2, lot.Z-lot.D/2)
	rl.DrawRectangleRec(rl.NewRectangle(lx, ly, mm.ScaleLen(lot.W), mm.ScaleLen(lot.D)),
		rl.Color{R: 190, G: 190, B: 194, A: 255})

	for _, b := range layout.Buildings {
		color := rl.Color{R: 168, G: 152, B: 130, A: 255}
		switch b.Kind {
		case systems.BuildingTower:
			color = rl.Color{R: 110, G: 130, B: 160, A: 255}
		case systems.BuildingSchool:
			color = rl.Color{R: 186, G: 108, B: 80, A: 255}
		}
		sx, sy := mm.Project(b.X-b.W/2, b.Z-b.D/2)
		rl.DrawRectangleRec(rl.NewRectangle(sx, sy, mm.ScaleLen(b.W), mm.ScaleLen(b.D)), color)
	}

	green := rl.Color{R: 80, G: 150, B: 85, A: 255}
	for _, tree := range layout.Trees {
		sx, sy := mm.Project(tree.X, tree.Z)
		rl.DrawCircleV(rl.NewVector2(sx, sy), mm.ScaleLen(tree.Crown), green)
	}

	for _, lamp := range layout.Lamps {
		sx, sy := mm.Project(lamp.X, lamp.Z)
		rl.DrawCircleV(rl.NewVector2(sx, sy), 2, rl.Color{R: 240, G: 200, B: 70, A: 255})
	}
	for _, spot := range layout.Signals {
		sx, sy := mm.Project(spot.X, spot.Z)
		rl.DrawCircleV(rl.NewVector2(sx, sy), 2.5, rl.Red)
	}
	for _, spot := range layout.Signs {
		sx, sy := mm.Project(spot.X, spot.Z)
		rl.DrawCircleV(rl.NewVector2(sx, sy), 2.5, rl.Orange)
	}
}

func yamlLines(params LayoutParams) []string {
	return []string{
		"world:",
		fmt.Sprintf("  road_half_width: %.1f", params.RoadHalfWidth),
		fmt.Sprintf("  road_margin: %.1f", params.RoadMargin),
		"trees:",
		fmt.Sprintf("  attempts: %d", params.TreeAttempts),
		fmt.Sprintf("  max_radius: %.1f", params.TreeMaxRadius),
	}
}

func yamlText(params LayoutParams) string {
	return fmt.Sprintf(`world:
  road_half_width: %.1f
  road_margin: %.1f
trees:
  attempts: %d
  max_radius: %.1f`,
		params.RoadHalfWidth, params.RoadMargin,
		params.TreeAttempts, params.TreeMaxRadius)
}
