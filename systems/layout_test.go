package systems

import (
	"testing"

	"github.com/pthm-cable/signwalk/components"
	"github.com/pthm-cable/signwalk/config"
)

// testCfg loads the embedded default configuration.
func testCfg(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

// TestGenerateLayout_Deterministic verifies the same seed builds the same city.
func TestGenerateLayout_Deterministic(t *testing.T) {
	cfg := testCfg(t)

	a := GenerateLayout(42, NewColliderSet(), cfg)
	b := GenerateLayout(42, NewColliderSet(), cfg)

	if len(a.Buildings) != len(b.Buildings) {
		t.Fatalf("building counts differ: %d vs %d", len(a.Buildings), len(b.Buildings))
	}
	for i := range a.Buildings {
		if a.Buildings[i] != b.Buildings[i] {
			t.Errorf("building %d differs: %+v vs %+v", i, a.Buildings[i], b.Buildings[i])
		}
	}
	if len(a.Trees) != len(b.Trees) {
		t.Fatalf("tree counts differ: %d vs %d", len(a.Trees), len(b.Trees))
	}
	for i := range a.Trees {
		if a.Trees[i] != b.Trees[i] {
			t.Errorf("tree %d differs: %+v vs %+v", i, a.Trees[i], b.Trees[i])
		}
	}

	c := GenerateLayout(43, NewColliderSet(), cfg)
	same := len(a.Buildings) == len(c.Buildings)
	if same {
		for i := range a.Buildings {
			if a.Buildings[i] != c.Buildings[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical buildings")
	}
}

// TestGenerateLayout_OneBuildingPerCell verifies no cell hosts two buildings.
func TestGenerateLayout_OneBuildingPerCell(t *testing.T) {
	cfg := testCfg(t)
	layout := GenerateLayout(7, NewColliderSet(), cfg)

	seen := make(map[[2]int]int)
	for _, b := range layout.Buildings {
		key := [2]int{int(b.X), int(b.Z)}
		seen[key]++
		if seen[key] > 1 {
			t.Errorf("cell (%d,%d) hosts %d buildings", key[0], key[1], seen[key])
		}
	}
}

// TestGenerateLayout_CollidersDisjoint verifies building footprints never overlap.
func TestGenerateLayout_CollidersDisjoint(t *testing.T) {
	cfg := testCfg(t)

	for seed := int64(1); seed <= 25; seed++ {
		cs := NewColliderSet()
		GenerateLayout(seed, cs, cfg)
		boxes := cs.All()

		for i := 0; i < len(boxes); i++ {
			for j := i + 1; j < len(boxes); j++ {
				a, b := boxes[i], boxes[j]
				overlapX := abs32(a.X-b.X) < a.HalfW+b.HalfW
				overlapZ := abs32(a.Z-b.Z) < a.HalfD+b.HalfD
				if overlapX && overlapZ {
					t.Fatalf("seed %d: colliders %d and %d overlap: %+v vs %+v", seed, i, j, a, b)
				}
			}
		}
	}
}

// TestGenerateLayout_RoadBuffer verifies no building crowds a road stripe.
func TestGenerateLayout_RoadBuffer(t *testing.T) {
	cfg := testCfg(t)
	keepOut := float32(cfg.World.RoadHalfWidth + cfg.World.RoadMargin)

	for seed := int64(1); seed <= 25; seed++ {
		layout := GenerateLayout(seed, NewColliderSet(), cfg)
		for _, b := range layout.Buildings {
			for _, line := range cfg.Derived.RoadLines {
				if abs32(b.X-line) < b.W/2+keepOut {
					t.Fatalf("seed %d: building at (%.1f,%.1f) w=%.1f crowds road x=%.0f", seed, b.X, b.Z, b.W, line)
				}
				if abs32(b.Z-line) < b.D/2+keepOut {
					t.Fatalf("seed %d: building at (%.1f,%.1f) d=%.1f crowds road z=%.0f", seed, b.X, b.Z, b.D, line)
				}
			}
		}
	}
}

// TestGenerateLayout_Landmarks verifies the fixed placements and their colliders.
func TestGenerateLayout_Landmarks(t *testing.T) {
	cfg := testCfg(t)
	cs := NewColliderSet()
	layout := GenerateLayout(99, cs, cfg)

	var school, towers int
	for _, b := range layout.Buildings {
		switch b.Kind {
		case BuildingSchool:
			school++
			if b.X != -80 || b.Z != 80 {
				t.Errorf("school at (%.0f,%.0f), want (-80,80)", b.X, b.Z)
			}
		case BuildingTower:
			towers++
		}
	}
	if school != 1 {
		t.Errorf("school count = %d, want 1", school)
	}
	if towers != len(cfg.Landmarks.Towers) {
		t.Errorf("tower count = %d, want %d", towers, len(cfg.Landmarks.Towers))
	}

	// Fixed tower heights hold regardless of seed.
	heights := map[[2]int]float32{}
	for _, b := range layout.Buildings {
		if b.Kind == BuildingTower {
			heights[[2]int{int(b.X), int(b.Z)}] = b.H
		}
	}
	for _, tw := range cfg.Landmarks.Towers {
		key := [2]int{tw.Cell[0], tw.Cell[1]}
		if got := heights[key]; got != float32(tw.Height) {
			t.Errorf("tower %v height = %.0f, want %.0f", key, got, tw.Height)
		}
	}

	// School blocks walking, the parking lot does not.
	if !cs.HitAny(-80, 80, 0) {
		t.Error("school cell is not solid")
	}
	if cs.HitAny(float32(layout.Parking.X), float32(layout.Parking.Z), 0) {
		t.Error("parking lot is solid, want walkable")
	}
	if layout.Parking.W <= 0 || layout.Parking.D <= 0 {
		t.Errorf("parking lot missing: %+v", layout.Parking)
	}
}

// TestGenerateLayout_SignCoverage verifies every sign kind appears at least twice.
func TestGenerateLayout_SignCoverage(t *testing.T) {
	cfg := testCfg(t)
	layout := GenerateLayout(5, NewColliderSet(), cfg)

	counts := make(map[components.SignKind]int)
	for _, s := range layout.Signs {
		counts[s.Kind]++
	}
	for k := components.SignKind(0); k < components.SignKindCount; k++ {
		if counts[k] < 2 {
			t.Errorf("sign kind %q appears %d times, want >= 2", k, counts[k])
		}
	}
}

// TestGenerateLayout_RoadFurniture verifies lamp, crosswalk, and signal emission.
func TestGenerateLayout_RoadFurniture(t *testing.T) {
	cfg := testCfg(t)
	layout := GenerateLayout(11, NewColliderSet(), cfg)

	lines := len(cfg.Derived.RoadLines)
	if got, want := len(layout.Lamps), lines*lines; got != want {
		t.Errorf("lamp count = %d, want %d", got, want)
	}

	// Four central intersections, four zebras each.
	if got, want := len(layout.Crosswalks), 4*4; got != want {
		t.Errorf("crosswalk count = %d, want %d", got, want)
	}

	// Signals cover the sixteen downtown intersections.
	if got, want := len(layout.Signals), 16; got != want {
		t.Errorf("signal count = %d, want %d", got, want)
	}
}

// TestColliderSet verifies registry hit testing and the degenerate-box guard.
func TestColliderSet(t *testing.T) {
	cs := NewColliderSet()
	cs.AddBox(10, 10, 4, 4)
	cs.Add(Collider{X: 0, Z: 0, HalfW: 0, HalfD: 2}) // Dropped

	tests := []struct {
		name string
		x, z float32
		pad  float32
		want bool
	}{
		{"inside", 10, 10, 0, true},
		{"outside", 20, 20, 0, false},
		{"edge without pad", 12.5, 10, 0, false},
		{"edge with pad", 12.5, 10, 1, true},
		{"degenerate ignored", 0, 0, 0.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cs.HitAny(tc.x, tc.z, tc.pad); got != tc.want {
				t.Errorf("HitAny(%.1f, %.1f, %.1f) = %v, want %v", tc.x, tc.z, tc.pad, got, tc.want)
			}
		})
	}

	if cs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cs.Len())
	}
}
