package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/signwalk/components"
	"github.com/pthm-cable/signwalk/config"
)

const (
	towerFootprint = 24.0 // Fixed skyscrapers share one footprint
	schoolHeight   = 10.0
	lampOffset     = 0.6 // Pole distance outside the pavement corner
	signOffset     = 1.2 // Sign post distance outside the pavement edge
	crosswalkDepth = 3.0 // Zebra band extent along the walking direction
)

// BuildingKind classifies a generated building.
type BuildingKind uint8

const (
	BuildingBlock  BuildingKind = iota // Procedural block on a free cell
	BuildingTower                      // Fixed downtown skyscraper
	BuildingSchool                     // School landmark
)

// Building is one solid box of the city.
type Building struct {
	X, Z    float32 // Center on the ground plane
	W, D, H float32 // Full width, depth, height
	Kind    BuildingKind
}

// Tree is a decorative tree. Trees never collide.
type Tree struct {
	X, Z   float32
	Height float32
	Crown  float32 // Canopy radius
}

// Lamp is a street lamp post at an intersection corner.
type Lamp struct {
	X, Z float32
}

// Crosswalk is a zebra band beside an intersection. AlongZ means the
// pedestrian crosses in the z direction, over a road running along x.
type Crosswalk struct {
	X, Z   float32
	AlongZ bool
}

// SignalSpot marks where a traffic light entity is spawned.
type SignalSpot struct {
	X, Z float32
}

// SignSpot marks where a sign entity is spawned, with its kind and the yaw
// of the plate's outward normal.
type SignSpot struct {
	X, Z   float32
	Kind   components.SignKind
	Facing float32
}

// ParkingLot is the flat walkable slab on the reserved parking cell.
type ParkingLot struct {
	X, Z, W, D float32
}

// Contains reports whether the point lies on the lot.
func (p ParkingLot) Contains(x, z float32) bool {
	return abs32(x-p.X) < p.W/2 && abs32(z-p.Z) < p.D/2
}

// Layout holds the generated static city: solid geometry, decor, and the
// spawn spots later turned into ECS entities.
type Layout struct {
	Buildings  []Building
	Trees      []Tree
	Lamps      []Lamp
	Crosswalks []Crosswalk
	Signals    []SignalSpot
	Signs      []SignSpot
	Parking    ParkingLot
}

// generator carries the state of one layout generation pass.
type generator struct {
	rng       *rand.Rand
	cfg       *config.Config
	colliders *ColliderSet
	layout    *Layout
	occupied  map[[2]int]bool // Cells taken by landmarks or buildings
}

// GenerateLayout builds the city deterministically from the seed and
// registers every solid footprint with the collider set. The same seed and
// config always produce the same city.
func GenerateLayout(seed int64, colliders *ColliderSet, cfg *config.Config) *Layout {
	g := &generator{
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		colliders: colliders,
		layout:    &Layout{},
		occupied:  make(map[[2]int]bool),
	}
	g.placeLandmarks()
	g.placeBuildings()
	g.placeRoadFurniture()
	g.placeSigns()
	g.placeTrees()
	return g.layout
}

// nearRoad reports whether a box centered at coord with the given half
// extent crowds any road stripe on that axis. The keep-out is the pavement
// plus the configured margin.
func (g *generator) nearRoad(coord, halfExtent float32) bool {
	keepOut := halfExtent + float32(g.cfg.World.RoadHalfWidth) + float32(g.cfg.World.RoadMargin)
	for _, line := range g.cfg.Derived.RoadLines {
		if abs32(coord-line) < keepOut {
			return true
		}
	}
	return false
}

// cellCenter returns the world coordinate of a grid cell index.
func (g *generator) cellCenter(i int) float32 {
	return float32(g.cfg.World.GridMin + i*g.cfg.World.GridStep)
}

// cellIndex returns the grid indices of a cell coordinate pair, or ok=false
// when the coordinates do not sit on the grid.
func (g *generator) cellIndex(x, z int) (ix, iz int, ok bool) {
	step := g.cfg.World.GridStep
	dx := x - g.cfg.World.GridMin
	dz := z - g.cfg.World.GridMin
	if dx%step != 0 || dz%step != 0 {
		return 0, 0, false
	}
	ix, iz = dx/step, dz/step
	n := g.cfg.World.GridCount
	if ix < 0 || ix >= n || iz < 0 || iz >= n {
		return 0, 0, false
	}
	return ix, iz, true
}

// placeLandmarks reserves the school, parking, and skyscraper cells before
// procedural fill runs.
func (g *generator) placeLandmarks() {
	lm := g.cfg.Landmarks
	fpMax := float32(g.cfg.Buildings.FootprintMax)

	// School: a solid low building on its reserved cell.
	if ix, iz, ok := g.cellIndex(lm.SchoolCell[0], lm.SchoolCell[1]); ok {
		g.occupied[[2]int{ix, iz}] = true
		b := Building{
			X: g.cellCenter(ix), Z: g.cellCenter(iz),
			W: fpMax, D: fpMax, H: schoolHeight,
			Kind: BuildingSchool,
		}
		g.layout.Buildings = append(g.layout.Buildings, b)
		g.colliders.AddBox(b.X, b.Z, b.W, b.D)
	}

	// Parking lot: reserved, walkable, no collider. Also the no-planting zone.
	if ix, iz, ok := g.cellIndex(lm.ParkingCell[0], lm.ParkingCell[1]); ok {
		g.occupied[[2]int{ix, iz}] = true
		g.layout.Parking = ParkingLot{
			X: g.cellCenter(ix), Z: g.cellCenter(iz),
			W: fpMax, D: fpMax,
		}
	}

	// Downtown towers at fixed cells with fixed heights.
	for _, tw := range lm.Towers {
		ix, iz, ok := g.cellIndex(tw.Cell[0], tw.Cell[1])
		if !ok || g.occupied[[2]int{ix, iz}] {
			continue
		}
		g.occupied[[2]int{ix, iz}] = true
		b := Building{
			X: g.cellCenter(ix), Z: g.cellCenter(iz),
			W: towerFootprint, D: towerFootprint, H: float32(tw.Height),
			Kind: BuildingTower,
		}
		g.layout.Buildings = append(g.layout.Buildings, b)
		g.colliders.AddBox(b.X, b.Z, b.W, b.D)
	}
}

// placeBuildings fills every free cell with a procedural block. Central
// cells grow taller than outskirt cells. A sampled footprint that would
// crowd a road leaves the lot empty instead.
func (g *generator) placeBuildings() {
	bc := g.cfg.Buildings
	n := g.cfg.World.GridCount

	for iz := 0; iz < n; iz++ {
		for ix := 0; ix < n; ix++ {
			if g.occupied[[2]int{ix, iz}] {
				continue
			}
			x := g.cellCenter(ix)
			z := g.cellCenter(iz)

			w := float32(bc.FootprintMin + g.rng.Float64()*(bc.FootprintMax-bc.FootprintMin))
			d := float32(bc.FootprintMin + g.rng.Float64()*(bc.FootprintMax-bc.FootprintMin))

			central := abs32(x) <= float32(bc.CentralThreshold) && abs32(z) <= float32(bc.CentralThreshold)
			var h float32
			if central {
				h = float32(bc.CentralHeightMin + g.rng.Float64()*(bc.CentralHeightMax-bc.CentralHeightMin))
			} else {
				h = float32(bc.OutskirtHeightMin + g.rng.Float64()*(bc.OutskirtHeightMax-bc.OutskirtHeightMin))
			}

			if g.nearRoad(x, w/2) || g.nearRoad(z, d/2) {
				continue
			}

			g.occupied[[2]int{ix, iz}] = true
			b := Building{X: x, Z: z, W: w, D: d, H: h, Kind: BuildingBlock}
			g.layout.Buildings = append(g.layout.Buildings, b)
			g.colliders.AddBox(b.X, b.Z, b.W, b.D)
		}
	}
}

// placeRoadFurniture emits lamp posts at every intersection, crosswalks
// around the central intersections, and signal spots across the downtown
// grid. None of these collide.
func (g *generator) placeRoadFurniture() {
	roadHalf := float32(g.cfg.World.RoadHalfWidth)
	halfStep := float32(g.cfg.World.GridStep) / 2
	lines := g.cfg.Derived.RoadLines
	lampOff := roadHalf + lampOffset
	walkOff := roadHalf + crosswalkDepth/2

	// The innermost stripes sit half a step from the origin; signals extend
	// one ring further, covering the downtown height band.
	centralBound := halfStep
	majorBound := float32(g.cfg.Buildings.CentralThreshold) + halfStep

	for _, lx := range lines {
		for _, lz := range lines {
			g.layout.Lamps = append(g.layout.Lamps, Lamp{X: lx + lampOff, Z: lz + lampOff})

			if abs32(lx) <= centralBound && abs32(lz) <= centralBound {
				// One zebra on each arm of the intersection.
				g.layout.Crosswalks = append(g.layout.Crosswalks,
					Crosswalk{X: lx, Z: lz - walkOff, AlongZ: false},
					Crosswalk{X: lx, Z: lz + walkOff, AlongZ: false},
					Crosswalk{X: lx - walkOff, Z: lz, AlongZ: true},
					Crosswalk{X: lx + walkOff, Z: lz, AlongZ: true},
				)
			}

			if abs32(lx) <= majorBound && abs32(lz) <= majorBound {
				g.layout.Signals = append(g.layout.Signals, SignalSpot{
					X: lx + roadHalf + 0.8,
					Z: lz + roadHalf + 0.8,
				})
			}
		}
	}
}

// placeSigns pins the landmark-bound signs first and then scatters the
// remaining kinds along the roadsides so every kind appears at least twice.
func (g *generator) placeSigns() {
	roadHalf := float32(g.cfg.World.RoadHalfWidth)
	lm := g.cfg.Landmarks
	off := roadHalf + signOffset

	// School zone signs flank the school, plates facing the road south of it.
	schoolX := float32(lm.SchoolCell[0])
	schoolZ := float32(lm.SchoolCell[1])
	schoolRoadZ := g.nearestLine(schoolZ - float32(g.cfg.World.GridStep)/2)
	for _, dx := range []float32{-10, 10} {
		g.layout.Signs = append(g.layout.Signs, SignSpot{
			X: schoolX + dx, Z: schoolRoadZ + off,
			Kind: components.SignSchoolZone, Facing: normalizeHeading(-math.Pi / 2),
		})
	}

	// Crosswalk signs at two opposite central intersections.
	halfStep := float32(g.cfg.World.GridStep) / 2
	for _, corner := range [][2]float32{{-halfStep, -halfStep}, {halfStep, halfStep}} {
		g.layout.Signs = append(g.layout.Signs, SignSpot{
			X: corner[0] + off, Z: corner[1] + off + 4,
			Kind: components.SignCrosswalk, Facing: normalizeHeading(math.Pi),
		})
	}

	// Remaining kinds go round-robin onto outer-ring roadside spots.
	kinds := []components.SignKind{
		components.SignStop, components.SignYield, components.SignSpeedLimit,
		components.SignNoEntry, components.SignMainRoad, components.SignDeadEnd,
	}
	lines := g.cfg.Derived.RoadLines
	outer := []float32{lines[1], lines[len(lines)-2]}
	spot := 0
	for _, lx := range outer {
		for _, lz := range lines[1 : len(lines)-1] {
			if spot >= 2*len(kinds) {
				return
			}
			jitter := float32(g.rng.Float64()*6 + 3)
			g.layout.Signs = append(g.layout.Signs, SignSpot{
				X: lx + off, Z: lz + jitter,
				Kind: kinds[spot%len(kinds)], Facing: normalizeHeading(math.Pi),
			})
			spot++
		}
	}
}

// nearestLine snaps a coordinate to the closest road stripe center.
func (g *generator) nearestLine(coord float32) float32 {
	lines := g.cfg.Derived.RoadLines
	best := lines[0]
	for _, line := range lines[1:] {
		if abs32(coord-line) < abs32(coord-best) {
			best = line
		}
	}
	return best
}
