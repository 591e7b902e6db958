package systems

import "math"

const (
	treeHeightMin = 4.0
	treeHeightMax = 7.0
	treeCrownMin  = 1.2
	treeCrownMax  = 2.2
)

// placeTrees scatters decorative trees around every building with polar
// sampling. Placement is best effort: each tree gets a bounded number of
// attempts and a building simply ends up with fewer trees when the attempts
// run out. Trees never collide and are never planted on roads, on the
// parking lot, inside the clearance ring of any collider, or closer than
// the minimum spacing to another tree.
func (g *generator) placeTrees() {
	tc := g.cfg.Trees
	clearance := float32(tc.Clearance)
	maxRadius := float32(tc.MaxRadius)
	minSpacingSq := float32(tc.MinSpacing * tc.MinSpacing)

	for _, b := range g.layout.Buildings {
		inner := maxHalf(b.W, b.D) + clearance
		if inner >= maxRadius {
			continue // Sampling ring is empty for this footprint
		}

		target := g.rng.Intn(tc.MaxPerBuilding + 1)
		for t := 0; t < target; t++ {
			for a := 0; a < tc.Attempts; a++ {
				angle := g.rng.Float64() * 2 * math.Pi
				r := inner + float32(g.rng.Float64())*(maxRadius-inner)
				x := b.X + r*float32(math.Cos(angle))
				z := b.Z + r*float32(math.Sin(angle))

				if g.colliders.HitAny(x, z, clearance) {
					continue
				}
				if g.nearRoad(x, 0) || g.nearRoad(z, 0) {
					continue
				}
				if g.layout.Parking.Contains(x, z) {
					continue
				}
				if g.tooCloseToTree(x, z, minSpacingSq) {
					continue
				}

				g.layout.Trees = append(g.layout.Trees, Tree{
					X: x, Z: z,
					Height: treeHeightMin + float32(g.rng.Float64())*(treeHeightMax-treeHeightMin),
					Crown:  treeCrownMin + float32(g.rng.Float64())*(treeCrownMax-treeCrownMin),
				})
				break
			}
		}
	}
}

// tooCloseToTree reports whether the point violates the spacing rule
// against any already planted tree.
func (g *generator) tooCloseToTree(x, z, minSpacingSq float32) bool {
	for _, tr := range g.layout.Trees {
		if distanceSq(x, z, tr.X, tr.Z) < minSpacingSq {
			return true
		}
	}
	return false
}

// maxHalf returns the larger half extent of a footprint.
func maxHalf(w, d float32) float32 {
	if w > d {
		return w / 2
	}
	return d / 2
}
