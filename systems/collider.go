package systems

// Collider is an axis-aligned box footprint on the ground plane.
// Movement only resolves in x/z, so height is not part of the collider.
type Collider struct {
	X, Z         float32 // Center
	HalfW, HalfD float32 // Half extents along x and z
}

// Contains reports whether the point, padded by pad on every side, overlaps
// the collider.
func (c Collider) Contains(x, z, pad float32) bool {
	return abs32(x-c.X) < c.HalfW+pad && abs32(z-c.Z) < c.HalfD+pad
}

// ColliderSet is the registry of solid footprints built during layout
// generation. Movement queries it every frame; a set is never mutated after
// generation finishes.
type ColliderSet struct {
	boxes []Collider
}

// NewColliderSet returns an empty registry.
func NewColliderSet() *ColliderSet {
	return &ColliderSet{}
}

// Add registers a collider. Colliders with non-positive extents are dropped,
// a degenerate box can never block and only slows the query loop.
func (cs *ColliderSet) Add(c Collider) {
	if c.HalfW <= 0 || c.HalfD <= 0 {
		return
	}
	cs.boxes = append(cs.boxes, c)
}

// AddBox registers a collider from center and full width/depth.
func (cs *ColliderSet) AddBox(x, z, width, depth float32) {
	cs.Add(Collider{X: x, Z: z, HalfW: width / 2, HalfD: depth / 2})
}

// HitAny reports whether the padded point overlaps any registered collider.
func (cs *ColliderSet) HitAny(x, z, pad float32) bool {
	for _, c := range cs.boxes {
		if c.Contains(x, z, pad) {
			return true
		}
	}
	return false
}

// All returns the registered colliders. The slice is shared, callers must
// not mutate it.
func (cs *ColliderSet) All() []Collider {
	return cs.boxes
}

// Len returns the number of registered colliders.
func (cs *ColliderSet) Len() int {
	return len(cs.boxes)
}
