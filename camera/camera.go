// Package camera provides the first-person view and the minimap projection.
package camera

import "math"

// Pitch limits keep the look vector off the exact poles, where the
// horizontal basis would collapse.
const (
	maxPitch = 1.5
	minPitch = -1.5
)

// FirstPerson is a yaw/pitch look controller anchored at the walker's eye.
// Yaw 0 faces +z and grows clockwise seen from above; pitch is radians
// above the horizon.
type FirstPerson struct {
	X, Y, Z float32
	Yaw     float32
	Pitch   float32

	// Sensitivity converts mouse pixels to radians.
	Sensitivity float32
}

// NewFirstPerson creates a look controller at the given eye position.
func NewFirstPerson(x, y, z float32) *FirstPerson {
	return &FirstPerson{X: x, Y: y, Z: z, Sensitivity: 0.003}
}

// Look applies a mouse delta in pixels. Moving the mouse right turns right,
// moving it up looks up. Yaw wraps, pitch clamps.
func (c *FirstPerson) Look(dx, dy float32) {
	c.Yaw = wrapAngle(c.Yaw + dx*c.Sensitivity)
	c.Pitch = clamp(c.Pitch-dy*c.Sensitivity, minPitch, maxPitch)
}

// MoveTo pins the eye to a world position.
func (c *FirstPerson) MoveTo(x, y, z float32) {
	c.X, c.Y, c.Z = x, y, z
}

// Forward returns the unit look direction.
func (c *FirstPerson) Forward() (x, y, z float32) {
	sy, cy := sincos(c.Yaw)
	sp, cp := sincos(c.Pitch)
	return cp * sy, sp, cp * cy
}

// Right returns the unit strafe direction on the horizontal plane.
// Together with Forward and world up it forms a right-handed basis.
func (c *FirstPerson) Right() (x, y, z float32) {
	sy, cy := sincos(c.Yaw)
	return cy, 0, -sy
}

// Target returns the look-at point one unit ahead of the eye.
func (c *FirstPerson) Target() (x, y, z float32) {
	fx, fy, fz := c.Forward()
	return c.X + fx, c.Y + fy, c.Z + fz
}

// Minimap projects ground-plane world coordinates into a square screen
// rectangle, world center to rect center.
type Minimap struct {
	ScreenX, ScreenY float32 // Top-left corner of the rect in pixels
	Size             float32 // Square side in pixels
	WorldHalf        float32 // World half-extent mapped onto the rect
}

// NewMinimap creates a projection of the +-worldHalf square onto a screen
// rect of the given size.
func NewMinimap(screenX, screenY, size, worldHalf float32) *Minimap {
	return &Minimap{ScreenX: screenX, ScreenY: screenY, Size: size, WorldHalf: worldHalf}
}

// Project maps a world ground point to minimap pixels. North (-z) is up.
func (m *Minimap) Project(wx, wz float32) (sx, sy float32) {
	scale := m.Size / (2 * m.WorldHalf)
	sx = m.ScreenX + (wx+m.WorldHalf)*scale
	sy = m.ScreenY + (wz+m.WorldHalf)*scale
	return sx, sy
}

// Unproject maps minimap pixels back to the world ground plane.
func (m *Minimap) Unproject(sx, sy float32) (wx, wz float32) {
	scale := (2 * m.WorldHalf) / m.Size
	wx = (sx-m.ScreenX)*scale - m.WorldHalf
	wz = (sy-m.ScreenY)*scale - m.WorldHalf
	return wx, wz
}

// ScaleLen converts a world length to minimap pixels.
func (m *Minimap) ScaleLen(l float32) float32 {
	return l * m.Size / (2 * m.WorldHalf)
}

// OnMap reports whether a world point, padded by a world-units radius,
// falls inside the mapped square. Used to cull markers at the rim.
func (m *Minimap) OnMap(wx, wz, pad float32) bool {
	limit := m.WorldHalf + pad
	return absf(wx) <= limit && absf(wz) <= limit
}

// wrapAngle wraps an angle to [0, 2*Pi).
func wrapAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	r := float32(math.Mod(float64(a), twoPi))
	if r < 0 {
		r += twoPi
	}
	return r
}

// sincos returns sin and cos of a float32 angle.
func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
