package systems

import "math"

// Clamp functions for common value ranges

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a float32 value to the [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp interpolates between a and b by t in [0, 1].
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// normalizeHeading wraps a heading to [0, 2*Pi].
func normalizeHeading(h float32) float32 {
	const twoPi = 2 * math.Pi
	for h < 0 {
		h += twoPi
	}
	for h >= twoPi {
		h -= twoPi
	}
	return h
}

// Distance functions

// distanceSq returns the squared distance between two points in the horizontal plane.
func distanceSq(x1, z1, x2, z2 float32) float32 {
	dx := x1 - x2
	dz := z1 - z2
	return dx*dx + dz*dz
}

// abs32 returns the absolute value of a float32.
func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
