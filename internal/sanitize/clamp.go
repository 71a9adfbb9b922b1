// Package sanitize bounds client-supplied numbers before they reach room state.
package sanitize

import "math"

// Per-axis bounds applied to every move.
const (
	HorizontalLimit = 500.0
	VerticalLimit   = 50.0
	YawLimit        = 4 * math.Pi
)

// Clamp saturates v into [lo, hi]. NaN and infinities map to 0.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Pose clamps a raw position and yaw to the world bounds.
func Pose(x, y, z, ry float64) (float64, float64, float64, float64) {
	return Clamp(x, -HorizontalLimit, HorizontalLimit),
		Clamp(y, -VerticalLimit, VerticalLimit),
		Clamp(z, -HorizontalLimit, HorizontalLimit),
		Clamp(ry, -YawLimit, YawLimit)
}
