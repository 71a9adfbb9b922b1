package sanitize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClampSaturates(t *testing.T) {
	assert.Equal(t, 500.0, Clamp(9999, -500, 500))
	assert.Equal(t, -500.0, Clamp(-9999, -500, 500))
	assert.Equal(t, 12.5, Clamp(12.5, -500, 500))
}

func TestClampNonFiniteIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(math.NaN(), -1, 1))
	assert.Equal(t, 0.0, Clamp(math.Inf(1), -1, 1))
	assert.Equal(t, 0.0, Clamp(math.Inf(-1), -1, 1))
}

func TestClampProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(-1e6, 0).Draw(t, "lo")
		hi := rapid.Float64Range(0, 1e6).Draw(t, "hi")
		v := rapid.Float64().Draw(t, "v")

		got := Clamp(v, lo, hi)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if got != 0 {
				t.Fatalf("Clamp(%v) = %v, want 0", v, got)
			}
			return
		}
		if got < lo || got > hi {
			t.Fatalf("Clamp(%v, %v, %v) = %v out of range", v, lo, hi, got)
		}
		if v >= lo && v <= hi && got != v {
			t.Fatalf("in-range value changed: %v -> %v", v, got)
		}
	})
}

func TestPoseAxisBounds(t *testing.T) {
	x, y, z, ry := Pose(9999, -9999, -600, 100)
	assert.Equal(t, HorizontalLimit, x)
	assert.Equal(t, -VerticalLimit, y)
	assert.Equal(t, -HorizontalLimit, z)
	assert.Equal(t, YawLimit, ry)

	x, y, z, ry = Pose(math.NaN(), 3, 4, -1)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 3.0, y)
	assert.Equal(t, 4.0, z)
	assert.Equal(t, -1.0, ry)
}
