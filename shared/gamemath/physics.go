package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// ApplyDrag reduces the magnitude of v by drag. A vector no longer than drag
// is zeroed outright rather than left to creep toward zero.
func ApplyDrag(v mgl64.Vec3, drag float64) mgl64.Vec3 {
	speed := v.Len()
	if speed > drag {
		return v.Sub(v.Mul(drag / speed))
	}
	return mgl64.Vec3{}
}

// ClampMagnitude scales v down so its length is at most max.
func ClampMagnitude(v mgl64.Vec3, max float64) mgl64.Vec3 {
	speed := v.Len()
	if speed > max && speed > 0 {
		return v.Mul(max / speed)
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lateral drops the vertical component of v.
func Lateral(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// SafeNormalize projects v onto the ground plane and normalizes it. When the
// projection has no length, fallback is returned with ok set to false.
func SafeNormalize(v, fallback mgl64.Vec3) (n mgl64.Vec3, ok bool) {
	lat := Lateral(v)
	l := lat.Len()
	if l < 1e-9 {
		return fallback, false
	}
	return lat.Mul(1 / l), true
}

// Lerp2 moves a toward b by t.
func Lerp2(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
