package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func IsFiniteV3(v mgl64.Vec3) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// NormalizeV3 returns zero vector for zero-length input instead of NaNs
func NormalizeV3(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || !IsFinite(l) {
		return mgl64.Vec3{}
	}
	return v.Mul(1.0 / l)
}

// ZUpToYUp converts right-handed Z-up coordinates to right-handed Y-up
func ZUpToYUp(x, y, z float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(x), -float64(z), -float64(y)}
}

func V3ToF32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func IsFiniteF32V3(v [3]float32) bool {
	return IsFinite(float64(v[0])) && IsFinite(float64(v[1])) && IsFinite(float64(v[2]))
}
