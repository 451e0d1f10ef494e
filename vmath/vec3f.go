package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Planar projects a world position onto the ground plane as (x, z)
func Planar(v mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{v.X(), v.Z()}
}

// FromPlanar lifts a ground-plane point to world space at height y
func FromPlanar(p mgl64.Vec2, y float64) mgl64.Vec3 {
	return mgl64.Vec3{p.X(), y, p.Y()}
}

// PlanarDistance returns the ground-plane distance between a world position and a planar point
func PlanarDistance(a mgl64.Vec3, b mgl64.Vec2) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Y())
}

// PlanarSpeed returns the ground-plane magnitude of a velocity
func PlanarSpeed(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// ManhattanSpeed is |vx|+|vz|, used for gait thresholds
func ManhattanSpeed(v mgl64.Vec3) float64 {
	return math.Abs(v.X()) + math.Abs(v.Z())
}

// LerpV3 interpolates component-wise, t is not clamped
func LerpV3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// ApproachV3 moves current toward target by the damped factor
func ApproachV3(current, target mgl64.Vec3, dt, rate float64) mgl64.Vec3 {
	return LerpV3(current, target, Damp(dt, rate))
}

// ClampInput renormalizes a 2D input axis whose magnitude exceeds 1
// Non-finite components are treated as 0
func ClampInput(x, z float64) (float64, float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		z = 0
	}
	x = Clamp(x, -1, 1)
	z = Clamp(z, -1, 1)
	if magSq := x*x + z*z; magSq > 1 {
		inv := 1 / math.Sqrt(magSq)
		x *= inv
		z *= inv
	}
	return x, z
}
