package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}

// Clamp01 restricts v to [0, 1]
func Clamp01(v float64) float64 {
	return mgl64.Clamp(v, 0, 1)
}

// Lerp interpolates linearly between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Damp returns the per-frame blend factor for an exponential follow: min(1, dt*rate)
// Frame-rate independent for small dt; saturates to a snap on large dt
func Damp(dt, rate float64) float64 {
	f := dt * rate
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// Approach moves current toward target by the damped factor
func Approach(current, target, dt, rate float64) float64 {
	return current + (target-current)*Damp(dt, rate)
}

// SafeDelta sanitizes a host frame delta in seconds
// NaN, Inf and non-positive values collapse to 0, spikes clamp to max
func SafeDelta(dt, max float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

// WrapAngle normalizes radians into [-π, π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// ApproachAngle rotates current toward target along the shortest arc
func ApproachAngle(current, target, dt, rate float64) float64 {
	diff := WrapAngle(target - current)
	return current + diff*Damp(dt, rate)
}

// EaseInOutPull is the travel ease: quadratic in, cubic out
// p<0.5: 2p², else 1-(-2p+2)³/2
func EaseInOutPull(p float64) float64 {
	p = Clamp01(p)
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}
