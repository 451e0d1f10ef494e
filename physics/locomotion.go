package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/vmath"
)

// LocomotionProfile is the subset of world tuning the integrator needs
type LocomotionProfile struct {
	MaxSpeed      float64
	Rate          float64 // k, 1/sec
	IdleThreshold float64
	RunThreshold  float64
	FacingRate    float64
	FacingOffset  float64
	Bounds        core.Bounds
}

// Integrate advances the avatar one step from a sanitized input axis
// Velocity approaches input*MaxSpeed with factor min(1, dt*k), so zero input decays and never snaps
// Returns the planar distance covered this step
func Integrate(a *core.AvatarState, inX, inZ, dt float64, p LocomotionProfile) float64 {
	if dt <= 0 {
		return 0
	}
	inX, inZ = vmath.ClampInput(inX, inZ)

	target := mgl64.Vec3{inX * p.MaxSpeed, 0, inZ * p.MaxSpeed}
	a.Velocity = vmath.ApproachV3(a.Velocity, target, dt, p.Rate)
	a.Velocity[1] = 0

	a.Position = p.Bounds.Clamp(a.Position.Add(a.Velocity.Mul(dt)))
	a.Mode = Gait(a.Velocity, p.IdleThreshold, p.RunThreshold)

	if a.Mode == core.ModeIdle {
		return 0
	}
	heading := math.Atan2(a.Velocity.X(), a.Velocity.Z()) + p.FacingOffset
	a.Facing = vmath.WrapAngle(vmath.ApproachAngle(a.Facing, heading, dt, p.FacingRate))

	return vmath.PlanarSpeed(a.Velocity) * dt
}

// Gait classifies |vx|+|vz| against the idle and run thresholds
func Gait(v mgl64.Vec3, idle, run float64) core.LocomotionMode {
	s := vmath.ManhattanSpeed(v)
	switch {
	case s <= idle:
		return core.ModeIdle
	case s > run:
		return core.ModeRun
	default:
		return core.ModeWalk
	}
}
