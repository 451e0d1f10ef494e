package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/roam/core"
)

func testProfile() LocomotionProfile {
	return LocomotionProfile{
		MaxSpeed:      6.8,
		Rate:          9,
		IdleThreshold: 0.09,
		RunThreshold:  5.5,
		FacingRate:    9,
		Bounds:        core.Bounds{MinX: -4, MaxX: 4, MinZ: -100, MaxZ: 100},
	}
}

func TestIntegrateConverges(t *testing.T) {
	p := testProfile()
	p.Bounds = core.Bounds{MinX: -1000, MaxX: 1000, MinZ: -1000, MaxZ: 1000}
	inputs := [][2]float64{{1, 0}, {0, -1}, {0.6, 0.8}, {-0.3, 0.2}}

	for _, in := range inputs {
		a := core.NewAvatar(mgl64.Vec3{})
		for i := 0; i < 60; i++ {
			Integrate(&a, in[0], in[1], 1.0/60, p)
		}
		want := mgl64.Vec3{in[0] * p.MaxSpeed, 0, in[1] * p.MaxSpeed}
		errMag := a.Velocity.Sub(want).Len()
		assert.LessOrEqual(t, errMag, 0.01*want.Len(), "input %v", in)
	}
}

func TestIntegrateClampsToLane(t *testing.T) {
	p := testProfile()
	a := core.NewAvatar(mgl64.Vec3{})
	for elapsed := 0.0; elapsed < 2; elapsed += 0.016 {
		Integrate(&a, 1, 0, 0.016, p)
	}
	assert.Equal(t, 4.0, a.Position.X())
	assert.InDelta(t, 6.8, a.Velocity.X(), 0.01)
	assert.Equal(t, core.ModeRun, a.Mode)
}

func TestIntegrateZeroInputDecays(t *testing.T) {
	p := testProfile()
	a := core.NewAvatar(mgl64.Vec3{})
	a.Velocity = mgl64.Vec3{5, 0, 0}

	dist := Integrate(&a, 0, 0, 1.0/60, p)
	assert.Greater(t, a.Velocity.X(), 0.0, "velocity must not snap to zero")
	assert.Less(t, a.Velocity.X(), 5.0)
	assert.Greater(t, dist, 0.0)

	for i := 0; i < 120; i++ {
		Integrate(&a, 0, 0, 1.0/60, p)
	}
	assert.Equal(t, core.ModeIdle, a.Mode)
}

func TestIntegrateRenormalizesDiagonal(t *testing.T) {
	p := testProfile()
	p.Bounds = core.Bounds{MinX: -1000, MaxX: 1000, MinZ: -1000, MaxZ: 1000}
	a := core.NewAvatar(mgl64.Vec3{})
	for i := 0; i < 600; i++ {
		Integrate(&a, 1, 1, 1.0/60, p)
	}
	assert.InDelta(t, p.MaxSpeed, a.Velocity.Len(), 1e-6)
}

func TestIntegrateFacingFollowsHeading(t *testing.T) {
	p := testProfile()
	a := core.NewAvatar(mgl64.Vec3{})
	for i := 0; i < 120; i++ {
		Integrate(&a, 1, 0, 1.0/60, p)
	}
	assert.InDelta(t, math.Pi/2, a.Facing, 1e-3)
}

func TestIntegrateZeroDelta(t *testing.T) {
	a := core.NewAvatar(mgl64.Vec3{1, 0, 1})
	assert.Equal(t, 0.0, Integrate(&a, 1, 0, 0, testProfile()))
	assert.Equal(t, mgl64.Vec3{1, 0, 1}, a.Position)
}

func TestGait(t *testing.T) {
	assert.Equal(t, core.ModeIdle, Gait(mgl64.Vec3{0.05, 0, 0.04}, 0.09, 5.5))
	assert.Equal(t, core.ModeWalk, Gait(mgl64.Vec3{0.05, 0, 0.05}, 0.09, 5.5))
	assert.Equal(t, core.ModeWalk, Gait(mgl64.Vec3{5.5, 0, 0}, 0.09, 5.5))
	assert.Equal(t, core.ModeRun, Gait(mgl64.Vec3{3, 0, -3}, 0.09, 5.5))
}

func TestResolvePushesOut(t *testing.T) {
	bounds := core.Bounds{MinX: -50, MaxX: 50, MinZ: -50, MaxZ: 50}
	obstacles := []core.Obstacle{{Center: mgl64.Vec2{0, 0}, Radius: 6.6}}
	a := core.NewAvatar(mgl64.Vec3{1, 0, 3})
	a.Velocity = mgl64.Vec3{0, 0, -5}

	hits := ResolveObstacles(&a, 0.7, obstacles, bounds)
	require.Equal(t, 1, hits)

	d := math.Hypot(a.Position.X(), a.Position.Z())
	assert.InDelta(t, 7.3, d, 1e-9)

	n := mgl64.Vec2{a.Position.X(), a.Position.Z()}.Normalize()
	assert.GreaterOrEqual(t, mgl64.Vec2{a.Velocity.X(), a.Velocity.Z()}.Dot(n), -1e-9)
}

func TestResolvePreservesTangentialVelocity(t *testing.T) {
	bounds := core.Bounds{MinX: -50, MaxX: 50, MinZ: -50, MaxZ: 50}
	obstacles := []core.Obstacle{{Center: mgl64.Vec2{0, 0}, Radius: 1}}
	a := core.NewAvatar(mgl64.Vec3{0, 0, 1.5})
	a.Velocity = mgl64.Vec3{3, 0, -2}

	ResolveObstacles(&a, 0.7, obstacles, bounds)
	assert.Equal(t, 3.0, a.Velocity.X())
	assert.Equal(t, 0.0, a.Velocity.Z())
}

func TestResolveDegenerateCenter(t *testing.T) {
	bounds := core.Bounds{MinX: -50, MaxX: 50, MinZ: -50, MaxZ: 50}
	obstacles := []core.Obstacle{{Center: mgl64.Vec2{2, 2}, Radius: 1}}
	a := core.NewAvatar(mgl64.Vec3{2, 0, 2})

	ResolveObstacles(&a, 0.5, obstacles, bounds)
	assert.Equal(t, 2.0, a.Position.X())
	assert.InDelta(t, 3.5, a.Position.Z(), 1e-12)
	assert.False(t, math.IsNaN(a.Position.X()))
}

func TestResolveNeverInsideAfterPass(t *testing.T) {
	bounds := core.Bounds{MinX: -100, MaxX: 100, MinZ: -100, MaxZ: 100}
	obstacles := []core.Obstacle{
		{Center: mgl64.Vec2{-8, -14}, Radius: 2.5},
		{Center: mgl64.Vec2{8, -34}, Radius: 2.5},
		{Center: mgl64.Vec2{0, -6}, Radius: 6.6},
	}
	const eps = 1e-9
	for x := -12.0; x <= 12; x += 0.5 {
		for z := -40.0; z <= 4; z += 0.5 {
			a := core.NewAvatar(mgl64.Vec3{x, 0, z})
			ResolveObstacles(&a, 0.7, obstacles, bounds)
			for _, ob := range obstacles {
				d := math.Hypot(a.Position.X()-ob.Center.X(), a.Position.Z()-ob.Center.Y())
				require.GreaterOrEqual(t, d, ob.Radius+0.7-eps, "start (%v,%v)", x, z)
			}
		}
	}
}

func TestApproachObstacleStabilizes(t *testing.T) {
	p := testProfile()
	p.Bounds = core.Bounds{MinX: -50, MaxX: 50, MinZ: -50, MaxZ: 50}
	obstacles := []core.Obstacle{{Center: mgl64.Vec2{0, 0}, Radius: 6.6}}
	a := core.NewAvatar(mgl64.Vec3{0, 0, 20})

	for i := 0; i < 600; i++ {
		Integrate(&a, 0, -1, 1.0/60, p)
		ResolveObstacles(&a, 0.7, obstacles, p.Bounds)
		require.GreaterOrEqual(t, math.Hypot(a.Position.X(), a.Position.Z()), 7.3-1e-9)
	}
	assert.InDelta(t, 7.3, a.Position.Z(), 1e-6)
}
