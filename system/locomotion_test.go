package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
)

func TestLocomotionScenarioClampsAtBound(t *testing.T) {
	f := newFixture(t, testDoors(1), func(c *engine.Config) {
		c.Profile.Locomotion.MaxSpeed = 6.8
		c.Bounds = core.Bounds{MinX: -4, MaxX: 4, MinZ: -40, MaxZ: 40}
		c.AvatarStart = mgl64.Vec3{}
	})
	f.sess.SetAxis(1, 0)
	for elapsed := 0.0; elapsed < 2; elapsed += 0.016 {
		f.sess.Step(0.016)
	}
	assert.Equal(t, 4.0, f.sess.Avatar.Position.X())
	assert.InDelta(t, 6.8, f.sess.Avatar.Velocity.X(), 0.01)
}

func TestLocomotionFootsteps(t *testing.T) {
	f := newFixture(t, testDoors(1), nil)
	f.sess.SetAxis(0, -1)
	f.run(0.5)
	assert.Greater(t, f.rec.Footsteps, 1.0)

	f.sess.SetAxis(0, 0)
	f.run(2)
	assert.Equal(t, core.ModeIdle, f.sess.Avatar.Mode)
	assert.Equal(t, 0.0, f.rec.Footsteps, "idle resets the stride")
}

func TestLocomotionGatedWhileTraveling(t *testing.T) {
	f := newFixture(t, testDoors(1), nil)
	f.sess.Transition.Phase = engine.PhasePulling
	before := f.sess.Avatar.Position

	f.sess.Avatar.Velocity = mgl64.Vec3{3, 0, 0}
	NewLocomotionSystem().Update(f.sess, frame)
	NewCollisionSystem().Update(f.sess, frame)
	assert.Equal(t, before, f.sess.Avatar.Position)
}

func TestLocomotionSpikeDeltaIsClamped(t *testing.T) {
	f := newFixture(t, testDoors(1), func(c *engine.Config) {
		c.AvatarStart = mgl64.Vec3{}
	})
	f.sess.SetAxis(0, -1)
	f.sess.Step(5) // tab resume
	// One clamped step moves at most maxSpeed * MaxFrameDelta
	assert.LessOrEqual(t, -f.sess.Avatar.Position.Z(), f.sess.Profile.Locomotion.MaxSpeed*0.05+1e-9)
}
