package system

import (
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/physics"
)

// LocomotionSystem integrates the avatar from the frame's input axis
// Inert while the transition sequencer owns the avatar
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (s *LocomotionSystem) Name() string {
	return "locomotion"
}

func (s *LocomotionSystem) Priority() int {
	return parameter.PriorityLocomotion
}

func (s *LocomotionSystem) Update(sess *engine.Session, dt float64) {
	if sess.Transition.Phase.Traveling() {
		return
	}

	lp := sess.Profile.Locomotion
	dist := physics.Integrate(&sess.Avatar, sess.Input.AxisX, sess.Input.AxisZ, dt, physics.LocomotionProfile{
		MaxSpeed:      lp.MaxSpeed,
		Rate:          lp.Rate,
		IdleThreshold: lp.IdleThreshold,
		RunThreshold:  lp.RunThreshold,
		FacingRate:    lp.FacingRate,
		FacingOffset:  lp.FacingOffset,
		Bounds:        sess.Bounds,
	})

	if sess.Avatar.Mode == core.ModeIdle {
		sess.Audio.FootstepReset()
		return
	}
	sess.Audio.Footstep(dist)
}
