package system

import (
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/status"
)

// RegisterAll installs the full frame pipeline on a session
// A nil registry gets a private one
func RegisterAll(sess *engine.Session, reg *status.Registry) {
	sess.AddSystem(NewTourSystem())
	sess.AddSystem(NewLocomotionSystem())
	sess.AddSystem(NewCollisionSystem())
	sess.AddSystem(NewInterestSystem())
	sess.AddSystem(NewInteractiveSystem())
	sess.AddSystem(NewTransitionSystem())
	sess.AddSystem(NewCameraSystem())
	if reg == nil {
		reg = status.NewRegistry()
	}
	sess.AddSystem(NewStatusSystem(reg))
}
