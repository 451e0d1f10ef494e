package system

import (
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/physics"
)

// CollisionSystem keeps the avatar outside every static circle
type CollisionSystem struct {
	hits uint64
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(sess *engine.Session, dt float64) {
	if sess.Transition.Phase.Traveling() || len(sess.Obstacles) == 0 {
		return
	}
	n := physics.ResolveObstacles(&sess.Avatar, sess.Profile.Locomotion.AvatarRadius, sess.Obstacles, sess.Bounds)
	s.hits += uint64(n)
}

// Hits is the number of obstacle contacts resolved so far
func (s *CollisionSystem) Hits() uint64 {
	return s.hits
}
