package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/vmath"
)

// TourSystem walks the avatar from object to object while the patrol is on
// Runs before locomotion and replaces the frame's input axis
type TourSystem struct{}

func NewTourSystem() *TourSystem {
	return &TourSystem{}
}

func (s *TourSystem) Name() string {
	return "tour"
}

func (s *TourSystem) Priority() int {
	return parameter.PriorityTour
}

func (s *TourSystem) Update(sess *engine.Session, dt float64) {
	tp := sess.Profile.Tour
	if !tp.Available || len(sess.Objects) == 0 {
		return
	}

	if sess.Input.TourToggle {
		s.set(sess, !sess.Tour.Active)
	}
	if sess.Input.ManualAxis && sess.Tour.Active {
		s.set(sess, false)
	}
	if !sess.Tour.Active || sess.ActiveObject() >= 0 || sess.Transition.Phase.Traveling() {
		return
	}

	idx := sess.Tour.Index % len(sess.Objects)
	spot := PatrolSpot(sess.Objects[idx].Position, tp)
	here := vmath.Planar(sess.Avatar.Position)
	to := spot.Sub(here)

	if to.Len() < tp.ArriveRadius {
		sess.Tour.Index = (idx + 1) % len(sess.Objects)
		return
	}
	dir := to.Normalize().Mul(tp.SpeedFactor)
	sess.Input.AxisX, sess.Input.AxisZ = dir.X(), dir.Y()
}

func (s *TourSystem) set(sess *engine.Session, active bool) {
	if sess.Tour.Active == active {
		return
	}
	sess.Tour.Active = active
	if active {
		sess.SetStatus("Tour started.")
	} else {
		sess.SetStatus("Tour stopped.")
	}
}

// PatrolSpot is where the tour stands to view an object: toward the lane center, a step in front
func PatrolSpot(obj mgl64.Vec2, tp parameter.TourProfile) mgl64.Vec2 {
	side := -tp.SideOffset
	if obj.X() < 0 {
		side = tp.SideOffset
	}
	return mgl64.Vec2{obj.X() + side, obj.Y() + tp.Forward}
}
