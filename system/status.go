package system

import (
	"sync/atomic"

	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/status"
	"github.com/lixenwraith/roam/vmath"
)

// StatusSystem refreshes the status line and hint, then publishes the HUD readout
// Runs last so it sees the final state of the frame
type StatusSystem struct {
	lastNear  int
	lastPanel bool

	frame    *atomic.Int64
	nearest  *atomic.Int64
	posX     *status.Float
	posZ     *status.Float
	speed    *status.Float
	openness *status.Float
	mode     *status.Text
	phase    *status.Text
	tour     *atomic.Bool
}

func NewStatusSystem(reg *status.Registry) *StatusSystem {
	return &StatusSystem{
		lastNear: -1,
		frame:    reg.Ints.Get("frame"),
		nearest:  reg.Ints.Get("nearest"),
		posX:     reg.Floats.Get("avatar.x"),
		posZ:     reg.Floats.Get("avatar.z"),
		speed:    reg.Floats.Get("avatar.speed"),
		openness: reg.Floats.Get("object.open"),
		mode:     reg.Texts.Get("avatar.mode"),
		phase:    reg.Texts.Get("phase"),
		tour:     reg.Bools.Get("tour"),
	}
}

func (s *StatusSystem) Name() string {
	return "status"
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) Update(sess *engine.Session, dt float64) {
	s.refreshStatusLine(sess)

	h := sess.Profile.Hints
	sess.UI.HintVisible = !(h.HideBeyond && sess.Avatar.Position.Z() < h.HideBelowZ)

	s.frame.Store(int64(sess.Frame()) + 1)
	s.nearest.Store(int64(sess.Interest.Nearest))
	s.posX.Set(sess.Avatar.Position.X())
	s.posZ.Set(sess.Avatar.Position.Z())
	s.speed.Set(vmath.PlanarSpeed(sess.Avatar.Velocity))
	s.mode.Set(sess.Avatar.Mode.String())
	s.phase.Set(sess.Transition.Phase.String())
	s.tour.Store(sess.Tour.Active)
	if sess.Interest.Nearest >= 0 {
		s.openness.Set(sess.Objects[sess.Interest.Nearest].OpenAmount)
	}
}

// refreshStatusLine rewrites the line only when the in-range object changes
// or a panel has just closed, so one-off messages stay visible
func (s *StatusSystem) refreshStatusLine(sess *engine.Session) {
	if sess.Transition.Phase.Traveling() {
		return
	}
	near := -1
	if sess.Interest.InRange {
		near = sess.Interest.Nearest
	}
	panel := sess.ActiveObject() >= 0
	changed := near != s.lastNear || (s.lastPanel && !panel)
	s.lastNear, s.lastPanel = near, panel
	if !changed || panel {
		return
	}

	if near < 0 {
		if idle := sess.Profile.Hints.IdleStatus; idle != "" {
			sess.SetStatus(idle)
		}
		return
	}
	o := sess.Objects[near]
	if o.Console != nil {
		sess.SetStatus("Near the holotable")
		return
	}
	sess.SetStatus("Near " + sess.Kind.String() + ": " + o.Entry.Title)
}
