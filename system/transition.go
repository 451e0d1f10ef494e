package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/vmath"
)

// TransitionSystem sequences travel: Pulling, ClosingDoor, Navigating, back to Idle
// Once Pulling starts the run always completes and navigates exactly once
type TransitionSystem struct{}

func NewTransitionSystem() *TransitionSystem {
	return &TransitionSystem{}
}

func (s *TransitionSystem) Name() string {
	return "transition"
}

func (s *TransitionSystem) Priority() int {
	return parameter.PriorityTransition
}

func (s *TransitionSystem) Update(sess *engine.Session, dt float64) {
	switch sess.Transition.Phase {
	case engine.PhaseIdle:
		if sess.Input.Confirm {
			s.begin(sess)
		}
	case engine.PhasePulling:
		s.pull(sess, dt)
	case engine.PhaseClosingDoor:
		s.dwell(sess, dt)
	case engine.PhaseNavigating:
		s.finish(sess)
	}
}

// begin arms the sequencer; the avatar is left to locomotion for the rest of this frame
func (s *TransitionSystem) begin(sess *engine.Session) {
	if !sess.UI.PanelOpen {
		return
	}
	target := sess.Objects[sess.UI.PanelObject]
	if !target.State.Revealing() || target.TargetOpen < 1 {
		return
	}
	entry := target.ActiveEntry()
	if entry == nil {
		return
	}

	tp := sess.Profile.Transition
	t := &sess.Transition
	*t = engine.TransitionState{
		Phase:          t.Phase,
		StartPosition:  sess.Avatar.Position,
		TargetPosition: mgl64.Vec3{target.Position.X(), tp.TravelHeight, target.Position.Y()},
		Target:         target,
		Entry:          entry,
	}
	sess.SetPhase(engine.PhasePulling)
	sess.Tour.Active = false

	sess.Audio.TravelBegin()
	sess.ClosePanel()
	sess.SetPrompt("")
	sess.SetStatus("Entering: " + entry.Title)
	sess.Logger.Info("travel started", "object", target.ID, "destination", entry.Destination)
}

func (s *TransitionSystem) pull(sess *engine.Session, dt float64) {
	tp := sess.Profile.Transition
	t := &sess.Transition
	a := &sess.Avatar

	t.Elapsed += dt
	t.Progress = vmath.Clamp01(t.Elapsed / tp.PullDuration)
	t.Eased = vmath.EaseInOutPull(t.Progress)

	a.Position = vmath.LerpV3(t.StartPosition, t.TargetPosition, t.Eased)
	a.Velocity = mgl64.Vec3{}
	a.Mode = core.ModeIdle
	a.Scale = math.Max(tp.ScaleFloor, 1-t.Eased*tp.ScaleShrink)
	a.Facing = vmath.WrapAngle(a.Facing + dt*tp.SpinRate*t.Eased)

	ip := sess.Profile.Interaction
	t.Target.Glow = math.Max(t.Target.Glow, ip.GlowBase+t.Eased*tp.PullGlowGain)
	t.Target.Light = math.Max(t.Target.Light, ip.LightBase+t.Eased*tp.PullLightGain)

	if t.Progress >= 1 {
		a.Visible = false
		t.Target.TargetOpen = 0
		t.Dwell = 0
		sess.SetPhase(engine.PhaseClosingDoor)
	}
}

func (s *TransitionSystem) dwell(sess *engine.Session, dt float64) {
	t := &sess.Transition
	t.Target.TargetOpen = 0
	t.Dwell += dt
	if t.Dwell < sess.Profile.Transition.DwellDuration {
		return
	}

	sess.SetPhase(engine.PhaseNavigating)
	sess.Navigator.NavigateTo(t.Entry.Destination)
	sess.RecordNavigation()
	sess.Logger.Info("navigated", "destination", t.Entry.Destination)
	s.finish(sess)
}

// finish restores the avatar where travel began and returns control to locomotion
func (s *TransitionSystem) finish(sess *engine.Session) {
	t := &sess.Transition
	a := &sess.Avatar

	a.Position = t.StartPosition
	a.Velocity = mgl64.Vec3{}
	a.Mode = core.ModeIdle
	a.Scale = 1
	a.Visible = true

	if t.Target != nil && t.Target.Console != nil {
		t.Target.Console.Selected = -1
	}
	sess.ResetInput()

	*t = engine.TransitionState{Phase: t.Phase}
	sess.SetPhase(engine.PhaseIdle)
}
