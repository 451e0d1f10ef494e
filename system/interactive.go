package system

import (
	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
)

// InteractiveSystem applies activation input and advances every object's reveal
type InteractiveSystem struct{}

func NewInteractiveSystem() *InteractiveSystem {
	return &InteractiveSystem{}
}

func (s *InteractiveSystem) Name() string {
	return "interactive"
}

func (s *InteractiveSystem) Priority() int {
	return parameter.PriorityInteractive
}

func (s *InteractiveSystem) Update(sess *engine.Session, dt float64) {
	if !sess.Transition.Phase.Traveling() {
		s.applyInput(sess)
	}

	ip := sess.Profile.Interaction
	for i, o := range sess.Objects {
		prev := o.Advance(dt, ip.OpenRate, ip.Epsilon)
		if o.State != prev {
			switch o.State {
			case component.StateOpening:
				sess.OpenPanelFor(i)
				sess.Audio.ObjectOpen()
			case component.StateClosing:
				sess.Audio.ObjectClose()
				sess.ClosePanelFor(i)
			}
		}
		o.Glow = ip.GlowBase + o.OpenAmount*ip.GlowGain
		o.Light = ip.LightBase + o.OpenAmount*ip.LightGain
	}
}

func (s *InteractiveSystem) applyInput(sess *engine.Session) {
	in := sess.Input

	// Cancel hides the panel in the same frame, the object closes behind it
	if in.Cancel {
		switch {
		case sess.UI.ListObject >= 0:
			i := sess.UI.ListObject
			if sess.Objects[i].TargetOpen > 0 {
				sess.CloseList()
			} else {
				sess.Deactivate(i)
			}
		case sess.UI.PanelOpen:
			i := sess.UI.PanelObject
			sess.Deactivate(i)
			sess.ClosePanelFor(i)
		default:
			for i, o := range sess.Objects {
				if o.TargetOpen > 0 {
					sess.Deactivate(i)
					sess.ClosePanelFor(i)
				}
			}
		}
	}

	if in.Select >= 0 {
		if i := s.selectTarget(sess); i >= 0 {
			sess.Select(i, in.Select)
		}
	}

	if in.Activate && sess.Interest.InRange {
		i := sess.Interest.Nearest
		o := sess.Objects[i]
		alreadyActive := o.TargetOpen > 0 && o.Console == nil
		listShowing := o.Console != nil && o.Console.ListOpen
		if !alreadyActive && !listShowing {
			sess.Activate(i)
		}
	}
}

// selectTarget is the console with an open list, else a projecting console
func (s *InteractiveSystem) selectTarget(sess *engine.Session) int {
	if sess.UI.ListObject >= 0 {
		return sess.UI.ListObject
	}
	if sess.UI.PanelOpen {
		if o := sess.Objects[sess.UI.PanelObject]; o.Console != nil {
			return sess.UI.PanelObject
		}
	}
	return -1
}
