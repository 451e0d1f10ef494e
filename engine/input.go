package engine

import (
	"github.com/lixenwraith/roam/event"
	"github.com/lixenwraith/roam/vmath"
)

// InputSample is the debounced input for one frame
// Axis persists across frames until the host sets it again, the flags are edges
type InputSample struct {
	AxisX, AxisZ float64
	ManualAxis   bool // a non-zero axis arrived this frame
	Confirm      bool
	Cancel       bool
	Activate     bool
	TourToggle   bool
	Select       int // -1 when no entry was picked
}

// SetAxis sets the movement axis; each component in [-1, 1]
func (s *Session) SetAxis(dx, dz float64) {
	s.queue.Push(event.GameEvent{Type: event.EventAxis, Payload: event.AxisPayload{X: dx, Z: dz}})
}

func (s *Session) ConfirmPressed() {
	s.queue.Push(event.GameEvent{Type: event.EventConfirm})
}

func (s *Session) CancelPressed() {
	s.queue.Push(event.GameEvent{Type: event.EventCancel})
}

func (s *Session) ActivatePressed() {
	s.queue.Push(event.GameEvent{Type: event.EventActivate})
}

// SelectEntry picks entry k of an open console list
func (s *Session) SelectEntry(k int) {
	s.queue.Push(event.GameEvent{Type: event.EventSelect, Payload: event.SelectPayload{Index: k}})
}

func (s *Session) ToggleTour() {
	s.queue.Push(event.GameEvent{Type: event.EventTourToggle})
}

// foldInput drains the queue once and folds the burst into s.Input
// While traveling the burst is discarded and the axis reads as zero
func (s *Session) foldInput() {
	s.eventBuf = s.queue.Drain(s.eventBuf[:0])

	in := InputSample{Select: -1}
	traveling := s.Transition.Phase.Traveling()

	for _, ev := range s.eventBuf {
		if traveling {
			continue
		}
		switch ev.Type {
		case event.EventAxis:
			p, ok := ev.Payload.(event.AxisPayload)
			if !ok {
				s.Logger.Debug("malformed input event", "event", ev.Type)
				continue
			}
			s.axisX, s.axisZ = vmath.ClampInput(p.X, p.Z)
			if s.axisX != 0 || s.axisZ != 0 {
				in.ManualAxis = true
			}
		case event.EventConfirm:
			in.Confirm = true
		case event.EventCancel:
			in.Cancel = true
		case event.EventActivate:
			in.Activate = true
		case event.EventSelect:
			if p, ok := ev.Payload.(event.SelectPayload); ok {
				in.Select = p.Index
			}
		case event.EventTourToggle:
			in.TourToggle = !in.TourToggle
		}
	}

	if !traveling {
		in.AxisX, in.AxisZ = s.axisX, s.axisZ
	}
	s.Input = in
}

// ResetInput forgets the held axis, used when control returns after travel
func (s *Session) ResetInput() {
	s.axisX, s.axisZ = 0, 0
	s.Input = InputSample{Select: -1}
}
