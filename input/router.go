package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Target receives session-level input, satisfied by *engine.Session
type Target interface {
	SetAxis(dx, dz float64)
	ConfirmPressed()
	CancelPressed()
	ActivatePressed()
	SelectEntry(k int)
	ToggleTour()
}

// Router turns tcell key events into session calls
// Host intents (quit, mute, HUD) are returned for the caller to act on
type Router struct {
	keys   *KeyTable
	target Target
	axis   *Axis

	sentX, sentZ float64
}

func NewRouter(keys *KeyTable, target Target, axis *Axis) *Router {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if axis == nil {
		axis = NewAxis(0, 0)
	}
	return &Router{keys: keys, target: target, axis: axis}
}

// HandleKey dispatches one key press and returns its intent
// Unbound keys return IntentNone
func (r *Router) HandleKey(ev *tcell.EventKey, now time.Time) Intent {
	b, ok := r.keys.Lookup(ev)
	if !ok {
		return IntentNone
	}

	switch b.Intent {
	case IntentMove:
		r.axis.Press(b.DX, b.DZ, now)
		r.flushAxis()
	case IntentConfirm:
		r.target.ConfirmPressed()
	case IntentCancel:
		r.target.CancelPressed()
	case IntentActivate:
		r.target.ActivatePressed()
	case IntentSelect:
		r.target.SelectEntry(b.Index)
	case IntentTourToggle:
		r.target.ToggleTour()
	}
	return b.Intent
}

// Tick expires held directions, call once per host frame
func (r *Router) Tick(now time.Time) {
	if r.axis.Expire(now) {
		r.flushAxis()
	}
}

// Release stops all movement, used on focus loss and suspend
func (r *Router) Release() {
	r.axis.Release()
	r.flushAxis()
}

// Resync re-sends a held axis after the target dropped its own copy
// The session zeroes its axis when travel ends, so a key still held must be sent again
func (r *Router) Resync() {
	r.sentX, r.sentZ = 0, 0
	r.flushAxis()
}

// flushAxis forwards the axis only when it differs from what the target last saw
func (r *Router) flushAxis() {
	x, z := r.axis.Value()
	if x == r.sentX && z == r.sentZ {
		return
	}
	r.sentX, r.sentZ = x, z
	r.target.SetAxis(x, z)
}
