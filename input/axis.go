package input

import "time"

// Terminals report presses and auto-repeats but never releases
// A held direction lives until no repeat arrives within the hold window
const (
	// DefaultInitialHold covers the auto-repeat delay before the first repeat
	DefaultInitialHold = 550 * time.Millisecond
	// DefaultRepeatHold covers the gap between repeats once they flow
	DefaultRepeatHold = 120 * time.Millisecond
)

// heldComponent is one axis direction with its expiry
type heldComponent struct {
	value   float64
	expires time.Time
	repeats int
}

func (h *heldComponent) press(v float64, now time.Time, initial, repeat time.Duration) {
	if h.value == v && now.Before(h.expires) {
		h.repeats++
		h.expires = now.Add(repeat)
		return
	}
	h.value = v
	h.repeats = 0
	h.expires = now.Add(initial)
}

func (h *heldComponent) expire(now time.Time) bool {
	if h.value != 0 && !now.Before(h.expires) {
		h.value = 0
		h.repeats = 0
		return true
	}
	return false
}

// Axis synthesizes a held 2D movement axis from key presses
// Not safe for concurrent use; owned by the host input loop
type Axis struct {
	x, z    heldComponent
	initial time.Duration
	repeat  time.Duration
}

func NewAxis(initial, repeat time.Duration) *Axis {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &Axis{initial: initial, repeat: repeat}
}

// Press registers a direction; zero components leave that axis untouched
func (a *Axis) Press(dx, dz float64, now time.Time) {
	if dx != 0 {
		a.x.press(dx, now, a.initial, a.repeat)
	}
	if dz != 0 {
		a.z.press(dz, now, a.initial, a.repeat)
	}
}

// Expire drops directions whose hold window elapsed, reports whether anything changed
func (a *Axis) Expire(now time.Time) bool {
	cx := a.x.expire(now)
	cz := a.z.expire(now)
	return cx || cz
}

// Release clears both directions immediately
func (a *Axis) Release() {
	a.x = heldComponent{}
	a.z = heldComponent{}
}

// Value returns the current (dx, dz)
func (a *Axis) Value() (float64, float64) {
	return a.x.value, a.z.value
}
