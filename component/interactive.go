package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/vmath"
)

// Kind tags which decoration an Interactive carries
type Kind uint8

const (
	KindDoor Kind = iota
	KindConsole
	KindStatue
)

func (k Kind) String() string {
	switch k {
	case KindConsole:
		return "console"
	case KindStatue:
		return "statue"
	default:
		return "door"
	}
}

// OpenState is the explicit reveal state, recomputed once per frame
type OpenState uint8

const (
	StateClosed OpenState = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s OpenState) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Revealing reports Opening or Open
func (s OpenState) Revealing() bool {
	return s == StateOpening || s == StateOpen
}

// Hinge is the side a door swings from
type Hinge int8

const (
	HingeLeft  Hinge = -1
	HingeRight Hinge = 1
)

// DoorDecoration is the door-specific part of an Interactive
type DoorDecoration struct {
	Hinge Hinge
}

// ConsoleDecoration holds the projectable entry list
// Selected is -1 until an entry is chosen
type ConsoleDecoration struct {
	Entries  []*core.Entry
	Selected int
	ListOpen bool
}

// StatueDecoration is the plaque under a role statue
type StatueDecoration struct {
	Plaque string
}

// Interactive is one door, console or statue
// Set membership is fixed after world setup
type Interactive struct {
	ID       int
	Kind     Kind
	Position mgl64.Vec2 // (x, z)
	Radius   float64    // Collision radius, 0 for walk-through objects
	Entry    *core.Entry

	OpenAmount float64 // [0, 1]
	TargetOpen float64 // 0 or 1
	State      OpenState

	// Visual emphasis, derived each frame
	Halo  float64
	Glow  float64
	Light float64

	Door    *DoorDecoration
	Console *ConsoleDecoration
	Statue  *StatueDecoration
}

// NewDoor builds a closed door; hinge is taken from the side of the lane
func NewDoor(id int, pos mgl64.Vec2, entry *core.Entry) *Interactive {
	hinge := HingeRight
	if pos.X() < 0 {
		hinge = HingeLeft
	}
	return &Interactive{
		ID:       id,
		Kind:     KindDoor,
		Position: pos,
		Entry:    entry,
		Door:     &DoorDecoration{Hinge: hinge},
	}
}

// NewStatue builds a closed statue that blocks movement
func NewStatue(id int, pos mgl64.Vec2, radius float64, entry *core.Entry) *Interactive {
	return &Interactive{
		ID:       id,
		Kind:     KindStatue,
		Position: pos,
		Radius:   radius,
		Entry:    entry,
		Statue:   &StatueDecoration{Plaque: entry.Title},
	}
}

// NewConsole builds a holotable projecting any of entries
func NewConsole(id int, pos mgl64.Vec2, radius float64, entries []*core.Entry) *Interactive {
	return &Interactive{
		ID:       id,
		Kind:     KindConsole,
		Position: pos,
		Radius:   radius,
		Console:  &ConsoleDecoration{Entries: entries, Selected: -1},
	}
}

// ActiveEntry returns the entry revealed when the object opens
// A console reports its selection, nil before one is made
func (o *Interactive) ActiveEntry() *core.Entry {
	if o.Console != nil {
		c := o.Console
		if c.Selected < 0 || c.Selected >= len(c.Entries) {
			return nil
		}
		return c.Entries[c.Selected]
	}
	return o.Entry
}

// PromptText is shown while the object is the nearest in range
func (o *Interactive) PromptText() string {
	switch o.Kind {
	case KindConsole:
		return "Press E to use the holotable"
	default:
		if o.Entry == nil {
			return ""
		}
		return o.Entry.Title
	}
}

// Obstacle returns the collision circle and whether the object blocks at all
func (o *Interactive) Obstacle() (core.Obstacle, bool) {
	if o.Radius <= 0 {
		return core.Obstacle{}, false
	}
	return core.Obstacle{Center: o.Position, Radius: o.Radius}, true
}

// Advance smooths OpenAmount toward TargetOpen and recomputes State
// Returns the previous state so callers can react to entries into Opening/Closing
func (o *Interactive) Advance(dt, rate, epsilon float64) (prev OpenState) {
	prev = o.State
	o.OpenAmount = vmath.Clamp01(vmath.Approach(o.OpenAmount, o.TargetOpen, dt, rate))
	o.State = NextOpenState(o.State, o.TargetOpen, o.OpenAmount, epsilon)
	return prev
}

// NextOpenState applies threshold crossings only, so a value hovering at a
// threshold keeps its current state
func NextOpenState(cur OpenState, target, amount, epsilon float64) OpenState {
	wantOpen := target >= 0.5
	switch cur {
	case StateClosed:
		if wantOpen && amount > epsilon {
			return StateOpening
		}
	case StateOpening:
		if !wantOpen && amount < 1-epsilon {
			return StateClosing
		}
		if amount >= 1-epsilon {
			return StateOpen
		}
	case StateOpen:
		if !wantOpen && amount < 1-epsilon {
			return StateClosing
		}
	case StateClosing:
		if wantOpen {
			return StateOpening
		}
		if amount <= epsilon {
			return StateClosed
		}
	}
	return cur
}
