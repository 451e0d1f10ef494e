package event

// EventType represents the type of host input event
type EventType int

const (
	// EventAxis sets the movement axis, last writer in a frame wins
	// Trigger: Host key/pointer handler
	// Consumer: Session input fold | Payload: AxisPayload
	EventAxis EventType = iota + 1

	// EventConfirm requests travel through the open object
	// Trigger: Enter / panel link
	// Consumer: TransitionSystem | Payload: nil
	EventConfirm

	// EventCancel dismisses the open panel or list
	// Trigger: Escape
	// Consumer: InteractiveSystem | Payload: nil
	EventCancel

	// EventActivate opens the nearest in-range object
	// Trigger: Space / E
	// Consumer: InteractiveSystem | Payload: nil
	EventActivate

	// EventSelect picks an entry from an open console list
	// Trigger: Digit keys while a list is showing
	// Consumer: InteractiveSystem | Payload: SelectPayload
	EventSelect

	// EventTourToggle starts or stops the auto-walk patrol
	// Trigger: T
	// Consumer: TourSystem | Payload: nil
	EventTourToggle
)

// GameEvent is a single queued host input
type GameEvent struct {
	Type    EventType
	Payload any
}

// AxisPayload carries a raw movement axis, sanitized on fold
type AxisPayload struct {
	X float64
	Z float64
}

// SelectPayload carries a console list index
type SelectPayload struct {
	Index int
}
