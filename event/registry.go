package event

var eventNames = map[EventType]string{
	EventAxis:       "axis",
	EventConfirm:    "confirm",
	EventCancel:     "cancel",
	EventActivate:   "activate",
	EventSelect:     "select",
	EventTourToggle: "tour_toggle",
}

// String names the event for logs
func (et EventType) String() string {
	if name, ok := eventNames[et]; ok {
		return name
	}
	return "unknown"
}
