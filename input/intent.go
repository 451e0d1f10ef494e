package input

// Intent is the semantic action a key resolves to
type Intent uint8

const (
	IntentNone Intent = iota

	// Host-level intents, returned to the caller
	IntentQuit
	IntentMuteToggle
	IntentHUDToggle

	// Session intents, forwarded to the Target
	IntentMove
	IntentConfirm
	IntentCancel
	IntentActivate
	IntentSelect
	IntentTourToggle
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentMuteToggle: "mute_toggle",
	IntentHUDToggle:  "hud_toggle",
	IntentMove:       "move",
	IntentConfirm:    "confirm",
	IntentCancel:     "cancel",
	IntentActivate:   "activate",
	IntentSelect:     "select",
	IntentTourToggle: "tour_toggle",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Host reports whether the intent is handled by the host loop rather than the session
func (i Intent) Host() bool {
	return i == IntentQuit || i == IntentMuteToggle || i == IntentHUDToggle
}

// Binding is what a single key press does
// DX/DZ apply to IntentMove, Index to IntentSelect
type Binding struct {
	Intent Intent
	DX, DZ float64
	Index  int
}
