package input

import (
	"fmt"
	"strings"
)

// actionRegistry maps keymap action names to bindings
// Used by LoadKeyConfig to resolve config strings
var actionRegistry map[string]Binding

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]Binding {
	r := map[string]Binding{
		// Unbind sentinel
		"none": {},

		"quit":        {Intent: IntentQuit},
		"mute_toggle": {Intent: IntentMuteToggle},
		"hud_toggle":  {Intent: IntentHUDToggle},

		"move_forward": {Intent: IntentMove, DZ: -1},
		"move_back":    {Intent: IntentMove, DZ: 1},
		"move_left":    {Intent: IntentMove, DX: -1},
		"move_right":   {Intent: IntentMove, DX: 1},

		"confirm":     {Intent: IntentConfirm},
		"cancel":      {Intent: IntentCancel},
		"activate":    {Intent: IntentActivate},
		"tour_toggle": {Intent: IntentTourToggle},
	}
	for k := 1; k <= 9; k++ {
		r[fmt.Sprintf("select_%d", k)] = Binding{Intent: IntentSelect, Index: k - 1}
	}
	return r
}

// ActionBinding returns the binding for a canonical action name
func ActionBinding(name string) (Binding, bool) {
	b, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// ActionNames returns every known action name, unordered
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
