package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps tcell keys and runes to bindings
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]Binding

	// Printable runes, case-sensitive
	Runes map[rune]Binding
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		Keys: map[tcell.Key]Binding{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentCancel},
			tcell.KeyEnter:  {Intent: IntentConfirm},
			tcell.KeyUp:     {Intent: IntentMove, DZ: -1},
			tcell.KeyDown:   {Intent: IntentMove, DZ: 1},
			tcell.KeyLeft:   {Intent: IntentMove, DX: -1},
			tcell.KeyRight:  {Intent: IntentMove, DX: 1},
			tcell.KeyTab:    {Intent: IntentHUDToggle},
		},
		Runes: map[rune]Binding{
			'w': {Intent: IntentMove, DZ: -1},
			's': {Intent: IntentMove, DZ: 1},
			'a': {Intent: IntentMove, DX: -1},
			'd': {Intent: IntentMove, DX: 1},
			'e': {Intent: IntentActivate},
			' ': {Intent: IntentActivate},
			't': {Intent: IntentTourToggle},
			'm': {Intent: IntentMuteToggle},
			'q': {Intent: IntentCancel},
		},
	}

	// Shifted movement keeps working with caps lock
	for _, r := range "wsad" {
		kt.Runes[r-'a'+'A'] = kt.Runes[r]
	}
	for k := 1; k <= 9; k++ {
		kt.Runes[rune('0'+k)] = Binding{Intent: IntentSelect, Index: k - 1}
	}
	return kt
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := kt.Runes[ev.Rune()]
		return b, ok
	}
	b, ok := kt.Keys[ev.Key()]
	return b, ok
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}
