package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"
)

// Rune aliases for keys that are awkward as bare config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the lowercase reverse of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig turns a key name → action name map into a sparse override KeyTable
// Single characters bind runes, tcell key names ("Enter", "Ctrl-Q") bind special keys
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Binding),
		Runes: make(map[rune]Binding),
	}
	errb := oops.Code("KEYMAP_INVALID")

	for keyStr, action := range bindings {
		b, ok := ActionBinding(action)
		if !ok {
			return nil, errb.With("key", keyStr, "action", action).Errorf("unknown action %q", action)
		}

		if r, ok := runeAliases[strings.ToLower(keyStr)]; ok {
			kt.Runes[r] = b
			continue
		}
		if runes := []rune(keyStr); len(runes) == 1 {
			kt.Runes[runes[0]] = b
			continue
		}
		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, errb.With("key", keyStr).Errorf("unknown key name %q", keyStr)
		}
		kt.Keys[k] = b
	}
	return kt, nil
}

// MergeKeyTable returns base overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Binding) {
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
