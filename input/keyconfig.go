package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
	"minus":     '-',
	"equals":    '=',
}

// keysByName is tcell's key name table reversed and lowercased, e.g. "esc", "f5", "ctrl-r"
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses rune and special-key bindings into a sparse override KeyTable
// Only keys present in the input are populated, "none" marks an unbind
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(runes, special map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	if len(runes) > 0 {
		kt.Runes = make(map[rune]IntentType, len(runes))
		for keyStr, action := range runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			it, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = it
		}
	}

	if len(special) > 0 {
		kt.SpecialKeys = make(map[tcell.Key]IntentType, len(special))
		for keyStr, action := range special {
			k, ok := keysByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
			}
			it, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[special] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = it
		}
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an intent
func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	it, ok := ActionEntry(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return it, nil
}

// Clone returns a deep copy
func (t *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(t.SpecialKeys)),
		Runes:       make(map[rune]IntentType, len(t.Runes)),
	}
	for k, v := range t.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for r, v := range t.Runes {
		c.Runes[r] = v
	}
	return c
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]IntentType) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
