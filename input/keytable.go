package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyRight:  IntentStrengthUp,
			tcell.KeyUp:     IntentStrengthUp,
			tcell.KeyLeft:   IntentStrengthDown,
			tcell.KeyDown:   IntentStrengthDown,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			'l': IntentShapeLoop,
			's': IntentShapeSurface,
			'e': IntentFieldElectric,
			'b': IntentFieldMagnetic,
			'+': IntentStrengthUp,
			'=': IntentStrengthUp,
			'-': IntentStrengthDown,
			'r': IntentRestart,
		},
	}
}

// Lookup resolves a key event, IntentNone when unbound
func (t *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
