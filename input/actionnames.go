package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve configured action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	// System
	"quit":        IntentQuit,
	"toggle_mute": IntentToggleMute,

	// Controls
	"shape_loop":     IntentShapeLoop,
	"shape_surface":  IntentShapeSurface,
	"field_electric": IntentFieldElectric,
	"field_magnetic": IntentFieldMagnetic,
	"strength_up":    IntentStrengthUp,
	"strength_down":  IntentStrengthDown,
	"restart":        IntentRestart,
}

// ActionEntry returns the intent bound to an action name
func ActionEntry(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionName returns the canonical name of an intent, empty for pointer/resize intents
func ActionName(it IntentType) string {
	for name, v := range actionRegistry {
		if v == it && it != IntentNone {
			return name
		}
	}
	return ""
}
