package input

import (
	"github.com/lixenwraith/field-sketch/vmath"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C, terminal closed
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Pointer gestures, Pointer carries the scene position
	IntentPointer

	// UI controls
	IntentShapeLoop     // l
	IntentShapeSurface  // s
	IntentFieldElectric // e
	IntentFieldMagnetic // b
	IntentStrengthUp    // +, =, Right, Up
	IntentStrengthDown  // -, Left, Down
	IntentRestart       // r
)

// PointerKind is the phase of a drag gesture
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent is one step of a drag in scene coordinates
type PointerEvent struct {
	Kind PointerKind
	Pos  vmath.Vec2
}

// Intent is the parsed result of one terminal event
type Intent struct {
	Type    IntentType
	Pointer PointerEvent
	Width   int // Resize only
	Height  int // Resize only
}
