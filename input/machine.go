package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/field-sketch/render"
)

// Machine is the input state machine
// Parses tcell events into semantic Intent, deriving drag phases from button masks
type Machine struct {
	keyTable *KeyTable
	view     render.Viewport
	pressed  bool
}

// NewMachine creates a machine mapping mouse cells through view
func NewMachine(view render.Viewport) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		view:     view,
	}
}

// SetViewport updates the cell to scene mapping after a resize
func (m *Machine) SetViewport(v render.Viewport) { m.view = v }

// Pressed reports whether a drag is in progress
func (m *Machine) Pressed() bool { return m.pressed }

// SetKeyTable replaces the key bindings
func (m *Machine) SetKeyTable(kt *KeyTable) { m.keyTable = kt }

// Reset forgets any drag in progress
func (m *Machine) Reset() { m.pressed = false }

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning (hover, unbound keys)
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventKey:
		if it := m.keyTable.Lookup(ev); it != IntentNone {
			return &Intent{Type: it}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case nil:
		// PollEvent returns nil once the screen is finalized
		return &Intent{Type: IntentQuit}
	}
	return nil
}

// processMouse turns button state changes into down/move/up
// A press only starts a drag inside the viewport, the rest of the gesture is tracked anywhere
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0
	pos := m.view.ToScene(x, y)

	switch {
	case held && !m.pressed:
		if !m.view.Contains(x, y) {
			return nil
		}
		m.pressed = true
		return &Intent{Type: IntentPointer, Pointer: PointerEvent{Kind: PointerDown, Pos: pos}}
	case held && m.pressed:
		return &Intent{Type: IntentPointer, Pointer: PointerEvent{Kind: PointerMove, Pos: pos}}
	case !held && m.pressed:
		m.pressed = false
		return &Intent{Type: IntentPointer, Pointer: PointerEvent{Kind: PointerUp, Pos: pos}}
	}
	return nil
}
