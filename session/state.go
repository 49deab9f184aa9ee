package session

import (
	"fmt"

	"github.com/lixenwraith/field-sketch/field"
	"github.com/lixenwraith/field-sketch/render"
	"github.com/lixenwraith/field-sketch/shape"
)

// State is the controller's position in the drawing lifecycle
type State uint8

const (
	StateIdle State = iota
	StateDrawing
	StateFinalizing
	StateDiscarded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateFinalizing:
		return "finalizing"
	case StateDiscarded:
		return "discarded"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// validTransitions lists every edge of the lifecycle graph
var validTransitions = map[State][]State{
	StateIdle:       {StateDrawing},
	StateDrawing:    {StateDrawing, StateFinalizing, StateIdle},
	StateFinalizing: {StateIdle, StateDiscarded},
	StateDiscarded:  {StateIdle},
}

// CanTransition reports whether from -> to is an edge of the lifecycle
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Context is the sketch state the controller owns exclusively
// Boundary is the shape being drawn or the finalized one, Source wraps it once finalized
type Context struct {
	State    State
	Boundary *shape.Boundary
	Source   field.Source
	Registry *render.Registry
}

// reset drops the shape and its source and returns to Idle
func (c *Context) reset() {
	c.Registry.ClearAll()
	c.Boundary = nil
	c.Source = nil
	c.State = StateIdle
}
