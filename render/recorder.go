package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/field-sketch/vmath"
)

// OpKind tags a recorded primitive
type OpKind uint8

const (
	OpCurve OpKind = iota
	OpExtrusion
	OpVector
)

// Op is one live primitive held by a Recorder
type Op struct {
	Handle Handle
	Kind   OpKind
	Points []vmath.Vec2
	Height float64
	Color  tcell.Color
	Glyph  Glyph
}

// Recorder is an in-memory Canvas for headless runs and tests
type Recorder struct {
	next   Handle
	live   map[Handle]Op
	order  []Handle
	hidden int
}

func NewRecorder() *Recorder {
	return &Recorder{live: make(map[Handle]Op)}
}

func (r *Recorder) add(op Op) Handle {
	r.next++
	op.Handle = r.next
	r.live[op.Handle] = op
	r.order = append(r.order, op.Handle)
	return op.Handle
}

func (r *Recorder) DrawCurve(points []vmath.Vec2, color tcell.Color) Handle {
	return r.add(Op{Kind: OpCurve, Points: append([]vmath.Vec2(nil), points...), Color: color})
}

func (r *Recorder) DrawExtrusion(outline []vmath.Vec2, height float64, color tcell.Color) Handle {
	return r.add(Op{Kind: OpExtrusion, Points: append([]vmath.Vec2(nil), outline...), Height: height, Color: color})
}

func (r *Recorder) DrawVector(g Glyph) Handle {
	return r.add(Op{Kind: OpVector, Glyph: g, Color: g.Color})
}

func (r *Recorder) Hide(h Handle) {
	if _, ok := r.live[h]; !ok {
		return
	}
	delete(r.live, h)
	r.hidden++
}

// Live returns visible primitives in draw order
func (r *Recorder) Live() []Op {
	out := make([]Op, 0, len(r.live))
	kept := r.order[:0]
	for _, h := range r.order {
		if op, ok := r.live[h]; ok {
			out = append(out, op)
			kept = append(kept, h)
		}
	}
	r.order = kept
	return out
}

// Snapshot is Live with handles zeroed, for comparing scenes across sessions
func (r *Recorder) Snapshot() []Op {
	ops := r.Live()
	for i := range ops {
		ops[i].Handle = 0
	}
	return ops
}

// Count returns the number of live primitives of a kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.live {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Hidden returns how many primitives have been hidden so far
func (r *Recorder) Hidden() int { return r.hidden }
