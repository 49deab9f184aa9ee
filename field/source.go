package field

import (
	"fmt"

	"github.com/lixenwraith/field-sketch/render"
	"github.com/lixenwraith/field-sketch/vmath"
)

// Kind selects the field model
type Kind uint8

const (
	KindElectric Kind = iota
	KindMagnetic
)

func (k Kind) String() string {
	switch k {
	case KindElectric:
		return "electric"
	case KindMagnetic:
		return "magnetic"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is the capability a source is built from: the points it integrates over
// Magnetic sources read the set as a closed polyline
type Shape interface {
	SampleSet() []vmath.Vec2
}

// Source evaluates a field from one finalized shape
type Source interface {
	Kind() Kind
	// FieldAt returns the field at p for the given charge or current
	FieldAt(p vmath.Vec2, strength float64) vmath.Vec3F
	// Encode turns a field value into a glyph anchored at pos
	Encode(pos vmath.Vec2, f vmath.Vec3F) render.Glyph
}

// New builds the source of the given kind around s
func New(kind Kind, s Shape, p Params) Source {
	if kind == KindMagnetic {
		return NewMagnetic(s, p)
	}
	return NewElectric(s, p)
}
