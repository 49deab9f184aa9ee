package field

import (
	"math"

	"github.com/lixenwraith/field-sketch/render"
	"github.com/lixenwraith/field-sketch/vmath"
)

// Electric is a Coulomb superposition over a shape's sample points
type Electric struct {
	shape   Shape
	samples []vmath.Vec2
	params  Params
}

// NewElectric snapshots the sample set of an already finalized shape
func NewElectric(s Shape, p Params) *Electric {
	return &Electric{shape: s, samples: s.SampleSet(), params: p}
}

func (e *Electric) Kind() Kind { return KindElectric }

// FieldAt sums k·q/|r|²·r̂ with r running from each sample to p
// Without MinDistance a p that coincides with a sample yields a non-finite vector
func (e *Electric) FieldAt(p vmath.Vec2, q float64) vmath.Vec3F {
	var sum vmath.Vec2
	for _, s := range e.samples {
		sum = vmath.V2Add(sum, vmath.InverseSquare(p, s, e.params.Coulomb*q, e.params.MinDistance))
	}
	return vmath.V2To3(sum)
}

// Encode draws a unit arrow whose opacity is the magnitude squashed into [0, 1)
func (e *Electric) Encode(pos vmath.Vec2, f vmath.Vec3F) render.Glyph {
	mag := vmath.V3FMag(f)
	return render.Glyph{
		Pos:       pos,
		Axis:      vmath.V3FNormalize(f),
		Magnitude: mag,
		Shaft:     ShaftE,
		Opacity:   Opacity(mag),
		Color:     e.params.ElectricColor,
	}
}

// Opacity maps a magnitude in [0, ∞) to [0, 1) by 2·atan(m)/π
func Opacity(mag float64) float64 {
	return 2 * math.Atan(mag) / math.Pi
}
