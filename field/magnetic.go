package field

import (
	"math"

	"github.com/lixenwraith/field-sketch/render"
	"github.com/lixenwraith/field-sketch/vmath"
)

// Magnetic is a discretized Biot-Savart sum over a closed polyline
type Magnetic struct {
	shape  Shape
	path   []vmath.Vec3F
	params Params
}

// NewMagnetic reads the shape's sample set as the wire path
func NewMagnetic(s Shape, p Params) *Magnetic {
	samples := s.SampleSet()
	path := make([]vmath.Vec3F, len(samples))
	for i, v := range samples {
		path[i] = vmath.V2To3(v)
	}
	return &Magnetic{shape: s, path: path, params: p}
}

func (m *Magnetic) Kind() Kind { return KindMagnetic }

// FieldAt accumulates (dL × r̂) / max(|r|, rMin)² over each segment, r measured from
// the segment start, and scales by I·μ/(4π)
func (m *Magnetic) FieldAt(p vmath.Vec2, current float64) vmath.Vec3F {
	var sum vmath.Vec3F
	at := vmath.V2To3(p)
	for i := 0; i+1 < len(m.path); i++ {
		sum = vmath.V3FAdd(sum, vmath.SegmentBiotSavart(at, m.path[i], m.path[i+1], m.params.RMin))
	}
	return vmath.V3FScale(sum, current/(4*math.Pi)*m.params.Permeability)
}

// Encode picks the color by the sign of Bz and scales the axis for visibility
func (m *Magnetic) Encode(pos vmath.Vec2, f vmath.Vec3F) render.Glyph {
	color := m.params.IntoPageColor
	if f.Z > 0 {
		color = m.params.OutOfPageColor
	}
	return render.Glyph{
		Pos:       pos,
		Axis:      vmath.V3FScale(f, m.params.DisplayScale),
		Magnitude: vmath.V3FMag(f),
		Shaft:     ShaftB,
		Opacity:   1,
		Color:     color,
	}
}
