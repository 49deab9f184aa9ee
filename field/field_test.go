package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/field-sketch/render"
	"github.com/lixenwraith/field-sketch/shape"
	"github.com/lixenwraith/field-sketch/vmath"
)

// points is a bare sample set
type points []vmath.Vec2

func (p points) SampleSet() []vmath.Vec2 { return p }

// circleLoop traces a counter-clockwise circle of n segments and closes it
func circleLoop(t *testing.T, radius float64, n int) *shape.Boundary {
	t.Helper()
	b := shape.New(shape.KindLoop)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		b.Append(vmath.V2(radius*math.Cos(theta), radius*math.Sin(theta)))
	}
	require.NoError(t, b.Close())
	return b
}

func TestElectricPointChargeDirection(t *testing.T) {
	e := NewElectric(points{{X: 1, Y: 1}}, DefaultParams())

	tests := []struct {
		name string
		at   vmath.Vec2
	}{
		{"right", vmath.V2(4, 1)},
		{"above", vmath.V2(1, 3)},
		{"diagonal", vmath.V2(-2, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			away := vmath.V2Normalize(vmath.V2Sub(tt.at, vmath.V2(1, 1)))

			pos := vmath.V2Normalize(vmath.V3FXY(e.FieldAt(tt.at, 1e-10)))
			assert.InDelta(t, away.X, pos.X, 1e-12)
			assert.InDelta(t, away.Y, pos.Y, 1e-12)

			neg := vmath.V2Normalize(vmath.V3FXY(e.FieldAt(tt.at, -1e-10)))
			assert.InDelta(t, -away.X, neg.X, 1e-12)
			assert.InDelta(t, -away.Y, neg.Y, 1e-12)
		})
	}
}

func TestElectricInverseSquare(t *testing.T) {
	e := NewElectric(points{{X: 0, Y: 0}}, DefaultParams())

	prev := math.Inf(1)
	for _, d := range []float64{0.5, 1, 2, 4, 8} {
		near := vmath.V3FMag(e.FieldAt(vmath.V2(d, 0), 1e-10))
		far := vmath.V3FMag(e.FieldAt(vmath.V2(2*d, 0), 1e-10))

		assert.InEpsilon(t, 4.0, near/far, 1e-12, "doubling %v should quarter the field", d)
		assert.Less(t, near, prev, "magnitude must fall with distance")
		prev = near
	}

	// k·q/r² at r = 3
	want := Coulomb * 1e-10 / 9
	assert.InEpsilon(t, want, vmath.V3FMag(e.FieldAt(vmath.V2(0, 3), 1e-10)), 1e-12)
}

func TestElectricStaysInPlane(t *testing.T) {
	e := NewElectric(points{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: -3, Y: 4}}, DefaultParams())
	assert.Zero(t, e.FieldAt(vmath.V2(0.5, 0.5), 1e-10).Z)
}

func TestElectricSingularity(t *testing.T) {
	src := points{{X: 0, Y: 0}, {X: 3, Y: 0}}

	raw := NewElectric(src, DefaultParams())
	assert.False(t, vmath.V3FIsFinite(raw.FieldAt(vmath.V2(0, 0), 1e-10)))

	p := DefaultParams()
	p.MinDistance = 0.25
	soft := NewElectric(src, p)
	f := soft.FieldAt(vmath.V2(0, 0), 1e-10)
	require.True(t, vmath.V3FIsFinite(f))
	// Only the far sample contributes, pointing from (3,0) toward the origin
	assert.InEpsilon(t, Coulomb*1e-10/9, -f.X, 1e-12)
}

func TestElectricLinearInCharge(t *testing.T) {
	b := shape.New(shape.KindLoop)
	for _, p := range []vmath.Vec2{{X: 0.3, Y: 0.2}, {X: 2.7, Y: 0.4}, {X: 2.2, Y: 3.1}, {X: -1.4, Y: 2.6}} {
		b.Append(p)
	}
	require.NoError(t, b.Close())

	s := NewSampler(DefaultGrid(), render.NewRecorder())
	src := NewElectric(b, DefaultParams())

	const s1, s2 = 1.0e-10, -3.5e-10
	g1, skip1 := s.Glyphs(src, s1)
	g2, skip2 := s.Glyphs(src, s2)
	require.Zero(t, skip1)
	require.Zero(t, skip2)
	require.Len(t, g2, len(g1))

	for i := range g1 {
		f1 := src.FieldAt(g1[i].Pos, s1)
		f2 := src.FieldAt(g2[i].Pos, s2)
		assert.InEpsilon(t, math.Abs(s2/s1), g2[i].Magnitude/g1[i].Magnitude, 1e-9)
		assert.InEpsilon(t, s2/s1, f2.X/f1.X, 1e-9)
		assert.InEpsilon(t, s2/s1, f2.Y/f1.Y, 1e-9)
	}
}

func TestMagneticCircleCenter(t *testing.T) {
	const radius, current = 4.0, 1e-10
	analytic := Permeability * current / (2 * radius)

	for _, n := range []int{360, 720, 1440} {
		m := NewMagnetic(circleLoop(t, radius, n), DefaultParams())

		f := m.FieldAt(vmath.V2(0, 0), current)
		require.Greater(t, f.Z, 0.0, "n=%d: counter-clockwise current points out of the page", n)
		assert.Zero(t, f.X)
		assert.Zero(t, f.Y)

		ratio := f.Z / analytic
		assert.InDelta(t, 1.0, ratio, 0.01, "n=%d", n)
	}
}

func TestMagneticSignInsideAndOutside(t *testing.T) {
	m := NewMagnetic(circleLoop(t, 4, 360), DefaultParams())

	for _, p := range []vmath.Vec2{{X: 0.5, Y: 0.3}, {X: -1.5, Y: 2}, {X: 2.5, Y: -2.5}} {
		assert.Greater(t, m.FieldAt(p, 1e-10).Z, 0.0, "inside at %v", p)
	}
	for _, p := range []vmath.Vec2{{X: 8, Y: 0}, {X: 0, Y: -9}, {X: 7, Y: 7}} {
		assert.Less(t, m.FieldAt(p, 1e-10).Z, 0.0, "outside at %v", p)
	}

	// Reversing the current flips every sign
	assert.Less(t, m.FieldAt(vmath.V2(0, 0), -1e-10).Z, 0.0)
}

func TestMagneticRadialFloor(t *testing.T) {
	p := DefaultParams()
	m := NewMagnetic(points{{X: 0, Y: 0}, {X: 1, Y: 0}}, p)

	// On the wire start r̂ is zero, so the segment contributes nothing
	assert.Equal(t, vmath.Vec3F{}, m.FieldAt(vmath.V2(0, 0), 1))

	// Closer than rMin the denominator is pinned at rMin²
	near := m.FieldAt(vmath.V2(0, 0.1), 1)
	want := 1 / (p.RMin * p.RMin) / (4 * math.Pi) * p.Permeability
	assert.InEpsilon(t, want, math.Abs(near.Z), 1e-12)
	assert.True(t, vmath.V3FIsFinite(near))
}

func TestMagneticEncodeColorBySign(t *testing.T) {
	p := DefaultParams()
	m := NewMagnetic(points{}, p)

	out := m.Encode(vmath.V2(1, 1), vmath.Vec3F{Z: 2e-17})
	assert.Equal(t, p.OutOfPageColor, out.Color)
	assert.InEpsilon(t, 2e-17*DisplayScale, out.Axis.Z, 1e-12)
	assert.Equal(t, ShaftB, out.Shaft)

	in := m.Encode(vmath.V2(1, 1), vmath.Vec3F{Z: -2e-17})
	assert.Equal(t, p.IntoPageColor, in.Color)

	zero := m.Encode(vmath.V2(1, 1), vmath.Vec3F{})
	assert.Equal(t, p.IntoPageColor, zero.Color)
}

func TestElectricEncodeOpacity(t *testing.T) {
	e := NewElectric(points{}, DefaultParams())

	g := e.Encode(vmath.V2(0, 0), vmath.Vec3F{X: 3, Y: 4})
	assert.InDelta(t, 1.0, vmath.V3FMag(g.Axis), 1e-12)
	assert.Equal(t, 5.0, g.Magnitude)
	assert.InDelta(t, 2*math.Atan(5)/math.Pi, g.Opacity, 1e-12)
	assert.Equal(t, ShaftE, g.Shaft)

	assert.Equal(t, 0.0, Opacity(0))
	assert.Less(t, Opacity(1e30), 1.0)
	assert.Greater(t, Opacity(2), Opacity(1))
}

func TestNewDispatch(t *testing.T) {
	assert.Equal(t, KindElectric, New(KindElectric, points{}, DefaultParams()).Kind())
	assert.Equal(t, KindMagnetic, New(KindMagnetic, points{}, DefaultParams()).Kind())
	assert.Equal(t, "electric", KindElectric.String())
	assert.Equal(t, "magnetic", KindMagnetic.String())
}
