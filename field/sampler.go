package field

import (
	"math"

	"github.com/lixenwraith/field-sketch/render"
	"github.com/lixenwraith/field-sketch/vmath"
)

// Grid is the fixed lattice of sample positions, half-open on the max side
type Grid struct {
	MinX, MaxX   float64
	MinY, MaxY   float64
	ElectricStep float64
	MagneticStep float64
}

// DefaultGrid covers [-10, 10) with 20x20 electric and 40x40 magnetic samples
func DefaultGrid() Grid {
	return Grid{
		MinX: -10, MaxX: 10,
		MinY: -10, MaxY: 10,
		ElectricStep: 1,
		MagneticStep: 0.5,
	}
}

// Step returns the spacing used for a field kind
func (g Grid) Step(kind Kind) float64 {
	if kind == KindMagnetic {
		return g.MagneticStep
	}
	return g.ElectricStep
}

// Points lists sample positions column by column, x outer and y inner
// Positions are computed from indices so long rows do not accumulate step error
func (g Grid) Points(step float64) []vmath.Vec2 {
	if step <= 0 {
		return nil
	}
	nx := int(math.Ceil((g.MaxX - g.MinX) / step))
	ny := int(math.Ceil((g.MaxY - g.MinY) / step))
	if nx <= 0 || ny <= 0 {
		return nil
	}

	out := make([]vmath.Vec2, 0, nx*ny)
	for i := 0; i < nx; i++ {
		x := g.MinX + float64(i)*step
		for j := 0; j < ny; j++ {
			out = append(out, vmath.V2(x, g.MinY+float64(j)*step))
		}
	}
	return out
}

// Sampler walks the grid, evaluates a source at each point and draws one glyph per cell
type Sampler struct {
	Grid   Grid
	Canvas render.Canvas
}

func NewSampler(grid Grid, canvas render.Canvas) *Sampler {
	return &Sampler{Grid: grid, Canvas: canvas}
}

// Glyphs evaluates src over the grid without drawing
// Non-finite field values are dropped and counted in skipped
func (s *Sampler) Glyphs(src Source, strength float64) (glyphs []render.Glyph, skipped int) {
	points := s.Grid.Points(s.Grid.Step(src.Kind()))
	glyphs = make([]render.Glyph, 0, len(points))
	for _, p := range points {
		f := src.FieldAt(p, strength)
		if !vmath.V3FIsFinite(f) {
			skipped++
			continue
		}
		glyphs = append(glyphs, src.Encode(p, f))
	}
	return glyphs, skipped
}

// Draw renders src over the grid and returns the glyph handles for later clearing
func (s *Sampler) Draw(src Source, strength float64) (handles []render.Handle, skipped int) {
	glyphs, skipped := s.Glyphs(src, strength)
	handles = make([]render.Handle, 0, len(glyphs))
	for _, g := range glyphs {
		handles = append(handles, s.Canvas.DrawVector(g))
	}
	return handles, skipped
}
