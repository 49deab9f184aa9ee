package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/field-sketch/vmath"
)

// Handle identifies one drawn primitive so it can be hidden later
type Handle uint64

// Glyph is one field vector anchored at a sample position
type Glyph struct {
	Pos       vmath.Vec2
	Axis      vmath.Vec3F // Direction and display length, Z carries out-of-plane fields
	Magnitude float64     // Raw field magnitude before any display scaling
	Shaft     float64     // Shaft width in scene units
	Opacity   float64     // [0, 1]
	Color     tcell.Color
}

// OutOfPlane reports whether the glyph is dominated by its Z component
func (g Glyph) OutOfPlane() bool {
	return g.Axis.Z*g.Axis.Z > g.Axis.X*g.Axis.X+g.Axis.Y*g.Axis.Y
}

// Canvas is the drawing surface field sketches render onto
type Canvas interface {
	// DrawCurve draws an open or closed polyline
	DrawCurve(points []vmath.Vec2, color tcell.Color) Handle
	// DrawExtrusion draws the filled shape outlined by the ring, extruded by height
	DrawExtrusion(outline []vmath.Vec2, height float64, color tcell.Color) Handle
	// DrawVector draws one field glyph
	DrawVector(g Glyph) Handle
	// Hide removes a primitive, unknown handles are ignored
	Hide(h Handle)
}
