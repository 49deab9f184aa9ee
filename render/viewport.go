package render

import (
	"math"

	"github.com/lixenwraith/field-sketch/vmath"
)

// Viewport maps a scene rectangle onto a block of terminal cells
// Scene y grows upward, screen rows grow downward
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
	X, Y, Width, Height    int
}

// NewViewport spans the scene bounds over a width x height block at (x, y)
func NewViewport(minX, minY, maxX, maxY float64, x, y, width, height int) Viewport {
	return Viewport{
		MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY,
		X: x, Y: y, Width: max(width, 1), Height: max(height, 1),
	}
}

// ToCellF returns continuous cell coordinates for a scene point
func (v Viewport) ToCellF(p vmath.Vec2) (cx, cy float64) {
	cx = float64(v.X) + (p.X-v.MinX)/(v.MaxX-v.MinX)*float64(v.Width)
	cy = float64(v.Y) + (v.MaxY-p.Y)/(v.MaxY-v.MinY)*float64(v.Height)
	return cx, cy
}

// ToCell returns the cell containing a scene point
func (v Viewport) ToCell(p vmath.Vec2) (col, row int) {
	cx, cy := v.ToCellF(p)
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// ToScene returns the scene point at the center of a cell
func (v Viewport) ToScene(col, row int) vmath.Vec2 {
	fx := (float64(col-v.X) + 0.5) / float64(v.Width)
	fy := (float64(row-v.Y) + 0.5) / float64(v.Height)
	return vmath.Vec2{
		X: v.MinX + fx*(v.MaxX-v.MinX),
		Y: v.MaxY - fy*(v.MaxY-v.MinY),
	}
}

// Contains reports whether a cell lies inside the viewport block
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Width && row >= v.Y && row < v.Y+v.Height
}
