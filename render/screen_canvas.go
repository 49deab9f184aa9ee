package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/field-sketch/vmath"
)

// Arrow runes indexed by octant, counter-clockwise from +x
var arrowRunes = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

const (
	runeCurve       = '█'
	runeZeroVector  = '·'
	runeOutOfPage   = '•'
	runeIntoPage    = '×'
	minGlyphOpacity = 0.15
)

// ScreenCanvas renders primitives onto a tcell screen through a Viewport
// Drawing only records primitives, Flush composes the frame
type ScreenCanvas struct {
	screen tcell.Screen
	view   Viewport

	next  Handle
	items map[Handle]Op
	order []Handle

	status []Segment
}

// NewScreenCanvas creates a canvas drawing into view on screen
func NewScreenCanvas(screen tcell.Screen, view Viewport) *ScreenCanvas {
	return &ScreenCanvas{
		screen: screen,
		view:   view,
		items:  make(map[Handle]Op),
	}
}

func (c *ScreenCanvas) Viewport() Viewport { return c.view }

// SetViewport changes the cell mapping, used on terminal resize
func (c *ScreenCanvas) SetViewport(v Viewport) { c.view = v }

// SetStatus replaces the status line drawn under the viewport
func (c *ScreenCanvas) SetStatus(segments []Segment) { c.status = segments }

func (c *ScreenCanvas) add(op Op) Handle {
	c.next++
	op.Handle = c.next
	c.items[op.Handle] = op
	c.order = append(c.order, op.Handle)
	return op.Handle
}

func (c *ScreenCanvas) DrawCurve(points []vmath.Vec2, color tcell.Color) Handle {
	return c.add(Op{Kind: OpCurve, Points: append([]vmath.Vec2(nil), points...), Color: color})
}

func (c *ScreenCanvas) DrawExtrusion(outline []vmath.Vec2, height float64, color tcell.Color) Handle {
	return c.add(Op{Kind: OpExtrusion, Points: append([]vmath.Vec2(nil), outline...), Height: height, Color: color})
}

func (c *ScreenCanvas) DrawVector(g Glyph) Handle {
	return c.add(Op{Kind: OpVector, Glyph: g, Color: g.Color})
}

func (c *ScreenCanvas) Hide(h Handle) {
	delete(c.items, h)
}

// Live returns the number of visible primitives
func (c *ScreenCanvas) Live() int { return len(c.items) }

// Flush composes all live primitives and shows the frame
// Layers: background, extrusions, curves, vectors, status
func (c *ScreenCanvas) Flush() {
	bg := tcell.StyleDefault.Background(RgbBackground)
	c.screen.Clear()
	c.fill(bg)
	c.drawAxes(bg)

	kept := c.order[:0]
	for _, h := range c.order {
		if _, ok := c.items[h]; ok {
			kept = append(kept, h)
		}
	}
	c.order = kept

	for _, kind := range [...]OpKind{OpExtrusion, OpCurve, OpVector} {
		for _, h := range c.order {
			op := c.items[h]
			if op.Kind != kind {
				continue
			}
			switch kind {
			case OpExtrusion:
				c.renderExtrusion(op, bg)
			case OpCurve:
				c.renderCurve(op, bg)
			case OpVector:
				c.renderVector(op.Glyph, bg)
			}
		}
	}

	c.renderStatus(bg)
	c.screen.Show()
}

func (c *ScreenCanvas) fill(style tcell.Style) {
	v := c.view
	for row := v.Y; row < v.Y+v.Height; row++ {
		for col := v.X; col < v.X+v.Width; col++ {
			c.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (c *ScreenCanvas) drawAxes(bg tcell.Style) {
	v := c.view
	style := bg.Foreground(RgbAxis)
	originCol, originRow := v.ToCell(vmath.Vec2{})
	for col := v.X; col < v.X+v.Width; col++ {
		c.set(col, originRow, '─', style)
	}
	for row := v.Y; row < v.Y+v.Height; row++ {
		c.set(originCol, row, '│', style)
	}
	c.set(originCol, originRow, '┼', style)
}

func (c *ScreenCanvas) set(col, row int, r rune, style tcell.Style) {
	if !c.view.Contains(col, row) {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

func (c *ScreenCanvas) renderExtrusion(op Op, bg tcell.Style) {
	v := c.view
	alpha := math.Min(math.Max(0.2*op.Height, 0.1), 0.6)
	tint := Blend(RgbBackground, op.Color, alpha)
	style := bg.Background(tint)
	for row := v.Y; row < v.Y+v.Height; row++ {
		for col := v.X; col < v.X+v.Width; col++ {
			if vmath.PolygonContains(op.Points, v.ToScene(col, row)) {
				c.screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

func (c *ScreenCanvas) renderCurve(op Op, bg tcell.Style) {
	style := bg.Foreground(op.Color)
	plot := func(x, y int) bool {
		c.set(x, y, runeCurve, style)
		return true
	}

	switch len(op.Points) {
	case 0:
		return
	case 1:
		col, row := c.view.ToCell(op.Points[0])
		plot(col, row)
		return
	}
	for i := 0; i+1 < len(op.Points); i++ {
		x1, y1 := c.view.ToCellF(op.Points[i])
		x2, y2 := c.view.ToCellF(op.Points[i+1])
		vmath.Traverse(x1, y1, x2, y2, plot)
	}
}

func (c *ScreenCanvas) renderVector(g Glyph, bg tcell.Style) {
	col, row := c.view.ToCell(g.Pos)

	if g.OutOfPlane() {
		r := runeIntoPage
		if g.Axis.Z > 0 {
			r = runeOutOfPage
		}
		brightness := 2 * math.Atan(vmath.V3FMag(g.Axis)) / math.Pi
		fg := Blend(RgbBackground, g.Color, math.Max(brightness, minGlyphOpacity))
		c.set(col, row, r, bg.Foreground(fg))
		return
	}

	fg := Blend(RgbBackground, g.Color, g.Opacity)
	c.set(col, row, ArrowRune(g.Axis.X, g.Axis.Y), bg.Foreground(fg))
}

// ArrowRune picks the arrow closest to the direction (dx, dy), scene y up
func ArrowRune(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return runeZeroVector
	}
	octant := int(math.Round(math.Atan2(dy, dx) / (math.Pi / 4)))
	return arrowRunes[(octant%8+8)%8]
}
