package render

import (
	"github.com/gdamore/tcell/v2"
)

// Segment is one colored block of the status line
type Segment struct {
	Text string
	Fg   tcell.Color
	Bg   tcell.Color
}

// renderStatus draws segments on the row below the viewport, separated by a space
func (c *ScreenCanvas) renderStatus(bg tcell.Style) {
	if len(c.status) == 0 {
		return
	}
	width, height := c.screen.Size()
	y := c.view.Y + c.view.Height
	if y >= height {
		return
	}

	for x := 0; x < width; x++ {
		c.screen.SetContent(x, y, ' ', nil, bg)
	}

	x := 0
	for _, seg := range c.status {
		style := bg.Foreground(seg.Fg).Background(seg.Bg)
		for _, ch := range seg.Text {
			if x >= width {
				return
			}
			c.screen.SetContent(x, y, ch, nil, style)
			x++
		}
		x++
	}
}
