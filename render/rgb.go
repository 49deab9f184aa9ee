package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is an 8-bit-per-channel color for blending math outside tcell
type RGB struct {
	R, G, B uint8
}

// RGBOf converts a tcell color, palette colors resolve through tcell's table
func RGBOf(c tcell.Color) RGB {
	r, g, b := c.RGB()
	return RGB{R: clamp(float64(r)), G: clamp(float64(g)), B: clamp(float64(b))}
}

// Color converts back to a true-color tcell value
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp rounds and converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend mixes src over dst, returning early for alpha 0 or 1
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return dst
	}

	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(src.R)*alpha + float64(dst.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(dst.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Scale multiplies all channels by factor, clamped so factor > 1 cannot wrap
func (c RGB) Scale(factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
