package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for shapes, field glyphs and UI
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbElectricShape = tcell.NewRGBColor(255, 80, 80)   // Red boundary for E-field shapes
	RgbMagneticShape = tcell.NewRGBColor(100, 150, 255) // Blue boundary for B-field shapes

	RgbElectricVector = tcell.NewRGBColor(255, 255, 255) // White arrows, opacity carries magnitude
	RgbFieldOutOfPage = tcell.NewRGBColor(255, 165, 0)   // Orange, B points toward viewer
	RgbFieldIntoPage  = tcell.NewRGBColor(255, 0, 0)     // Red, B points away from viewer

	RgbAxis       = tcell.NewRGBColor(50, 50, 50)    // Very dark gray for origin axes
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbLoopBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbSurfaceBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbDisabledBg = tcell.NewRGBColor(90, 90, 90)    // Gray for disabled options
	RgbStrengthBg = tcell.NewRGBColor(255, 192, 203) // Pink for strength readout
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// Blend mixes src over dst, alpha 0 keeps dst and 1 yields src
func Blend(dst, src tcell.Color, alpha float64) tcell.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return RGBOf(dst).Blend(RGBOf(src), alpha).Color()
}

// Dim scales a color toward black by factor in [0, 1]
func Dim(c tcell.Color, factor float64) tcell.Color {
	return RGBOf(c).Scale(factor).Color()
}
