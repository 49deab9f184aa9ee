package field

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/field-sketch/render"
)

// Physical and display constants
const (
	Coulomb      = 9e9            // 1 / (4π ε0)
	Permeability = 4e-7 * math.Pi // μ0
	RMin         = 0.25           // Biot-Savart radial floor near the wire
	DisplayScale = 3e16           // B-field to display length, visibility only
	ShaftE       = 0.1
	ShaftB       = 0.3
)

// Params carries every tunable the field models use
type Params struct {
	Coulomb      float64
	Permeability float64
	RMin         float64
	MinDistance  float64 // floors |r| in the electric model, 0 leaves coincident points singular
	DisplayScale float64

	ElectricColor  tcell.Color
	OutOfPageColor tcell.Color
	IntoPageColor  tcell.Color
}

// DefaultParams returns the reference constants
func DefaultParams() Params {
	return Params{
		Coulomb:        Coulomb,
		Permeability:   Permeability,
		RMin:           RMin,
		DisplayScale:   DisplayScale,
		ElectricColor:  render.RgbElectricVector,
		OutOfPageColor: render.RgbFieldOutOfPage,
		IntoPageColor:  render.RgbFieldIntoPage,
	}
}
