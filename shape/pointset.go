package shape

import (
	"math"

	"github.com/lixenwraith/field-sketch/vmath"
)

// pointKey is a canonical hashable encoding of a point
// Bit patterns are compared so -0 is folded into +0 first
type pointKey struct {
	x, y uint64
}

func keyOf(p vmath.Vec2) pointKey {
	return pointKey{x: canonBits(p.X), y: canonBits(p.Y)}
}

func canonBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
