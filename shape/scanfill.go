package shape

import (
	"math"
	"slices"

	"github.com/lixenwraith/field-sketch/vmath"
)

// lattice is an integer grid point
type lattice struct {
	x, y int
}

// scanFill emits the integer lattice points strictly inside a closed path, row by row
//
// Vertices are rounded to the lattice first. Each integer row collects the x where a path edge
// crosses it, counting an edge on [min y, max y) so a shared vertex is crossed once. Crossings
// are paired by even-odd parity and every lattice x between a pair is emitted unless it lies on
// the path itself.
func scanFill(path []vmath.Vec2) []vmath.Vec2 {
	if len(path) < 2 {
		return nil
	}

	verts := make([]lattice, len(path))
	minY, maxY := math.MaxInt, math.MinInt
	for i, p := range path {
		x, y := vmath.V2Round(p)
		verts[i] = lattice{x, y}
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	onPath := make(map[lattice]struct{})
	for i := 0; i+1 < len(verts); i++ {
		markSegment(onPath, verts[i], verts[i+1])
	}

	var out []vmath.Vec2
	var xs []float64
	for y := minY; y < maxY; y++ {
		xs = rowCrossings(xs[:0], verts, y)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); float64(x) <= xs[i+1]; x++ {
				if _, edge := onPath[lattice{x, y}]; edge {
					continue
				}
				out = append(out, vmath.V2(float64(x), float64(y)))
			}
		}
	}
	return out
}

// rowCrossings appends the sorted x where edges of the path cross row y
func rowCrossings(xs []float64, verts []lattice, y int) []float64 {
	for i := 0; i+1 < len(verts); i++ {
		a, b := verts[i], verts[i+1]
		if a.y == b.y {
			continue
		}
		if a.y > b.y {
			a, b = b, a
		}
		if y < a.y || y >= b.y {
			continue
		}
		t := float64(y-a.y) / float64(b.y-a.y)
		xs = append(xs, float64(a.x)+t*float64(b.x-a.x))
	}
	slices.Sort(xs)
	return xs
}

// markSegment records every lattice point on the segment a-b
func markSegment(set map[lattice]struct{}, a, b lattice) {
	dx, dy := b.x-a.x, b.y-a.y
	n := gcd(abs(dx), abs(dy))
	if n == 0 {
		set[a] = struct{}{}
		return
	}
	sx, sy := dx/n, dy/n
	for i := 0; i <= n; i++ {
		set[lattice{a.x + i*sx, a.y + i*sy}] = struct{}{}
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
