package vmath

import (
	"math"
)

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every grid cell intersected by a line from (x1, y1) to (x2, y2)
// Coordinates are continuous cell space, cell (i, j) covers [i, i+1) x [j, j+1)
// Callback returning false stops the walk, termination is guaranteed by checking target before stepping
func Traverse(x1, y1, x2, y2 float64, callback func(x, y int) bool) {
	ix, iy := int(math.Floor(x1)), int(math.Floor(y1))
	targetX, targetY := int(math.Floor(x2)), int(math.Floor(y2))

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	tMaxX, tDeltaX := math.Inf(1), math.Inf(1)
	if dx != 0 {
		tDeltaX = 1 / dx
		fx := x1 - math.Floor(x1)
		if stepX > 0 {
			tMaxX = (1 - fx) * tDeltaX
		} else {
			tMaxX = fx * tDeltaX
		}
	}

	tMaxY, tDeltaY := math.Inf(1), math.Inf(1)
	if dy != 0 {
		tDeltaY = 1 / dy
		fy := y1 - math.Floor(y1)
		if stepY > 0 {
			tMaxY = (1 - fy) * tDeltaY
		} else {
			tMaxY = fy * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	for ix != targetX || iy != targetY {
		switch {
		case tMaxX < tMaxY:
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		case tMaxX > tMaxY:
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		default:
			// Diagonal through a corner
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}

// PolygonContains is an even-odd crossing test of p against the polygon ring
// The ring may or may not repeat its first vertex
func PolygonContains(ring []Vec2, p Vec2) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
