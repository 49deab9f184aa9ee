package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV3FCross(t *testing.T) {
	x := Vec3F{X: 1}
	y := Vec3F{Y: 1}

	assert.Equal(t, Vec3F{Z: 1}, V3FCross(x, y))
	assert.Equal(t, Vec3F{Z: -1}, V3FCross(y, x))
	assert.Equal(t, Vec3F{}, V3FCross(x, x))
}

func TestV2NormalizeZero(t *testing.T) {
	assert.Equal(t, Vec2{}, V2Normalize(Vec2{}))

	n := V2Normalize(V2(3, 4))
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestV2Round(t *testing.T) {
	tests := []struct {
		in     Vec2
		wx, wy int
	}{
		{V2(0.4, -0.4), 0, 0},
		{V2(0.5, -0.5), 0, 0},
		{V2(1.5, -1.5), 2, -2},
		{V2(2.5, -2.5), 2, -2},
		{V2(2.49, 7.51), 2, 8},
	}
	for _, tt := range tests {
		x, y := V2Round(tt.in)
		if x != tt.wx || y != tt.wy {
			t.Errorf("V2Round(%v) = (%d, %d), want (%d, %d)", tt.in, x, y, tt.wx, tt.wy)
		}
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, V2IsFinite(V2(1, 2)))
	assert.False(t, V2IsFinite(V2(math.Inf(1), 0)))
	assert.False(t, V3FIsFinite(Vec3F{Z: math.NaN()}))
}

func TestTraverseSingleCell(t *testing.T) {
	var cells [][2]int
	Traverse(2.2, 3.7, 2.9, 3.1, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	assert.Equal(t, [][2]int{{2, 3}}, cells)
}

func TestTraverseHorizontal(t *testing.T) {
	var cells [][2]int
	Traverse(0.5, 1.5, 4.5, 1.5, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	assert.Equal(t, [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}, cells)
}

func TestTraverseSupercoverIsConnected(t *testing.T) {
	var prev *[2]int
	count := 0
	Traverse(0.1, 0.3, 7.8, 5.2, func(x, y int) bool {
		cur := [2]int{x, y}
		if prev != nil {
			dx := cur[0] - prev[0]
			dy := cur[1] - prev[1]
			if dx*dx+dy*dy == 0 || dx*dx > 1 || dy*dy > 1 {
				t.Fatalf("non-adjacent step %v -> %v", *prev, cur)
			}
		}
		prev = &cur
		count++
		return true
	})
	assert.Equal(t, [2]int{7, 5}, *prev)
	assert.GreaterOrEqual(t, count, 8)
}

func TestTraverseStops(t *testing.T) {
	count := 0
	Traverse(0, 0, 10, 0, func(x, y int) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestPolygonContains(t *testing.T) {
	square := []Vec2{V2(0, 0), V2(0, 5), V2(5, 5), V2(5, 0), V2(0, 0)}

	assert.True(t, PolygonContains(square, V2(2.5, 2.5)))
	assert.True(t, PolygonContains(square, V2(0.1, 4.9)))
	assert.False(t, PolygonContains(square, V2(-1, 2)))
	assert.False(t, PolygonContains(square, V2(2, 6)))
	assert.False(t, PolygonContains(square[:2], V2(0, 1)))
}

func TestInverseSquare(t *testing.T) {
	f := InverseSquare(V2(2, 0), V2(0, 0), 8, 0)
	assert.InDelta(t, 2.0, f.X, 1e-12)
	assert.Zero(t, f.Y)

	// Doubling the distance quarters the magnitude
	far := InverseSquare(V2(0, 4), V2(0, 0), 8, 0)
	assert.InDelta(t, V2Mag(f)/4, V2Mag(far), 1e-12)

	assert.False(t, V2IsFinite(InverseSquare(V2(1, 1), V2(1, 1), 8, 0)))
	assert.Equal(t, Vec2{}, InverseSquare(V2(1, 1), V2(1, 1), 8, 0.5))

	// Floor applies below minDist only
	near := InverseSquare(V2(0.1, 0), V2(0, 0), 1, 0.5)
	assert.InDelta(t, 4.0, near.X, 1e-12)
}

func TestSegmentBiotSavart(t *testing.T) {
	// Segment along +x, point above it: dL × r̂ points out of the page
	b := SegmentBiotSavart(Vec3F{Y: 1}, Vec3F{}, Vec3F{X: 1}, 0.25)
	assert.InDelta(t, 1.0, b.Z, 1e-12)
	assert.Zero(t, b.X)
	assert.Zero(t, b.Y)

	// Below the segment the sign flips
	below := SegmentBiotSavart(Vec3F{Y: -1}, Vec3F{}, Vec3F{X: 1}, 0.25)
	assert.InDelta(t, -1.0, below.Z, 1e-12)

	// rMin floors the radial distance near the wire
	nearWire := SegmentBiotSavart(Vec3F{Y: 0.1}, Vec3F{}, Vec3F{X: 1}, 0.25)
	assert.InDelta(t, 16.0, nearWire.Z, 1e-9)
}
