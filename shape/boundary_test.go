package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/field-sketch/vmath"
)

// tracedSquare walks the outline of [0,side]x[0,side] one unit per step, as a drag would
func tracedSquare(kind Kind, side int) *Boundary {
	b := New(kind)
	for y := 0; y < side; y++ {
		b.Append(vmath.V2(0, float64(y)))
	}
	for x := 0; x < side; x++ {
		b.Append(vmath.V2(float64(x), float64(side)))
	}
	for y := side; y > 0; y-- {
		b.Append(vmath.V2(float64(side), float64(y)))
	}
	for x := side; x > 0; x-- {
		b.Append(vmath.V2(float64(x), 0))
	}
	return b
}

func TestCloseRejectsShortBoundaries(t *testing.T) {
	for n := 0; n < MinPoints; n++ {
		b := New(KindLoop)
		for i := 0; i < n; i++ {
			b.Append(vmath.V2(float64(i), 0))
		}

		err := b.Close()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidBoundary), "got %v", err)
		assert.False(t, b.Closed())
		assert.Equal(t, n, b.Len(), "failed close must not mutate the path")
	}
}

func TestCloseAppendsStart(t *testing.T) {
	b := New(KindLoop)
	b.Append(vmath.V2(1, 2))
	b.Append(vmath.V2(3, 4))

	require.NoError(t, b.Close())
	assert.True(t, b.Closed())

	pts := b.Points()
	require.Len(t, pts, 3)
	assert.Equal(t, pts[0], pts[len(pts)-1])
}

func TestCloseTwiceDuplicatesClosingPoint(t *testing.T) {
	b := New(KindLoop)
	b.Append(vmath.V2(0, 0))
	b.Append(vmath.V2(1, 0))

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, 4, b.Len())
}

func TestSurfaceInteriorOfSquare(t *testing.T) {
	b := tracedSquare(KindSurface, 5)
	require.NoError(t, b.Close())

	got := interiorSet(b)

	for y := -1; y <= 6; y++ {
		for x := -1; x <= 6; x++ {
			want := x >= 1 && x <= 4 && y >= 1 && y <= 4
			assert.Equal(t, want, got[[2]int{x, y}], "point (%d,%d)", x, y)
		}
	}
	assert.Len(t, b.InteriorPoints(), 16)
}

// interiorSet rounds interior points into a lookup set
func interiorSet(b *Boundary) map[[2]int]bool {
	got := make(map[[2]int]bool)
	for _, p := range b.InteriorPoints() {
		x, y := vmath.V2Round(p)
		got[[2]int{x, y}] = true
	}
	return got
}

func TestSurfaceInteriorOfCornerSquare(t *testing.T) {
	b := New(KindSurface)
	for _, p := range []vmath.Vec2{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 0}} {
		b.Append(p)
	}
	require.NoError(t, b.Close())

	got := interiorSet(b)
	for y := -1; y <= 6; y++ {
		for x := -1; x <= 6; x++ {
			want := x >= 1 && x <= 4 && y >= 1 && y <= 4
			if got[[2]int{x, y}] != want {
				t.Errorf("point (%d,%d) inside = %v, want %v", x, y, got[[2]int{x, y}], want)
			}
		}
	}
	assert.Len(t, b.InteriorPoints(), 16)
}

func TestSurfaceInteriorOfConcaveShape(t *testing.T) {
	// L shape: 6x6 square with the top-right 3x3 quadrant cut away
	b := New(KindSurface)
	for _, p := range []vmath.Vec2{{X: 0, Y: 0}, {X: 0, Y: 6}, {X: 3, Y: 6}, {X: 3, Y: 3}, {X: 6, Y: 3}, {X: 6, Y: 0}} {
		b.Append(p)
	}
	require.NoError(t, b.Close())

	got := interiorSet(b)
	assert.True(t, got[[2]int{1, 5}], "upper arm")
	assert.True(t, got[[2]int{5, 1}], "right arm")
	assert.True(t, got[[2]int{2, 2}], "corner block")
	assert.False(t, got[[2]int{4, 4}], "cut-away quadrant")
	assert.False(t, got[[2]int{3, 4}], "point on the inner edge")
	// rows 1..2 span x 1..5, rows 3..5 span x 1..2
	assert.Len(t, b.InteriorPoints(), 2*5+3*2)
}

func TestSurfaceInteriorRoundsHalfToEven(t *testing.T) {
	// Corners at .5 round to the even neighbour: [-0.5, 4.5] becomes [0, 4]
	b := New(KindSurface)
	for _, p := range []vmath.Vec2{{X: -0.5, Y: -0.5}, {X: -0.5, Y: 4.5}, {X: 4.5, Y: 4.5}, {X: 4.5, Y: -0.5}} {
		b.Append(p)
	}
	require.NoError(t, b.Close())

	got := interiorSet(b)
	assert.Len(t, b.InteriorPoints(), 9)
	assert.True(t, got[[2]int{1, 1}])
	assert.True(t, got[[2]int{3, 3}])
	assert.False(t, got[[2]int{4, 4}])
}

func TestSurfaceInteriorOrder(t *testing.T) {
	b := tracedSquare(KindSurface, 4)
	require.NoError(t, b.Close())

	pts := b.InteriorPoints()
	require.NotEmpty(t, pts)
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		ordered := prev.Y < cur.Y || (prev.Y == cur.Y && prev.X < cur.X)
		assert.True(t, ordered, "%v before %v", prev, cur)
	}
}

func TestSampleSetByKind(t *testing.T) {
	loop := tracedSquare(KindLoop, 3)
	require.NoError(t, loop.Close())
	assert.Nil(t, loop.InteriorPoints())
	assert.Equal(t, loop.VertexList(), loop.SampleSet())

	surface := tracedSquare(KindSurface, 3)
	assert.Nil(t, surface.SampleSet(), "open surface has no interior yet")
	require.NoError(t, surface.Close())
	assert.Equal(t, surface.InteriorPoints(), surface.SampleSet())
}

func TestVertexListDeduplicates(t *testing.T) {
	b := New(KindLoop)
	b.Append(vmath.V2(0, 0))
	b.Append(vmath.V2(1, 0))
	b.Append(vmath.V2(1, 0))
	b.Append(vmath.V2(0, 0)) // revisits start mid-path
	b.Append(vmath.V2(1, 1))
	b.Append(vmath.V2(1, 0))

	assert.Equal(t, []vmath.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, b.VertexList())

	require.NoError(t, b.Close())
	assert.Equal(t, []vmath.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}, b.VertexList())
}

func TestVertexListNegativeZero(t *testing.T) {
	b := New(KindLoop)
	b.Append(vmath.V2(0, 1))
	b.Append(vmath.V2(negZero(), 1))
	b.Append(vmath.V2(2, 2))

	assert.Len(t, b.VertexList(), 2)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "loop", KindLoop.String())
	assert.Equal(t, "surface", KindSurface.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func negZero() float64 {
	z := 0.0
	return -z
}
