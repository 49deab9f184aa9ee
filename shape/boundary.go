package shape

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/field-sketch/vmath"
)

// Kind selects which sample set a Boundary exposes
type Kind uint8

const (
	KindLoop Kind = iota
	KindSurface
)

func (k Kind) String() string {
	switch k {
	case KindLoop:
		return "loop"
	case KindSurface:
		return "surface"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MinPoints is the fewest appended points Close accepts
const MinPoints = 2

// ErrInvalidBoundary reports a boundary too short to close
var ErrInvalidBoundary = errors.New("invalid boundary")

// Boundary is an ordered sequence of scene points, closed once drawing ends
type Boundary struct {
	kind   Kind
	points []vmath.Vec2
	closed bool

	// Cached after Close
	interior []vmath.Vec2
}

// New creates an empty boundary of the given kind
func New(kind Kind) *Boundary {
	return &Boundary{
		kind:   kind,
		points: make([]vmath.Vec2, 0, 64),
	}
}

func (b *Boundary) Kind() Kind { return b.kind }

// Len returns the number of stored points, including the closing point once closed
func (b *Boundary) Len() int { return len(b.points) }

func (b *Boundary) Closed() bool { return b.closed }

// Points returns the raw path in drawing order; callers must not modify it
func (b *Boundary) Points() []vmath.Vec2 { return b.points }

// Append adds a point; self-intersection is allowed and not checked
func (b *Boundary) Append(p vmath.Vec2) {
	b.points = append(b.points, p)
}

// Close appends the first point again so the path becomes a closed polyline
// Surfaces compute their interior lattice here
// Closing twice duplicates the closing point, callers check Closed first
func (b *Boundary) Close() error {
	if len(b.points) < MinPoints {
		return fmt.Errorf("%w: %d point(s), need %d", ErrInvalidBoundary, len(b.points), MinPoints)
	}
	b.points = append(b.points, b.points[0])
	b.closed = true

	if b.kind == KindSurface {
		b.interior = scanFill(b.points)
	}
	return nil
}

// VertexList returns the path without repeated points
// The start point is kept a second time only when it closes the path
func (b *Boundary) VertexList() []vmath.Vec2 {
	if len(b.points) == 0 {
		return nil
	}

	seen := make(map[pointKey]struct{}, len(b.points))
	out := make([]vmath.Vec2, 0, len(b.points))
	first := keyOf(b.points[0])
	last := len(b.points) - 1

	for i, p := range b.points {
		k := keyOf(p)
		if _, dup := seen[k]; dup {
			if !(b.closed && i == last && k == first) {
				continue
			}
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Outline is the vertex list used to extrude a Surface
func (b *Boundary) Outline() []vmath.Vec2 {
	return b.VertexList()
}

// InteriorPoints returns the scan-converted lattice points inside a closed Surface
// Returns nil for loops and for open boundaries
func (b *Boundary) InteriorPoints() []vmath.Vec2 {
	if b.kind != KindSurface || !b.closed {
		return nil
	}
	return b.interior
}

// SampleSet returns the points a field source integrates over
func (b *Boundary) SampleSet() []vmath.Vec2 {
	if b.kind == KindSurface {
		return b.InteriorPoints()
	}
	return b.VertexList()
}
