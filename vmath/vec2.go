package vmath

import "math"

// Vec2 is a float64 2D vector in scene space
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero vector stays zero
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Round rounds both components to the nearest integer, ties to even
func V2Round(v Vec2) (x, y int) {
	return int(math.RoundToEven(v.X)), int(math.RoundToEven(v.Y))
}

// V2IsFinite reports whether neither component is NaN or Inf
func V2IsFinite(v Vec2) bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// V2To3 lifts a scene point into the z=0 plane
func V2To3(v Vec2) Vec3F {
	return Vec3F{X: v.X, Y: v.Y}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
