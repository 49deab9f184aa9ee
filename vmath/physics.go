package vmath

import "math"

// InverseSquare returns k·r̂/|r|² at point at for a source at src, r = at - src
// minDist floors |r|; with minDist 0 a coincident point yields NaN components
func InverseSquare(at, src Vec2, k, minDist float64) Vec2 {
	r := V2Sub(at, src)
	dist := math.Max(V2Mag(r), minDist)
	return V2Scale(V2Normalize(r), k/(dist*dist))
}

// SegmentBiotSavart returns (dL × r̂)/max(|r|, rMin)² for the segment a->b, r measured from a
// The current and μ0/4π factors are left to the caller
func SegmentBiotSavart(at, a, b Vec3F, rMin float64) Vec3F {
	r := V3FSub(at, a)
	dist := math.Max(V3FMag(r), rMin)
	dB := V3FCross(V3FSub(b, a), V3FNormalize(r))
	return V3FScale(dB, 1/(dist*dist))
}
