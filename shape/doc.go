// Package shape holds the user-drawn closed curve that field sources are built from.
//
// A Boundary collects pointer positions in drawing order. Close turns it into a closed
// polyline, after which it exposes the sample set its kind calls for: the deduplicated
// vertex list for a Loop, or the scan-converted interior lattice for a Surface.
package shape
