package render

// Registry tracks every handle produced for the current sketch so it can be cleared
// Vectors are cleared on redraw, curves and extrusions only when the sketch is dropped
type Registry struct {
	canvas     Canvas
	vectors    []Handle
	curves     []Handle
	extrusions []Handle
}

func NewRegistry(canvas Canvas) *Registry {
	return &Registry{canvas: canvas}
}

func (r *Registry) TrackVectors(hs ...Handle) { r.vectors = append(r.vectors, hs...) }
func (r *Registry) TrackCurve(h Handle)       { r.curves = append(r.curves, h) }
func (r *Registry) TrackExtrusion(h Handle)   { r.extrusions = append(r.extrusions, h) }
func (r *Registry) Vectors() int              { return len(r.vectors) }
func (r *Registry) Curves() int               { return len(r.curves) }
func (r *Registry) Extrusions() int           { return len(r.extrusions) }

// Empty reports whether nothing is tracked
func (r *Registry) Empty() bool {
	return len(r.vectors) == 0 && len(r.curves) == 0 && len(r.extrusions) == 0
}

// ClearVectors hides and forgets field glyphs, leaving the shape in place
func (r *Registry) ClearVectors() {
	r.vectors = r.hideAll(r.vectors)
}

// ClearCurves hides and forgets boundary polylines
func (r *Registry) ClearCurves() {
	r.curves = r.hideAll(r.curves)
}

// ClearAll hides and forgets everything
func (r *Registry) ClearAll() {
	r.vectors = r.hideAll(r.vectors)
	r.curves = r.hideAll(r.curves)
	r.extrusions = r.hideAll(r.extrusions)
}

func (r *Registry) hideAll(hs []Handle) []Handle {
	for _, h := range hs {
		r.canvas.Hide(h)
	}
	return hs[:0]
}
