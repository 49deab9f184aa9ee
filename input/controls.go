package input

import (
	"math"
	"slices"

	"github.com/lixenwraith/field-sketch/field"
	"github.com/lixenwraith/field-sketch/shape"
)

// Radio is a mutually exclusive option group
type Radio[T comparable] struct {
	name     string
	options  []T
	value    T
	disabled map[T]bool
	onChange []func(T)
}

// NewRadio creates a group with initial checked
func NewRadio[T comparable](name string, initial T, options ...T) *Radio[T] {
	if !slices.Contains(options, initial) {
		options = append([]T{initial}, options...)
	}
	return &Radio[T]{
		name:     name,
		options:  options,
		value:    initial,
		disabled: make(map[T]bool),
	}
}

func (r *Radio[T]) Name() string            { return r.name }
func (r *Radio[T]) Value() T                { return r.value }
func (r *Radio[T]) Checked(v T) bool        { return r.value == v }
func (r *Radio[T]) Disabled(v T) bool       { return r.disabled[v] }
func (r *Radio[T]) Bind(fn func(T))         { r.onChange = append(r.onChange, fn) }
func (r *Radio[T]) SetDisabled(v T, d bool) { r.disabled[v] = d }

// Select checks v as a user would, firing change callbacks
// Unknown, disabled or already checked options are refused
func (r *Radio[T]) Select(v T) bool {
	if !slices.Contains(r.options, v) || r.disabled[v] || r.value == v {
		return false
	}
	r.value = v
	for _, fn := range r.onChange {
		fn(v)
	}
	return true
}

// Set checks v without firing callbacks, for programmatic cross-constraints
func (r *Radio[T]) Set(v T) {
	if slices.Contains(r.options, v) {
		r.value = v
	}
}

// Slider is a continuous control snapped to step within [min, max]
type Slider struct {
	min, max, step float64
	value          float64
	onChange       []func(float64)
}

func NewSlider(min, max, step, value float64) *Slider {
	s := &Slider{min: min, max: max, step: step}
	s.value = s.snap(value)
	return s
}

func (s *Slider) Value() float64        { return s.value }
func (s *Slider) Min() float64          { return s.min }
func (s *Slider) Max() float64          { return s.max }
func (s *Slider) Step() float64         { return s.step }
func (s *Slider) Bind(fn func(float64)) { s.onChange = append(s.onChange, fn) }

// Set moves the slider, firing callbacks when the snapped value changes
func (s *Slider) Set(v float64) bool {
	v = s.snap(v)
	if v == s.value {
		return false
	}
	s.value = v
	for _, fn := range s.onChange {
		fn(v)
	}
	return true
}

// Nudge moves the slider by n steps
func (s *Slider) Nudge(n int) bool {
	return s.Set(s.value + float64(n)*s.step)
}

// snap rounds to the step grid anchored at zero and clamps to range
// The result is rounded to 1e-9 so repeated nudges compare equal
func (s *Slider) snap(v float64) float64 {
	if s.step > 0 {
		v = math.Round(v/s.step) * s.step
	}
	v = math.Min(math.Max(v, s.min), s.max)
	return math.Round(v*1e9) / 1e9
}

// Button fires callbacks on press
type Button struct {
	text    string
	onPress []func()
}

func NewButton(text string) *Button { return &Button{text: text} }

func (b *Button) Text() string   { return b.text }
func (b *Button) Bind(fn func()) { b.onPress = append(b.onPress, fn) }

func (b *Button) Press() {
	for _, fn := range b.onPress {
		fn()
	}
}

// SliderConfig bounds the strength slider
type SliderConfig struct {
	Min   float64
	Max   float64
	Step  float64
	Value float64
	Unit  float64 // converts slider value to charge or current
}

// DefaultSliderConfig mirrors a ±5.1 slider in 0.1 steps scaled by 1e-10
func DefaultSliderConfig() SliderConfig {
	return SliderConfig{Min: -5.1, Max: 5.1, Step: 0.1, Value: 1.0, Unit: 1e-10}
}

// Controls is the full UI surface the session reads and binds to
type Controls struct {
	Shape    *Radio[shape.Kind]
	Field    *Radio[field.Kind]
	Strength *Slider
	Restart  *Button
	unit     float64
}

// NewControls creates controls with Loop and Electric checked
func NewControls(cfg SliderConfig) *Controls {
	return &Controls{
		Shape:    NewRadio("shape", shape.KindLoop, shape.KindLoop, shape.KindSurface),
		Field:    NewRadio("field", field.KindElectric, field.KindElectric, field.KindMagnetic),
		Strength: NewSlider(cfg.Min, cfg.Max, cfg.Step, cfg.Value),
		Restart:  NewButton("Restart"),
		unit:     cfg.Unit,
	}
}

// SourceStrength is the slider value in physical units
func (c *Controls) SourceStrength() float64 {
	return c.Strength.Value() * c.unit
}

// Apply routes a control intent, reporting whether it was a control intent
func (c *Controls) Apply(it IntentType) bool {
	switch it {
	case IntentShapeLoop:
		c.Shape.Select(shape.KindLoop)
	case IntentShapeSurface:
		c.Shape.Select(shape.KindSurface)
	case IntentFieldElectric:
		c.Field.Select(field.KindElectric)
	case IntentFieldMagnetic:
		c.Field.Select(field.KindMagnetic)
	case IntentStrengthUp:
		c.Strength.Nudge(1)
	case IntentStrengthDown:
		c.Strength.Nudge(-1)
	case IntentRestart:
		c.Restart.Press()
	default:
		return false
	}
	return true
}
