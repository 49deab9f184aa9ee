package session

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/field-sketch/field"
	"github.com/lixenwraith/field-sketch/input"
	"github.com/lixenwraith/field-sketch/render"
	"github.com/lixenwraith/field-sketch/shape"
)

// DefaultExtrusionHeight is the depth surfaces are extruded to
const DefaultExtrusionHeight = 1.0

// Options configures a Controller, zero values fall back to defaults
type Options struct {
	Grid            field.Grid
	Params          field.Params
	ExtrusionHeight float64
	Sound           Sound
	Logger          *zap.Logger
}

// Controller runs the pointer-driven sketch lifecycle
// Idle -> Drawing -> Finalizing -> Idle, or Finalizing -> Discarded -> Idle on a bad shape
// All handlers run to completion on the caller's goroutine, no locking
type Controller struct {
	ctx      Context
	canvas   render.Canvas
	sampler  *field.Sampler
	controls *input.Controls
	params   field.Params
	height   float64
	sound    Sound
	log      *zap.Logger
}

// New creates a controller drawing onto canvas and binds it to controls
func New(canvas render.Canvas, controls *input.Controls, opts Options) *Controller {
	if opts.Grid == (field.Grid{}) {
		opts.Grid = field.DefaultGrid()
	}
	if opts.Params == (field.Params{}) {
		opts.Params = field.DefaultParams()
	}
	if opts.ExtrusionHeight <= 0 {
		opts.ExtrusionHeight = DefaultExtrusionHeight
	}
	if opts.Sound == nil {
		opts.Sound = nopSound{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	c := &Controller{
		ctx:      Context{State: StateIdle, Registry: render.NewRegistry(canvas)},
		canvas:   canvas,
		sampler:  field.NewSampler(opts.Grid, canvas),
		controls: controls,
		params:   opts.Params,
		height:   opts.ExtrusionHeight,
		sound:    opts.Sound,
		log:      opts.Logger.Named("session"),
	}

	controls.Field.Bind(c.onFieldChange)
	controls.Shape.Bind(c.onShapeChange)
	controls.Strength.Bind(c.onStrengthChange)
	controls.Restart.Bind(c.Restart)
	c.applyFieldConstraint(controls.Field.Value())
	return c
}

func (c *Controller) State() State                { return c.ctx.State }
func (c *Controller) Boundary() *shape.Boundary  { return c.ctx.Boundary }
func (c *Controller) Source() field.Source       { return c.ctx.Source }
func (c *Controller) Registry() *render.Registry { return c.ctx.Registry }

// Handle advances the lifecycle with one pointer event
// Events that have no edge from the current state are ignored
func (c *Controller) Handle(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerDown:
		c.begin()
	case input.PointerMove:
		if c.ctx.State == StateDrawing {
			c.extend(ev)
		}
	case input.PointerUp:
		if c.ctx.State == StateDrawing {
			c.finalize()
		}
	}
}

// Restart clears every tracked primitive and forgets the shape
func (c *Controller) Restart() {
	c.log.Debug("restart", zap.Stringer("state", c.ctx.State))
	c.ctx.reset()
	c.sound.PlayRestart()
}

func (c *Controller) transition(to State) {
	from := c.ctx.State
	if !CanTransition(from, to) {
		// Handler bug; the state is still applied
		c.log.Error("invalid transition", zap.Stringer("from", from), zap.Stringer("to", to))
	}
	c.ctx.State = to
	c.log.Debug("transition", zap.Stringer("from", from), zap.Stringer("to", to))
}

// begin clears the previous sketch and starts a new boundary from the current toggles
func (c *Controller) begin() {
	c.ctx.reset()

	kind := c.controls.Shape.Value()
	if c.controls.Field.Checked(field.KindMagnetic) {
		kind = shape.KindLoop
	}
	c.ctx.Boundary = shape.New(kind)
	c.transition(StateDrawing)
}

func (c *Controller) extend(ev input.PointerEvent) {
	c.ctx.Boundary.Append(ev.Pos)
	c.redrawBoundary()
	c.transition(StateDrawing)
}

func (c *Controller) redrawBoundary() {
	c.ctx.Registry.ClearCurves()
	c.ctx.Registry.TrackCurve(c.canvas.DrawCurve(c.ctx.Boundary.Points(), c.shapeColor()))
}

// finalize closes the boundary, extrudes surfaces and draws the field
func (c *Controller) finalize() {
	c.transition(StateFinalizing)
	b := c.ctx.Boundary

	if err := b.Close(); err != nil {
		c.discard(err)
		return
	}
	c.redrawBoundary()

	if b.Kind() == shape.KindSurface {
		c.ctx.Registry.TrackExtrusion(c.canvas.DrawExtrusion(b.Outline(), c.height, c.shapeColor()))
	}

	c.ctx.Source = field.New(c.controls.Field.Value(), b, c.params)
	c.transition(StateIdle)
	c.draw()
	c.sound.PlayFinalize()

	c.log.Debug("shape finalized",
		zap.Stringer("shape", b.Kind()),
		zap.Stringer("field", c.ctx.Source.Kind()),
		zap.Int("points", b.Len()),
		zap.Int("samples", len(b.SampleSet())),
		zap.Int("vectors", c.ctx.Registry.Vectors()),
	)
}

// discard drops a shape that could not be finalized, nothing is reported to the user
func (c *Controller) discard(err error) {
	c.transition(StateDiscarded)
	if errors.Is(err, shape.ErrInvalidBoundary) {
		c.log.Debug("shape discarded", zap.Error(err))
	} else {
		c.log.Warn("shape discarded", zap.Error(err))
	}
	c.ctx.reset()
	c.sound.PlayDiscard()
}

func (c *Controller) draw() {
	strength := c.controls.SourceStrength()
	handles, skipped := c.sampler.Draw(c.ctx.Source, strength)
	c.ctx.Registry.TrackVectors(handles...)
	if skipped > 0 {
		c.log.Warn("singular field samples skipped",
			zap.Int("skipped", skipped),
			zap.Float64("strength", strength),
		)
	}
}

func (c *Controller) shapeColor() tcell.Color {
	if c.controls.Field.Checked(field.KindMagnetic) {
		return render.RgbMagneticShape
	}
	return render.RgbElectricShape
}

// onStrengthChange redraws vectors only, the boundary and extrusion stay
func (c *Controller) onStrengthChange(v float64) {
	if c.ctx.State != StateIdle || c.ctx.Source == nil {
		return
	}
	c.ctx.Registry.ClearVectors()
	c.draw()
	c.log.Debug("strength changed", zap.Float64("value", v), zap.Int("vectors", c.ctx.Registry.Vectors()))
}

// onFieldChange applies the magnetic-loop constraint and clears the sketch
// A change mid-drag drops the shape being drawn
func (c *Controller) onFieldChange(k field.Kind) {
	c.applyFieldConstraint(k)
	c.log.Debug("field kind changed", zap.Stringer("field", k), zap.Stringer("state", c.ctx.State))
	c.ctx.reset()
}

// applyFieldConstraint forces loops for magnetic fields
func (c *Controller) applyFieldConstraint(k field.Kind) {
	magnetic := k == field.KindMagnetic
	if magnetic {
		c.controls.Shape.Set(shape.KindLoop)
	}
	c.controls.Shape.SetDisabled(shape.KindSurface, magnetic)
}

// onShapeChange only affects the next shape
func (c *Controller) onShapeChange(k shape.Kind) {
	c.log.Debug("shape kind changed", zap.Stringer("shape", k), zap.Stringer("state", c.ctx.State))
}
