package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/field-sketch/audio"
	"github.com/lixenwraith/field-sketch/config"
	"github.com/lixenwraith/field-sketch/field"
	"github.com/lixenwraith/field-sketch/input"
	"github.com/lixenwraith/field-sketch/render"
	"github.com/lixenwraith/field-sketch/session"
	"github.com/lixenwraith/field-sketch/shape"
)

// eventBuffer bounds the pump channel, matches the input burst of a fast drag
const eventBuffer = 100

// App is the terminal front end around a session.Controller
type App struct {
	screen   tcell.Screen
	cfg      *config.Config
	canvas   *render.ScreenCanvas
	machine  *input.Machine
	controls *input.Controls
	ctrl     *session.Controller
	sound    *audio.SoundManager
	log      *zap.Logger

	width, height int
	frame         time.Duration
	dirty         bool
}

// NewApp builds the UI over an initialized screen
func NewApp(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager, log *zap.Logger) *App {
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	w, h := screen.Size()
	a := &App{
		screen: screen,
		cfg:    cfg,
		sound:  sound,
		log:    log,
		width:  w,
		height: h,
		frame:  time.Second / time.Duration(cfg.Display.FrameRate),
		dirty:  true,
	}

	view := a.viewport()
	a.canvas = render.NewScreenCanvas(screen, view)
	a.machine = input.NewMachine(view)
	if kt, err := cfg.KeyTable(); err == nil {
		a.machine.SetKeyTable(kt)
	} else {
		log.Warn("key bindings rejected, using defaults", zap.Error(err))
	}
	a.controls = input.NewControls(cfg.SliderConfig())
	a.ctrl = session.New(a.canvas, a.controls, session.Options{
		Grid:            cfg.FieldGrid(),
		Params:          cfg.FieldParams(),
		ExtrusionHeight: cfg.Physics.ExtrusionHeight,
		Sound:           sound,
		Logger:          log,
	})
	return a
}

// viewport maps the sampling grid onto every row but the last, which holds the status line
func (a *App) viewport() render.Viewport {
	g := a.cfg.Grid
	return render.NewViewport(g.MinX, g.MinY, g.MaxX, g.MaxY, 0, 0, a.width, a.height-1)
}

// Run pumps terminal events until quit or ctx is done, then finalizes the screen
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	pumped := make(chan struct{})
	go func() {
		defer close(pumped)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	defer func() {
		close(done)
		a.screen.Fini()
		<-pumped
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			a.log.Info("stopping", zap.Error(ctx.Err()))
			return nil

		case ev := <-events:
			if !a.handle(ev) {
				a.log.Info("quit")
				return nil
			}

		case <-ticker.C:
			if a.dirty {
				a.draw()
			}
		}
	}
}

// handle applies one event, returning false on quit
func (a *App) handle(ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		a.resize(intent.Width, intent.Height)
	case input.IntentToggleMute:
		muted := a.sound.ToggleMute()
		a.log.Debug("mute toggled", zap.Bool("muted", muted))
	case input.IntentPointer:
		a.ctrl.Handle(intent.Pointer)
	default:
		a.controls.Apply(intent.Type)
	}
	a.dirty = true
	return true
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	view := a.viewport()
	a.canvas.SetViewport(view)
	a.machine.SetViewport(view)
	a.screen.Sync()
	a.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
}

func (a *App) draw() {
	a.canvas.SetStatus(a.status())
	a.canvas.Flush()
	a.dirty = false
}

// status renders the controls as colored segments, the checked option of each radio is lit
func (a *App) status() []render.Segment {
	c := a.controls
	option := func(text string, bg tcell.Color, checked, disabled bool) render.Segment {
		switch {
		case disabled:
			return render.Segment{Text: text, Fg: render.RgbHint, Bg: render.RgbDisabledBg}
		case checked:
			return render.Segment{Text: text, Fg: render.RgbStatusText, Bg: bg}
		default:
			return render.Segment{Text: text, Fg: render.RgbStatusText, Bg: render.Dim(bg, 0.5)}
		}
	}

	segs := []render.Segment{
		option(" [l]oop ", render.RgbLoopBg, c.Shape.Checked(shape.KindLoop), c.Shape.Disabled(shape.KindLoop)),
		option(" [s]urf ", render.RgbSurfaceBg, c.Shape.Checked(shape.KindSurface), c.Shape.Disabled(shape.KindSurface)),
		option(" [e]lec ", render.RgbElectricShape, c.Field.Checked(field.KindElectric), false),
		option(" [b]mag ", render.RgbMagneticShape, c.Field.Checked(field.KindMagnetic), false),
		{
			Text: fmt.Sprintf(" str %+.1f ", c.Strength.Value()),
			Fg:   render.RgbStatusText,
			Bg:   render.RgbStrengthBg,
		},
	}

	hint := " [r]estart [m]ute [q]uit "
	if a.sound.Muted() {
		hint = " [r]estart [m]uted [q]uit "
	}
	return append(segs, render.Segment{Text: hint, Fg: render.RgbHint, Bg: render.RgbBackground})
}
