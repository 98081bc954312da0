// Package explorer drives one fractal session: it alternates between
// rendering and idling and applies user actions to the session.
package explorer

import (
	"context"
	"log"
	"time"

	"github.com/vaclav-dvorak/go-fractals/canvas"
	"github.com/vaclav-dvorak/go-fractals/fractal"
	"github.com/vaclav-dvorak/go-fractals/input"
	"github.com/vaclav-dvorak/go-fractals/render"
	"github.com/vaclav-dvorak/go-fractals/view"
)

// State of the render loop.
type State int

const (
	Rendering State = iota
	Idle
)

func (s State) String() string {
	if s == Idle {
		return "idle"
	}
	return "rendering"
}

// Config tunes navigation and the idle loop.
type Config struct {
	// IdleFPS is how often input is checked while idle.
	IdleFPS int `koanf:"idle_fps"`
	// ZoomFactor divides the view extents on zoom in.
	ZoomFactor float64 `koanf:"zoom_factor"`
	// MoveFraction of the view extent covered by one move.
	MoveFraction float64 `koanf:"move_fraction"`
}

func DefaultConfig() Config {
	return Config{IdleFPS: 60, ZoomFactor: 2, MoveFraction: 0.25}
}

// Notifier is told when a render pass completes.
type Notifier interface {
	RenderDone()
}

// Explorer owns the session, the renderer and the canvas. It is driven
// from a single goroutine.
type Explorer struct {
	cfg      Config
	canvas   canvas.Canvas
	source   input.Source
	presets  fractal.Presets
	renderer *render.Renderer
	session  *fractal.Session
	notifier Notifier

	state   State
	started time.Time
}

// New opens a session of kind k on c and starts in the Rendering state.
func New(c canvas.Canvas, src input.Source, presets fractal.Presets, k fractal.Kind, rcfg render.Config, cfg Config) *Explorer {
	if cfg.IdleFPS < 1 {
		cfg.IdleFPS = 60
	}
	e := &Explorer{
		cfg:      cfg,
		canvas:   c,
		source:   src,
		presets:  presets,
		renderer: render.New(rcfg),
	}
	e.open(k)
	e.enter(Rendering)
	return e
}

func (e *Explorer) SetNotifier(n Notifier) { e.notifier = n }

func (e *Explorer) Session() *fractal.Session { return e.session }

func (e *Explorer) State() State { return e.state }

// Run loops until a Quit action arrives or ctx is done.
func (e *Explorer) Run(ctx context.Context) {
	for !e.Step(ctx) {
	}
}

// Step performs one transition of the render loop: it renders until the
// pass completes or an action arrives, or idles until an action arrives,
// then applies the action. It reports true on Quit.
func (e *Explorer) Step(ctx context.Context) bool {
	src := contextSource{ctx: ctx, src: e.source}
	if e.session.Paused {
		return e.Handle(e.idle(ctx, src))
	}

	e.enter(Rendering)
	a, interrupted := e.renderer.Render(e.session, e.canvas, src)
	if interrupted {
		return e.Handle(a)
	}

	e.session.Paused = true
	log.Printf("%s done\ntook: %s", e.session.Kind(), time.Since(e.started))
	if e.notifier != nil {
		e.notifier.RenderDone()
	}
	return false
}

func (e *Explorer) enter(s State) {
	e.state = s
	e.canvas.SetTitle(e.session.Title(s == Rendering))
}

// idle shows the current image and waits for the next action, checking
// IdleFPS times per second.
func (e *Explorer) idle(ctx context.Context, src input.Source) input.Action {
	e.enter(Idle)
	e.canvas.Flush()

	ticker := time.NewTicker(time.Second / time.Duration(e.cfg.IdleFPS))
	defer ticker.Stop()
	for {
		if a, ok := src.Poll(); ok {
			return a
		}
		select {
		case <-ctx.Done():
			return input.Quit
		case <-ticker.C:
			if r, ok := e.canvas.(canvas.Refresher); ok {
				r.Refresh()
			}
		}
	}
}

var moves = map[input.Action]view.Direction{
	input.MoveUp:    view.Up,
	input.MoveDown:  view.Down,
	input.MoveLeft:  view.Left,
	input.MoveRight: view.Right,
}

var constantMoves = map[input.Action]view.Direction{
	input.ConstantUp:    view.Up,
	input.ConstantDown:  view.Down,
	input.ConstantLeft:  view.Left,
	input.ConstantRight: view.Right,
}

// Handle applies a to the session. Actions that change the mapping or the
// classifier parameters clear the canvas and restart rendering; pausing
// keeps the image. It reports true for Quit.
func (e *Explorer) Handle(a input.Action) bool {
	s := e.session
	switch a {
	case input.Quit:
		return true
	case input.TogglePause:
		s.Paused = !s.Paused
		log.Printf("%s paused: %v", s.Kind(), s.Paused)
	case input.SwitchFractal:
		e.open(s.Kind().Next())
	case input.Reset:
		e.open(s.Kind())
	case input.ZoomIn, input.ZoomOut:
		f := e.cfg.ZoomFactor
		if a == input.ZoomOut && f > 0 {
			f = 1 / f
		}
		s.View.Zoom(f)
		log.Printf("View after zoom (factor=%g): %v", f, s.View)
		e.redraw()
	case input.MoveUp, input.MoveDown, input.MoveLeft, input.MoveRight:
		s.View.Move(moves[a], e.cfg.MoveFraction)
		log.Printf("View after move %v: %v", moves[a], s.View)
		e.redraw()
	case input.IncreaseDepth:
		if s.SetDepth(s.Depth() * 2) {
			e.redraw()
		}
	case input.DecreaseDepth:
		if s.SetDepth(s.Depth() / 2) {
			e.redraw()
		}
	case input.ToggleColor:
		s.Color = !s.Color
		e.redraw()
	case input.ConstantUp, input.ConstantDown, input.ConstantLeft, input.ConstantRight:
		if s.MoveConstant(constantMoves[a]) {
			e.redraw()
		}
	}
	return false
}

func (e *Explorer) open(k fractal.Kind) {
	w, h := e.canvas.Size()
	e.session = fractal.NewSession(k, e.presets.For(k), w, h)
	e.redraw()
}

func (e *Explorer) redraw() {
	e.canvas.Fill(e.session.Background())
	e.renderer.Reset()
	e.session.Paused = false
	e.started = time.Now()
}

// contextSource reports Quit once ctx is done.
type contextSource struct {
	ctx context.Context
	src input.Source
}

func (c contextSource) Poll() (input.Action, bool) {
	if c.ctx.Err() != nil {
		return input.Quit, true
	}
	return c.src.Poll()
}
