// Package render draws fractal sessions progressively onto a canvas.
//
// Escape-time fractals are refined by random sampling with a shrinking
// brush, the logistic map is scanned column by column at halving bar
// widths, and the Sierpinski triangle is drawn by walking its attractor.
// Every strategy polls the input source once per sample or column and
// suspends as soon as an action is pending. Progress is kept in the
// Renderer, so the next Render call continues where the last one stopped.
package render

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/vaclav-dvorak/go-fractals/canvas"
	"github.com/vaclav-dvorak/go-fractals/fractal"
	"github.com/vaclav-dvorak/go-fractals/input"
	"github.com/vaclav-dvorak/go-fractals/view"
)

// Config holds the tuning of the sampling strategies. The refinement
// schedule values are empirical.
type Config struct {
	// Steps is the sample budget of one random refinement pass.
	Steps int `koanf:"steps"`
	// The brush side is min(width, height) / (step/ShrinkSpeed + InitialShrink).
	ShrinkSpeed   float64 `koanf:"shrink_speed"`
	InitialShrink float64 `koanf:"initial_shrink"`
	// UpdateInterval is the number of samples between flushes.
	UpdateInterval int `koanf:"update_interval"`

	ScanMinBars        int  `koanf:"scan_min_bars"`
	ScanUpdateInterval int  `koanf:"scan_update_interval"`
	ScanWarmup         int  `koanf:"scan_warmup"`
	ScanInterpolate    bool `koanf:"scan_interpolate"`

	AttractorUpdateInterval int `koanf:"attractor_update_interval"`

	// Seed of the sampling RNG; 0 seeds from the clock.
	Seed int64 `koanf:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Steps:                   500000,
		ShrinkSpeed:             750,
		InitialShrink:           10,
		UpdateInterval:          1000,
		ScanMinBars:             50,
		ScanUpdateInterval:      50,
		ScanWarmup:              100,
		AttractorUpdateInterval: 10000,
	}
}

// Sample is one classified point ready to be painted.
type Sample struct {
	P     view.Point
	Index int
	Color color.RGBA
}

// Renderer runs the sampling strategies and remembers how far the current
// pass got. It is not safe for concurrent use.
type Renderer struct {
	cfg Config
	rng *rand.Rand

	step int

	start int
	width int
	col   int
	drawn int

	walker fractal.Attractor
	done   bool

	images []view.Point
}

func New(cfg Config) *Renderer {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.UpdateInterval < 1 {
		cfg.UpdateInterval = 1
	}
	if cfg.ScanUpdateInterval < 1 {
		cfg.ScanUpdateInterval = 1
	}
	if cfg.AttractorUpdateInterval < 1 {
		cfg.AttractorUpdateInterval = 1
	}
	if cfg.ShrinkSpeed <= 0 {
		cfg.ShrinkSpeed = 1
	}
	if cfg.InitialShrink < 1 {
		cfg.InitialShrink = 1
	}
	return &Renderer{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		images: make([]view.Point, 0, 4),
	}
}

// Reset forgets all progress, including the attractor trajectory. Call it
// whenever the canvas is cleared.
func (r *Renderer) Reset() {
	r.restart()
	r.walker = fractal.Attractor{}
}

func (r *Renderer) restart() {
	r.step = 0
	r.start, r.width, r.col, r.drawn = 0, 0, 0, 0
	r.done = false
}

// Done reports whether the last pass ran to completion.
func (r *Renderer) Done() bool { return r.done }

// Render continues the current pass of s onto c. It returns the pending
// action and true if it was interrupted, or false once the pass is
// complete. Calling Render after a completed pass starts a new pass over
// the existing image.
func (r *Renderer) Render(s *fractal.Session, c canvas.Canvas, src input.Source) (input.Action, bool) {
	if r.done {
		r.restart()
	}

	var (
		a           input.Action
		interrupted bool
	)
	switch s.Params.(type) {
	case fractal.LogisticParams:
		a, interrupted = r.scan(s, c, src)
	case fractal.SierpinskiParams:
		a, interrupted = r.walk(s, c, src)
	default:
		a, interrupted = r.refine(s, c, src)
	}
	if interrupted {
		return a, true
	}
	r.done = true
	c.Flush()
	return input.None, false
}

// refine paints random samples as squares that shrink as the pass goes on.
func (r *Renderer) refine(s *fractal.Session, c canvas.Canvas, src input.Source) (input.Action, bool) {
	w, h := c.Size()
	brush := float64(min(w, h))

	for ; r.step < r.cfg.Steps; r.step++ {
		if a, ok := src.Poll(); ok {
			return a, true
		}

		px, py := r.rng.Intn(w), r.rng.Intn(h)
		p := s.View.PixelToPlane(float64(px)+0.5, float64(py)+0.5)

		var smp Sample
		smp.P, r.images = mirror(s.Params, p, r.images[:0])
		smp.Index = s.Classify(smp.P)
		smp.Color = s.IndexColor(smp.Index)

		size := brush / (float64(r.step)/r.cfg.ShrinkSpeed + r.cfg.InitialShrink)
		for _, q := range r.images {
			square(c, s.View, q, size, smp.Color)
		}

		if r.step%r.cfg.UpdateInterval == 0 {
			c.Flush()
		}
	}
	return input.None, false
}

// mirror folds p onto the representative of its symmetry class and
// appends every image of the representative, itself included, to buf.
// One of the images is always p.
func mirror(params fractal.Params, p view.Point, buf []view.Point) (view.Point, []view.Point) {
	switch params.(type) {
	case fractal.MandelbrotParams:
		rep := view.Point{X: p.X, Y: -math.Abs(p.Y)}
		return rep, append(buf, rep, view.Point{X: rep.X, Y: -rep.Y})
	case fractal.MandelboxParams:
		rep := view.Point{X: -math.Abs(p.X), Y: -math.Abs(p.Y)}
		return rep, append(buf,
			rep,
			view.Point{X: -rep.X, Y: rep.Y},
			view.Point{X: rep.X, Y: -rep.Y},
			view.Point{X: -rep.X, Y: -rep.Y},
		)
	case fractal.JuliaParams:
		rep := p
		if rep.Y > 0 || (rep.Y == 0 && rep.X > 0) {
			rep = view.Point{X: -p.X, Y: -p.Y}
		}
		return rep, append(buf, rep, view.Point{X: -rep.X, Y: -rep.Y})
	}
	return p, append(buf, p)
}

// maxPixel bounds pixel coordinates before integer conversion; anything
// further out is off any canvas.
const maxPixel = 1 << 30

// square paints a size x size square centered on plane point p.
func square(c canvas.Canvas, v *view.View, p view.Point, size float64, col color.RGBA) {
	x, y := v.PlaneToPixel(p)
	if math.Abs(x) > maxPixel || math.Abs(y) > maxPixel || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	n := int(size)
	if n < 1 {
		n = 1
	}
	half := float64(n) / 2
	x0, y0 := int(math.Floor(x-half)), int(math.Floor(y-half))
	c.DrawRect(image.Rect(x0, y0, x0+n, y0+n), col)
}

// scan renders the bifurcation diagram one column at a time, starting with
// wide bars and halving the width until every column has been computed
// exactly once.
func (r *Renderer) scan(s *fractal.Session, c canvas.Canvas, src input.Source) (input.Action, bool) {
	w, h := c.Size()
	if r.start == 0 {
		r.start = startWidth(w, r.cfg.ScanMinBars)
		r.width = r.start
		r.col = 0
	}

	xMin, _ := s.View.X()
	yMin, yMax := s.View.Y()
	colWidth := s.View.SizeX() / float64(w)
	column := fractal.Column{
		Rows:        h,
		YMin:        yMin,
		YMax:        yMax,
		Iterations:  h * s.Depth(),
		Warmup:      r.cfg.ScanWarmup,
		Interpolate: r.cfg.ScanInterpolate,
	}

	for r.width >= 1 {
		for ; r.col < w; r.col += r.width {
			if covered(r.col, r.width, r.start) {
				continue
			}
			if a, ok := src.Poll(); ok {
				return a, true
			}

			hist := column.Histogram(xMin + (float64(r.col)+0.5)*colWidth)
			drawColumn(c, s, hist, r.col, r.width)

			r.drawn++
			if r.drawn%r.cfg.ScanUpdateInterval == 0 {
				c.Flush()
			}
		}
		c.Flush()
		r.width /= 2
		r.col = 0
	}
	return input.None, false
}

// startWidth is the largest power of two bar width that still gives at
// least minBars bars across width pixels.
func startWidth(width, minBars int) int {
	if minBars < 1 {
		minBars = 1
	}
	bar := 1
	for width/(bar*2) >= minBars {
		bar *= 2
	}
	return bar
}

// covered reports whether col was already drawn at a coarser level.
func covered(col, width, start int) bool {
	for s := width * 2; s <= start; s *= 2 {
		if col%s == 0 {
			return true
		}
	}
	return false
}

// drawColumn paints hist normalized by its own maximum as a bar of the
// given width. Runs of equal color are painted as one rectangle.
func drawColumn(c canvas.Canvas, s *fractal.Session, hist []float64, col, width int) {
	peak := 1.0
	for _, v := range hist {
		peak = math.Max(peak, v)
	}

	runStart := 0
	var runColor color.RGBA
	for row, v := range hist {
		cl := s.DensityColor(v / peak)
		if row == 0 {
			runColor = cl
			continue
		}
		if cl != runColor {
			c.DrawRect(image.Rect(col, runStart, col+width, row), runColor)
			runStart, runColor = row, cl
		}
	}
	if len(hist) > 0 {
		c.DrawRect(image.Rect(col, runStart, col+width, len(hist)), runColor)
	}
}

// walk plays the chaos game: one continuous trajectory, one pixel per step.
func (r *Renderer) walk(s *fractal.Session, c canvas.Canvas, src input.Source) (input.Action, bool) {
	w, h := c.Size()
	for ; r.step < s.Depth(); r.step++ {
		if a, ok := src.Poll(); ok {
			return a, true
		}

		k := r.rng.Intn(len(fractal.Vertices))
		p := r.walker.Step(k)
		x, y := s.View.PlaneToPixel(p)
		px, py := int(math.Floor(x)), int(math.Floor(y))
		if px >= 0 && px < w && py >= 0 && py < h {
			c.DrawPixel(px, py, s.VertexColor(k))
		}

		if r.step%r.cfg.AttractorUpdateInterval == 0 {
			c.Flush()
		}
	}
	return input.None, false
}
