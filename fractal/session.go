package fractal

import (
	"image/color"
	"log"

	"github.com/vaclav-dvorak/go-fractals/palette"
	"github.com/vaclav-dvorak/go-fractals/view"
)

// Params is the kind-specific payload of a session. The set of
// implementations is closed; the renderer switches on the concrete type.
type Params interface {
	Kind() Kind
	params()
}

type MandelbrotParams struct {
	Threshold float64
}

type JuliaParams struct {
	Constant  view.Point
	Threshold float64
	// ConstantStep is the fraction of the view extent one constant move covers.
	ConstantStep float64
}

type MandelboxParams struct {
	Scale     float64
	Threshold float64
}

type LogisticParams struct{}

type SierpinskiParams struct{}

func (MandelbrotParams) Kind() Kind { return Mandelbrot }
func (JuliaParams) Kind() Kind      { return Julia }
func (MandelboxParams) Kind() Kind  { return Mandelbox }
func (LogisticParams) Kind() Kind   { return LogisticMap }
func (SierpinskiParams) Kind() Kind { return Sierpinski }

func (MandelbrotParams) params() {}
func (JuliaParams) params()      {}
func (MandelboxParams) params()  {}
func (LogisticParams) params()   {}
func (SierpinskiParams) params() {}

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Session is one active fractal: its view, depth, colors and parameters.
type Session struct {
	View   *view.View
	Params Params
	// Paused is set while idling, whether requested or because the image is done.
	Paused bool
	Color  bool

	depth int
	// table is nil for kinds that do not color by escape index.
	table *palette.Table
}

// NewSession builds a session of kind k from preset p for a canvas of the
// given size.
func NewSession(k Kind, p Preset, width, height int) *Session {
	v := view.New(width, height, p.xRange(), p.yRange())
	if k != LogisticMap {
		v.Rectify()
	}

	var params Params
	switch k {
	case Julia:
		params = JuliaParams{
			Constant:     p.constant(),
			Threshold:    p.Threshold,
			ConstantStep: p.ConstantStep,
		}
	case Mandelbox:
		params = MandelboxParams{Scale: p.Scale, Threshold: p.Threshold}
	case LogisticMap:
		params = LogisticParams{}
	case Sierpinski:
		params = SierpinskiParams{}
	default:
		params = MandelbrotParams{Threshold: p.Threshold}
	}

	s := &Session{
		View:   v,
		Params: params,
		Color:  p.Color,
		depth:  clampDepth(k, p.Depth),
	}
	if k.EscapeTime() {
		s.table = palette.New(s.depth, 2)
	}
	log.Printf("%s session: depth %d, view %v", k, s.depth, v)
	return s
}

// depthRange bounds the depth of kind k. Escape-time depth sizes the color
// table, logistic depth multiplies the iterations of every column and
// Sierpinski depth is the number of attractor steps.
func depthRange(k Kind) (lo, hi int) {
	switch k {
	case LogisticMap:
		return 1, 1 << 10
	case Sierpinski:
		return 1, 1 << 30
	}
	return 2, 1 << 20
}

func clampDepth(k Kind, depth int) int {
	lo, hi := depthRange(k)
	return max(lo, min(depth, hi))
}

func (s *Session) Kind() Kind { return s.Params.Kind() }

func (s *Session) Depth() int { return s.depth }

// SetDepth clamps depth to the kind's range and regenerates the colors
// when it changed. It reports whether the depth changed.
func (s *Session) SetDepth(depth int) bool {
	depth = clampDepth(s.Kind(), depth)
	if depth == s.depth {
		return false
	}
	s.depth = depth
	if s.table != nil {
		s.table.SetDepth(depth)
	}
	log.Printf("%s depth: %d", s.Kind(), s.depth)
	return true
}

// Classify returns the escape index of p for escape-time kinds and 0 for
// the others.
func (s *Session) Classify(p view.Point) int {
	switch params := s.Params.(type) {
	case MandelbrotParams:
		return MandelbrotIndex(p, s.depth, params.Threshold)
	case JuliaParams:
		return JuliaIndex(p, params.Constant, s.depth, params.Threshold)
	case MandelboxParams:
		return MandelboxIndex(p, s.depth, params.Scale, params.Threshold)
	}
	return 0
}

// IndexColor maps an escape index to the sweep color, or to gray when
// color is off.
func (s *Session) IndexColor(i int) color.RGBA {
	if s.Color && s.table != nil {
		return s.table.At(i)
	}
	return palette.Gray(float64(i) / float64(s.depth))
}

// DensityColor maps a normalized visit density in [0, 1] to a color: the
// sweep when color is on, otherwise dark for dense rows on white.
func (s *Session) DensityColor(val float64) color.RGBA {
	if s.Color {
		return palette.Sweep(val)
	}
	return palette.Gray(1 - val)
}

// VertexColor is the color of an attractor point that moved towards
// vertex k.
func (s *Session) VertexColor(k int) color.RGBA {
	if s.Color {
		return palette.Sweep(float64(k+1) / 4)
	}
	return black
}

// Background is the fill color of a freshly cleared canvas.
func (s *Session) Background() color.RGBA {
	if s.Kind().EscapeTime() {
		return black
	}
	return white
}

// MoveConstant shifts the Julia constant by ConstantStep of the view extent.
// It reports false for other kinds.
func (s *Session) MoveConstant(d view.Direction) bool {
	jp, ok := s.Params.(JuliaParams)
	if !ok {
		return false
	}
	dx, dy := s.View.SizeX()*jp.ConstantStep, s.View.SizeY()*jp.ConstantStep
	switch d {
	case view.Up:
		jp.Constant.Y += dy
	case view.Down:
		jp.Constant.Y -= dy
	case view.Left:
		jp.Constant.X -= dx
	case view.Right:
		jp.Constant.X += dx
	}
	s.Params = jp
	log.Printf("Julia constant: (%g, %g)", jp.Constant.X, jp.Constant.Y)
	return true
}

// Title is the window title for the current render state.
func (s *Session) Title(rendering bool) string {
	if rendering {
		return s.Kind().String() + " (rendering)"
	}
	return s.Kind().String()
}
