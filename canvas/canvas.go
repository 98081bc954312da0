// Package canvas defines the surface the renderer draws on and an
// off-screen implementation of it. The window and terminal subpackages
// put a Surface on screen.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a fixed-size drawing surface with an explicit flush to the
// display.
type Canvas interface {
	Size() (width, height int)
	SetTitle(title string)
	Fill(c color.RGBA)
	DrawPixel(x, y int, c color.RGBA)
	// DrawRect fills r clipped to the surface.
	DrawRect(r image.Rectangle, c color.RGBA)
	Flush()
}

// Refresher is implemented by canvases that must be redrawn while the
// explorer idles.
type Refresher interface {
	Refresh()
}

// Surface is an in-memory Canvas. Flush only counts.
type Surface struct {
	img     *image.RGBA
	title   string
	flushes int
}

func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) SetTitle(title string) { s.title = title }

func (s *Surface) Title() string { return s.title }

func (s *Surface) Fill(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) DrawPixel(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		return
	}
	s.img.SetRGBA(x, y, c)
}

func (s *Surface) DrawRect(r image.Rectangle, c color.RGBA) {
	r = r.Canon().Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *Surface) Flush() { s.flushes++ }

// Flushes returns how many times Flush was called.
func (s *Surface) Flushes() int { return s.flushes }

// Image exposes the backing image. Callers must not retain it across draws
// if they need a stable copy.
func (s *Surface) Image() *image.RGBA { return s.img }

// At returns the color of pixel (x, y).
func (s *Surface) At(x, y int) color.RGBA { return s.img.RGBAAt(x, y) }
