// Package view maps a rectangular region of the complex plane onto the pixel
// grid of a fixed-size canvas.
package view

import (
	"fmt"
	"math"
)

// Direction of a pan. Up shows content with larger plane Y.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Point is a position in plane space.
type Point struct {
	X, Y float64
}

// View is the plane region currently shown on a canvas of Width x Height
// pixels. Ranges are always stored low to high.
type View struct {
	xMin, xMax float64
	yMin, yMax float64
	width      int
	height     int
}

// New returns a view over x and y for a canvas of the given size. Range
// endpoints may be passed in any order.
func New(width, height int, x, y [2]float64) *View {
	v := &View{width: width, height: height}
	v.SetRange(x, y)
	return v
}

// SetRange replaces both plane ranges.
func (v *View) SetRange(x, y [2]float64) {
	v.xMin, v.xMax = math.Min(x[0], x[1]), math.Max(x[0], x[1])
	v.yMin, v.yMax = math.Min(y[0], y[1]), math.Max(y[0], y[1])
}

func (v *View) X() (lo, hi float64) { return v.xMin, v.xMax }
func (v *View) Y() (lo, hi float64) { return v.yMin, v.yMax }

// Canvas returns the pixel size of the canvas this view maps onto.
func (v *View) Canvas() (width, height int) { return v.width, v.height }

func (v *View) SizeX() float64 { return v.xMax - v.xMin }
func (v *View) SizeY() float64 { return v.yMax - v.yMin }

func (v *View) Center() Point {
	return Point{X: v.xMin + v.SizeX()/2, Y: v.yMin + v.SizeY()/2}
}

// Rectify recomputes the x range from the y range so that the plane region
// has the same aspect ratio as the canvas. The x center is preserved.
func (v *View) Rectify() {
	w := v.SizeY() / float64(v.height) * float64(v.width)
	mx := v.Center().X
	v.xMin, v.xMax = mx-w/2, mx+w/2
}

// Zoom divides both extents by factor around the view center.
// Factors <= 0 leave the view untouched.
func (v *View) Zoom(factor float64) {
	v.ZoomAt(factor, v.Center())
}

// ZoomAt divides both extents by factor around p.
func (v *View) ZoomAt(factor float64, p Point) {
	if factor <= 0 {
		return
	}
	sx, sy := v.SizeX()/factor, v.SizeY()/factor
	v.xMin, v.xMax = p.X-sx/2, p.X+sx/2
	v.yMin, v.yMax = p.Y-sy/2, p.Y+sy/2
}

// Move translates the view by fraction of its extent along d.
func (v *View) Move(d Direction, fraction float64) {
	dx, dy := v.SizeX()*fraction, v.SizeY()*fraction
	switch d {
	case Up:
		v.yMin, v.yMax = v.yMin+dy, v.yMax+dy
	case Down:
		v.yMin, v.yMax = v.yMin-dy, v.yMax-dy
	case Left:
		v.xMin, v.xMax = v.xMin-dx, v.xMax-dx
	case Right:
		v.xMin, v.xMax = v.xMin+dx, v.xMax+dx
	}
}

// PlaneToPixel maps p to pixel coordinates. Pixel Y grows downwards. The
// result is not clamped; points outside the view land outside the canvas.
func (v *View) PlaneToPixel(p Point) (x, y float64) {
	x = (p.X - v.xMin) / v.SizeX() * float64(v.width)
	y = (v.yMax - p.Y) / v.SizeY() * float64(v.height)
	return x, y
}

// PixelToPlane is the inverse of PlaneToPixel.
func (v *View) PixelToPlane(x, y float64) Point {
	return Point{
		X: v.xMin + x/float64(v.width)*v.SizeX(),
		Y: v.yMax - y/float64(v.height)*v.SizeY(),
	}
}

func (v *View) String() string {
	return fmt.Sprintf("( x:(%g, %g), y:(%g, %g) )", v.xMin, v.xMax, v.yMin, v.yMax)
}
