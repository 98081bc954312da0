package fractal

import "github.com/vaclav-dvorak/go-fractals/view"

// Vertices of the Sierpinski attractor triangle.
var Vertices = [3]view.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}

// Attractor is the running point of the chaos game. It is never reset
// between steps; the whole render is one trajectory.
type Attractor struct {
	P view.Point
}

// Step moves the point halfway towards vertex k (0..2) and returns it.
func (a *Attractor) Step(k int) view.Point {
	v := Vertices[k]
	a.P = view.Point{
		X: a.P.X + 0.5*(v.X-a.P.X),
		Y: a.P.Y + 0.5*(v.Y-a.P.Y),
	}
	return a.P
}
