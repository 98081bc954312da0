// Package fractal holds the per-kind point classifiers and the session
// state of one active fractal.
package fractal

import (
	"math"

	"github.com/vaclav-dvorak/go-fractals/view"
)

// Escape-time classifiers return the index of the iteration on which the
// orbit left the threshold box, or depth-1 if it never did. The result is
// always a valid color table index for depth >= 1.

// MandelbrotIndex iterates z = z^2 + c from z = 0 with c = p.
func MandelbrotIndex(p view.Point, depth int, threshold float64) int {
	return escape(0, 0, p.X, p.Y, depth, threshold)
}

// JuliaIndex iterates z = z^2 + c from z = p with a fixed c.
func JuliaIndex(p, c view.Point, depth int, threshold float64) int {
	return escape(p.X, p.Y, c.X, c.Y, depth, threshold)
}

func escape(x, y, cx, cy float64, depth int, threshold float64) int {
	i := 0
	for ; i < depth; i++ {
		x, y = x*x-y*y+cx, 2*x*y+cy
		if math.Abs(x) > threshold || math.Abs(y) > threshold {
			return i
		}
	}
	return max(i-1, 0)
}

// MandelboxIndex applies box fold, ball fold, scale and offset by p per
// iteration with the same axis threshold test as MandelbrotIndex.
func MandelboxIndex(p view.Point, depth int, scale, threshold float64) int {
	x, y := p.X, p.Y
	i := 0
	for ; i < depth; i++ {
		x, y = BallFold(BoxFold(x), BoxFold(y))
		x, y = x*scale+p.X, y*scale+p.Y
		if math.Abs(x) > threshold || math.Abs(y) > threshold {
			return i
		}
	}
	return max(i-1, 0)
}

// BoxFold reflects v back into [-1, 1].
func BoxFold(v float64) float64 {
	switch {
	case v > 1:
		return 2 - v
	case v < -1:
		return -2 - v
	}
	return v
}

// BallFold inverts points inside the unit circle; the inner radius 0.5
// scales linearly by 4.
func BallFold(x, y float64) (float64, float64) {
	r2 := x*x + y*y
	switch {
	case r2 < 0.25:
		return x * 4, y * 4
	case r2 < 1:
		return x / r2, y / r2
	}
	return x, y
}
