package view

import (
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func sameRanges(t *testing.T, got, want *View) {
	t.Helper()
	gx0, gx1 := got.X()
	wx0, wx1 := want.X()
	gy0, gy1 := got.Y()
	wy0, wy1 := want.Y()
	if !near(gx0, wx0) || !near(gx1, wx1) || !near(gy0, wy0) || !near(gy1, wy1) {
		t.Errorf("ranges differ: got %v, want %v", got, want)
	}
}

func TestNewNormalizesRanges(t *testing.T) {
	v := New(800, 600, [2]float64{1, -2}, [2]float64{1.5, -1.5})
	x0, x1 := v.X()
	y0, y1 := v.Y()
	if x0 != -2 || x1 != 1 {
		t.Errorf("x range = (%g, %g), want (-2, 1)", x0, x1)
	}
	if y0 != -1.5 || y1 != 1.5 {
		t.Errorf("y range = (%g, %g), want (-1.5, 1.5)", y0, y1)
	}
}

func TestRectify(t *testing.T) {
	v := New(800, 600, [2]float64{-2, 1}, [2]float64{-1.5, 1.5})
	v.Rectify()

	if got, want := v.SizeX()/v.SizeY(), 800.0/600.0; !near(got, want) {
		t.Errorf("aspect = %g, want %g", got, want)
	}
	if c := v.Center(); !near(c.X, -0.5) || !near(c.Y, 0) {
		t.Errorf("center moved to %+v", c)
	}

	once := *v
	v.Rectify()
	sameRanges(t, v, &once)
}

func TestZoomRoundTrip(t *testing.T) {
	v := New(800, 600, [2]float64{-2, 1}, [2]float64{-1.5, 1.5})
	orig := *v

	v.Zoom(2)
	if !near(v.SizeX(), orig.SizeX()/2) || !near(v.SizeY(), orig.SizeY()/2) {
		t.Errorf("zoom(2) sizes = %g x %g", v.SizeX(), v.SizeY())
	}
	v.Zoom(0.5)
	sameRanges(t, v, &orig)
}

func TestZoomAt(t *testing.T) {
	v := New(100, 100, [2]float64{-1, 1}, [2]float64{-1, 1})
	v.ZoomAt(4, Point{X: 0.5, Y: -0.5})
	want := New(100, 100, [2]float64{0.25, 0.75}, [2]float64{-0.75, -0.25})
	sameRanges(t, v, want)
}

func TestZoomNonPositiveFactorIsNoop(t *testing.T) {
	for _, f := range []float64{0, -1, -0.5} {
		v := New(800, 600, [2]float64{-2, 1}, [2]float64{-1.5, 1.5})
		orig := *v
		v.Zoom(f)
		if *v != orig {
			t.Errorf("zoom(%g) changed view to %v", f, v)
		}
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		dx, dy float64
	}{
		{"up", Up, 0, 0.5},
		{"down", Down, 0, -0.5},
		{"left", Left, -1, 0},
		{"right", Right, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(100, 100, [2]float64{-2, 2}, [2]float64{-1, 1})
			v.Move(tt.dir, 0.25)
			c := v.Center()
			if !near(c.X, tt.dx) || !near(c.Y, tt.dy) {
				t.Errorf("center = %+v, want (%g, %g)", c, tt.dx, tt.dy)
			}
		})
	}
}

func TestMoveRoundTrip(t *testing.T) {
	v := New(800, 600, [2]float64{-2, 1}, [2]float64{-1.5, 1.5})
	orig := *v
	v.Move(Up, 0.3)
	v.Move(Down, 0.3)
	sameRanges(t, v, &orig)

	v.Move(Left, 0.25)
	v.Move(Right, 0.25)
	sameRanges(t, v, &orig)
}

func TestPlaneToPixel(t *testing.T) {
	v := New(200, 100, [2]float64{0, 2}, [2]float64{0, 1})

	tests := []struct {
		p      Point
		px, py float64
	}{
		{Point{0, 1}, 0, 0},
		{Point{2, 0}, 200, 100},
		{Point{1, 0.5}, 100, 50},
		{Point{0.5, 0.75}, 50, 25},
		{Point{-1, 2}, -100, -100},
	}

	for _, tt := range tests {
		x, y := v.PlaneToPixel(tt.p)
		if !near(x, tt.px) || !near(y, tt.py) {
			t.Errorf("PlaneToPixel(%+v) = (%g, %g), want (%g, %g)", tt.p, x, y, tt.px, tt.py)
		}
		back := v.PixelToPlane(x, y)
		if !near(back.X, tt.p.X) || !near(back.Y, tt.p.Y) {
			t.Errorf("PixelToPlane(%g, %g) = %+v, want %+v", x, y, back, tt.p)
		}
	}
}
