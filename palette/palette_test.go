package palette

import (
	"image/color"
	"testing"
)

func within(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestSweepEndpoints(t *testing.T) {
	black := color.RGBA{A: 255}
	for _, depth := range []int{2, 3, 100, 1000} {
		tab := New(depth, 2)
		if got := tab.At(0); got != black {
			t.Errorf("depth %d: At(0) = %v, want %v", depth, got, black)
		}
		// sin(1.5pi) < 0, sin(1.25pi) < 0, sin(pi) ~ 1e-16
		if got := tab.At(depth - 1); got != black {
			t.Errorf("depth %d: At(depth-1) = %v, want %v", depth, got, black)
		}
	}
}

func TestSweepMidpoints(t *testing.T) {
	tab := New(4, 2)
	tests := []struct {
		index   int
		r, g, b uint8
	}{
		{1, 255, 180, 0},
		{2, 0, 180, 255},
	}
	for _, tt := range tests {
		c := tab.At(tt.index)
		if !within(c.R, tt.r, 1) || !within(c.G, tt.g, 1) || !within(c.B, tt.b, 1) {
			t.Errorf("At(%d) = %v, want ~(%d,%d,%d)", tt.index, c, tt.r, tt.g, tt.b)
		}
		if c.A != 255 {
			t.Errorf("At(%d) alpha = %d", tt.index, c.A)
		}
	}
}

func TestSetDepthFloor(t *testing.T) {
	tests := []struct {
		name         string
		floor, depth int
		want         int
	}{
		{"escape-time zero", 2, 0, 2},
		{"escape-time one", 2, 1, 2},
		{"escape-time normal", 2, 100, 100},
		{"scan zero", 1, 0, 1},
		{"scan negative", 1, -5, 1},
		{"scan one", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := New(50, tt.floor)
			tab.SetDepth(tt.depth)
			if got := tab.Depth(); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
			// depth 1 has no zero-safe denominator; must not panic or produce NaN colors
			_ = tab.At(tab.Depth() - 1)
		})
	}
}

func TestGray(t *testing.T) {
	tests := []struct {
		val  float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 127},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		c := Gray(tt.val)
		if c.R != tt.want || c.G != tt.want || c.B != tt.want || c.A != 255 {
			t.Errorf("Gray(%g) = %v, want %d", tt.val, c, tt.want)
		}
	}
}
