package fractal

import (
	"math"
	"testing"
)

func sum(h []float64) float64 {
	var s float64
	for _, v := range h {
		s += v
	}
	return s
}

func argmax(h []float64) int {
	best := 0
	for i, v := range h {
		if v > h[best] {
			best = i
		}
	}
	return best
}

func TestHistogramFixedPoint(t *testing.T) {
	// r = 2.5 converges to x* = 1 - 1/r = 0.6 from alternating sides.
	// Row i covers plane Y (YMax-(i+1)/scale, YMax-i/scale].
	tests := []struct {
		name   string
		col    Column
		rows   []int
		center bool
	}{
		// 0.6 sits inside row 40, 0.4 rows below its top edge
		{"inside row", Column{Rows: 101, YMin: 0, YMax: 1}, []int{40}, true},
		// 0.6 sits at the center of row 40
		{"row center", Column{Rows: 100, YMin: 0.005, YMax: 1.005}, []int{40}, true},
		// 0.6 is the edge between rows 39 and 40
		{"row edge", Column{Rows: 100, YMin: 0, YMax: 1}, []int{39, 40}, false},
	}
	for _, tt := range tests {
		for _, interp := range []bool{false, true} {
			col := tt.col
			col.Iterations, col.Warmup, col.Interpolate = 1000, 200, interp
			h := col.Histogram(2.5)

			total := sum(h)
			if math.Abs(total-1000) > 1e-6 {
				t.Errorf("%s interpolate=%v: total visits %g, want 1000", tt.name, interp, total)
			}

			if interp {
				// split between the row holding 0.6 and its nearest neighbour
				near := h[39] + h[40] + h[41]
				if near < 0.99*total {
					t.Errorf("%s: interpolated mass near 0.6 = %g of %g", tt.name, near, total)
				}
				continue
			}

			var mass float64
			for _, r := range tt.rows {
				mass += h[r]
			}
			if mass < 0.99*total {
				t.Errorf("%s: rows %v hold %g of %g visits", tt.name, tt.rows, mass, total)
			}
			if tt.center {
				row := argmax(h)
				scale := float64(col.Rows) / (col.YMax - col.YMin)
				center := col.YMax - (float64(row)+0.5)/scale
				if math.Abs(center-0.6) > 0.5/scale {
					t.Errorf("%s: peak row %d (center %g) does not contain 0.6", tt.name, row, center)
				}
			}
		}
	}
}

func TestHistogramPeriodTwo(t *testing.T) {
	// r = 3.2 settles on a 2-cycle near 0.513 and 0.799
	col := Column{Rows: 200, YMin: 0, YMax: 1, Iterations: 2000, Warmup: 500}
	h := col.Histogram(3.2)

	occupied := 0
	for _, v := range h {
		if v > 0 {
			occupied++
		}
	}
	if occupied != 2 {
		t.Errorf("r=3.2 occupies %d rows, want 2", occupied)
	}
}

func TestHistogramDivergenceStopsEarly(t *testing.T) {
	col := Column{Rows: 100, YMin: 0, YMax: 1, Iterations: 10000}
	h := col.Histogram(4.5)
	if total := sum(h); total >= 100 {
		t.Errorf("r=4.5 counted %g visits, expected the orbit to be abandoned", total)
	}
}

func TestHistogramOutOfViewIgnored(t *testing.T) {
	// fixed point 0.6 is above this window
	col := Column{Rows: 50, YMin: 0, YMax: 0.5, Iterations: 500, Warmup: 100}
	if total := sum(col.Histogram(2.5)); total != 0 {
		t.Errorf("counted %g visits outside the window", total)
	}
}

func TestHistogramEmptyColumn(t *testing.T) {
	if h := (Column{}).Histogram(3); len(h) != 0 {
		t.Errorf("zero-row column returned %d rows", len(h))
	}
}
