package fractal

import "math"

// divergence is the magnitude past which a logistic orbit is abandoned.
// For r > 4 the orbit leaves [0, 1] and runs off to -inf.
const divergence = 100

// Column describes one column of the bifurcation diagram: Rows buckets
// spanning plane Y from YMin (bottom row) to YMax (top row).
type Column struct {
	Rows        int
	YMin, YMax  float64
	Iterations  int
	Warmup      int
	Interpolate bool
}

// Histogram iterates x = r*x*(1-x) from x = 0.5 and counts visits per row.
// Row 0 is the top of the column. The first Warmup iterations are not
// counted. With Interpolate set, each visit is split between the two rows
// whose centers are nearest.
func (c Column) Histogram(r float64) []float64 {
	hist := make([]float64, c.Rows)
	size := c.YMax - c.YMin
	if c.Rows <= 0 || size <= 0 {
		return hist
	}
	scale := float64(c.Rows) / size

	x := 0.5
	for i := 0; i < c.Warmup+c.Iterations; i++ {
		x = r * x * (1 - x)
		if math.Abs(x) > divergence {
			break
		}
		if i < c.Warmup {
			continue
		}
		pos := (c.YMax - x) * scale
		if !c.Interpolate {
			row := int(math.Floor(pos))
			if row >= 0 && row < c.Rows {
				hist[row]++
			}
			continue
		}
		pos -= 0.5
		lo := math.Floor(pos)
		frac := pos - lo
		row := int(lo)
		if row >= 0 && row < c.Rows {
			hist[row] += 1 - frac
		}
		if row+1 >= 0 && row+1 < c.Rows {
			hist[row+1] += frac
		}
	}
	return hist
}
