// Package palette turns escape indices into colors.
package palette

import (
	"image/color"
	"math"
)

// Table maps escape indices in [0, depth) to the sine hue sweep.
type Table struct {
	colors []color.RGBA
	floor  int
}

// New returns a table for depth entries. Depths below floor are raised to
// floor; escape-time fractals that normalize by depth-1 use a floor of 2.
func New(depth, floor int) *Table {
	if floor < 1 {
		floor = 1
	}
	t := &Table{floor: floor}
	t.SetDepth(depth)
	return t
}

// SetDepth clamps depth to the table floor and regenerates every entry.
func (t *Table) SetDepth(depth int) {
	if depth < t.floor {
		depth = t.floor
	}
	t.colors = make([]color.RGBA, depth)
	for v := range t.colors {
		val := 0.0
		if depth > 1 {
			val = float64(v) / float64(depth-1)
		}
		t.colors[v] = Sweep(val)
	}
}

func (t *Table) Depth() int { return len(t.colors) }

// At returns the color for index i, which must be in [0, Depth()).
func (t *Table) At(i int) color.RGBA {
	return t.colors[i]
}

// Sweep returns the hue sweep color for val in [0, 1].
func Sweep(val float64) color.RGBA {
	return color.RGBA{
		R: channel(1.5 * math.Pi * val),
		G: channel(1.5*math.Pi*val - 0.25*math.Pi),
		B: channel(1.5*math.Pi*val - 0.5*math.Pi),
		A: 255,
	}
}

func channel(phase float64) uint8 {
	return uint8(math.Floor(math.Max(0, math.Sin(phase)) * 255))
}

// Gray returns an opaque gray of brightness val in [0, 1].
func Gray(val float64) color.RGBA {
	v := uint8(math.Floor(math.Max(0, math.Min(1, val)) * 255))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
