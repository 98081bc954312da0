package fractal

import (
	"fmt"

	"github.com/vaclav-dvorak/go-fractals/view"
)

// Preset is the starting state of a session of one kind. It is loaded from
// the kind's config section.
type Preset struct {
	Depth        int       `koanf:"depth"`
	Threshold    float64   `koanf:"threshold"`
	Scale        float64   `koanf:"scale"`
	Constant     []float64 `koanf:"constant"`
	ConstantStep float64   `koanf:"constant_step"`
	X            []float64 `koanf:"x"`
	Y            []float64 `koanf:"y"`
	Color        bool      `koanf:"color"`
}

// Presets holds one preset per kind.
type Presets struct {
	Mandelbrot Preset `koanf:"mandelbrot"`
	Julia      Preset `koanf:"julia"`
	Mandelbox  Preset `koanf:"mandelbox"`
	Logistic   Preset `koanf:"logistic"`
	Sierpinski Preset `koanf:"sierpinski"`
}

// For returns the preset of kind k.
func (p Presets) For(k Kind) Preset {
	switch k {
	case Julia:
		return p.Julia
	case Mandelbox:
		return p.Mandelbox
	case LogisticMap:
		return p.Logistic
	case Sierpinski:
		return p.Sierpinski
	}
	return p.Mandelbrot
}

// DefaultPresets returns the built-in starting state of every kind.
func DefaultPresets() Presets {
	return Presets{
		Mandelbrot: Preset{
			Depth:     100,
			Threshold: 2,
			X:         []float64{-2, 1},
			Y:         []float64{-1.5, 1.5},
			Color:     true,
		},
		Julia: Preset{
			Depth:        100,
			Threshold:    2,
			Constant:     []float64{0.7, 0.3},
			ConstantStep: 0.01,
			X:            []float64{-1.5, 1.5},
			Y:            []float64{-1.5, 1.5},
			Color:        true,
		},
		Mandelbox: Preset{
			Depth:     100,
			Threshold: 2,
			Scale:     1.5,
			X:         []float64{-2, 2},
			Y:         []float64{-2, 2},
			Color:     true,
		},
		Logistic: Preset{
			Depth: 1,
			X:     []float64{3.5, 4.0},
			Y:     []float64{0, 1},
		},
		Sierpinski: Preset{
			Depth: 500000,
			X:     []float64{0, 1},
			Y:     []float64{0, 1},
		},
	}
}

// Validate checks the shapes of the range and constant lists.
func (p Preset) Validate() error {
	if len(p.X) != 2 || len(p.Y) != 2 {
		return fmt.Errorf("x and y need two values each, got %v and %v", p.X, p.Y)
	}
	if p.X[0] == p.X[1] || p.Y[0] == p.Y[1] {
		return fmt.Errorf("empty range x %v y %v", p.X, p.Y)
	}
	if len(p.Constant) != 0 && len(p.Constant) != 2 {
		return fmt.Errorf("constant needs two values, got %v", p.Constant)
	}
	return nil
}

// Validate checks every preset.
func (p Presets) Validate() error {
	for k := Kind(0); k < kindCount; k++ {
		if err := p.For(k).Validate(); err != nil {
			return fmt.Errorf("[%s]: %w", k.Key(), err)
		}
	}
	return nil
}

func (p Preset) xRange() [2]float64 { return pair(p.X, -2, 2) }
func (p Preset) yRange() [2]float64 { return pair(p.Y, -2, 2) }

func (p Preset) constant() view.Point {
	c := pair(p.Constant, 0, 0)
	return view.Point{X: c[0], Y: c[1]}
}

func pair(v []float64, a, b float64) [2]float64 {
	if len(v) != 2 {
		return [2]float64{a, b}
	}
	return [2]float64{v[0], v[1]}
}
