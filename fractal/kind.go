package fractal

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported fractals.
type Kind int

const (
	Mandelbrot Kind = iota
	Julia
	Mandelbox
	LogisticMap
	Sierpinski

	kindCount
)

var kindNames = [...]string{
	Mandelbrot:  "Mandelbrot",
	Julia:       "Julia",
	Mandelbox:   "Mandelbox",
	LogisticMap: "Logistic Map",
	Sierpinski:  "Sierpinski",
}

var kindKeys = [...]string{
	Mandelbrot:  "mandelbrot",
	Julia:       "julia",
	Mandelbox:   "mandelbox",
	LogisticMap: "logistic",
	Sierpinski:  "sierpinski",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Key is the config section name of the kind.
func (k Kind) Key() string {
	if k < 0 || k >= kindCount {
		return ""
	}
	return kindKeys[k]
}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	return (k + 1) % kindCount
}

// EscapeTime reports whether the kind classifies points by escape index.
func (k Kind) EscapeTime() bool {
	return k == Mandelbrot || k == Julia || k == Mandelbox
}

// ParseKind resolves a config key such as "julia".
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, key := range kindKeys {
		if key == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown fractal %q", s)
}
