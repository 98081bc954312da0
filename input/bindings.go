package input

import (
	"fmt"
	"sort"
	"strings"
)

// Key names shared by every backend. Letters and digits use their upper
// case character ("Q", "7").
var namedKeys = map[string]bool{
	"Up": true, "Down": true, "Left": true, "Right": true,
	"Space": true, "Escape": true, "Tab": true, "Enter": true, "Backspace": true,
	"Plus": true, "Minus": true, "Equal": true,
	"LeftBracket": true, "RightBracket": true,
	"KPAdd": true, "KPSubtract": true,
}

// ValidKey reports whether name is a key name the backends understand.
func ValidKey(name string) bool {
	if namedKeys[name] {
		return true
	}
	if len(name) != 1 {
		return false
	}
	c := name[0]
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Bindings maps key names to actions.
type Bindings map[string]Action

// DefaultKeys returns the default key lists per action name, in the shape
// of the [keys] config section.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		"quit":           {"Q", "Escape"},
		"toggle_pause":   {"Space", "P"},
		"switch_fractal": {"Tab", "F"},
		"reset":          {"R"},
		"zoom_in":        {"Plus", "Equal", "KPAdd"},
		"zoom_out":       {"Minus", "KPSubtract"},
		"move_up":        {"Up"},
		"move_down":      {"Down"},
		"move_left":      {"Left"},
		"move_right":     {"Right"},
		"increase_depth": {"RightBracket"},
		"decrease_depth": {"LeftBracket"},
		"toggle_color":   {"C"},
		"constant_up":    {"W"},
		"constant_down":  {"S"},
		"constant_left":  {"A"},
		"constant_right": {"D"},
	}
}

// NewBindings builds bindings from action name -> key names. A key bound
// twice keeps the action whose name sorts first.
func NewBindings(keys map[string][]string) (Bindings, error) {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	b := Bindings{}
	for _, name := range names {
		a, err := ParseAction(strings.ToLower(name))
		if err != nil {
			return nil, err
		}
		for _, k := range keys[name] {
			if !ValidKey(k) {
				return nil, fmt.Errorf("%s: unknown key %q", name, k)
			}
			if _, taken := b[k]; !taken {
				b[k] = a
			}
		}
	}
	return b, nil
}

// Lookup returns the action bound to key.
func (b Bindings) Lookup(key string) (Action, bool) {
	a, ok := b[key]
	return a, ok
}

// Keys returns the bound key names in sorted order.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
