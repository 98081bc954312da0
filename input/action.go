// Package input defines the discrete actions that drive the explorer and
// the sources that produce them.
package input

import "fmt"

// Action is one discrete user command.
type Action int

const (
	None Action = iota
	Quit
	TogglePause
	SwitchFractal
	Reset
	ZoomIn
	ZoomOut
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	IncreaseDepth
	DecreaseDepth
	ToggleColor
	ConstantUp
	ConstantDown
	ConstantLeft
	ConstantRight

	actionCount
)

var actionNames = [...]string{
	None:          "none",
	Quit:          "quit",
	TogglePause:   "toggle_pause",
	SwitchFractal: "switch_fractal",
	Reset:         "reset",
	ZoomIn:        "zoom_in",
	ZoomOut:       "zoom_out",
	MoveUp:        "move_up",
	MoveDown:      "move_down",
	MoveLeft:      "move_left",
	MoveRight:     "move_right",
	IncreaseDepth: "increase_depth",
	DecreaseDepth: "decrease_depth",
	ToggleColor:   "toggle_color",
	ConstantUp:    "constant_up",
	ConstantDown:  "constant_down",
	ConstantLeft:  "constant_left",
	ConstantRight: "constant_right",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Valid reports whether a is a known action other than None.
func (a Action) Valid() bool {
	return a > None && a < actionCount
}

// ParseAction resolves a snake_case action name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && Action(a) != None {
			return Action(a), nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}

// Source yields pending actions without blocking.
type Source interface {
	// Poll returns at most one pending action.
	Poll() (Action, bool)
}

// Queue is a Source that replays a fixed list of actions, one per poll.
type Queue struct {
	actions []Action
}

func NewQueue(actions ...Action) *Queue {
	return &Queue{actions: actions}
}

// Push appends actions to the end of the queue.
func (q *Queue) Push(actions ...Action) {
	q.actions = append(q.actions, actions...)
}

func (q *Queue) Len() int { return len(q.actions) }

func (q *Queue) Poll() (Action, bool) {
	if len(q.actions) == 0 {
		return None, false
	}
	a := q.actions[0]
	q.actions = q.actions[1:]
	return a, true
}
