// Package terminal draws a canvas into the terminal with tcell.
package terminal

import (
	"fmt"
	"image/color"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vaclav-dvorak/go-fractals/canvas"
	"github.com/vaclav-dvorak/go-fractals/input"
)

const upperHalfBlock = '▀'

var runeKeys = map[rune]string{
	' ': "Space",
	'+': "Plus",
	'-': "Minus",
	'=': "Equal",
	'[': "LeftBracket",
	']': "RightBracket",
}

var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyEscape:     "Escape",
	tcell.KeyTab:        "Tab",
	tcell.KeyEnter:      "Enter",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
}

// Terminal is a canvas.Canvas drawn into the terminal with two pixels per cell.
// The bottom row shows the title. It is also the input Source for the
// terminal.
type Terminal struct {
	*canvas.Surface
	screen   tcell.Screen
	events   chan tcell.Event
	bindings input.Bindings
	cols     int
	rows     int
}

// New takes over the terminal. The surface is sized from the
// terminal at creation and does not follow later resizes.
func New(b input.Bindings) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}

	cols, rows := screen.Size()
	if cols < 1 || rows < 2 {
		screen.Fini()
		return nil, fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}

	t := &Terminal{
		Surface:  canvas.NewSurface(cols, (rows-1)*2),
		screen:   screen,
		events:   make(chan tcell.Event, 100),
		bindings: b,
		cols:     cols,
		rows:     rows,
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()
	return t, nil
}

func (t *Terminal) SetTitle(title string) {
	t.Surface.SetTitle(title)
	t.drawStatus()
	t.screen.Show()
}

func (t *Terminal) Flush() {
	t.Surface.Flush()
	for cy := 0; cy < t.rows-1; cy++ {
		for cx := 0; cx < t.cols; cx++ {
			top := t.At(cx, 2*cy)
			bottom := t.At(cx, 2*cy+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			t.screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}
	t.drawStatus()
	t.screen.Show()
}

func (t *Terminal) drawStatus() {
	style := tcell.StyleDefault.Reverse(true)
	title := []rune(t.Title())
	for cx := 0; cx < t.cols; cx++ {
		r := ' '
		if cx < len(title) {
			r = title[cx]
		}
		t.screen.SetContent(cx, t.rows-1, r, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Poll drains pending terminal events until one maps to an action.
func (t *Terminal) Poll() (input.Action, bool) {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return input.Quit, true
			}
			if a, ok := t.translate(ev); ok {
				return a, true
			}
		default:
			return input.None, false
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) (input.Action, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return input.Quit, true
		}
		name, ok := keyName(ev)
		if !ok {
			return input.None, false
		}
		return t.bindings.Lookup(name)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return input.None, false
}

func keyName(ev *tcell.EventKey) (string, bool) {
	if ev.Key() != tcell.KeyRune {
		name, ok := specialKeys[ev.Key()]
		return name, ok
	}
	r := ev.Rune()
	if name, ok := runeKeys[r]; ok {
		return name, true
	}
	if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return string(unicode.ToUpper(r)), true
	}
	return "", false
}

func (t *Terminal) Close() {
	t.screen.Fini()
}
