// Package window shows a canvas in an OpenGL window through pixelgl. It
// needs cgo and the GL/X11 development headers.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"

	"github.com/vaclav-dvorak/go-fractals/canvas"
	"github.com/vaclav-dvorak/go-fractals/input"
)

// pollInterval bounds how often the window pumps OS events while rendering.
const pollInterval = 10 * time.Millisecond

var keyButtons = map[string]pixelgl.Button{
	"Up":           pixelgl.KeyUp,
	"Down":         pixelgl.KeyDown,
	"Left":         pixelgl.KeyLeft,
	"Right":        pixelgl.KeyRight,
	"Space":        pixelgl.KeySpace,
	"Escape":       pixelgl.KeyEscape,
	"Tab":          pixelgl.KeyTab,
	"Enter":        pixelgl.KeyEnter,
	"Backspace":    pixelgl.KeyBackspace,
	"Minus":        pixelgl.KeyMinus,
	"Equal":        pixelgl.KeyEqual,
	"LeftBracket":  pixelgl.KeyLeftBracket,
	"RightBracket": pixelgl.KeyRightBracket,
	"KPAdd":        pixelgl.KeyKPAdd,
	"KPSubtract":   pixelgl.KeyKPSubtract,
}

func init() {
	for i := 0; i < 26; i++ {
		keyButtons[string(rune('A'+i))] = pixelgl.KeyA + pixelgl.Button(i)
	}
	for i := 0; i < 10; i++ {
		keyButtons[string(rune('0'+i))] = pixelgl.Key0 + pixelgl.Button(i)
	}
}

type binding struct {
	button pixelgl.Button
	action input.Action
}

// Window is a canvas.Canvas shown in an OpenGL window. It is also the input
// Source for that window. New must be called from the function
// passed to pixelgl.Run.
type Window struct {
	*canvas.Surface
	win      *pixelgl.Window
	sprite   *pixel.Sprite
	bindings []binding
	pending  []input.Action
	lastPoll time.Time
}

func New(title string, width, height int, b input.Bindings) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(width), float64(height)),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w := &Window{Surface: canvas.NewSurface(width, height), win: win}
	for _, key := range b.Keys() {
		btn, ok := keyButtons[key]
		if !ok {
			continue
		}
		a, _ := b.Lookup(key)
		w.bindings = append(w.bindings, binding{button: btn, action: a})
	}
	return w, nil
}

func (w *Window) SetTitle(title string) {
	w.Surface.SetTitle(title)
	w.win.SetTitle(title)
}

// Flush uploads the surface to the window and swaps buffers.
func (w *Window) Flush() {
	w.Surface.Flush()
	pic := pixel.PictureDataFromImage(w.Image())
	w.sprite = pixel.NewSprite(pic, pic.Bounds())
	w.Refresh()
}

// Refresh redraws the last flushed frame.
func (w *Window) Refresh() {
	if w.sprite == nil {
		return
	}
	w.win.Clear(color.Black)
	w.sprite.Draw(w.win, pixel.IM.Moved(w.win.Bounds().Center()))
	w.win.Update()
	w.collect()
}

// Poll returns the next pressed action. OS events are pumped at most every
// pollInterval so per-sample polling stays cheap.
func (w *Window) Poll() (input.Action, bool) {
	if len(w.pending) == 0 && time.Since(w.lastPoll) >= pollInterval {
		w.win.UpdateInput()
		w.collect()
	}
	if len(w.pending) == 0 {
		return input.None, false
	}
	a := w.pending[0]
	w.pending = w.pending[1:]
	return a, true
}

func (w *Window) collect() {
	w.lastPoll = time.Now()
	if w.win.Closed() {
		w.pending = append(w.pending, input.Quit)
		return
	}
	for _, b := range w.bindings {
		if w.win.JustPressed(b.button) {
			w.pending = append(w.pending, b.action)
		}
	}
}

func (w *Window) Close() {
	w.win.Destroy()
}
