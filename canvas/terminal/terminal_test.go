package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "Up", true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "Escape", true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "Q", true},
		{tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), "7", true},
		{tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), "Plus", true},
		{tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone), "RightBracket", true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "Space", true},
		{tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), "", false},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		got, ok := keyName(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyName(%v) = %q, %v; want %q, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}
