package chime

import "testing"

func TestSilentChimeIsSafe(t *testing.T) {
	var nilChime *Chime
	nilChime.RenderDone()
	nilChime.Close()

	c := &Chime{}
	c.RenderDone()
	c.Close()
	if c.ready {
		t.Error("zero Chime became ready")
	}
}
