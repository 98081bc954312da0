// Package chime plays a short tone when a render pass completes.
package chime

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 880
	toneLength = 80 * time.Millisecond
)

// Chime owns the speaker. The zero value is silent.
type Chime struct {
	ready bool
}

// New initializes the speaker. On error the returned Chime is silent and
// still safe to use.
func New() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, fmt.Errorf("initializing speaker: %w", err)
	}
	return &Chime{ready: true}, nil
}

// RenderDone plays the completion tone without blocking.
func (c *Chime) RenderDone() {
	if c == nil || !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, toneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), sine))
}

func (c *Chime) Close() {
	if c != nil && c.ready {
		speaker.Close()
		c.ready = false
	}
}
