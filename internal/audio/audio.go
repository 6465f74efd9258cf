//go:build audio

// Package audio plays a short tick while sand is being poured.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Enabled reports whether this build carries audio support.
const Enabled = true

// Pourer turns brush activity into short tones. Pitch rises with the number
// of grains created in a frame.
type Pourer struct {
	playing atomic.Int32
}

// NewPourer initializes the speaker. Callers must Close it.
func NewPourer() (*Pourer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Pourer{}, nil
}

// Pour queues a tick for n new grains. Ticks are dropped while a few are
// already playing so a held brush does not pile up latency.
func (p *Pourer) Pour(n int) {
	if n <= 0 || p.playing.Load() >= maxVoices {
		return
	}
	tone, err := generators.SineTone(sampleRate, PitchFor(n))
	if err != nil {
		return
	}
	quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: -3}
	p.playing.Add(1)
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(15*time.Millisecond), quiet),
		beep.Callback(func() { p.playing.Add(-1) }),
	))
}

// Close releases the speaker.
func (p *Pourer) Close() {
	speaker.Close()
}
