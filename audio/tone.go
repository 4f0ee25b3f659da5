// Package audio plays short sine cues whose pitch tracks the transmitted
// fraction of light, an audible reading of the Malus law.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	cueDuration = 60 * time.Millisecond

	// Pitch range: extinction at 220 Hz up to full transmission at 880 Hz
	freqMin = 220.0
	freqMax = 880.0
)

// Player owns the speaker and the mute state.
type Player struct {
	ready bool
	muted atomic.Bool
}

// NewPlayer initializes the speaker. Failure is expected on headless
// systems; the caller treats it as non-fatal and runs silent.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{}
	p.muted.Store(!enabled)

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

// Cue plays a short tone for a transmitted fraction in [0, 1].
func (p *Player) Cue(fraction float64) {
	if !p.ready || p.muted.Load() {
		return
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	freq := freqMin + (freqMax-freqMin)*fraction
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(cueDuration), sine))
}

// ToggleMute flips the mute state and reports the new value.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return muted
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	return p.muted.Load()
}
