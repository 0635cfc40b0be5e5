// Package audio synthesizes the game's sound triggers with beep.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/stellar-defender/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Sound lengths.
const (
	shootDuration     = 100 * time.Millisecond
	explosionDuration = 250 * time.Millisecond
)

// SoundManager plays named sound triggers through a shared mixer.
// Until Initialize succeeds every Play is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager. The speaker is not opened yet.
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops every queued sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted turns playback off or back on.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports whether playback is off.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues the sound for a trigger name. Unknown names are ignored.
func (sm *SoundManager) Play(name string) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := streamerFor(name)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays every sound event in a frame result.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	for _, e := range events {
		if e.Kind == core.EventSound {
			sm.Play(e.Name)
		}
	}
}

func streamerFor(name string) beep.Streamer {
	switch name {
	case core.SoundShoot:
		return beep.Take(sampleRate.N(shootDuration), NewChirpGenerator(sampleRate, 800, 400, shootDuration))
	case core.SoundExplosion:
		return beep.Take(sampleRate.N(explosionDuration), NewNoiseGenerator(sampleRate, explosionDuration))
	}
	return nil
}

// ChirpGenerator is a square wave sweeping linearly between two
// frequencies with a fading envelope.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a sweep from one frequency to another over d.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		v := 0.1
		if g.phase >= 0.5 {
			v = -0.1
		}
		v *= 1 - progress

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error { return nil }

// NoiseGenerator is decaying white noise.
type NoiseGenerator struct {
	samples int
	pos     int
	rng     *core.RNG
}

// NewNoiseGenerator creates a noise burst lasting d.
func NewNoiseGenerator(sr beep.SampleRate, d time.Duration) *NoiseGenerator {
	return &NoiseGenerator{
		samples: sr.N(d),
		rng:     core.NewRNG(int64(sr)),
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		env := 1 - float64(g.pos)/float64(g.samples)
		v := g.rng.Range(-1, 1) * 0.2 * env * env

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error { return nil }
