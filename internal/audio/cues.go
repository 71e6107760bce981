// Package audio plays short sound cues for match events.
// Audio is optional: when the speaker cannot be opened, cues are dropped silently.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueNone Cue = iota
	CueServe
	CueWall
	CuePaddle
	CuePoint
)

type cueSpec struct {
	freq     float64
	duration time.Duration
}

var cueSpecs = map[Cue]cueSpec{
	CueServe:  {freq: 660, duration: 60 * time.Millisecond},
	CueWall:   {freq: 220, duration: 40 * time.Millisecond},
	CuePaddle: {freq: 440, duration: 50 * time.Millisecond},
	CuePoint:  {freq: 330, duration: 250 * time.Millisecond},
}

// CueFor maps a match event to its sound.
func CueFor(e pong.Event) Cue {
	switch e.Kind {
	case pong.EventServe:
		return CueServe
	case pong.EventWallBounce:
		return CueWall
	case pong.EventPaddleHit:
		return CuePaddle
	case pong.EventPoint:
		return CuePoint
	default:
		return CueNone
	}
}

// Player mixes cues into the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given volume in [0, 1].
// It is silent until Init succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Calling it again after success is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues one cue.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || c == CueNone {
		return
	}
	spec, ok := cueSpecs[c]
	if !ok {
		return
	}

	s := withVolume(NewTone(spec.freq, spec.duration, sampleRate), p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays the cue of every event from one tick.
func (p *Player) HandleEvents(events []pong.Event) {
	for _, e := range events {
		p.Play(CueFor(e))
	}
}

// withVolume scales s by a linear volume; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
