package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a decaying square-ish beep, the classic paddle blip.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	decay    float64 // Envelope decay rate per second
	rate     beep.SampleRate
}

// NewTone creates a finite streamer of a blip at freq lasting d.
func NewTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(d),
		decay:    4 / d.Seconds(),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		// Soft square: fundamental plus a third harmonic
		val := 0.8*math.Sin(2*math.Pi*t.phase) + 0.2*math.Sin(6*math.Pi*t.phase)
		env := math.Exp(-t.decay * float64(t.position) / float64(t.rate))
		val *= env

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
