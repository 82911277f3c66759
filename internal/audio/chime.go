// Package audio plays a short synthesized chime when the logo strikes a
// corner. Audio is best-effort: if the speaker can't be opened the overlay
// runs silent.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeDuration   = 180 * time.Millisecond
	chimeFrequency  = 880.0
)

// Chime owns the speaker. A nil *Chime is valid and silent, so callers don't
// have to branch on audio availability.
type Chime struct {
	sr beep.SampleRate
}

// NewChime opens the speaker with a small buffer.
func NewChime() (*Chime, error) {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{sr: chimeSampleRate}, nil
}

// Play queues one chime. Overlapping chimes mix.
func (c *Chime) Play() {
	if c == nil {
		return
	}
	speaker.Play(newTone(c.sr, chimeFrequency, chimeDuration))
}

// tone streams a decaying two-tone burst: the root frequency plus a quieter
// fifth above it.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{sr: sr, freq: freq, total: sr.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		at := float64(t.pos) / float64(t.sr)
		env := math.Exp(-8 * float64(t.pos) / float64(t.total))
		v := 0.25 * env * (math.Sin(2*math.Pi*t.freq*at) + 0.5*math.Sin(2*math.Pi*t.freq*1.5*at))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
