// Package sfx synthesizes the board's audio cues and plays them through the
// beep speaker.
package sfx

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/Garsondee/No-Loose-Threads/internal/board"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// note is one tone of a cue; a zero freq is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[board.Sound][]note{
	board.SoundTack:   {{1320, 40 * time.Millisecond}},
	board.SoundDrop:   {{440, 60 * time.Millisecond}},
	board.SoundReject: {{140, 90 * time.Millisecond}, {0, 20 * time.Millisecond}, {110, 90 * time.Millisecond}},
	board.SoundSolved: {
		{523.25, 120 * time.Millisecond},
		{659.25, 120 * time.Millisecond},
		{783.99, 120 * time.Millisecond},
		{1046.5, 240 * time.Millisecond},
	},
	board.SoundMistrial: {{392, 200 * time.Millisecond}, {0, 40 * time.Millisecond}, {261.63, 400 * time.Millisecond}},
}

// Synth renders cues at a fixed sample rate and volume.
type Synth struct {
	rate   beep.SampleRate
	volume float64
}

// NewSynth returns a synth with linear volume in [0, 1].
func NewSynth(rate beep.SampleRate, volume float64) *Synth {
	return &Synth{rate: rate, volume: clampVolume(volume)}
}

func (s *Synth) SetVolume(v float64) { s.volume = clampVolume(v) }

func (s *Synth) Volume() float64 { return s.volume }

// Samples is the exact length of cue c in samples.
func (s *Synth) Samples(c board.Sound) int {
	n := 0
	for _, nt := range cues[c] {
		n += s.rate.N(nt.dur)
	}
	return n
}

// Cue builds a fresh finite streamer for c.
func (s *Synth) Cue(c board.Sound) (beep.Streamer, error) {
	notes, ok := cues[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, nt := range notes {
		n := s.rate.N(nt.dur)
		if nt.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		tone, err := generators.SineTone(s.rate, nt.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %d tone %.2f Hz: %w", c, nt.freq, err)
		}
		parts = append(parts, beep.Take(n, tone))
	}
	return withVolume(beep.Seq(parts...), s.volume*0.5), nil
}

// withVolume wraps st in a base-2 volume effect; zero means silent.
func withVolume(st beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(v)}
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
