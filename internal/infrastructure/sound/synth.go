// Package sound synthesizes the game's sound cues and plays them through
// ebiten's audio context.
package sound

import (
	"math"
	"time"
)

// SampleRate of every rendered cue
const SampleRate = 44100

const (
	attack = 10 * time.Millisecond
	floor  = 0.001
)

// Wave is an oscillator shape
type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
)

// Note is one oscillator burst inside a cue
type Note struct {
	Freq     float64
	Start    time.Duration
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

// End returns when the note stops sounding
func (n Note) End() time.Duration {
	return n.Start + n.Duration
}

// sample returns the oscillator value in [-1, 1] at phase p (cycles)
func (w Wave) sample(p float64) float64 {
	frac := p - math.Floor(p)
	switch w {
	case Square:
		if frac < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*frac - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// gain ramps linearly up to the note volume, then decays exponentially
// to near silence at the end of the note.
func (n Note) gain(t time.Duration) float64 {
	if t < 0 || t >= n.Duration || n.Volume <= 0 {
		return 0
	}
	if t < attack {
		return n.Volume * float64(t) / float64(attack)
	}
	decay := n.Duration - attack
	if decay <= 0 {
		return n.Volume
	}
	k := float64(t-attack) / float64(decay)
	return n.Volume * math.Pow(floor/n.Volume, k)
}

// Render mixes the notes into 16-bit little-endian stereo PCM
func Render(sampleRate int, notes []Note) []byte {
	var total time.Duration
	for _, n := range notes {
		if e := n.End(); e > total {
			total = e
		}
	}

	frames := int(int64(total) * int64(sampleRate) / int64(time.Second))
	pcm := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := time.Duration(i) * time.Second / time.Duration(sampleRate)

		var v float64
		for _, n := range notes {
			local := t - n.Start
			g := n.gain(local)
			if g == 0 {
				continue
			}
			v += g * n.Wave.sample(n.Freq*local.Seconds())
		}
		v = math.Max(-1, math.Min(1, v))

		s := int16(v * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}
