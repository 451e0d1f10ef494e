package audio

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

type waveform uint8

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// Sweep is a one-shot oscillator gliding exponentially between two frequencies
// Noise sweeps move a one-pole low-pass cutoff instead of a pitch
type Sweep struct {
	sr       beep.SampleRate
	wave     waveform
	from, to float64
	gain     float64
	length   int
	pos      int
	phase    float64
	lowpass  float64
	rng      *rand.Rand
}

func newSweep(sr beep.SampleRate, wave waveform, from, to, gain float64, d time.Duration) *Sweep {
	return &Sweep{
		sr:     sr,
		wave:   wave,
		from:   from,
		to:     to,
		gain:   gain,
		length: sr.N(d),
	}
}

func newNoiseSweep(sr beep.SampleRate, rng *rand.Rand, from, to, gain float64, d time.Duration) *Sweep {
	s := newSweep(sr, waveNoise, from, to, gain, d)
	s.rng = rng
	return s
}

// Len is the total number of samples the sweep produces
func (s *Sweep) Len() int {
	return s.length
}

func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.length {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.length {
			return i, true
		}
		p := float64(s.pos) / float64(s.length)
		freq := s.from * math.Pow(s.to/s.from, p)

		var v float64
		if s.wave == waveNoise {
			alpha := 1 - math.Exp(-2*math.Pi*freq/float64(s.sr))
			s.lowpass += alpha * (s.rng.Float64()*2 - 1 - s.lowpass)
			v = s.lowpass
		} else {
			s.phase += freq / float64(s.sr)
			s.phase -= math.Floor(s.phase)
			v = oscillate(s.wave, s.phase)
		}

		v *= s.gain * envelope(p)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *Sweep) Err() error {
	return nil
}

func oscillate(w waveform, phase float64) float64 {
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope is a 5% linear attack followed by a quadratic release to silence
func envelope(p float64) float64 {
	const attack = 0.05
	if p < attack {
		return p / attack
	}
	r := 1 - (p-attack)/(1-attack)
	return r * r
}

// Hum is an endless sine whose gain glides toward a target level
// SetLevel is safe from any goroutine
type Hum struct {
	sr     beep.SampleRate
	freq   float64
	target atomic.Uint64 // float64 bits
	gain   float64
	phase  float64
}

// humGlide is the per-sample fraction of the gap closed toward the target
const humGlide = 0.0015

func NewHum(sr beep.SampleRate, freq float64) *Hum {
	return &Hum{sr: sr, freq: freq}
}

func (h *Hum) SetLevel(level float64) {
	h.target.Store(math.Float64bits(level))
}

func (h *Hum) Level() float64 {
	return math.Float64frombits(h.target.Load())
}

func (h *Hum) Stream(samples [][2]float64) (n int, ok bool) {
	target := h.Level()
	for i := range samples {
		h.gain += (target - h.gain) * humGlide
		h.phase += h.freq / float64(h.sr)
		h.phase -= math.Floor(h.phase)
		v := h.gain * math.Sin(2*math.Pi*h.phase)
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (h *Hum) Err() error {
	return nil
}
