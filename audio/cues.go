package audio

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a one-shot sound
type Cue uint8

const (
	CueFootstep Cue = iota
	CueObjectOpen
	CueObjectClose
	CueTravel
	CueBeep
	cueCount
)

var cueNames = [cueCount]string{"footstep", "object_open", "object_close", "travel", "beep"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Proximity hum tuning
const (
	HumFrequency = 95.0
	HumMaxGain   = 0.08
	HumFloor     = 0.01 // levels at or below are silent
)

// StrideLength is the walked distance between footsteps
const StrideLength = 2.2

// Synth builds cue streamers at one sample rate
type Synth struct {
	sr  beep.SampleRate
	rng *rand.Rand
}

func NewSynth(sr beep.SampleRate, seed uint64) *Synth {
	return &Synth{sr: sr, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Build returns a finite streamer for cue
func (s *Synth) Build(c Cue) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	switch c {
	case CueFootstep:
		start := 160 + s.rng.Float64()*80
		return newSweep(s.sr, waveSquare, start, 70, 0.05, ms(90))
	case CueObjectOpen:
		return beep.Mix(
			newSweep(s.sr, waveSaw, 120, 340, 0.1, ms(450)),
			newSweep(s.sr, waveSine, 600, 900, 0.05, ms(450)),
		)
	case CueObjectClose:
		return beep.Seq(
			newSweep(s.sr, waveSaw, 300, 80, 0.1, ms(300)),
			newSweep(s.sr, waveSine, 55, 30, 0.25, ms(250)),
		)
	case CueTravel:
		return beep.Mix(
			newNoiseSweep(s.sr, s.rng, 2400, 180, 0.12, ms(850)),
			newSweep(s.sr, waveSine, 800, 60, 0.1, ms(850)),
		)
	default:
		return beep.Seq(
			newSweep(s.sr, waveSine, 880, 880, 0.08, ms(70)),
			newSweep(s.sr, waveSine, 1100, 1100, 0.08, ms(70)),
		)
	}
}

// HumGain maps a proximity level in [0,1] to the hum's target gain
func HumGain(level float64) float64 {
	if level <= HumFloor {
		return 0
	}
	return min(level*HumMaxGain, HumMaxGain)
}
