package audio

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/samber/oops"

	"github.com/lixenwraith/roam/engine"
)

// Sink accepts streamers for mixing; Play must not block
type Sink interface {
	Play(s beep.Streamer)
}

// Player turns session cues into sound; it implements engine.Audio
type Player struct {
	cfg    Config
	synth  *Synth
	sink   Sink
	hum    *Hum
	logger *slog.Logger

	muted  atomic.Bool
	played [cueCount]atomic.Uint64

	mu     sync.Mutex
	stride float64
}

var _ engine.Audio = (*Player)(nil)

// NewPlayer builds a player on sink; a nil sink plays nothing
func NewPlayer(cfg Config, sink Sink, logger *slog.Logger) *Player {
	cfg.normalize()
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{
		cfg:    cfg,
		synth:  NewSynth(cfg.rate(), uint64(time.Now().UnixNano())),
		sink:   sink,
		hum:    NewHum(cfg.rate(), HumFrequency),
		logger: logger,
	}
}

func (p *Player) play(c Cue) {
	p.played[c].Add(1)
	if p.sink == nil || p.muted.Load() {
		return
	}
	p.sink.Play(p.master(p.synth.Build(c)))
}

func (p *Player) master(s beep.Streamer) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: p.cfg.Master() - 1}
}

// Footstep accumulates walked distance and steps once per stride
func (p *Player) Footstep(distance float64) {
	p.mu.Lock()
	p.stride += distance
	step := p.stride >= StrideLength
	if step {
		p.stride = 0
	}
	p.mu.Unlock()
	if step {
		p.play(CueFootstep)
	}
}

func (p *Player) FootstepReset() {
	p.mu.Lock()
	p.stride = 0
	p.mu.Unlock()
}

func (p *Player) ObjectOpen()  { p.play(CueObjectOpen) }
func (p *Player) ObjectClose() { p.play(CueObjectClose) }
func (p *Player) TravelBegin() { p.play(CueTravel) }
func (p *Player) Beep()        { p.play(CueBeep) }

func (p *Player) ProximityLevel(level float64) {
	if p.muted.Load() {
		p.hum.SetLevel(0)
		return
	}
	p.hum.SetLevel(HumGain(level))
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		cur := p.muted.Load()
		if p.muted.CompareAndSwap(cur, !cur) {
			if !cur {
				p.hum.SetLevel(0)
			}
			p.logger.Info("audio mute", "muted", !cur)
			return !cur
		}
	}
}

func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Played returns how many times cue was triggered, muted or not
func (p *Player) Played(c Cue) uint64 {
	return p.played[c].Load()
}

// Hum is the continuous proximity voice
func (p *Player) Hum() *Hum {
	return p.hum
}

// speakerSink mixes into the process-wide speaker
type speakerSink struct {
	mixer *beep.Mixer
}

func (s *speakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Open initializes the speaker and returns a player with the hum running
// Disabled config returns a silent player and a no-op closer
func Open(cfg Config, logger *slog.Logger) (*Player, func(), error) {
	cfg.normalize()
	if !cfg.Enabled {
		return NewPlayer(cfg, nil, logger), func() {}, nil
	}

	sr := cfg.rate()
	if err := speaker.Init(sr, sr.N(cfg.buffer())); err != nil {
		return nil, nil, oops.Code("SETUP_FAILED").With("sample_rate", cfg.SampleRate).Wrapf(err, "init speaker")
	}

	sink := &speakerSink{mixer: &beep.Mixer{}}
	p := NewPlayer(cfg, sink, logger)
	speaker.Play(sink.mixer)
	sink.Play(p.master(p.hum))

	closeFn := func() {
		speaker.Clear()
		speaker.Close()
	}
	p.logger.Info("audio ready", "sample_rate", cfg.SampleRate, "master", cfg.Master())
	return p, closeFn, nil
}
