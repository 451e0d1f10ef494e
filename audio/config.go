package audio

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gopxl/beep"
	"github.com/samber/oops"

	"github.com/lixenwraith/roam/vmath"
)

// Config controls the cue player; every field can come from the environment
type Config struct {
	Enabled      bool `env:"ROAM_AUDIO_ENABLED"   envDefault:"true"`
	MasterVolume int  `env:"ROAM_MASTER_VOLUME"   envDefault:"35"` // percent
	SampleRate   int  `env:"ROAM_SAMPLE_RATE"     envDefault:"48000"`
	BufferMillis int  `env:"ROAM_AUDIO_BUFFER_MS" envDefault:"100"`
}

// DefaultConfig matches the envDefault tags
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 35,
		SampleRate:   48000,
		BufferMillis: 100,
	}
}

// LoadConfig parses ROAM_* variables over the defaults
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), oops.Code("SETUP_FAILED").Wrapf(err, "parse audio env")
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 100 {
		c.MasterVolume = 100
	}
	if c.SampleRate <= 0 {
		c.SampleRate = 48000
	}
	if c.BufferMillis <= 0 {
		c.BufferMillis = 100
	}
}

// Master is the linear master gain in [0, 1]
func (c Config) Master() float64 {
	return vmath.Clamp01(float64(c.MasterVolume) / 100)
}

func (c Config) rate() beep.SampleRate {
	return beep.SampleRate(c.SampleRate)
}

func (c Config) buffer() time.Duration {
	return time.Duration(c.BufferMillis) * time.Millisecond
}
