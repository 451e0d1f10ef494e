package render

import (
	"context"
	"log/slog"
	"math"
	"os"
	"time"
	"unicode/utf8"

	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
)

// PlaceholderGlyph stands in for the avatar until its sprite resolves
const PlaceholderGlyph = '◌'

// Sprite is the avatar glyph set
// Each gait string is a frame cycle; Facing holds 8 heading arrows starting at +z, clockwise on screen
type Sprite struct {
	Name   string `yaml:"name"`
	Idle   string `yaml:"idle"`
	Walk   string `yaml:"walk"`
	Run    string `yaml:"run"`
	Facing string `yaml:"facing"`
	FPS    float64 `yaml:"fps"`
}

// DefaultSprite is used when no sprite file is configured or loading fails
func DefaultSprite() Sprite {
	return Sprite{
		Name:   "default",
		Idle:   "@",
		Walk:   "@a",
		Run:    "@Ф",
		Facing: "↓↘→↗↑↖←↙",
		FPS:    6,
	}
}

// ParseSprite decodes and validates a YAML sprite; missing gaits fall back to Idle
func ParseSprite(data []byte) (Sprite, error) {
	var s Sprite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sprite{}, oops.Code("ASSET_INVALID").Wrapf(err, "decode sprite")
	}
	if s.Idle == "" {
		return Sprite{}, oops.Code("ASSET_INVALID").With("sprite", s.Name).Errorf("sprite has no idle glyph")
	}
	if n := utf8.RuneCountInString(s.Facing); n != 0 && n != 8 {
		return Sprite{}, oops.Code("ASSET_INVALID").With("sprite", s.Name).Errorf("facing needs 8 arrows, got %d", n)
	}
	if s.Walk == "" {
		s.Walk = s.Idle
	}
	if s.Run == "" {
		s.Run = s.Walk
	}
	if s.FPS <= 0 {
		s.FPS = DefaultSprite().FPS
	}
	return s, nil
}

// Glyph picks the frame for a gait at simulation time t
func (s Sprite) Glyph(mode core.LocomotionMode, t float64) rune {
	frames := s.Idle
	switch mode {
	case core.ModeWalk:
		frames = s.Walk
	case core.ModeRun:
		frames = s.Run
	}
	runes := []rune(frames)
	if len(runes) == 0 {
		return PlaceholderGlyph
	}
	i := int(math.Max(t, 0)*s.FPS) % len(runes)
	return runes[i]
}

// Arrow returns the heading arrow for a planar velocity, 0 when there is none
func (s Sprite) Arrow(vx, vz float64) rune {
	arrows := []rune(s.Facing)
	if len(arrows) != 8 || (vx == 0 && vz == 0) {
		return 0
	}
	octant := int(math.Round(math.Atan2(vx, vz)/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

// Sprite load retry policy; read errors are retried, decode errors are not
const (
	spriteRetryBase = 50 * time.Millisecond
	spriteRetries   = 4
)

// LoadSprite reads a sprite file off the frame loop
// An empty path resolves immediately to DefaultSprite
func LoadSprite(ctx context.Context, path string, logger *slog.Logger) *engine.Future[Sprite] {
	if path == "" {
		f := engine.NewFuture[Sprite]()
		f.Resolve(DefaultSprite(), nil)
		return f
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return engine.Go(ctx, func(ctx context.Context) (Sprite, error) {
		b := retry.WithMaxRetries(spriteRetries, retry.NewExponential(spriteRetryBase))
		attempt := 0
		return retry.DoValue(ctx, b, func(ctx context.Context) (Sprite, error) {
			attempt++
			data, err := os.ReadFile(path)
			if err != nil {
				logger.Debug("sprite read failed", "path", path, "attempt", attempt, "error", err)
				return Sprite{}, retry.RetryableError(
					oops.Code("ASSET_UNAVAILABLE").With("path", path).Wrapf(err, "read sprite"))
			}
			s, err := ParseSprite(data)
			if err != nil {
				return Sprite{}, oops.With("path", path).Wrap(err)
			}
			logger.Info("sprite loaded", "path", path, "sprite", s.Name)
			return s, nil
		})
	})
}
