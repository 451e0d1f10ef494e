package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/oops"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func parsedRunFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	cmd := NewRunCmd()
	require.NoError(t, cmd.ParseFlags(args))
	return cmd.Flags()
}

func codeOf(t *testing.T, err error) any {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %v", err)
	return oopsErr.Code()
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, _, err := loadConfig("", parsedRunFlags(t))
	require.NoError(t, err)

	assert.Equal(t, defaultWorld, cfg.World)
	assert.Equal(t, defaultFPS, cfg.FPS)
	assert.Equal(t, defaultLogFormat, cfg.Log.Format)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.True(t, cfg.Audio.Enabled)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
world: gallery
entries: ./roles
fps: 30
log:
  level: debug
  file: roam.log
audio:
  enabled: false
keys:
  x: quit
`)
	cfg, _, err := loadConfig(path, parsedRunFlags(t, "--fps", "90", "--log-level", "warn"))
	require.NoError(t, err)

	assert.Equal(t, "gallery", cfg.World, "file value kept when flag unchanged")
	assert.Equal(t, "./roles", cfg.Entries)
	assert.Equal(t, 90, cfg.FPS, "explicit flag wins")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "roam.log", cfg.Log.File)
	assert.Equal(t, defaultLogFormat, cfg.Log.Format, "flag default fills keys the file omits")
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, map[string]string{"x": "quit"}, cfg.Keys)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Equal(t, codeConfigInvalid, codeOf(t, err))
}

func TestEffectiveProfile(t *testing.T) {
	t.Run("no overrides", func(t *testing.T) {
		_, k, err := loadConfig(writeConfig(t, "world: gallery\n"), nil)
		require.NoError(t, err)
		p, err := effectiveProfile("gallery", k)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("partial override keeps the world profile", func(t *testing.T) {
		_, k, err := loadConfig(writeConfig(t, `
world: gallery
profile:
  locomotion:
    max_speed: 9.5
  tour:
    speed_factor: 0.5
`), nil)
		require.NoError(t, err)
		p, err := effectiveProfile("gallery", k)
		require.NoError(t, err)
		require.NotNil(t, p)

		base := parameter.GalleryProfile()
		assert.Equal(t, 9.5, p.Locomotion.MaxSpeed)
		assert.Equal(t, 0.5, p.Tour.SpeedFactor)
		assert.Equal(t, base.Locomotion.Rate, p.Locomotion.Rate)
		assert.Equal(t, base.Interaction.ActivationRadius, p.Interaction.ActivationRadius)
		assert.True(t, p.Tour.Available)
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		_, k, err := loadConfig(writeConfig(t, `
profile:
  interaction:
    epsilon: 0.7
`), nil)
		require.NoError(t, err)
		_, err = effectiveProfile("corridor", k)
		require.Error(t, err)
		assert.Equal(t, engine.CodeProfileInvalid, codeOf(t, err))
	})

	t.Run("unknown world", func(t *testing.T) {
		_, k, err := loadConfig(writeConfig(t, "profile:\n  name: x\n"), nil)
		require.NoError(t, err)
		_, err = effectiveProfile("nowhere", k)
		require.Error(t, err)
		assert.Equal(t, engine.CodeWorldUnknown, codeOf(t, err))
	})
}
