package main

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/world"
)

// runConfig is everything the run command needs
// Precedence: flags set on the command line, then the config file, then flag defaults
type runConfig struct {
	World   string  `koanf:"world"`
	Entries string  `koanf:"entries"`
	Filter  string  `koanf:"filter"`
	FPS     int     `koanf:"fps"`
	Zoom    float64 `koanf:"zoom"`
	Sprite  string  `koanf:"sprite"`

	Log struct {
		File   string `koanf:"file"`
		Format string `koanf:"format"`
		Level  string `koanf:"level"`
	} `koanf:"log"`

	Metrics struct {
		Addr string `koanf:"addr"`
	} `koanf:"metrics"`

	Audio struct {
		Enabled bool `koanf:"enabled"`
	} `koanf:"audio"`

	// Key name → action overrides, see input.LoadKeyConfig
	Keys map[string]string `koanf:"keys"`
}

// Flag defaults
const (
	codeConfigInvalid = "CONFIG_INVALID"

	defaultWorld     = "corridor"
	defaultLogFormat = "json"
	defaultLogLevel  = "info"
	defaultFPS       = 60
)

// flagKeys maps dashed flag names to nested config keys
var flagKeys = map[string]string{
	"log-file":     "log.file",
	"log-format":   "log.format",
	"log-level":    "log.level",
	"metrics-addr": "metrics.addr",
	"audio":        "audio.enabled",
}

// loadConfig layers the optional config file under the command flags
// The returned koanf instance keeps the raw tree for profile overrides
func loadConfig(path string, flags *pflag.FlagSet) (*runConfig, *koanf.Koanf, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, nil, oops.Code(codeConfigInvalid).With("path", path).Wrapf(err, "load config file")
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key := f.Name
			if mapped, ok := flagKeys[key]; ok {
				key = mapped
			}
			if key == "config" {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, nil, oops.Code(codeConfigInvalid).Wrapf(err, "load flags")
		}
	}

	cfg := &runConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, nil, oops.Code(codeConfigInvalid).Wrapf(err, "decode config")
	}
	if cfg.World == "" {
		cfg.World = defaultWorld
	}
	if cfg.FPS <= 0 {
		cfg.FPS = defaultFPS
	}
	return cfg, k, nil
}

// effectiveProfile is the world's built-in profile with the "profile" config section applied
// Returns nil when the config does not override anything
func effectiveProfile(worldName string, k *koanf.Koanf) (*parameter.Profile, error) {
	if k == nil || !k.Exists("profile") {
		return nil, nil
	}
	p, err := world.Profile(worldName)
	if err != nil {
		return nil, err
	}
	if err := k.Unmarshal("profile", &p); err != nil {
		return nil, oops.Code(codeConfigInvalid).With("world", worldName).Wrapf(err, "decode profile overrides")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
