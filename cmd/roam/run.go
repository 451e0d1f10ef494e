package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lixenwraith/roam/audio"
	"github.com/lixenwraith/roam/content"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/host"
	"github.com/lixenwraith/roam/input"
	"github.com/lixenwraith/roam/logging"
	"github.com/lixenwraith/roam/metrics"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/registry"
	"github.com/lixenwraith/roam/render"
	"github.com/lixenwraith/roam/status"
	"github.com/lixenwraith/roam/world"
)

const serviceName = "roam"

// NewRunCmd creates the run subcommand
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk a world in the terminal",
		Long: `Open a world, place the entries in it and walk it in the terminal.
Completing a travel prints the destination and exits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, k, err := loadConfig(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			profile, err := effectiveProfile(cfg.World, k)
			if err != nil {
				return err
			}
			return runWorld(cmd.Context(), cmd.OutOrStdout(), cfg, profile)
		},
	}

	f := cmd.Flags()
	f.String("world", defaultWorld, "world to open (see 'roam worlds')")
	f.String("entries", "", "entry file or directory")
	f.String("filter", "", "glob over entry titles and tags, e.g. 'go*'")
	f.Int("fps", defaultFPS, "host frame rate")
	f.Float64("zoom", render.DefaultZoom, "rows per world unit")
	f.String("sprite", "", "avatar sprite file (YAML)")
	f.String("log-file", "", "log file path (empty discards logs)")
	f.String("log-format", defaultLogFormat, "log format (json or text)")
	f.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	f.String("metrics-addr", "", "metrics/health HTTP address (empty = disabled)")
	f.Bool("audio", true, "play audio cues")

	return cmd
}

// openLogger writes to the log file, the terminal belongs to the renderer
func openLogger(cfg *runConfig) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Log.File == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, oops.Code(engine.CodeSetupFailed).With("path", cfg.Log.File).Wrapf(err, "open log file")
	}
	return logging.Setup(serviceName, version, cfg.Log.Format, level, f), func() { _ = f.Close() }, nil
}

// loadEntries reads the entry collection for a world
func loadEntries(cfg *runConfig, logger *slog.Logger) (*content.Registry, error) {
	def, err := registry.Lookup(cfg.World)
	if err != nil {
		return nil, err
	}
	if cfg.Entries == "" {
		return nil, oops.Code(engine.CodeEntriesEmpty).With("world", def.Name).Errorf("no entries given for world %s, use --entries", def.Name)
	}
	loader := content.NewLoader(def.Kind)
	loader.Filter = cfg.Filter
	loader.Logger = logger
	return loader.Load(cfg.Entries)
}

func runWorld(ctx context.Context, out io.Writer, cfg *runConfig, profile *parameter.Profile) error {
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer := otel.Tracer(serviceName)
	ctx, span := tracer.Start(ctx, "world.open")
	span.SetAttributes(attribute.String("world", cfg.World))

	entries, err := loadEntries(cfg, logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load entries")
		span.End()
		logging.LogError(logger, "failed to load entries", err)
		return err
	}
	span.SetAttributes(attribute.Int("entries", entries.Len()))

	// Metrics
	var observer engine.Observer
	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(cfg.Metrics.Addr, logger)
		observer = metrics.NewObserver(srv.Registry(), cfg.World)
		errCh, err := srv.Start()
		if err != nil {
			span.End()
			logging.LogError(logger, "failed to start metrics server", err)
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				logging.LogError(logger, "failed to stop metrics server", err)
			}
			for range errCh {
			}
		}()
	}

	// Audio
	audioCfg, err := audio.LoadConfig()
	if err != nil {
		logging.LogError(logger, "audio config", err)
	}
	audioCfg.Enabled = audioCfg.Enabled && cfg.Audio.Enabled
	player, closeAudio, err := audio.Open(audioCfg, logger)
	if err != nil {
		logging.LogError(logger, "audio unavailable, continuing silent", err)
		player, closeAudio, _ = audio.Open(audio.Config{}, logger)
	}
	defer closeAudio()

	// Screen
	screen, closeScreen, err := render.OpenScreen()
	if err != nil {
		span.End()
		return err
	}
	defer closeScreen()

	overlay := render.NewOverlay()
	exit := &host.Exit{}
	reg := status.NewRegistry()

	sess, err := world.Open(world.Options{
		World:     cfg.World,
		Entries:   entries,
		Profile:   profile,
		Overlay:   overlay,
		Audio:     player,
		Navigator: exit,
		Observer:  observer,
		Logger:    logger,
		Status:    reg,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open world")
		span.End()
		closeScreen()
		logging.LogError(logger, "failed to open world", err)
		fmt.Fprintln(out, overlay.Status())
		return err
	}
	span.End()

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			closeScreen()
			return err
		}
		keys = input.MergeKeyTable(keys, override)
	}

	orch := render.NewOrchestrator(screen)
	orch.Register(render.FloorRenderer{}, render.PriorityFloor)
	orch.Register(render.ObjectRenderer{}, render.PriorityObject)
	orch.Register(render.NewAvatarRenderer(render.LoadSprite(ctx, cfg.Sprite, logger), logger), render.PriorityAvatar)
	orch.Register(render.NewHUD(overlay, player.Muted), render.PriorityUI)
	orch.Register(overlay, render.PriorityOverlay)
	debug := render.NewDebugRenderer(reg)
	orch.Register(debug, render.PriorityDebug)

	loop, err := host.New(host.Options{
		Screen:       screen,
		Session:      sess,
		Orchestrator: orch,
		Router:       input.NewRouter(keys, sess, nil),
		Exit:         exit,
		Debug:        debug,
		Muter:        player,
		FPS:          cfg.FPS,
		Zoom:         cfg.Zoom,
		Logger:       logger,
	})
	if err != nil {
		closeScreen()
		return err
	}

	dest, err := loop.Run(ctx)
	closeScreen()
	if err != nil {
		logging.LogError(logger, "host loop failed", err)
		return err
	}

	stats := sess.Stats()
	logger.Info("session ended",
		"frames", stats.Frames,
		"activations", stats.Activations,
		"navigations", stats.Navigations,
		"inputs_dropped", stats.InputsDropped,
	)
	if dest != "" {
		fmt.Fprintln(out, dest)
	}
	return nil
}
