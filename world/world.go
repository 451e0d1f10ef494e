// Package world builds sessions for the built-in worlds
package world

import (
	"log/slog"

	"github.com/samber/oops"

	"github.com/lixenwraith/roam/content"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/registry"
	"github.com/lixenwraith/roam/status"
	"github.com/lixenwraith/roam/system"
)

// Options wires a world to its entries and collaborators
type Options struct {
	World   string
	Entries *content.Registry

	// Profile replaces the world's built-in profile when set
	Profile *parameter.Profile

	Overlay   engine.Overlay
	Audio     engine.Audio
	Navigator engine.Navigator
	Observer  engine.Observer
	Logger    *slog.Logger
	Status    *status.Registry
}

// Profile returns the effective profile of a named world
func Profile(name string) (parameter.Profile, error) {
	def, err := registry.Lookup(name)
	if err != nil {
		return parameter.Profile{}, err
	}
	return def.Profile(), nil
}

// Open builds a running session with the full system pipeline installed
// Setup failures are reported on the overlay status line and returned
func Open(opts Options) (*engine.Session, error) {
	if opts.Overlay == nil {
		return nil, oops.Code(engine.CodeSetupFailed).Errorf("overlay collaborator is required")
	}

	def, err := registry.Lookup(opts.World)
	if err != nil {
		opts.Overlay.SetStatus("Could not initialize the world.")
		return nil, err
	}
	if opts.Entries == nil || opts.Entries.Len() == 0 {
		opts.Overlay.SetStatus("No entries found for this world.")
		return nil, oops.Code(engine.CodeEntriesEmpty).With("world", def.Name).Errorf("no entries for world %s", def.Name)
	}

	profile := def.Profile()
	if opts.Profile != nil {
		profile = *opts.Profile
	}

	layout, err := def.Build(opts.Entries.Pointers())
	if err != nil {
		opts.Overlay.SetStatus("World data is invalid.")
		return nil, oops.Code(engine.CodeEntryInvalid).With("world", def.Name).Wrap(err)
	}

	sess, err := engine.NewSession(engine.Config{
		Profile:     profile,
		Kind:        opts.Entries.Kind(),
		Bounds:      layout.Bounds,
		Objects:     layout.Objects,
		Obstacles:   layout.Obstacles,
		AvatarStart: layout.AvatarStart,
		Overlay:     opts.Overlay,
		Audio:       opts.Audio,
		Navigator:   opts.Navigator,
		Observer:    opts.Observer,
		Logger:      opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	system.RegisterAll(sess, opts.Status)

	if def.Announce != nil {
		sess.SetStatus(def.Announce(opts.Entries.Len(), opts.Entries.Kind()))
	}
	return sess, nil
}
