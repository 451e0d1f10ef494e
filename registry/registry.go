package registry

import (
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/oops"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
)

// Layout is the static arrangement a world builder produces from entries
type Layout struct {
	Bounds      core.Bounds
	Objects     []*component.Interactive
	Obstacles   []core.Obstacle
	AvatarStart mgl64.Vec3
}

// Builder places entries into a layout
type Builder func(entries []*core.Entry) (Layout, error)

// Definition describes one built-in world
type Definition struct {
	Name        string
	Description string
	Kind        core.EntryKind // default collection shown by the world
	Profile     func() parameter.Profile
	Build       Builder
	Announce    func(n int, kind core.EntryKind) string // status once the world is ready
}

var (
	worldsMu sync.RWMutex
	worlds   = make(map[string]Definition)
)

// Register adds a world definition by name, replacing any previous one
func Register(def Definition) {
	worldsMu.Lock()
	defer worldsMu.Unlock()
	worlds[def.Name] = def
}

// Lookup retrieves a world definition by name
func Lookup(name string) (Definition, error) {
	worldsMu.RLock()
	defer worldsMu.RUnlock()
	def, ok := worlds[name]
	if !ok {
		return Definition{}, oops.Code(engine.CodeWorldUnknown).
			With("world", name).
			With("known", namesLocked()).
			Errorf("unknown world %q", name)
	}
	return def, nil
}

// Names returns all registered world names in sorted order
func Names() []string {
	worldsMu.RLock()
	defer worldsMu.RUnlock()
	return namesLocked()
}

// Definitions returns all registered worlds sorted by name
func Definitions() []Definition {
	worldsMu.RLock()
	defer worldsMu.RUnlock()
	defs := make([]Definition, 0, len(worlds))
	for _, name := range namesLocked() {
		defs = append(defs, worlds[name])
	}
	return defs
}

func namesLocked() []string {
	names := make([]string, 0, len(worlds))
	for name := range worlds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
