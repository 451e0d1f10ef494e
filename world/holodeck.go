package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/registry"
)

// Holodeck layout: a single holotable on a square floor
const (
	HolodeckTableZ      = -6.0
	HolodeckTableRadius = 6.6
	HolodeckHalfSize    = 28.0
	HolodeckStartZ      = 10.0
)

func init() {
	registry.Register(registry.Definition{
		Name:        "holodeck",
		Description: "Central holotable listing every entry",
		Kind:        core.KindProject,
		Profile:     parameter.HolodeckProfile,
		Build:       BuildHolodeck,
		Announce: func(n int, kind core.EntryKind) string {
			return fmt.Sprintf("Holotable ready: %d %s loaded.", n, kind.Plural())
		},
	})
}

// BuildHolodeck puts every entry behind one console
func BuildHolodeck(entries []*core.Entry) (registry.Layout, error) {
	return registry.Layout{
		Bounds: core.Bounds{
			MinX: -HolodeckHalfSize,
			MaxX: HolodeckHalfSize,
			MinZ: -HolodeckHalfSize,
			MaxZ: HolodeckHalfSize,
		},
		Objects: []*component.Interactive{
			component.NewConsole(0, mgl64.Vec2{0, HolodeckTableZ}, HolodeckTableRadius, entries),
		},
		AvatarStart: mgl64.Vec3{0, 0, HolodeckStartZ},
	}, nil
}
