package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/registry"
)

// Corridor layout: doors alternate sides of a narrow lane walking toward -z
const (
	CorridorDoorOffset  = 8.2
	CorridorFirstDoorZ  = -14.0
	CorridorDoorSpacing = 18.5
	CorridorHalfWidth   = 4.2
	CorridorTailLength  = 15.0
	CorridorMaxZ        = 7.6
	CorridorStartZ      = 4.8
)

func init() {
	registry.Register(registry.Definition{
		Name:        "corridor",
		Description: "Timeline corridor, one door per entry on alternating walls",
		Kind:        core.KindPost,
		Profile:     parameter.CorridorProfile,
		Build:       BuildCorridor,
		Announce: func(n int, kind core.EntryKind) string {
			return fmt.Sprintf("Loaded %d %s doors.", n, kind.Plural())
		},
	})
}

// BuildCorridor places entry i at z = first - i*spacing, left wall first
func BuildCorridor(entries []*core.Entry) (registry.Layout, error) {
	objects := make([]*component.Interactive, len(entries))
	for i, e := range entries {
		side := -1.0
		if i%2 == 1 {
			side = 1
		}
		z := CorridorFirstDoorZ - float64(i)*CorridorDoorSpacing
		objects[i] = component.NewDoor(i, mgl64.Vec2{side * CorridorDoorOffset, z}, e)
	}

	lastDoorZ := CorridorFirstDoorZ - float64(max(len(entries)-1, 0))*CorridorDoorSpacing
	return registry.Layout{
		Bounds: core.Bounds{
			MinX: -CorridorHalfWidth,
			MaxX: CorridorHalfWidth,
			MinZ: lastDoorZ - CorridorTailLength,
			MaxZ: CorridorMaxZ,
		},
		Objects:     objects,
		AvatarStart: mgl64.Vec3{0, 0, CorridorStartZ},
	}, nil
}
