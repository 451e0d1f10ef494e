package world

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/registry"
)

// Gallery layout: statues on plinths that block movement
const (
	GalleryStatueOffset  = 8.0
	GalleryFirstStatueZ  = -14.0
	GalleryStatueSpacing = 20.0
	GalleryStatueRadius  = 2.5
	GalleryHalfWidth     = 14.5
	GalleryMinZ          = -110.0
	GalleryMaxZ          = 24.0
	GalleryStartZ        = 14.0
	GalleryTailLength    = 15.0
)

func init() {
	registry.Register(registry.Definition{
		Name:        "gallery",
		Description: "Statue gallery with an optional guided tour",
		Kind:        core.KindRole,
		Profile:     parameter.GalleryProfile,
		Build:       BuildGallery,
		Announce: func(n int, kind core.EntryKind) string {
			return fmt.Sprintf("Loaded %d %s statues.", n, kind.String())
		},
	})
}

// BuildGallery places one statue per entry, plaques carry title and date label
func BuildGallery(entries []*core.Entry) (registry.Layout, error) {
	objects := make([]*component.Interactive, len(entries))
	for i, e := range entries {
		side := -1.0
		if i%2 == 1 {
			side = 1
		}
		z := GalleryFirstStatueZ - float64(i)*GalleryStatueSpacing
		o := component.NewStatue(i, mgl64.Vec2{side * GalleryStatueOffset, z}, GalleryStatueRadius, e)
		if e.DateLabel != "" {
			o.Statue.Plaque = e.Title + " (" + e.DateLabel + ")"
		}
		objects[i] = o
	}

	lastZ := GalleryFirstStatueZ - float64(max(len(entries)-1, 0))*GalleryStatueSpacing
	return registry.Layout{
		Bounds: core.Bounds{
			MinX: -GalleryHalfWidth,
			MaxX: GalleryHalfWidth,
			MinZ: math.Min(GalleryMinZ, lastZ-GalleryTailLength),
			MaxZ: GalleryMaxZ,
		},
		Objects:     objects,
		AvatarStart: mgl64.Vec3{0, 0, GalleryStartZ},
	}, nil
}
