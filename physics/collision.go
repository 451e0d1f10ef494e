package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/parameter"
)

// fallbackNormal is +z, used when the avatar sits on an obstacle center
var fallbackNormal = mgl64.Vec2{0, 1}

// ResolveObstacles pushes the avatar out of every overlapping circle in one pass,
// removes the inward velocity component, then re-clamps to bounds
// Obstacles are resolved independently; returns how many overlapped
func ResolveObstacles(a *core.AvatarState, avatarRadius float64, obstacles []core.Obstacle, bounds core.Bounds) int {
	hits := 0
	for _, ob := range obstacles {
		p := mgl64.Vec2{a.Position.X(), a.Position.Z()}
		offset := p.Sub(ob.Center)
		d := offset.Len()
		minDist := ob.Radius + avatarRadius
		if d >= minDist {
			continue
		}
		hits++

		n := fallbackNormal
		if d >= parameter.CollisionDegenerateDistance {
			n = offset.Mul(1 / d)
		}

		push := n.Mul(minDist - d)
		a.Position[0] += push.X()
		a.Position[2] += push.Y()

		v := mgl64.Vec2{a.Velocity.X(), a.Velocity.Z()}
		if inward := v.Dot(n); inward < 0 {
			a.Velocity[0] -= n.X() * inward
			a.Velocity[2] -= n.Y() * inward
		}
	}
	if hits > 0 {
		a.Position = bounds.Clamp(a.Position)
	}
	return hits
}
