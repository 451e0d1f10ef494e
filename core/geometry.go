package core

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/vmath"
)

// Obstacle is a static circle on the ground plane, Center is (x, z)
type Obstacle struct {
	Center mgl64.Vec2
	Radius float64
}

// Bounds is the rectangular walkable lane
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Clamp restricts a world position to the lane, y is untouched
func (b Bounds) Clamp(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		vmath.Clamp(p.X(), b.MinX, b.MaxX),
		p.Y(),
		vmath.Clamp(p.Z(), b.MinZ, b.MaxZ),
	}
}

// Contains reports whether the planar point lies inside the lane
func (b Bounds) Contains(p mgl64.Vec2) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX && p.Y() >= b.MinZ && p.Y() <= b.MaxZ
}

// Valid reports a non-empty rectangle
func (b Bounds) Valid() bool {
	return b.MinX <= b.MaxX && b.MinZ <= b.MaxZ
}

// Center returns the planar midpoint
func (b Bounds) Center() mgl64.Vec2 {
	return mgl64.Vec2{(b.MinX + b.MaxX) / 2, (b.MinZ + b.MaxZ) / 2}
}
