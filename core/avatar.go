package core

import "github.com/go-gl/mathgl/mgl64"

// LocomotionMode is the gait derived from planar speed
type LocomotionMode uint8

const (
	ModeIdle LocomotionMode = iota
	ModeWalk
	ModeRun
)

func (m LocomotionMode) String() string {
	switch m {
	case ModeWalk:
		return "walk"
	case ModeRun:
		return "run"
	default:
		return "idle"
	}
}

// AvatarState is the walker transform
// Written by locomotion and collision during free roam, by the transition sequencer while traveling
type AvatarState struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Facing   float64 // yaw radians
	Mode     LocomotionMode
	Scale    float64
	Visible  bool
}

// NewAvatar places a visible, unit-scale avatar at rest
func NewAvatar(position mgl64.Vec3) AvatarState {
	return AvatarState{
		Position: position,
		Scale:    1,
		Visible:  true,
	}
}

// CameraRigState is the smoothed camera transform
type CameraRigState struct {
	Position   mgl64.Vec3
	LookTarget mgl64.Vec3
}
