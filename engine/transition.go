package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
)

// TransitionPhase is the travel sequencer state
type TransitionPhase uint8

const (
	PhaseIdle TransitionPhase = iota
	PhasePulling
	PhaseClosingDoor
	PhaseNavigating
)

func (p TransitionPhase) String() string {
	switch p {
	case PhasePulling:
		return "pulling"
	case PhaseClosingDoor:
		return "closing_door"
	case PhaseNavigating:
		return "navigating"
	default:
		return "idle"
	}
}

// Traveling reports whether the sequencer owns the avatar
func (p TransitionPhase) Traveling() bool {
	return p != PhaseIdle
}

// TransitionState is the single travel sequencer instance of a session
type TransitionState struct {
	Phase          TransitionPhase
	Elapsed        float64 // seconds in Pulling
	Progress       float64 // linear [0, 1]
	Eased          float64
	Dwell          float64 // seconds in ClosingDoor
	StartPosition  mgl64.Vec3
	TargetPosition mgl64.Vec3
	Target         *component.Interactive
	Entry          *core.Entry
}
