package system

import (
	"math"

	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/vmath"
)

// InterestSystem finds the nearest object, drives halos, the prompt and proximity hum
type InterestSystem struct{}

func NewInterestSystem() *InterestSystem {
	return &InterestSystem{}
}

func (s *InterestSystem) Name() string {
	return "interest"
}

func (s *InterestSystem) Priority() int {
	return parameter.PriorityInterest
}

func (s *InterestSystem) Update(sess *engine.Session, dt float64) {
	ip := sess.Profile.Interaction
	radius := ip.ActivationRadius

	nearest, best := -1, math.Inf(1)
	for i, o := range sess.Objects {
		d := vmath.PlanarDistance(sess.Avatar.Position, o.Position)
		// Strict less keeps the lowest index on ties
		if d < best {
			nearest, best = i, d
		}
		o.Halo = vmath.Clamp(ip.HaloBase+(radius-d)*ip.HaloGain, ip.HaloMin, ip.HaloMax)
	}

	inRange := nearest >= 0 && best < radius
	sess.Interest = engine.Interest{Nearest: nearest, Distance: best, InRange: inRange}

	if inRange && sess.ActiveObject() < 0 && !sess.Transition.Phase.Traveling() {
		sess.SetPrompt(sess.Objects[nearest].PromptText())
	} else {
		sess.SetPrompt("")
	}

	level := 0.0
	if inRange {
		level = vmath.Clamp01(1 - best/radius)
	}
	sess.Audio.ProximityLevel(level)
}
