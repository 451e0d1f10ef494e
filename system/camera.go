package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/vmath"
)

// CameraSystem trails the avatar, leans toward the nearest object and frames travel close-ups
type CameraSystem struct {
	placed bool
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update(sess *engine.Session, dt float64) {
	cp := sess.Profile.Camera
	p := sess.Avatar.Position

	anchor := mgl64.Vec3{p.X() * cp.AnchorXFactor, cp.AnchorHeight, p.Z() + cp.AnchorDistance}
	look := mgl64.Vec3{p.X() * cp.LookXFactor, cp.LookHeight, p.Z() + cp.LookAhead}

	// First frame snaps so the camera does not sweep in from the origin
	if !s.placed {
		sess.Camera.Position = anchor
		sess.Camera.LookTarget = look
		s.placed = true
	}

	t := sess.Transition
	if (t.Phase == engine.PhasePulling || t.Phase == engine.PhaseClosingDoor) && t.Target != nil {
		e := t.Eased
		o := t.Target.Position
		closeUp := mgl64.Vec3{
			o.X() * parameter.CloseUpXFactor,
			parameter.CloseUpHeight + (1-e)*parameter.CloseUpRise,
			o.Y() + parameter.CloseUpPull*(1-e) + parameter.CloseUpBack,
		}
		focus := mgl64.Vec3{o.X() * parameter.CloseUpLookX, parameter.CloseUpLookHeight, o.Y()}
		rate := sess.Profile.Transition.CloseUpRate
		sess.Camera.Position = vmath.ApproachV3(sess.Camera.Position, closeUp, dt, rate)
		sess.Camera.LookTarget = vmath.ApproachV3(sess.Camera.LookTarget, focus, dt, rate)
		return
	}

	sess.Camera.Position = vmath.ApproachV3(sess.Camera.Position, anchor, dt, cp.FollowRate)

	// Look holds still while a panel or list is showing
	if sess.ActiveObject() >= 0 {
		return
	}

	if in := sess.Interest; cp.LookBiasRadius > 0 && in.Nearest >= 0 && in.Distance < cp.LookBiasRadius {
		b := 1 - in.Distance/cp.LookBiasRadius
		o := sess.Objects[in.Nearest].Position
		look[0] += (o.X()*cp.LookObjectXFactor - look.X()) * b * cp.LookBiasX
		look[1] += (cp.LookObjectHeight - look.Y()) * b * cp.LookBiasY
		look[2] += (o.Y() - look.Z()) * b * cp.LookBiasZ
	}

	sess.Camera.LookTarget = look
}
