package engine_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/engine/enginetest"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/system"
)

const step = 1.0 / 60

func stepFor(sess *engine.Session, seconds, dt float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		sess.Step(dt)
	}
}

var _ = Describe("Session", func() {
	var (
		rec    *enginetest.Recorder
		phases *enginetest.PhaseLog
		cfg    engine.Config
		sess   *engine.Session
	)

	BeforeEach(func() {
		rec = enginetest.New()
		phases = &enginetest.PhaseLog{}
		cfg = engine.Config{
			Profile:     parameter.CorridorProfile(),
			Kind:        core.KindProject,
			Bounds:      core.Bounds{MinX: -30, MaxX: 30, MinZ: -80, MaxZ: 30},
			AvatarStart: mgl64.Vec3{},
			Overlay:     rec,
			Audio:       rec,
			Navigator:   rec,
			Observer:    phases,
		}
		for i := 0; i < 3; i++ {
			cfg.Objects = append(cfg.Objects, component.NewDoor(i,
				mgl64.Vec2{-9.7, -14 - float64(i)*18.5},
				&core.Entry{Title: "Project", Destination: "/projects/p/"}))
		}
	})

	JustBeforeEach(func() {
		var err error
		sess, err = engine.NewSession(cfg)
		Expect(err).NotTo(HaveOccurred())
		system.RegisterAll(sess, nil)
	})

	Describe("locomotion", func() {
		BeforeEach(func() {
			cfg.Profile.Locomotion.MaxSpeed = 6.8
			cfg.Bounds.MinX, cfg.Bounds.MaxX = -4, 4
		})

		It("clamps at the lane edge at full speed", func() {
			sess.SetAxis(1, 0)
			stepFor(sess, 2, 0.016)
			Expect(sess.Avatar.Position.X()).To(Equal(4.0))
			Expect(sess.Avatar.Velocity.X()).To(BeNumerically("~", 6.8, 0.01))
		})

		It("converges within one percent in sixty steps", func() {
			cfg := sess.Profile.Locomotion
			sess.SetAxis(0, -1)
			for i := 0; i < 60; i++ {
				sess.Step(step)
			}
			Expect(sess.Avatar.Velocity.Z()).To(BeNumerically("~", -cfg.MaxSpeed, 0.01*cfg.MaxSpeed))
		})
	})

	Describe("collision", func() {
		BeforeEach(func() {
			cfg.Obstacles = []core.Obstacle{{Center: mgl64.Vec2{0, 0}, Radius: 6.6}}
			cfg.AvatarStart = mgl64.Vec3{0, 0, 20}
		})

		It("stops the avatar at the obstacle surface", func() {
			radius := sess.Profile.Locomotion.AvatarRadius
			sess.SetAxis(0, -1)
			for i := 0; i < 600; i++ {
				sess.Step(step)
				d := math.Hypot(sess.Avatar.Position.X(), sess.Avatar.Position.Z())
				Expect(d).To(BeNumerically(">=", 6.6+radius-1e-9))
			}
			Expect(sess.Avatar.Position.Z()).To(BeNumerically("~", 6.6+radius, 1e-6))
		})
	})

	Describe("interactive objects", func() {
		It("hands the reveal from #0 to #2", func() {
			sess.Activate(0)
			stepFor(sess, 1, step)
			Expect(sess.Objects[0].State).To(Equal(component.StateOpen))

			sess.Activate(2)
			sess.Step(step)
			Expect(sess.Objects[0].TargetOpen).To(Equal(0.0))
			Expect(sess.Objects[0].State).To(Equal(component.StateClosing))
			Expect(sess.Objects[2].State).To(Equal(component.StateOpening))

			stepFor(sess, 1.5, step)
			states := []component.OpenState{}
			for _, o := range sess.Objects {
				states = append(states, o.State)
			}
			Expect(states).To(Equal([]component.OpenState{
				component.StateClosed, component.StateClosed, component.StateOpen,
			}))
		})
	})

	Describe("travel", func() {
		BeforeEach(func() {
			cfg.AvatarStart = mgl64.Vec3{-6, 0, -13}
		})

		JustBeforeEach(func() {
			sess.ActivatePressed()
			stepFor(sess, 1, step)
			Expect(sess.UI.PanelOpen).To(BeTrue())
		})

		It("navigates exactly once after pull and dwell", func() {
			sess.ConfirmPressed()
			sess.Step(step)
			Expect(sess.Transition.Phase).To(Equal(engine.PhasePulling))
			start := sess.Avatar.Position

			elapsed := 0.0
			for elapsed < 0.85+0.6-step {
				sess.SetAxis(-1, 0)
				sess.CancelPressed()
				sess.Step(step)
				elapsed += step
				Expect(rec.Navigations).To(BeEmpty())
			}
			stepFor(sess, 5*step, step)
			Expect(rec.Navigations).To(Equal([]string{"/projects/p/"}))
			Expect(phases.Count(engine.PhaseNavigating)).To(Equal(1))

			stepFor(sess, 2, step)
			Expect(rec.Navigations).To(HaveLen(1))
			Expect(sess.Avatar.Position).To(Equal(start))
			Expect(sess.Avatar.Visible).To(BeTrue())
		})
	})
})
