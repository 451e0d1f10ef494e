package system

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/engine/enginetest"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/status"
)

const frame = 1.0 / 60

func testDoors(n int) []*component.Interactive {
	objs := make([]*component.Interactive, n)
	for i := range objs {
		x := 9.7
		if i%2 == 0 {
			x = -9.7
		}
		e := &core.Entry{
			Title:       fmt.Sprintf("Door %d", i),
			Destination: fmt.Sprintf("/posts/%d/", i),
			Summary:     "A summary long enough to be shown as is.",
		}
		objs[i] = component.NewDoor(i, mgl64.Vec2{x, -14 - float64(i)*18.5}, e)
	}
	return objs
}

type fixture struct {
	sess   *engine.Session
	rec    *enginetest.Recorder
	phases *enginetest.PhaseLog
	reg    *status.Registry
}

func newFixture(t *testing.T, objs []*component.Interactive, mutate func(*engine.Config)) *fixture {
	t.Helper()
	rec := enginetest.New()
	phases := &enginetest.PhaseLog{}
	cfg := engine.Config{
		Profile:     parameter.CorridorProfile(),
		Kind:        core.KindPost,
		Bounds:      core.Bounds{MinX: -12, MaxX: 12, MinZ: -120, MaxZ: 10},
		Objects:     objs,
		AvatarStart: mgl64.Vec3{0, 0, 4.8},
		Overlay:     rec,
		Audio:       rec,
		Navigator:   rec,
		Observer:    phases,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	sess, err := engine.NewSession(cfg)
	require.NoError(t, err)

	reg := status.NewRegistry()
	RegisterAll(sess, reg)
	return &fixture{sess: sess, rec: rec, phases: phases, reg: reg}
}

func (f *fixture) run(seconds float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += frame {
		f.sess.Step(frame)
	}
}

// targetCount is the number of objects requesting open
func targetCount(objs []*component.Interactive) int {
	n := 0
	for _, o := range objs {
		if o.TargetOpen == 1 {
			n++
		}
	}
	return n
}
