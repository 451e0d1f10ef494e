package engine_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/engine/enginetest"
	"github.com/lixenwraith/roam/parameter"
)

func baseConfig(rec *enginetest.Recorder) engine.Config {
	return engine.Config{
		Profile: parameter.CorridorProfile(),
		Bounds:  core.Bounds{MinX: -4.2, MaxX: 4.2, MinZ: -40, MaxZ: 7.6},
		Objects: []*component.Interactive{
			component.NewDoor(0, mgl64.Vec2{-9.7, -14}, &core.Entry{Title: "One", Destination: "/1/"}),
		},
		AvatarStart: mgl64.Vec3{0, 0, 4.8},
		Overlay:     rec,
		Audio:       rec,
		Navigator:   rec,
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	oe, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	assert.Equal(t, code, oe.Code())
}

func TestNewSessionSetupFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*engine.Config)
		code   string
		status string
	}{
		{
			name:   "no objects",
			mutate: func(c *engine.Config) { c.Objects = nil },
			code:   engine.CodeEntriesEmpty,
			status: "No entries found for this world.",
		},
		{
			name:   "door without entry",
			mutate: func(c *engine.Config) { c.Objects[0].Entry = nil },
			code:   engine.CodeEntryInvalid,
			status: "World data is invalid.",
		},
		{
			name:   "bad profile",
			mutate: func(c *engine.Config) { c.Profile.Locomotion.Rate = math.NaN() },
			code:   engine.CodeProfileInvalid,
			status: "Could not initialize the world.",
		},
		{
			name:   "empty bounds",
			mutate: func(c *engine.Config) { c.Bounds.MinX = 10 },
			code:   engine.CodeSetupFailed,
			status: "Could not initialize the world.",
		},
		{
			name:   "missing navigator",
			mutate: func(c *engine.Config) { c.Navigator = nil },
			code:   engine.CodeSetupFailed,
			status: "Could not initialize the world.",
		},
		{
			name: "empty console",
			mutate: func(c *engine.Config) {
				c.Objects = []*component.Interactive{component.NewConsole(0, mgl64.Vec2{}, 6.6, nil)}
			},
			code:   engine.CodeEntriesEmpty,
			status: "No entries loaded.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := enginetest.New()
			cfg := baseConfig(rec)
			tc.mutate(&cfg)

			sess, err := engine.NewSession(cfg)
			assert.Nil(t, sess)
			requireCode(t, err, tc.code)
			assert.Equal(t, tc.status, rec.Status)
		})
	}
}

func TestNewSessionWithoutOverlay(t *testing.T) {
	cfg := baseConfig(enginetest.New())
	cfg.Overlay = nil
	_, err := engine.NewSession(cfg)
	requireCode(t, err, engine.CodeSetupFailed)
}

func TestNewSessionDefaults(t *testing.T) {
	rec := enginetest.New()
	cfg := baseConfig(rec)
	cfg.Audio = nil
	cfg.AvatarStart = mgl64.Vec3{50, 0, 50}
	cfg.Obstacles = []core.Obstacle{{Center: mgl64.Vec2{0, -30}, Radius: 1}}
	cfg.Objects = append(cfg.Objects,
		component.NewStatue(7, mgl64.Vec2{3, -20}, 2.5, &core.Entry{Title: "S"}))

	sess, err := engine.NewSession(cfg)
	require.NoError(t, err)

	assert.Equal(t, mgl64.Vec3{4.2, 0, 7.6}, sess.Avatar.Position, "start is clamped")
	assert.Equal(t, 1, sess.Objects[1].ID, "ids follow slice order")
	assert.Len(t, sess.Obstacles, 2, "statue radius becomes an obstacle")
	assert.Equal(t, -1, sess.Interest.Nearest)
	assert.NotPanics(t, func() { sess.Step(1.0 / 60) })
	assert.NotEqual(t, "", sess.ID.String())
}

type orderSystem struct {
	name     string
	priority int
	log      *[]string
}

func (p orderSystem) Name() string  { return p.name }
func (p orderSystem) Priority() int { return p.priority }
func (p orderSystem) Update(_ *engine.Session, _ float64) {
	*p.log = append(*p.log, p.name)
}

func TestStepRunsSystemsInPriorityOrder(t *testing.T) {
	sess, err := engine.NewSession(baseConfig(enginetest.New()))
	require.NoError(t, err)

	var log []string
	sess.AddSystem(orderSystem{"camera", parameter.PriorityCamera, &log})
	sess.AddSystem(orderSystem{"locomotion", parameter.PriorityLocomotion, &log})
	sess.AddSystem(orderSystem{"transition", parameter.PriorityTransition, &log})
	sess.AddSystem(orderSystem{"tour", parameter.PriorityTour, &log})

	sess.Step(0.016)
	assert.Equal(t, []string{"tour", "locomotion", "transition", "camera"}, log)
}

type deltaSystem struct{ got []float64 }

func (p *deltaSystem) Name() string  { return "delta" }
func (p *deltaSystem) Priority() int { return 0 }
func (p *deltaSystem) Update(_ *engine.Session, dt float64) {
	p.got = append(p.got, dt)
}

func TestStepClampsDelta(t *testing.T) {
	sess, err := engine.NewSession(baseConfig(enginetest.New()))
	require.NoError(t, err)
	spy := &deltaSystem{}
	sess.AddSystem(spy)

	for _, dt := range []float64{0.016, 2.5, -1, math.NaN(), math.Inf(1)} {
		sess.Step(dt)
	}
	assert.Equal(t, []float64{0.016, parameter.MaxFrameDelta, 0, 0, parameter.MaxFrameDelta}, spy.got)
	assert.Equal(t, uint64(5), sess.Stats().Frames)
	assert.InDelta(t, 0.116, sess.Stats().SimTime, 1e-12)
}

type inputSpy struct{ samples []engine.InputSample }

func (p *inputSpy) Name() string  { return "input" }
func (p *inputSpy) Priority() int { return 0 }
func (p *inputSpy) Update(s *engine.Session, _ float64) {
	p.samples = append(p.samples, s.Input)
}

func TestInputFoldLastWriterWins(t *testing.T) {
	sess, err := engine.NewSession(baseConfig(enginetest.New()))
	require.NoError(t, err)
	spy := &inputSpy{}
	sess.AddSystem(spy)

	sess.SetAxis(1, 0)
	sess.SetAxis(0, -1)
	sess.ConfirmPressed()
	sess.SelectEntry(3)
	sess.Step(0.016)

	sess.Step(0.016)

	sess.SetAxis(3, 4) // renormalized
	sess.ToggleTour()
	sess.ToggleTour()
	sess.Step(0.016)

	first, second, third := spy.samples[0], spy.samples[1], spy.samples[2]
	assert.Equal(t, 0.0, first.AxisX)
	assert.Equal(t, -1.0, first.AxisZ)
	assert.True(t, first.Confirm)
	assert.True(t, first.ManualAxis)
	assert.Equal(t, 3, first.Select)

	assert.Equal(t, -1.0, second.AxisZ, "held axis persists")
	assert.False(t, second.Confirm, "edges do not persist")
	assert.False(t, second.ManualAxis)
	assert.Equal(t, -1, second.Select)

	assert.InDelta(t, 1.0, math.Hypot(third.AxisX, third.AxisZ), 1e-12)
	assert.False(t, third.TourToggle, "two toggles in one frame cancel")
}

func TestInputDiscardedWhileTraveling(t *testing.T) {
	sess, err := engine.NewSession(baseConfig(enginetest.New()))
	require.NoError(t, err)
	spy := &inputSpy{}
	sess.AddSystem(spy)

	sess.SetPhase(engine.PhasePulling)
	sess.SetAxis(1, 1)
	sess.ActivatePressed()
	sess.Step(0.016)

	sess.SetPhase(engine.PhaseIdle)
	sess.Step(0.016)

	for _, in := range spy.samples {
		assert.Equal(t, 0.0, in.AxisX)
		assert.False(t, in.Activate)
	}
}

func TestActivateClearsOthers(t *testing.T) {
	rec := enginetest.New()
	cfg := baseConfig(rec)
	for i := 1; i < 4; i++ {
		cfg.Objects = append(cfg.Objects, component.NewDoor(i, mgl64.Vec2{9.7, float64(-14 - i*18)}, &core.Entry{Title: "x"}))
	}
	sess, err := engine.NewSession(cfg)
	require.NoError(t, err)

	for _, i := range []int{0, 3, 1, 1, 2} {
		require.True(t, sess.Activate(i))
		open := 0
		for _, o := range sess.Objects {
			if o.TargetOpen == 1 {
				open++
			}
		}
		require.Equal(t, 1, open)
		assert.Equal(t, 1.0, sess.Objects[i].TargetOpen)
	}
	assert.False(t, sess.Activate(9))
	assert.Equal(t, uint64(5), sess.Stats().Activations)
}

func TestSetPromptAndStatusDedupe(t *testing.T) {
	rec := enginetest.New()
	sess, err := engine.NewSession(baseConfig(rec))
	require.NoError(t, err)

	sess.SetPrompt("a")
	sess.SetPrompt("a")
	sess.SetPrompt("")
	sess.SetPrompt("")
	sess.SetStatus("x")
	sess.SetStatus("x")
	assert.Equal(t, 1, rec.Count("ShowPrompt"))
	assert.Equal(t, 1, rec.Count("ClearPrompt"))
	assert.Equal(t, 1, rec.Count("SetStatus"))
}

func TestFutureResolvesOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := engine.NewFuture[string]()
	assert.False(t, f.Resolved())
	v, err := f.Result()
	assert.Equal(t, "", v)
	assert.NoError(t, err)

	f.Resolve("sprite", nil)
	f.Resolve("ignored", assert.AnError)
	v, err = f.Result()
	assert.Equal(t, "sprite", v)
	assert.NoError(t, err)
}

func TestFutureGo(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := engine.Go(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})
	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, f.Resolved())
}

func TestFutureWaitCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := engine.NewFuture[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
