package engine

import (
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/lixenwraith/roam/component"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/event"
	"github.com/lixenwraith/roam/parameter"
	"github.com/lixenwraith/roam/vmath"
)

// System is a per-frame update stage of a session
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(s *Session, dt float64)
}

// Config is everything a world hands over at setup
type Config struct {
	Profile     parameter.Profile
	Kind        core.EntryKind
	Bounds      core.Bounds
	Objects     []*component.Interactive
	Obstacles   []core.Obstacle // static, object radii are added automatically
	AvatarStart mgl64.Vec3

	Overlay   Overlay
	Audio     Audio // nil plays nothing
	Navigator Navigator
	Observer  Observer
	Logger    *slog.Logger
}

// Interest is the nearest object as of the last InterestSystem update
type Interest struct {
	Nearest  int // -1 when there are no objects
	Distance float64
	InRange  bool
}

// UIState mirrors what the overlay is currently showing
type UIState struct {
	PanelOpen   bool
	PanelObject int // -1 when no panel
	ListObject  int // console with an open list, -1 when none
	Prompt      string
	Status      string
	HintVisible bool
}

// TourState is the auto-walk patrol cursor
type TourState struct {
	Active bool
	Index  int
}

// Stats are cumulative counters for a session
type Stats struct {
	Frames        uint64
	Activations   uint64
	Navigations   uint64
	InputsDropped uint64
	SimTime       float64 // sum of clamped deltas
}

// Session is the explicit context of one running world
// Step is single-threaded; the input setters are safe from any goroutine
type Session struct {
	ID      ulid.ULID
	Profile parameter.Profile
	Kind    core.EntryKind
	Bounds  core.Bounds

	Avatar     core.AvatarState
	Camera     core.CameraRigState
	Objects    []*component.Interactive
	Obstacles  []core.Obstacle
	Transition TransitionState
	Interest   Interest
	Tour       TourState
	Input      InputSample
	UI         UIState

	Overlay   Overlay
	Audio     Audio
	Navigator Navigator
	Observer  Observer
	Logger    *slog.Logger

	systems  []System
	queue    *event.EventQueue
	eventBuf []event.GameEvent
	axisX    float64
	axisZ    float64
	stats    Stats
}

// NewSession validates setup and builds a session with no systems
// Failures are reported through Overlay.SetStatus when an overlay exists
func NewSession(cfg Config) (*Session, error) {
	if cfg.Overlay == nil {
		return nil, oops.Code(CodeSetupFailed).Errorf("overlay collaborator is required")
	}
	fail := func(status string, err error) (*Session, error) {
		cfg.Overlay.SetStatus(status)
		return nil, err
	}

	if cfg.Navigator == nil {
		return fail("Could not initialize the world.",
			oops.Code(CodeSetupFailed).Errorf("navigator collaborator is required"))
	}
	if err := cfg.Profile.Validate(); err != nil {
		return fail("Could not initialize the world.", err)
	}
	if !cfg.Bounds.Valid() {
		return fail("Could not initialize the world.",
			oops.Code(CodeSetupFailed).With("bounds", cfg.Bounds).Errorf("empty world bounds"))
	}
	if len(cfg.Objects) == 0 {
		return fail("No entries found for this world.",
			oops.Code(CodeEntriesEmpty).With("world", cfg.Profile.Name).Errorf("world has no interactive objects"))
	}
	for i, o := range cfg.Objects {
		if o == nil || (o.Console == nil && o.Entry == nil) {
			return fail("World data is invalid.",
				oops.Code(CodeEntryInvalid).With("object", i).Errorf("object %d has no entry", i))
		}
		if o.Console != nil && len(o.Console.Entries) == 0 {
			return fail("No entries loaded.",
				oops.Code(CodeEntriesEmpty).With("object", i).Errorf("console %d has no entries", i))
		}
	}

	s := &Session{
		ID:        ulid.Make(),
		Profile:   cfg.Profile,
		Kind:      cfg.Kind,
		Bounds:    cfg.Bounds,
		Avatar:    core.NewAvatar(cfg.Bounds.Clamp(cfg.AvatarStart)),
		Objects:   cfg.Objects,
		Obstacles: slices.Clone(cfg.Obstacles),
		Interest:  Interest{Nearest: -1},
		UI:        UIState{PanelObject: -1, ListObject: -1, HintVisible: true},
		Overlay:   cfg.Overlay,
		Audio:     cfg.Audio,
		Navigator: cfg.Navigator,
		Observer:  cfg.Observer,
		Logger:    cfg.Logger,
		queue:     event.NewEventQueue(),
		eventBuf:  make([]event.GameEvent, 0, parameter.EventQueueSize),
	}
	if s.Audio == nil {
		s.Audio = NopAudio{}
	}
	if s.Observer == nil {
		s.Observer = nopObserver{}
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.DiscardHandler)
	}
	s.Logger = s.Logger.With("session", s.ID.String(), "world", s.Profile.Name)

	for i, o := range s.Objects {
		o.ID = i
		if ob, ok := o.Obstacle(); ok {
			s.Obstacles = append(s.Obstacles, ob)
		}
	}

	s.Logger.Info("session ready", "objects", len(s.Objects), "obstacles", len(s.Obstacles))
	return s, nil
}

// AddSystem registers a system, keeping ascending priority order
// Systems with equal priority keep registration order
func (s *Session) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
	slices.SortStableFunc(s.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (s *Session) Systems() []System {
	return slices.Clone(s.systems)
}

// Step advances the world by one host frame
// The delta is clamped to [0, MaxFrameDelta]; NaN and negative collapse to 0
func (s *Session) Step(deltaSeconds float64) {
	dt := vmath.SafeDelta(deltaSeconds, parameter.MaxFrameDelta)

	s.foldInput()
	for _, sys := range s.systems {
		sys.Update(s, dt)
	}

	s.stats.Frames++
	s.stats.SimTime += dt
	s.Observer.FrameStepped(dt)
}

// Stats returns a snapshot of the session counters
func (s *Session) Stats() Stats {
	st := s.stats
	st.InputsDropped = s.queue.Dropped()
	return st
}

// Frame is the number of completed steps
func (s *Session) Frame() uint64 {
	return s.stats.Frames
}
