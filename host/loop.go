// Package host drives a session from a tcell screen: input, fixed-rate steps and rendering
package host

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/oops"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/input"
	"github.com/lixenwraith/roam/render"
)

// DefaultFPS is the host frame rate
const DefaultFPS = 60

// Exit is a Navigator that ends the loop once travel completes
// Session calls it on the loop goroutine, so no locking is needed
type Exit struct {
	destination string
	done        bool
}

func (e *Exit) NavigateTo(destination string) {
	e.destination = destination
	e.done = true
}

// Destination returns where travel ended, ok false if it never did
func (e *Exit) Destination() (string, bool) {
	return e.destination, e.done
}

// Muter is the audio mute switch, satisfied by *audio.Player
type Muter interface {
	ToggleMute() bool
}

// Options wires a loop; Session, Screen, Orchestrator and Router are required
type Options struct {
	Screen       tcell.Screen
	Session      *engine.Session
	Orchestrator *render.Orchestrator
	Router       *input.Router
	Exit         *Exit
	Debug        *render.DebugRenderer
	Muter        Muter
	FPS          int
	Zoom         float64
	Logger       *slog.Logger

	// Now is the clock, time.Now when nil
	Now func() time.Time
}

// Loop is the single-threaded frame driver
// Input setters are the only session calls made from outside Step
type Loop struct {
	opts Options
	last time.Time
}

func New(opts Options) (*Loop, error) {
	errb := oops.Code("SETUP_FAILED")
	switch {
	case opts.Screen == nil:
		return nil, errb.Errorf("host requires a screen")
	case opts.Session == nil:
		return nil, errb.Errorf("host requires a session")
	case opts.Orchestrator == nil:
		return nil, errb.Errorf("host requires an orchestrator")
	case opts.Router == nil:
		return nil, errb.Errorf("host requires an input router")
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Loop{opts: opts}, nil
}

// Run steps and renders until quit, travel completion or ctx cancellation
// Returns the travel destination when the run ended by navigating
func (l *Loop) Run(ctx context.Context) (string, error) {
	o := l.opts
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { o.Screen.ChannelEvents(events, quit) })

	ticker := time.NewTicker(time.Second / time.Duration(o.FPS))
	defer ticker.Stop()

	l.last = o.Now()
	l.frame()

	for {
		select {
		case <-ctx.Done():
			return "", nil

		case ev, ok := <-events:
			if !ok {
				return "", nil
			}
			if !l.handleEvent(ev) {
				o.Logger.Info("quit requested")
				return "", nil
			}

		case <-ticker.C:
			l.frame()
			if o.Exit != nil {
				if dest, done := o.Exit.Destination(); done {
					o.Logger.Info("travel complete", "destination", dest)
					return dest, nil
				}
			}
		}
	}
}

// frame advances the session by the elapsed wall time and draws it
func (l *Loop) frame() {
	o := l.opts
	now := o.Now()
	dt := now.Sub(l.last).Seconds()
	l.last = now

	o.Router.Tick(now)
	traveling := o.Session.Transition.Phase.Traveling()
	o.Session.Step(dt)
	if traveling && !o.Session.Transition.Phase.Traveling() {
		o.Router.Resync()
	}
	o.Orchestrator.RenderFrame(render.Context{
		Session: o.Session,
		HUDRows: render.HUDRows,
		Zoom:    o.Zoom,
	})
}

// handleEvent returns false when the loop should stop
func (l *Loop) handleEvent(ev tcell.Event) bool {
	o := l.opts
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch o.Router.HandleKey(ev, o.Now()) {
		case input.IntentQuit:
			return false
		case input.IntentMuteToggle:
			if o.Muter != nil {
				muted := o.Muter.ToggleMute()
				o.Logger.Debug("mute toggled", "muted", muted)
			}
		case input.IntentHUDToggle:
			if o.Debug != nil {
				o.Debug.Toggle()
			}
		}
	case *tcell.EventResize:
		o.Orchestrator.Resize()
	case *tcell.EventFocus:
		if !ev.Focused {
			o.Router.Release()
		}
	}
	return true
}
