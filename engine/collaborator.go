package engine

import "github.com/lixenwraith/roam/core"

// Panel is the revealed content of an opened object
type Panel struct {
	ObjectID    int
	Kind        core.EntryKind
	Title       string
	Meta        string
	Summary     string
	Destination string
	Details     []string
}

// PanelFor renders an entry into panel fields
func PanelFor(objectID int, e *core.Entry) Panel {
	return Panel{
		ObjectID:    objectID,
		Kind:        e.Kind,
		Title:       e.Title,
		Meta:        e.MetaLine(),
		Summary:     e.PanelSummary(),
		Destination: e.Destination,
		Details:     e.Details,
	}
}

// Overlay receives fire-and-forget UI notifications
// Implementations must tolerate repeated calls
type Overlay interface {
	ShowPrompt(text string)
	ClearPrompt()
	OpenPanel(p Panel)
	ClosePanel()
	OpenList(entries []core.Entry)
	CloseList()
	SetStatus(text string)
}

// Audio receives cue triggers; calls must not block
type Audio interface {
	Footstep(distance float64)
	FootstepReset()
	ObjectOpen()
	ObjectClose()
	TravelBegin()
	ProximityLevel(level float64)
	Beep()
}

// Navigator is called exactly once per completed travel
type Navigator interface {
	NavigateTo(destination string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(destination string)

func (f NavigatorFunc) NavigateTo(destination string) { f(destination) }

// NopOverlay ignores every notification
type NopOverlay struct{}

func (NopOverlay) ShowPrompt(string)     {}
func (NopOverlay) ClearPrompt()          {}
func (NopOverlay) OpenPanel(Panel)       {}
func (NopOverlay) ClosePanel()           {}
func (NopOverlay) OpenList([]core.Entry) {}
func (NopOverlay) CloseList()            {}
func (NopOverlay) SetStatus(string)      {}

// NopAudio is used when sound is disabled
type NopAudio struct{}

func (NopAudio) Footstep(float64)       {}
func (NopAudio) FootstepReset()         {}
func (NopAudio) ObjectOpen()            {}
func (NopAudio) ObjectClose()           {}
func (NopAudio) TravelBegin()           {}
func (NopAudio) ProximityLevel(float64) {}
func (NopAudio) Beep()                  {}

// NopNavigator drops destinations
type NopNavigator struct{}

func (NopNavigator) NavigateTo(string) {}

// Observer receives per-frame session telemetry, used by the metrics package
type Observer interface {
	FrameStepped(dt float64)
	PhaseChanged(from, to TransitionPhase)
	ObjectActivated(kind string)
	Navigated()
}

type nopObserver struct{}

func (nopObserver) FrameStepped(float64)                          {}
func (nopObserver) PhaseChanged(TransitionPhase, TransitionPhase) {}
func (nopObserver) ObjectActivated(string)                        {}
func (nopObserver) Navigated()                                    {}
