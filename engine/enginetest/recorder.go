// Package enginetest provides recording collaborators for session tests
package enginetest

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
)

// Call is one recorded collaborator invocation
type Call struct {
	Method string
	Arg    string
}

func (c Call) String() string {
	if c.Arg == "" {
		return c.Method
	}
	return c.Method + "(" + c.Arg + ")"
}

// Recorder implements Overlay, Audio and Navigator and keeps every call in order
type Recorder struct {
	mu    sync.Mutex
	calls []Call

	Footsteps   float64
	Proximity   float64
	Panel       engine.Panel
	List        []core.Entry
	Status      string
	Prompt      string
	Navigations []string
}

var (
	_ engine.Overlay   = (*Recorder)(nil)
	_ engine.Audio     = (*Recorder)(nil)
	_ engine.Navigator = (*Recorder)(nil)
)

func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(method, arg string) {
	r.calls = append(r.calls, Call{Method: method, Arg: arg})
}

// Calls returns a copy of every recorded call except the continuous channels
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many times method was called
func (r *Recorder) Count(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = r.calls[:0]
}

// Overlay

func (r *Recorder) ShowPrompt(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Prompt = text
	r.record("ShowPrompt", text)
}

func (r *Recorder) ClearPrompt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Prompt = ""
	r.record("ClearPrompt", "")
}

func (r *Recorder) OpenPanel(p engine.Panel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Panel = p
	r.record("OpenPanel", p.Title)
}

func (r *Recorder) ClosePanel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("ClosePanel", "")
}

func (r *Recorder) OpenList(entries []core.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.List = entries
	r.record("OpenList", fmt.Sprint(len(entries)))
}

func (r *Recorder) CloseList() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("CloseList", "")
}

func (r *Recorder) SetStatus(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = text
	r.record("SetStatus", text)
}

// Audio, footsteps and proximity are accumulated rather than logged per frame

func (r *Recorder) Footstep(distance float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Footsteps += distance
}

func (r *Recorder) FootstepReset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Footsteps = 0
}

func (r *Recorder) ProximityLevel(level float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Proximity = level
}

func (r *Recorder) ObjectOpen() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("ObjectOpen", "")
}

func (r *Recorder) ObjectClose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("ObjectClose", "")
}

func (r *Recorder) TravelBegin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("TravelBegin", "")
}

func (r *Recorder) Beep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("Beep", "")
}

// Navigator

func (r *Recorder) NavigateTo(destination string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Navigations = append(r.Navigations, destination)
	r.record("NavigateTo", destination)
}

// PhaseLog is an engine.Observer that keeps phase changes
type PhaseLog struct {
	mu      sync.Mutex
	Changes []engine.TransitionPhase
	Frames  int
}

var _ engine.Observer = (*PhaseLog)(nil)

func (p *PhaseLog) FrameStepped(float64) {
	p.mu.Lock()
	p.Frames++
	p.mu.Unlock()
}

func (p *PhaseLog) PhaseChanged(_, to engine.TransitionPhase) {
	p.mu.Lock()
	p.Changes = append(p.Changes, to)
	p.mu.Unlock()
}

func (p *PhaseLog) ObjectActivated(string) {}

func (p *PhaseLog) Navigated() {}

// Count returns how many times the sequencer entered phase
func (p *PhaseLog) Count(phase engine.TransitionPhase) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.Changes {
		if c == phase {
			n++
		}
	}
	return n
}
