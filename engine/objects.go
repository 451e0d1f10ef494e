package engine

import (
	"github.com/lixenwraith/roam/core"
)

// Activate requests object i to open after clearing every other target
// A console opens its entry list instead; the reveal starts on Select
func (s *Session) Activate(i int) bool {
	if i < 0 || i >= len(s.Objects) || s.Transition.Phase.Traveling() {
		return false
	}
	for j, o := range s.Objects {
		if j != i {
			o.TargetOpen = 0
		}
	}
	if s.UI.ListObject >= 0 && s.UI.ListObject != i {
		s.closeList()
	}

	o := s.Objects[i]
	s.stats.Activations++
	s.Observer.ObjectActivated(o.Kind.String())

	if o.Console != nil {
		o.Console.ListOpen = true
		s.UI.ListObject = i
		entries := make([]core.Entry, len(o.Console.Entries))
		for k, e := range o.Console.Entries {
			entries[k] = *e
		}
		s.Overlay.OpenList(entries)
		s.Audio.Beep()
		s.SetStatus("Choose an entry to project...")
		return true
	}

	o.TargetOpen = 1
	// Re-activated before it left Open, no Opening edge will show the panel
	if o.State.Revealing() && (!s.UI.PanelOpen || s.UI.PanelObject != i) {
		s.OpenPanelFor(i)
	}
	return true
}

// Deactivate requests object i to close and drops any console selection
func (s *Session) Deactivate(i int) {
	if i < 0 || i >= len(s.Objects) {
		return
	}
	o := s.Objects[i]
	o.TargetOpen = 0
	if o.Console != nil {
		if s.UI.ListObject == i {
			s.closeList()
		}
		o.Console.Selected = -1
	}
}

// Select sets the entry projected by console i and opens it like a door
// Selecting while already revealed swaps the panel in place
func (s *Session) Select(i, k int) bool {
	if i < 0 || i >= len(s.Objects) || s.Transition.Phase.Traveling() {
		return false
	}
	o := s.Objects[i]
	if o.Console == nil || k < 0 || k >= len(o.Console.Entries) {
		return false
	}
	for j, other := range s.Objects {
		if j != i {
			other.TargetOpen = 0
		}
	}

	o.Console.Selected = k
	if s.UI.ListObject == i {
		s.closeList()
	}
	o.TargetOpen = 1
	s.Audio.Beep()

	if o.State.Revealing() {
		s.OpenPanelFor(i)
	}
	return true
}

// ActiveObject returns the object with an open list or panel, -1 when none
func (s *Session) ActiveObject() int {
	if s.UI.ListObject >= 0 {
		return s.UI.ListObject
	}
	if s.UI.PanelOpen {
		return s.UI.PanelObject
	}
	return -1
}

// OpenPanelFor shows object i's active entry
func (s *Session) OpenPanelFor(i int) {
	e := s.Objects[i].ActiveEntry()
	if e == nil {
		return
	}
	s.UI.PanelOpen = true
	s.UI.PanelObject = i
	s.Overlay.OpenPanel(PanelFor(i, e))
	s.SetStatus(statusOpened(s.Objects[i].Kind.String(), e))
}

// ClosePanelFor hides the panel only if object i owns it
func (s *Session) ClosePanelFor(i int) {
	if !s.UI.PanelOpen || s.UI.PanelObject != i {
		return
	}
	s.ClosePanel()
}

// ClosePanel hides whatever panel is showing
func (s *Session) ClosePanel() {
	s.UI.PanelOpen = false
	s.UI.PanelObject = -1
	s.Overlay.ClosePanel()
}

func (s *Session) closeList() {
	if s.UI.ListObject < 0 {
		return
	}
	if o := s.Objects[s.UI.ListObject]; o.Console != nil {
		o.Console.ListOpen = false
	}
	s.UI.ListObject = -1
	s.Overlay.CloseList()
}

// CloseList dismisses an open console list without touching its selection
func (s *Session) CloseList() {
	s.closeList()
}

// SetStatus forwards text to the overlay when it changes
func (s *Session) SetStatus(text string) {
	if s.UI.Status == text {
		return
	}
	s.UI.Status = text
	s.Overlay.SetStatus(text)
}

// SetPrompt shows text, or clears the prompt for "", only on change
func (s *Session) SetPrompt(text string) {
	if s.UI.Prompt == text {
		return
	}
	s.UI.Prompt = text
	if text == "" {
		s.Overlay.ClearPrompt()
		return
	}
	s.Overlay.ShowPrompt(text)
}

// SetPhase moves the sequencer and notifies the observer
func (s *Session) SetPhase(p TransitionPhase) {
	prev := s.Transition.Phase
	if prev == p {
		return
	}
	s.Transition.Phase = p
	s.Observer.PhaseChanged(prev, p)
	s.Logger.Debug("transition phase", "from", prev.String(), "to", p.String())
}

// RecordNavigation counts one emitted NavigateTo
func (s *Session) RecordNavigation() {
	s.stats.Navigations++
	s.Observer.Navigated()
}

func statusOpened(kind string, e *core.Entry) string {
	if kind == "console" {
		return "Projecting: " + e.Title
	}
	return "Opened: " + e.Title
}
