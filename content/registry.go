package content

import (
	"strings"

	"github.com/samber/oops"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
)

// Registry is the ordered, immutable entry list of one world
type Registry struct {
	kind    core.EntryKind
	source  string
	entries []core.Entry
}

// NewRegistry validates and freezes entries
// Entries are copied; later changes to the input slice are not observed
func NewRegistry(kind core.EntryKind, source string, entries []core.Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, oops.Code(engine.CodeEntriesEmpty).
			With("kind", kind.String()).
			With("source", source).
			Errorf("no %s found", kind.Plural())
	}

	r := &Registry{kind: kind, source: source, entries: make([]core.Entry, len(entries))}
	for i, e := range entries {
		e.Title = strings.TrimSpace(e.Title)
		e.Destination = strings.TrimSpace(e.Destination)
		if e.Title == "" || e.Destination == "" {
			return nil, oops.Code(engine.CodeEntryInvalid).
				With("index", i).
				With("source", source).
				Errorf("entry %d needs a title and a destination", i)
		}
		e.Kind = kind
		r.entries[i] = e
	}
	return r, nil
}

func (r *Registry) Kind() core.EntryKind {
	return r.kind
}

func (r *Registry) Source() string {
	return r.source
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Entry returns a pointer into the registry, nil when out of range
func (r *Registry) Entry(i int) *core.Entry {
	if i < 0 || i >= len(r.entries) {
		return nil
	}
	return &r.entries[i]
}

// Pointers returns one pointer per entry in registry order
func (r *Registry) Pointers() []*core.Entry {
	out := make([]*core.Entry, len(r.entries))
	for i := range r.entries {
		out[i] = &r.entries[i]
	}
	return out
}
