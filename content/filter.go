package content

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/oops"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
)

// Matcher selects entries by a case-insensitive glob over title and tags
type Matcher struct {
	pattern string
	g       glob.Glob
}

// CompileFilter builds a matcher; an empty pattern matches everything
func CompileFilter(pattern string) (*Matcher, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return &Matcher{}, nil
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, oops.Code(engine.CodeSetupFailed).With("filter", pattern).Wrapf(err, "invalid entry filter")
	}
	return &Matcher{pattern: pattern, g: g}, nil
}

func (m *Matcher) String() string {
	return m.pattern
}

// Match is true when the title or any single tag matches
func (m *Matcher) Match(e *core.Entry) bool {
	if m.g == nil {
		return true
	}
	if m.g.Match(strings.ToLower(e.Title)) {
		return true
	}
	for _, tag := range strings.Split(e.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" && m.g.Match(strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

// Apply keeps matching entries in order
func (m *Matcher) Apply(entries []core.Entry) []core.Entry {
	if m.g == nil {
		return entries
	}
	out := make([]core.Entry, 0, len(entries))
	for i := range entries {
		if m.Match(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}
