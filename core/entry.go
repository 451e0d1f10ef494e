package core

import (
	"strings"
	"unicode/utf8"
)

// EntryKind is the content collection an entry came from
type EntryKind uint8

const (
	KindPost EntryKind = iota
	KindProject
	KindRole
)

var entryKindNames = [...]string{"post", "project", "role"}

func (k EntryKind) String() string {
	if int(k) < len(entryKindNames) {
		return entryKindNames[k]
	}
	return "entry"
}

// Noun is the capitalized singular used in meta lines
func (k EntryKind) Noun() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Plural is used in status counts
func (k EntryKind) Plural() string {
	return k.String() + "s"
}

// ParseEntryKind accepts singular or plural collection names
func ParseEntryKind(s string) (EntryKind, bool) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	switch s {
	case "post":
		return KindPost, true
	case "project":
		return KindProject, true
	case "role", "experience":
		return KindRole, true
	}
	return KindPost, false
}

// Entry is one content record placed in a world
// Immutable once loaded; objects hold pointers into the registry slice
type Entry struct {
	Title       string    `yaml:"title" json:"title"`
	DateLabel   string    `yaml:"date_label,omitempty" json:"dateLabel,omitempty"`
	Tags        string    `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string    `yaml:"summary,omitempty" json:"summary,omitempty"`
	Destination string    `yaml:"destination" json:"destination"`
	Details     []string  `yaml:"details,omitempty" json:"details,omitempty"`
	Kind        EntryKind `yaml:"-" json:"-"`
}

// MinSummaryLength is the trimmed length a summary must exceed to be shown
const MinSummaryLength = 16

// MetaLine renders "date · tags" with kind-aware fallbacks
func (e *Entry) MetaLine() string {
	date := e.DateLabel
	if date == "" {
		date = "Entry"
	}
	tags := e.Tags
	if tags == "" {
		tags = e.Kind.Noun()
	}
	return date + " · " + tags
}

// SummaryOr returns the trimmed summary, or fallback when it is too short to be useful
func (e *Entry) SummaryOr(fallback string) string {
	s := strings.TrimSpace(e.Summary)
	if utf8.RuneCountInString(s) > MinSummaryLength {
		return s
	}
	return fallback
}

// PanelSummary picks the summary shown when the entry is revealed
func (e *Entry) PanelSummary() string {
	return e.SummaryOr(FallbackSummary(e.Kind))
}

// FallbackSummary is the generic prompt for an entry without a usable summary
func FallbackSummary(k EntryKind) string {
	switch k {
	case KindPost:
		return "Open this door to read the full post."
	case KindRole:
		return "Step closer to review this role in detail."
	default:
		return "Open this door to inspect this project in detail."
	}
}
