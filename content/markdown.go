package content

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// SummaryLength is the default rune budget of a generated summary
const SummaryLength = 220

var (
	reFence    = regexp.MustCompile("(?s)```.*?```")
	reCode     = regexp.MustCompile("`([^`]+)`")
	reImage    = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	reLink     = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reHeader   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	reQuote    = regexp.MustCompile(`(?m)^>\s?`)
	reList     = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	reSpaceRun = regexp.MustCompile(`\s+`)
)

// StripMarkdown reduces markdown to a single line of plain text
// Order matters: fenced blocks go before inline code, images before links
func StripMarkdown(md string) string {
	s := reFence.ReplaceAllString(md, " ")
	s = reCode.ReplaceAllString(s, "$1")
	s = reImage.ReplaceAllString(s, " ")
	s = reLink.ReplaceAllString(s, "$1")
	s = reHeader.ReplaceAllString(s, "")
	s = reQuote.ReplaceAllString(s, "")
	s = reList.ReplaceAllString(s, "")
	return strings.TrimSpace(reSpaceRun.ReplaceAllString(s, " "))
}

// Summarize strips markdown; text over max runes keeps max-1 of them followed by "..."
func Summarize(md string, max int) string {
	plain := StripMarkdown(md)
	if max <= 0 || utf8.RuneCountInString(plain) <= max {
		return plain
	}
	runes := []rune(plain)
	return string(runes[:max-1]) + "..."
}

// FormatDateLabel renders "Jan 2, 2006", or "Entry" for a missing date
func FormatDateLabel(t time.Time) string {
	if t.IsZero() {
		return "Entry"
	}
	return t.Format("Jan 2, 2006")
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006",
}

// ParseDate accepts the front matter date forms seen in practice
// Unparseable input yields the zero time
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// JoinTags renders a tag list the way meta lines show it
func JoinTags(tags []string) string {
	out := tags[:0:0]
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ", ")
}
