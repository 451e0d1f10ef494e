package content

import (
	"bytes"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
)

// StringList decodes either a scalar or a sequence of strings
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	default:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	}
}

type techItem struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// frontMatter is the union of the post, project and experience collections
type frontMatter struct {
	Title       string `yaml:"title"`
	Permalink   string `yaml:"permalink"`
	Description string `yaml:"description"`

	// post
	Date       string     `yaml:"date"`
	Categories StringList `yaml:"categories"`
	Tags       StringList `yaml:"tags"`

	// project
	TimelineYear string     `yaml:"timeline_year"`
	Stack        StringList `yaml:"stack"`
	Tech         []techItem `yaml:"tech"`
	Features     []string   `yaml:"features"`
	Repo         string     `yaml:"repo"`
	Live         string     `yaml:"live"`

	// experience
	Company    string   `yaml:"company"`
	Tenure     string   `yaml:"tenure"`
	Order      *int     `yaml:"order"`
	Activities []string `yaml:"activities"`
	Summary    string   `yaml:"summary"`
}

// document is a parsed markdown file with its sort keys
type document struct {
	entry core.Entry
	date  time.Time
	order int
}

// splitFrontMatter separates the leading YAML block from the markdown body
// The block opens on the first line and closes at the next line holding only ---
func splitFrontMatter(data []byte) (head, body []byte, ok bool) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(data, []byte("---\n")) {
		return nil, data, false
	}
	rest := data[len("---\n"):]

	for pos := 0; pos <= len(rest); {
		line := rest[pos:]
		end := bytes.IndexByte(line, '\n')
		if end >= 0 {
			line = line[:end]
		}
		if string(bytes.TrimRight(line, " \t")) == "---" {
			if end < 0 {
				return rest[:pos], nil, true
			}
			return rest[:pos], rest[pos+end+1:], true
		}
		if end < 0 {
			break
		}
		pos += end + 1
	}
	return nil, data, false
}

// parseMarkdown builds a kind-specific entry from a front matter document
func parseMarkdown(path string, data []byte, kind core.EntryKind) (document, error) {
	errb := oops.Code(engine.CodeEntryInvalid).With("file", path)

	head, body, ok := splitFrontMatter(data)
	if !ok {
		return document{}, errb.Errorf("missing front matter")
	}
	var fm frontMatter
	if err := yaml.Unmarshal(head, &fm); err != nil {
		return document{}, errb.Wrapf(err, "front matter")
	}
	fm.Title = strings.TrimSpace(fm.Title)
	if fm.Title == "" {
		return document{}, errb.Errorf("entry has no title")
	}

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc := document{
		entry: core.Entry{
			Title:       fm.Title,
			Destination: firstNonEmpty(fm.Permalink, "/"+kind.Plural()+"/"+slug+"/"),
			Kind:        kind,
		},
	}
	bodySummary := func() string { return Summarize(string(body), SummaryLength) }

	switch kind {
	case core.KindPost:
		doc.date = ParseDate(fm.Date)
		doc.entry.DateLabel = FormatDateLabel(doc.date)
		doc.entry.Tags = JoinTags(append(fm.Categories, fm.Tags...))
		doc.entry.Summary = firstNonEmpty(fm.Description, bodySummary())

	case core.KindProject:
		doc.date = ParseDate(fm.TimelineYear)
		doc.entry.DateLabel = strings.TrimSpace(fm.TimelineYear)
		tags := []string(fm.Stack)
		if len(tags) == 0 {
			for _, t := range fm.Tech {
				tags = append(tags, t.Name)
			}
		}
		doc.entry.Tags = JoinTags(tags)
		doc.entry.Summary = firstNonEmpty(fm.Description, bodySummary())
		doc.entry.Details = fm.Features
		if fm.Permalink == "" {
			doc.entry.Destination = firstNonEmpty(fm.Live, fm.Repo, doc.entry.Destination)
		}

	case core.KindRole:
		if strings.TrimSpace(fm.Company) == "" || strings.TrimSpace(fm.Tenure) == "" {
			return document{}, errb.With("title", fm.Title).Errorf("role needs company and tenure")
		}
		doc.entry.DateLabel = strings.TrimSpace(fm.Tenure)
		doc.entry.Tags = strings.TrimSpace(fm.Company)
		doc.entry.Summary = firstNonEmpty(fm.Summary, fm.Description, bodySummary())
		doc.entry.Details = fm.Activities
		doc.order = int(^uint(0) >> 1)
		if fm.Order != nil {
			doc.order = *fm.Order
		}
	}
	return doc, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
