package content

import (
	"cmp"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
)

// Loader discovers and parses entry files for one collection
type Loader struct {
	Kind   core.EntryKind
	Filter string // glob over title and tags, empty keeps all
	Logger *slog.Logger
}

func NewLoader(kind core.EntryKind) *Loader {
	return &Loader{Kind: kind}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

// Load reads a single file or every supported file of a directory into a registry
// Markdown documents are sorted newest first, roles by order; list files keep their order
func (l *Loader) Load(path string) (*Registry, error) {
	m, err := CompileFilter(l.Filter)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, oops.Code(engine.CodeEntriesEmpty).With("path", path).Wrapf(err, "entry source")
	}

	files := []string{path}
	if info.IsDir() {
		if files, err = l.Discover(path); err != nil {
			return nil, err
		}
	}

	var (
		docs   []document
		listed []core.Entry
	)
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, oops.Code(engine.CodeEntryInvalid).With("file", f).Wrapf(err, "read entry file")
		}
		switch strings.ToLower(filepath.Ext(f)) {
		case ".md", ".markdown":
			doc, err := parseMarkdown(f, data, l.Kind)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		default:
			entries, err := parseList(f, data)
			if err != nil {
				return nil, err
			}
			listed = append(listed, entries...)
		}
	}

	sortDocuments(docs, l.Kind)
	entries := make([]core.Entry, 0, len(docs)+len(listed))
	for _, d := range docs {
		entries = append(entries, d.entry)
	}
	entries = append(entries, listed...)

	total := len(entries)
	entries = m.Apply(entries)
	l.logger().Info("entries loaded",
		"kind", l.Kind.String(),
		"source", path,
		"files", len(files),
		"total", total,
		"kept", len(entries),
		"filter", m.String())

	return NewRegistry(l.Kind, path, entries)
}

// Discover lists supported entry files of dir in name order
// Hidden files and subdirectories are skipped
func (l *Loader) Discover(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, oops.Code(engine.CodeEntriesEmpty).With("dir", dir).Wrapf(err, "read entry directory")
	}

	var files []string
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if Supported(name) {
			files = append(files, filepath.Join(dir, name))
		}
	}
	if len(files) == 0 {
		l.logger().Warn("no entry files discovered", "dir", dir)
	}
	return files, nil
}

// Supported reports whether a file name has a loadable extension
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// parseList decodes a YAML or JSON entry list after schema validation
func parseList(path string, data []byte) ([]core.Entry, error) {
	if err := ValidateList(data); err != nil {
		return nil, oops.Code(engine.CodeEntryInvalid).With("file", path).Wrap(err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oops.Code(engine.CodeEntryInvalid).With("file", path).Wrapf(err, "decode entry list")
	}

	var file EntryFile
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	var err error
	if root.Kind == yaml.SequenceNode {
		err = root.Decode(&file.Entries)
	} else {
		err = root.Decode(&file)
	}
	if err != nil {
		return nil, oops.Code(engine.CodeEntryInvalid).With("file", path).Wrapf(err, "decode entry list")
	}
	return file.Entries, nil
}

func sortDocuments(docs []document, kind core.EntryKind) {
	if kind == core.KindRole {
		slices.SortStableFunc(docs, func(a, b document) int {
			return cmp.Compare(a.order, b.order)
		})
		return
	}
	slices.SortStableFunc(docs, func(a, b document) int {
		return b.date.Compare(a.date)
	})
}
