package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
)

// Panel layout
const (
	panelMaxWidth = 64
	panelMargin   = 2
	panelPadding  = 2
)

// Overlay is the terminal UI surface the session talks to
// Implements engine.Overlay for the session and Renderer for the frame
type Overlay struct {
	mu     sync.Mutex
	prompt string
	status string
	panel  *engine.Panel
	list   []core.Entry
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) ShowPrompt(text string) {
	o.mu.Lock()
	o.prompt = text
	o.mu.Unlock()
}

func (o *Overlay) ClearPrompt() {
	o.ShowPrompt("")
}

func (o *Overlay) OpenPanel(p engine.Panel) {
	o.mu.Lock()
	o.panel = &p
	o.mu.Unlock()
}

func (o *Overlay) ClosePanel() {
	o.mu.Lock()
	o.panel = nil
	o.mu.Unlock()
}

func (o *Overlay) OpenList(entries []core.Entry) {
	o.mu.Lock()
	o.list = entries
	o.mu.Unlock()
}

func (o *Overlay) CloseList() {
	o.mu.Lock()
	o.list = nil
	o.mu.Unlock()
}

func (o *Overlay) SetStatus(text string) {
	o.mu.Lock()
	o.status = text
	o.mu.Unlock()
}

func (o *Overlay) Prompt() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.prompt
}

func (o *Overlay) Status() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Panel returns the open panel, ok false when none is shown
func (o *Overlay) Panel() (engine.Panel, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.panel == nil {
		return engine.Panel{}, false
	}
	return *o.panel, true
}

func (o *Overlay) List() []core.Entry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.list
}

// Render draws the open list, then the panel on top
func (o *Overlay) Render(ctx Context, buf *Buffer) {
	o.mu.Lock()
	panel := o.panel
	list := o.list
	o.mu.Unlock()

	rows := max(ctx.Height-ctx.HUDRows, 0)
	if list != nil {
		drawBox(buf, ctx.Width, rows, listLayout(list, boxInner(ctx.Width)))
	}
	if panel != nil {
		drawBox(buf, ctx.Width, rows, panelLayout(*panel, boxInner(ctx.Width)))
	}
}

// boxInner is the text width available inside a box on a screen of width w
func boxInner(w int) int {
	outer := min(panelMaxWidth, w-2*panelMargin)
	return max(outer-2*panelPadding, 8)
}

// styledLine is one row of box content
type styledLine struct {
	text  string
	color RGB
	attrs tcell.AttrMask
}

// PanelLines lays out a revealed entry as wrapped rows of at most width cells
func PanelLines(p engine.Panel, width int) []string {
	lines := panelLayout(p, width)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

func panelLayout(p engine.Panel, width int) []styledLine {
	var lines []styledLine
	add := func(text string, color RGB, attrs tcell.AttrMask) {
		for _, l := range wrapText(text, width) {
			lines = append(lines, styledLine{l, color, attrs})
		}
	}

	add(p.Title, RgbPanelTitle, tcell.AttrBold)
	add(p.Meta, RgbPanelMeta, tcell.AttrNone)
	lines = append(lines, styledLine{})
	add(p.Summary, RgbPanelText, tcell.AttrNone)
	if len(p.Details) > 0 {
		lines = append(lines, styledLine{})
		for _, d := range p.Details {
			add("• "+d, RgbPanelText, tcell.AttrNone)
		}
	}
	lines = append(lines, styledLine{})
	add(fmt.Sprintf("Enter: go to %s   Esc: close", p.Destination), RgbHintText, tcell.AttrNone)
	return lines
}

// ListLines lays out the console entry list, numbered from 1
func ListLines(entries []core.Entry, width int) []string {
	lines := listLayout(entries, width)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

func listLayout(entries []core.Entry, width int) []styledLine {
	lines := []styledLine{{"Choose an entry to project", RgbPanelTitle, tcell.AttrBold}, {}}
	for i, e := range entries {
		label := fmt.Sprintf("%d. %s", i+1, e.Title)
		if e.DateLabel != "" {
			label += " (" + e.DateLabel + ")"
		}
		lines = append(lines, styledLine{truncate.StringWithTail(label, uint(width), "…"), RgbListSelected, tcell.AttrNone})
	}
	lines = append(lines, styledLine{}, styledLine{"1-9: project   Esc: close", RgbHintText, tcell.AttrNone})
	return lines
}

// wrapText word-wraps then hard-wraps words longer than width
func wrapText(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	wrapped := wrap.String(wordwrap.String(s, width), width)
	return strings.Split(wrapped, "\n")
}

// drawBox centers a bordered box, rows past the screen height are dropped
func drawBox(buf *Buffer, screenW, screenH int, lines []styledLine) {
	inner := boxInner(screenW)
	w := inner + 2*panelPadding
	h := min(len(lines)+2, screenH)
	if w <= 2 || h <= 2 {
		return
	}
	x0 := (screenW - w) / 2
	y0 := max((screenH-h)/2, 0)

	buf.Fill(x0, y0, w, h, RgbPanelBg)
	for x := x0; x < x0+w; x++ {
		buf.Set(x, y0, '─', RgbPanelBorder, RgbPanelBg, tcell.AttrNone)
		buf.Set(x, y0+h-1, '─', RgbPanelBorder, RgbPanelBg, tcell.AttrNone)
	}
	for y := y0; y < y0+h; y++ {
		buf.Set(x0, y, '│', RgbPanelBorder, RgbPanelBg, tcell.AttrNone)
		buf.Set(x0+w-1, y, '│', RgbPanelBorder, RgbPanelBg, tcell.AttrNone)
	}
	buf.Set(x0, y0, '╭', RgbPanelBorder, RgbPanelBg, tcell.AttrNone)
	buf.Set(x0+w-1, y0, '╮', RgbPanelBorder, RgbPanelBg, tcell.AttrNone)
	buf.Set(x0, y0+h-1, '╰', RgbPanelBorder, RgbPanelBg, tcell.AttrNone)
	buf.Set(x0+w-1, y0+h-1, '╯', RgbPanelBorder, RgbPanelBg, tcell.AttrNone)

	for i, l := range lines {
		y := y0 + 1 + i
		if y >= y0+h-1 {
			break
		}
		col := x0 + panelPadding
		for _, r := range l.text {
			if col >= x0+w-panelPadding {
				break
			}
			buf.Set(col, y, r, l.color, RgbPanelBg, l.attrs)
			col++
		}
	}
}
