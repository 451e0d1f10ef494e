package render

import (
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/roam/status"
)

// HUDRows is the height of the bottom bar
const HUDRows = 3

// HUD draws prompt, status and the controls hint along the bottom
type HUD struct {
	overlay *Overlay
	muted   func() bool
}

// NewHUD reads prompt and status from overlay; muted may be nil
func NewHUD(overlay *Overlay, muted func() bool) *HUD {
	return &HUD{overlay: overlay, muted: muted}
}

func (h *HUD) Render(ctx Context, buf *Buffer) {
	if ctx.Height < HUDRows {
		return
	}
	top := ctx.Height - HUDRows
	buf.Fill(0, top, ctx.Width, HUDRows, RgbBackground)

	if p := h.overlay.Prompt(); p != "" {
		buf.Text(1, top, p, RgbPromptText, ctx.Width-2)
	}
	buf.Text(1, top+1, h.overlay.Status(), RgbStatusText, ctx.Width-2)

	if s := ctx.Session; s == nil || s.UI.HintVisible {
		buf.Text(1, top+2, h.hint(ctx), RgbHintText, ctx.Width-2)
	}

	if h.muted != nil && h.muted() {
		const label = "[muted]"
		buf.Text(ctx.Width-len(label)-1, top+2, label, RgbPromptText, len(label))
	}
}

func (h *HUD) hint(ctx Context) string {
	parts := []string{"WASD/arrows move", "E interact", "Enter travel", "Esc close"}
	if s := ctx.Session; s != nil && s.Profile.Tour.Available {
		parts = append(parts, "T tour")
	}
	parts = append(parts, "M mute", "Ctrl+Q quit")
	return strings.Join(parts, "  ")
}

// DebugRenderer lists the live status registry in the top-left corner
type DebugRenderer struct {
	reg     *status.Registry
	visible atomic.Bool
}

func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{reg: reg}
}

// Toggle flips visibility, bound to the HUD toggle key
func (d *DebugRenderer) Toggle() {
	d.visible.Store(!d.visible.Load())
}

func (d *DebugRenderer) IsVisible() bool {
	return d.visible.Load()
}

func (d *DebugRenderer) Render(ctx Context, buf *Buffer) {
	if d.reg == nil {
		return
	}
	lines := d.reg.Lines()
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	limit := max(ctx.Height-HUDRows, 0)
	for i, l := range lines {
		if i >= limit {
			break
		}
		buf.Fill(0, i, min(width+2, ctx.Width), 1, RgbPanelBg)
		buf.Text(1, i, l, RgbDebugText, ctx.Width-2)
	}
}
