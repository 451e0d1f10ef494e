package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer Renderer
	priority Priority
}

// Orchestrator coordinates the render pipeline
// Runs on the host loop goroutine, after Session.Step
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry
}

func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
// Equal priorities keep registration order
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{renderer: r, priority: priority}

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *Orchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// Buffer exposes the last composited frame
func (o *Orchestrator) Buffer() *Buffer {
	return o.buffer
}

// RenderFrame executes the pipeline: clear, render all, flush, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.buffer.Clear()
	ctx.Width, ctx.Height = o.buffer.Bounds()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
	o.screen.Show()
}
