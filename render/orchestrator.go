package render

import "github.com/gdamore/tcell/v2"

// Priority orders renderers; lower paints first.
type Priority int

const (
	PriorityCanvas  Priority = 100
	PriorityHUD     Priority = 400
	PriorityOverlay Priority = 500
)

// Renderer paints one layer into the shared buffer.
type Renderer interface {
	Render(buf *Buffer)
}

// VisibilityToggle lets a renderer opt out of a frame.
type VisibilityToggle interface {
	IsVisible() bool
}

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline.
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator over the screen at the given
// dimensions.
func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the given priority. Maintains sorted order
// via insertion sort; equal priorities keep registration order.
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen.
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame executes the pipeline: clear, render in priority order, flush.
func (o *Orchestrator) RenderFrame() {
	o.buffer.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(o.buffer)
	}
	o.buffer.Flush(o.screen)
}
