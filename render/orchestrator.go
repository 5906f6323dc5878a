package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shipwright/engine"
)

// StatusRows is the number of bottom rows reserved for the status bar
const StatusRows = 1

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	camera    *Camera
	renderers []rendererEntry
}

// NewOrchestrator creates an orchestrator and a camera sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		camera:    NewCamera(w, max(0, h-StatusRows)),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
// Equal priorities keep registration order
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
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

// Camera returns the camera shared with the cursor projector
func (o *Orchestrator) Camera() *Camera {
	return o.camera
}

// Resize updates the viewport and syncs the screen
func (o *Orchestrator) Resize(width, height int) {
	o.camera.Resize(width, max(0, height-StatusRows))
	o.screen.Sync()
}

// RenderFrame draws every visible renderer under the world lock, then shows the screen
func (o *Orchestrator) RenderFrame(world *engine.World) {
	world.RunSafe(func() {
		w, h := o.screen.Size()
		ctx := NewRenderContext(world, o.camera, w, h)
		o.screen.Clear()
		o.screen.Fill(' ', StyleBackground)
		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
				continue
			}
			entry.renderer.Render(ctx, o.screen)
		}
	})
	o.screen.Show()
}
