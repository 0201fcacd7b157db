package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-rich-edit/tableui"
)

// App owns a GLFW window displaying a tableui document and routes pointer
// input into the column resize controller. Callers must lock the OS thread
// before creating one; GLFW requires the main thread.
type App struct {
	window   *glfw.Window
	renderer *Renderer
	layout   *Layout

	doc    *tableui.Document
	view   *tableui.Renderer
	resize *tableui.ColumnResize

	scene      *Scene
	buttonDown bool
}

// NewApp initializes GLFW and OpenGL, creates the window and wires the view
// renderer and resize controller to the document.
func NewApp(doc *tableui.Document, width, height int, title string) (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	renderer, err := NewRenderer(width, height)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	a := &App{
		window:   window,
		renderer: renderer,
		layout:   NewLayout(float64(width)),
		doc:      doc,
		view:     tableui.NewRenderer(doc),
		scene:    &Scene{},
	}
	a.resize = tableui.NewColumnResize(doc, a.view)

	a.view.ViewRoot().SetMeasuredWidth(a.layout.contentWidth())
	a.view.SetMeasurer(a.layout.Measure)
	a.view.RenderDocument()

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)

	return a, nil
}

// View returns the view renderer bound to the document.
func (a *App) View() *tableui.Renderer { return a.view }

// Resize returns the column resize controller.
func (a *App) Resize() *tableui.ColumnResize { return a.resize }

// Run drives the frame loop until the window closes.
func (a *App) Run() error {
	for !a.window.ShouldClose() {
		glfw.PollEvents()

		w, h := a.window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.10, 0.10, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		a.scene = a.layout.Build(a.view.ViewRoot())
		a.renderer.Render(a.scene.Rects)

		a.window.SwapBuffers()
	}
	return nil
}

// Delete releases the GL resources and shuts GLFW down.
func (a *App) Delete() {
	a.renderer.Delete()
	glfw.Terminate()
}

func (a *App) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	x, y := a.window.GetCursorPos()
	switch action {
	case glfw.Press:
		a.buttonDown = true
		a.resize.PointerDown(a.scene.HandleAt(x, y), x)
	case glfw.Release:
		a.buttonDown = false
		a.resize.PointerUp()
	}
}

func (a *App) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if a.resize.IsResizing() {
		a.resize.PointerMove(xpos, a.buttonDown)
	}
}

func (a *App) framebufferSizeCallback(w *glfw.Window, width, height int) {
	a.renderer.Resize(width, height)
	a.layout.ContainerWidth = float64(width)
	a.view.ViewRoot().SetMeasuredWidth(a.layout.contentWidth())
	// Re-measure every table against the new container width.
	a.view.RenderDocument()
}
