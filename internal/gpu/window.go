//go:build wgpu

package gpu

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps a GLFW window configured for WebGPU rendering. It tracks the
// framebuffer size and the last known cursor position and forwards input to
// the optional handler funcs.
type Window struct {
	win *glfw.Window

	width     int
	height    int
	cursorX   float64
	cursorY   float64
	hasCursor bool

	// OnResize is called with the new framebuffer size in pixels.
	OnResize func(width, height int)
	// OnMouseRelease is called when the primary button is released, with the
	// cursor position at release time.
	OnMouseRelease func(x, y float64)
	// OnKeyPress is called for key press events other than Escape.
	OnKeyPress func(key glfw.Key)
}

// NewWindow creates the GLFW window and registers the input callbacks. The
// calling goroutine is locked to its OS thread for the lifetime of the
// window, as GLFW requires.
func NewWindow(title string, width, height int) (*Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	w := &Window{win: win}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
			return
		}
		if action == glfw.Press && w.OnKeyPress != nil {
			w.OnKeyPress(key)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.cursorX = xpos
		w.cursorY = ypos
		w.hasCursor = true
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft || action != glfw.Release {
			return
		}
		if w.OnMouseRelease != nil {
			x, y := win.GetCursorPos()
			ww, wh := win.GetSize()
			x, y = cursorToFramebuffer(x, y, w.width, w.height, ww, wh)
			w.OnMouseRelease(x, y)
		}
	})

	// Framebuffer size, not window size: on high-DPI displays they differ and
	// the surface must be configured in pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.OnResize != nil {
			w.OnResize(width, height)
		}
	})

	w.width, w.height = win.GetFramebufferSize()

	return w, nil
}

// SurfaceDescriptor returns the platform surface descriptor for WebGPU.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

// Size returns the current framebuffer size in pixels.
func (w *Window) Size() (int, int) { return w.width, w.height }

// Cursor returns the last known cursor position in framebuffer pixels; ok is
// false until the pointer first enters the window.
func (w *Window) Cursor() (pos [2]float32, ok bool) {
	ww, wh := w.win.GetSize()
	x, y := cursorToFramebuffer(w.cursorX, w.cursorY, w.width, w.height, ww, wh)
	return [2]float32{float32(x), float32(y)}, w.hasCursor
}

// Poll processes pending window events and reports whether the window should
// stay open.
func (w *Window) Poll() bool {
	glfw.PollEvents()
	return !w.win.ShouldClose()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
