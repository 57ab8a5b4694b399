// This file is part of Frag.
//
// Frag is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frag is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frag.  If not, see <https://www.gnu.org/licenses/>.

// Package glfwwindow creates a window and OpenGL context with GLFW. It is
// selected with the -backend glfw flag.
//
// Key events are delivered by GLFW through a callback during PollEvents().
// The callback queues the events and they are returned when polling has
// finished.
package glfwwindow

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/gui"
	"github.com/jetsetilly/frag/logger"
)

// GLFWError is the pattern for all errors returned by the package.
const GLFWError = "glfw: %v"

// Window is a GLFW window with a current OpenGL context.
type Window struct {
	window *glfw.Window
	events []gui.Event
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// New creates a new window. The OpenGL context of the window is made current
// on the calling thread.
func New(cfg gui.Config) (*Window, error) {
	err := glfw.Init()
	if err != nil {
		return nil, curated.Errorf(GLFWError, err)
	}

	glfw.WindowHint(glfw.Visible, glfwBool(!cfg.Hidden))
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, gui.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, gui.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win := &Window{}

	win.window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, curated.Errorf(GLFWError, err)
	}

	win.window.MakeContextCurrent()
	win.window.SetKeyCallback(win.key)

	w, h := win.window.GetFramebufferSize()
	logger.Logf(logger.Allow, "glfw", "version %s", glfw.GetVersionString())
	logger.Logf(logger.Allow, "glfw", "window %dx%d (framebuffer %dx%d)", cfg.Width, cfg.Height, w, h)

	return win, nil
}

// translate GLFW keys to gui.Key values. returns gui.KeyNone for any key
// that is not of interest
func translateKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyF5:
		return gui.KeyF5
	case glfw.KeyF12:
		return gui.KeyF12
	}
	return gui.KeyNone
}

func (win *Window) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if k := translateKey(key); k != gui.KeyNone {
		win.events = append(win.events, gui.Event{ID: gui.EventKeyDown, Key: k})
	}
}

// PollEvents services the GLFW event queue and returns the events of
// interest to the application. The returned slice is only valid until the
// next call.
func (win *Window) PollEvents() []gui.Event {
	win.events = win.events[:0]
	glfw.PollEvents()

	if win.window.ShouldClose() {
		win.events = append(win.events, gui.Event{ID: gui.EventQuit})
		win.window.SetShouldClose(false)
	}

	return win.events
}

// FramebufferSize returns the size of the drawable area in pixels.
func (win *Window) FramebufferSize() (int, int) {
	return win.window.GetFramebufferSize()
}

// Mouse returns the position of the mouse in the range 0 to 1 with the
// origin at the bottom left of the window.
func (win *Window) Mouse() (float64, float64) {
	x, y := win.window.GetCursorPos()
	w, h := win.window.GetSize()
	return gui.NormaliseMouse(x, y, w, h)
}

// SetTitle changes the title of the window.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// Swap the front and back buffers.
func (win *Window) Swap() {
	win.window.SwapBuffers()
}

// Destroy the window and terminate GLFW.
func (win *Window) Destroy() error {
	if win.window != nil {
		win.window.Destroy()
		win.window = nil
	}
	glfw.Terminate()
	logger.Log(logger.Allow, "glfw", "window destroyed")
	return nil
}
