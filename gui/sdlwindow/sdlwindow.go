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

// Package sdlwindow creates a window and OpenGL context with SDL2. It is the
// default window backend.
package sdlwindow

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/gui"
	"github.com/jetsetilly/frag/logger"
)

// SDLError is the pattern for all errors returned by the package.
const SDLError = "sdl: %v"

// Window is an SDL window with a current OpenGL context.
type Window struct {
	window  *sdl.Window
	context sdl.GLContext

	events []gui.Event
}

// New creates a new window. The OpenGL context of the window is made current
// on the calling thread.
func New(cfg gui.Config) (*Window, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	for _, a := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{attr: sdl.GL_CONTEXT_MAJOR_VERSION, value: gui.GLMajor},
		{attr: sdl.GL_CONTEXT_MINOR_VERSION, value: gui.GLMinor},
		{attr: sdl.GL_CONTEXT_FLAGS, value: sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{attr: sdl.GL_CONTEXT_PROFILE_MASK, value: sdl.GL_CONTEXT_PROFILE_CORE},
		{attr: sdl.GL_DOUBLEBUFFER, value: 1},
	} {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf(SDLError, err)
		}
	}

	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}

	win := &Window{}

	win.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	win.context, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	err = win.window.GLMakeCurrent(win.context)
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	w, h := win.window.GLGetDrawableSize()
	logger.Logf(logger.Allow, "sdl", "window %dx%d (drawable %dx%d)", cfg.Width, cfg.Height, w, h)

	return win, nil
}

// translate SDL key codes to gui.Key values. returns gui.KeyNone for any key
// that is not of interest
func translateKey(sym sdl.Keycode) gui.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return gui.KeyEscape
	case sdl.K_F5:
		return gui.KeyF5
	case sdl.K_F12:
		return gui.KeyF12
	}
	return gui.KeyNone
}

// PollEvents services the SDL event queue and returns the events of interest
// to the application. The returned slice is only valid until the next call.
func (win *Window) PollEvents() []gui.Event {
	win.events = win.events[:0]

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.events = append(win.events, gui.Event{ID: gui.EventQuit})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				win.events = append(win.events, gui.Event{ID: gui.EventQuit})
			}

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue // for loop
			}
			if k := translateKey(ev.Keysym.Sym); k != gui.KeyNone {
				win.events = append(win.events, gui.Event{ID: gui.EventKeyDown, Key: k})
			}
		}
	}

	return win.events
}

// FramebufferSize returns the size of the drawable area in pixels.
func (win *Window) FramebufferSize() (int, int) {
	w, h := win.window.GLGetDrawableSize()
	return int(w), int(h)
}

// Mouse returns the position of the mouse in the range 0 to 1 with the
// origin at the bottom left of the window.
func (win *Window) Mouse() (float64, float64) {
	x, y, _ := sdl.GetMouseState()
	w, h := win.window.GetSize()
	return gui.NormaliseMouse(float64(x), float64(y), int(w), int(h))
}

// SetTitle changes the title of the window.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// Swap the front and back buffers.
func (win *Window) Swap() {
	win.window.GLSwap()
}

// Destroy the context and window.
func (win *Window) Destroy() error {
	if win.context != nil {
		sdl.GLDeleteContext(win.context)
		win.context = nil
	}

	if win.window != nil {
		err := win.window.Destroy()
		if err != nil {
			return curated.Errorf(SDLError, err)
		}
		win.window = nil
	}

	sdl.Quit()
	logger.Log(logger.Allow, "sdl", "window destroyed")

	return nil
}

func (win *Window) String() string {
	return fmt.Sprintf("sdl window (%s)", win.window.GetTitle())
}
