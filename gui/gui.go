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

package gui

import "fmt"

// Config for window creation.
type Config struct {
	Title string

	// size of the window in pixels. the framebuffer size may be different on
	// high DPI displays
	Width  int
	Height int

	Resizable bool

	// the window is created but never shown. useful for checking that a
	// shader compiles
	Hidden bool
}

// the major and minor version of the OpenGL context created by the backends.
const (
	GLMajor = 3
	GLMinor = 3
)

// Key identifies the keys of interest to the application.
type Key int

// List of valid Key values.
const (
	KeyNone Key = iota
	KeyEscape
	KeyF5
	KeyF12
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyEscape:
		return "escape"
	case KeyF5:
		return "F5"
	case KeyF12:
		return "F12"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// EventID identifies the type of event.
type EventID int

// List of valid EventID values.
const (
	// the window has been closed by the window manager
	EventQuit EventID = iota

	// a key has been pressed. key repeats are not reported
	EventKeyDown
)

// Event is returned by the backend's PollEvents() function.
type Event struct {
	ID  EventID
	Key Key
}

func (ev Event) String() string {
	switch ev.ID {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return fmt.Sprintf("key down: %s", ev.Key)
	}
	return fmt.Sprintf("event(%d)", int(ev.ID))
}

// NormaliseMouse converts a position in window coordinates (origin top left)
// to the range 0 to 1 with the origin at the bottom left.
func NormaliseMouse(x, y float64, width, height int) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return x / float64(width), 1 - y/float64(height)
}
