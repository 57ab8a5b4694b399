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

package glfwwindow

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/jetsetilly/frag/gui"
	"github.com/jetsetilly/frag/test"
)

func TestTranslateKey(t *testing.T) {
	test.ExpectEquality(t, translateKey(glfw.KeyEscape), gui.KeyEscape)
	test.ExpectEquality(t, translateKey(glfw.KeyF5), gui.KeyF5)
	test.ExpectEquality(t, translateKey(glfw.KeyF12), gui.KeyF12)
	test.ExpectEquality(t, translateKey(glfw.KeyA), gui.KeyNone)
}

func TestKeyCallback(t *testing.T) {
	win := &Window{}
	win.key(nil, glfw.KeyF12, 0, glfw.Press, 0)
	win.key(nil, glfw.KeyF12, 0, glfw.Release, 0)
	win.key(nil, glfw.KeyF12, 0, glfw.Repeat, 0)
	win.key(nil, glfw.KeyA, 0, glfw.Press, 0)
	test.ExpectEquality(t, len(win.events), 1)
	test.ExpectEquality(t, win.events[0], gui.Event{ID: gui.EventKeyDown, Key: gui.KeyF12})
}
