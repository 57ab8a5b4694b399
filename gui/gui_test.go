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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/frag/gui"
	"github.com/jetsetilly/frag/test"
)

func TestEventString(t *testing.T) {
	test.ExpectEquality(t, gui.Event{ID: gui.EventQuit}.String(), "quit")
	test.ExpectEquality(t, gui.Event{ID: gui.EventKeyDown, Key: gui.KeyF12}.String(), "key down: F12")
}

func TestNormaliseMouse(t *testing.T) {
	x, y := gui.NormaliseMouse(100, 0, 400, 200)
	test.ExpectEquality(t, x, 0.25)
	test.ExpectEquality(t, y, 1.0)

	x, y = gui.NormaliseMouse(0, 200, 400, 200)
	test.ExpectEquality(t, x, 0.0)
	test.ExpectEquality(t, y, 0.0)

	x, y = gui.NormaliseMouse(10, 10, 0, 0)
	test.ExpectEquality(t, x, 0.0)
	test.ExpectEquality(t, y, 0.0)
}
