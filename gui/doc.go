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

// Package gui defines the types shared by the window backends. The backends
// themselves are in the sdlwindow and glfwwindow sub-packages.
//
// A backend creates a window with an OpenGL 3.3 core context that is current
// on the calling thread. All backend functions must be called from that
// thread.
package gui
