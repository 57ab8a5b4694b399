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

// Package runner drives the render loop. It ties together a window, a
// renderer and a frame gate.
//
// The Runner moves through the following states:
//
//	Uninitialised -> Ready -> Rendering -> Closing -> Destroyed
//
// New() returns a Runner in the Ready state. Run() moves to Rendering and
// services the loop until the window is closed, the escape key is pressed or
// the stop channel receives a value. The renderer and then the window are
// destroyed in the Closing state and Run() returns in the Destroyed state.
//
// Input is polled on every iteration of the loop. A frame is rendered only
// when the frame gate is ready so that frames are rendered at no more than
// the frame rate of the gate.
//
// Keys:
//
//	Escape    close the window
//	F5        reload the shader
//	F12       save a screenshot of the canvas
package runner
