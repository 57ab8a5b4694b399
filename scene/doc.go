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

// Package scene owns the OpenGL objects required to render a fragment shader
// and draws frames with them.
//
// Each frame is drawn in two passes. In the first pass the user's shader is
// drawn into an offscreen canvas that is the logical size of the surface. In
// the second pass the canvas is drawn to the window by the view shader,
// scaled to the size of the viewport with nearest-neighbour filtering. The
// user's shader therefore always works in canvas pixels regardless of the
// display scale.
//
// The canvas has two textures that are used alternately. While one texture is
// being drawn to, the other holds the previous frame and is available to the
// user's shader through the sampler uniform.
//
// Uniforms available to the user's shader:
//
//	uniform vec2 resolution;     // size of the canvas in pixels
//	uniform sampler2D sampler;   // the previous frame
//	uniform float time;          // seconds since the start of rendering
//	uniform int frame;           // number of frames rendered
//	uniform vec2 mouse;          // mouse position in canvas pixels
//
// The vertex attribute is named "vertex" and the fragment output must be named
// "fragColor".
//
// A Scene requires a current OpenGL 3.3 core context. All functions must be
// called from the thread on which the context is current.
package scene
