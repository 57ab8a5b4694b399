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

// Package glsl compiles and links GLSL shader programs.
//
// The functions in this package work with the GL interface rather than
// calling the OpenGL bindings directly. The Native type is the
// implementation of GL that should be used by the application. Native
// requires a current OpenGL 3.3 context and an initialised gl package.
//
// Programs are built with NewProgram(). Vertex attributes and fragment
// outputs are bound by name before linking. The location of each name is
// its index in the list so for the lists:
//
//	[]string{"vertex"}
//	[]string{"fragColor"}
//
// the vertex attribute is at location zero and the fragment output is
// written to color number zero.
//
// Intermediate shader objects are always released before NewProgram()
// returns. A program that fails to link is also released and is never
// returned to the caller.
package glsl
