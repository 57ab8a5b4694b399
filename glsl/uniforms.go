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

package glsl

// Uniforms caches the location of uniform variables in a program. The
// location of a name that is not an active uniform is -1. Setting a value at
// location -1 has no effect so the result of Location() can always be used.
type Uniforms struct {
	gl        GL
	program   uint32
	locations map[string]int32
}

// NewUniforms is the preferred method of initialisation for the Uniforms type.
func NewUniforms(g GL, program uint32) *Uniforms {
	return &Uniforms{
		gl:        g,
		program:   program,
		locations: make(map[string]int32),
	}
}

// Program returns the program the uniforms belong to.
func (u *Uniforms) Program() uint32 {
	return u.program
}

// Location of the named uniform.
func (u *Uniforms) Location(name string) int32 {
	if l, ok := u.locations[name]; ok {
		return l
	}
	l := u.gl.GetUniformLocation(u.program, name)
	u.locations[name] = l
	return l
}
