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

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// GL is the subset of OpenGL required to build shader programs. The
// parameters of the underlying functions have been simplified. Pointer and
// length arguments are handled by the implementation.
type GL interface {
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32, length int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	BindAttribLocation(program uint32, index uint32, name string)
	BindFragDataLocation(program uint32, color uint32, name string)
	AttachShader(program uint32, shader uint32)
	DetachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32, length int32) string
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
}

// Native implements the GL interface with the go-gl bindings.
type Native struct{}

// CreateShader implements the GL interface.
func (Native) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

// ShaderSource implements the GL interface. The source is supplied as a
// single string.
func (Native) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

// CompileShader implements the GL interface.
func (Native) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// GetShaderiv implements the GL interface.
func (Native) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

// GetShaderInfoLog implements the GL interface.
func (Native) GetShaderInfoLog(shader uint32, length int32) string {
	if length <= 0 {
		return ""
	}

	// the length includes the NULL character
	log := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteShader implements the GL interface.
func (Native) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram implements the GL interface.
func (Native) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// BindAttribLocation implements the GL interface.
func (Native) BindAttribLocation(program uint32, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
}

// BindFragDataLocation implements the GL interface.
func (Native) BindFragDataLocation(program uint32, color uint32, name string) {
	gl.BindFragDataLocation(program, color, gl.Str(name+"\x00"))
}

// AttachShader implements the GL interface.
func (Native) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

// DetachShader implements the GL interface.
func (Native) DetachShader(program uint32, shader uint32) {
	gl.DetachShader(program, shader)
}

// LinkProgram implements the GL interface.
func (Native) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// GetProgramiv implements the GL interface.
func (Native) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

// GetProgramInfoLog implements the GL interface.
func (Native) GetProgramInfoLog(program uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteProgram implements the GL interface.
func (Native) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// GetUniformLocation implements the GL interface.
func (Native) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
