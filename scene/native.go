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

package scene

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/jetsetilly/frag/glsl"
)

// GL is the subset of OpenGL used by a scene in addition to the functions
// required to build shader programs. Objects are created and deleted one at
// a time.
type GL interface {
	glsl.GL

	GetString(name uint32) string

	GenBuffer() uint32
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(array uint32)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target uint32, texture uint32)
	TexImage2D(target uint32, internal int32, width int32, height int32, format uint32, xtype uint32)
	TexParameteri(target uint32, pname uint32, param int32)
	DeleteTexture(texture uint32)

	GenFramebuffer() uint32
	BindFramebuffer(target uint32, framebuffer uint32)
	DrawBuffers(buffers ...uint32)
	FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32)
	CheckFramebufferStatus(target uint32) uint32
	ReadBuffer(src uint32)
	DeleteFramebuffer(framebuffer uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	UseProgram(program uint32)
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x float32, y float32)
	DrawArrays(mode uint32, first int32, count int32)

	PixelStorei(pname uint32, param int32)
	ReadPixels(x, y, width, height int32, format uint32, xtype uint32, pixels []uint8)
}

// nativeGL implements the GL interface with the go-gl bindings.
type nativeGL struct {
	glsl.Native
}

func (nativeGL) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (nativeGL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (nativeGL) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (nativeGL) BufferData(target uint32, data []float32, usage uint32) {
	gl.BufferData(target, 4*len(data), gl.Ptr(data), usage)
}

func (nativeGL) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (nativeGL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (nativeGL) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

// tightly packed with no offset
func (nativeGL) VertexAttribPointer(index uint32, size int32, xtype uint32) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, false, 0, 0)
}

func (nativeGL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (nativeGL) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (nativeGL) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (nativeGL) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (nativeGL) BindTexture(target uint32, texture uint32) {
	gl.BindTexture(target, texture)
}

// level zero with no border and no initial data
func (nativeGL) TexImage2D(target uint32, internal int32, width int32, height int32, format uint32, xtype uint32) {
	gl.TexImage2D(target, 0, internal, width, height, 0, format, xtype, nil)
}

func (nativeGL) TexParameteri(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (nativeGL) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (nativeGL) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (nativeGL) BindFramebuffer(target uint32, framebuffer uint32) {
	gl.BindFramebuffer(target, framebuffer)
}

func (nativeGL) DrawBuffers(buffers ...uint32) {
	if len(buffers) == 0 {
		return
	}
	gl.DrawBuffers(int32(len(buffers)), &buffers[0])
}

func (nativeGL) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, 0)
}

func (nativeGL) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (nativeGL) ReadBuffer(src uint32) {
	gl.ReadBuffer(src)
}

func (nativeGL) DeleteFramebuffer(framebuffer uint32) {
	gl.DeleteFramebuffers(1, &framebuffer)
}

func (nativeGL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (nativeGL) Clear(mask uint32) {
	gl.Clear(mask)
}

func (nativeGL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (nativeGL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (nativeGL) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (nativeGL) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (nativeGL) Uniform2f(location int32, x float32, y float32) {
	gl.Uniform2f(location, x, y)
}

func (nativeGL) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (nativeGL) PixelStorei(pname uint32, param int32) {
	gl.PixelStorei(pname, param)
}

func (nativeGL) ReadPixels(x, y, width, height int32, format uint32, xtype uint32, pixels []uint8) {
	if len(pixels) == 0 {
		return
	}
	gl.ReadPixels(x, y, width, height, format, xtype, gl.Ptr(pixels))
}
