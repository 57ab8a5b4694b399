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
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// fakeGL records the creation and deletion of every object. compilation
// fails for the source named by failSource and creation fails for the kind
// named by failCreate.
type fakeGL struct {
	next uint32

	kinds   map[uint32]string
	sources map[uint32]string
	status  map[uint32]bool

	// number of times an object has been deleted
	deleted map[uint32]int

	// sequence of acquisitions and releases
	events []string

	// uniform names by location and the values set in the order of setting
	uniforms map[int32]string
	values   []string

	failSource string
	failCreate string
	incomplete bool
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		next:     1,
		kinds:    make(map[uint32]string),
		sources:  make(map[uint32]string),
		status:   make(map[uint32]bool),
		deleted:  make(map[uint32]int),
		uniforms: make(map[int32]string),
	}
}

func (f *fakeGL) alloc(kind string) uint32 {
	if f.failCreate == kind {
		return 0
	}
	id := f.next
	f.next++
	f.kinds[id] = kind
	f.events = append(f.events, fmt.Sprintf("create %s %d", kind, id))
	return id
}

func (f *fakeGL) release(kind string, id uint32) {
	f.deleted[id]++
	f.events = append(f.events, fmt.Sprintf("delete %s %d", kind, id))
}

// releases of everything other than shaders in the order they happened
func (f *fakeGL) releases() string {
	var r []string
	for _, e := range f.events {
		if strings.HasPrefix(e, "delete ") && !strings.HasPrefix(e, "delete shader") {
			r = append(r, strings.TrimPrefix(e, "delete "))
		}
	}
	return strings.Join(r, ", ")
}

// the number of objects of the kind that have not been deleted
func (f *fakeGL) live(kind string) int {
	var n int
	for id, k := range f.kinds {
		if k == kind && f.deleted[id] == 0 {
			n++
		}
	}
	return n
}

func (f *fakeGL) CreateShader(xtype uint32) uint32 {
	return f.alloc("shader")
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.sources[shader] = source
}

func (f *fakeGL) CompileShader(shader uint32) {
	f.status[shader] = f.sources[shader] != f.failSource
}

func (f *fakeGL) GetShaderiv(shader uint32, pname uint32) int32 {
	if pname == gl.COMPILE_STATUS {
		if f.status[shader] {
			return gl.TRUE
		}
		return gl.FALSE
	}
	return 0
}

func (f *fakeGL) GetShaderInfoLog(shader uint32, length int32) string {
	return ""
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.release("shader", shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	return f.alloc("program")
}

func (f *fakeGL) BindAttribLocation(program uint32, index uint32, name string)   {}
func (f *fakeGL) BindFragDataLocation(program uint32, color uint32, name string) {}
func (f *fakeGL) AttachShader(program uint32, shader uint32)                     {}
func (f *fakeGL) DetachShader(program uint32, shader uint32)                     {}
func (f *fakeGL) LinkProgram(program uint32)                                     {}

func (f *fakeGL) GetProgramiv(program uint32, pname uint32) int32 {
	if pname == gl.LINK_STATUS {
		return gl.TRUE
	}
	return 0
}

func (f *fakeGL) GetProgramInfoLog(program uint32, length int32) string {
	return ""
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.release("program", program)
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	for l, n := range f.uniforms {
		if n == name {
			return l
		}
	}
	l := int32(len(f.uniforms))
	f.uniforms[l] = name
	return l
}

func (f *fakeGL) GetString(name uint32) string {
	return "fake"
}

func (f *fakeGL) GenBuffer() uint32 {
	return f.alloc("buffer")
}

func (f *fakeGL) BindBuffer(target uint32, buffer uint32)                {}
func (f *fakeGL) BufferData(target uint32, data []float32, usage uint32) {}

func (f *fakeGL) DeleteBuffer(buffer uint32) {
	f.release("buffer", buffer)
}

func (f *fakeGL) GenVertexArray() uint32 {
	return f.alloc("vertexarray")
}

func (f *fakeGL) BindVertexArray(array uint32)                               {}
func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype uint32) {}
func (f *fakeGL) EnableVertexAttribArray(index uint32)                       {}

func (f *fakeGL) DeleteVertexArray(array uint32) {
	f.release("vertexarray", array)
}

func (f *fakeGL) GenTexture() uint32 {
	return f.alloc("texture")
}

func (f *fakeGL) ActiveTexture(unit uint32)                 {}
func (f *fakeGL) BindTexture(target uint32, texture uint32) {}

func (f *fakeGL) TexImage2D(target uint32, internal int32, width int32, height int32, format uint32, xtype uint32) {
}

func (f *fakeGL) TexParameteri(target uint32, pname uint32, param int32) {}

func (f *fakeGL) DeleteTexture(texture uint32) {
	f.release("texture", texture)
}

func (f *fakeGL) GenFramebuffer() uint32 {
	return f.alloc("framebuffer")
}

func (f *fakeGL) BindFramebuffer(target uint32, framebuffer uint32) {}
func (f *fakeGL) DrawBuffers(buffers ...uint32)                     {}

func (f *fakeGL) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32) {
}

func (f *fakeGL) CheckFramebufferStatus(target uint32) uint32 {
	if f.incomplete {
		return gl.FRAMEBUFFER_UNSUPPORTED
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (f *fakeGL) ReadBuffer(src uint32) {}

func (f *fakeGL) DeleteFramebuffer(framebuffer uint32) {
	f.release("framebuffer", framebuffer)
}

func (f *fakeGL) ClearColor(r, g, b, a float32)      {}
func (f *fakeGL) Clear(mask uint32)                  {}
func (f *fakeGL) Viewport(x, y, width, height int32) {}
func (f *fakeGL) UseProgram(program uint32)          {}

func (f *fakeGL) Uniform1i(location int32, v int32) {
	f.values = append(f.values, fmt.Sprintf("%s=%d", f.uniforms[location], v))
}

func (f *fakeGL) Uniform1f(location int32, v float32) {
	f.values = append(f.values, fmt.Sprintf("%s=%g", f.uniforms[location], v))
}

func (f *fakeGL) Uniform2f(location int32, x float32, y float32) {
	f.values = append(f.values, fmt.Sprintf("%s=%g,%g", f.uniforms[location], x, y))
}

func (f *fakeGL) DrawArrays(mode uint32, first int32, count int32) {}
func (f *fakeGL) PixelStorei(pname uint32, param int32)            {}

func (f *fakeGL) ReadPixels(x, y, width, height int32, format uint32, xtype uint32, pixels []uint8) {
	for i := range pixels {
		pixels[i] = 0xff
	}
}
