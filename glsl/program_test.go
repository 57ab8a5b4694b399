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

package glsl_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/glsl"
	"github.com/jetsetilly/frag/test"
)

// fakeGL records calls and fails compilation of any source containing the
// word "error" and linking of any fragment source containing "nolink".
type fakeGL struct {
	next    uint32
	sources map[uint32]string
	status  map[uint32]bool

	// programs and their attached shaders
	attached map[uint32][]uint32

	// binding calls in order of calling
	attribs []string
	outputs []string

	// number of times an object has been deleted
	deleted map[uint32]int

	// sequence of acquisitions and releases
	events []string

	// fail object creation when true
	failCreate bool
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		next:     1,
		sources:  make(map[uint32]string),
		status:   make(map[uint32]bool),
		attached: make(map[uint32][]uint32),
		deleted:  make(map[uint32]int),
	}
}

func (f *fakeGL) alloc(kind string) uint32 {
	if f.failCreate {
		return 0
	}
	id := f.next
	f.next++
	f.events = append(f.events, fmt.Sprintf("create %s %d", kind, id))
	return id
}

func (f *fakeGL) CreateShader(xtype uint32) uint32 {
	return f.alloc("shader")
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.sources[shader] = source
}

func (f *fakeGL) CompileShader(shader uint32) {
	f.status[shader] = !strings.Contains(f.sources[shader], "error")
}

func (f *fakeGL) log(id uint32) string {
	if f.status[id] {
		return ""
	}
	return fmt.Sprintf("0:1(1): error: object %d", id)
}

func (f *fakeGL) GetShaderiv(shader uint32, pname uint32) int32 {
	switch pname {
	case gl.COMPILE_STATUS:
		if f.status[shader] {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if l := f.log(shader); l != "" {
			return int32(len(l) + 1)
		}
	}
	return 0
}

func (f *fakeGL) GetShaderInfoLog(shader uint32, length int32) string {
	return f.log(shader)
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.deleted[shader]++
	f.events = append(f.events, fmt.Sprintf("delete shader %d", shader))
}

func (f *fakeGL) CreateProgram() uint32 {
	return f.alloc("program")
}

func (f *fakeGL) BindAttribLocation(program uint32, index uint32, name string) {
	f.attribs = append(f.attribs, fmt.Sprintf("%s=%d", name, index))
}

func (f *fakeGL) BindFragDataLocation(program uint32, color uint32, name string) {
	f.outputs = append(f.outputs, fmt.Sprintf("%s=%d", name, color))
}

func (f *fakeGL) AttachShader(program uint32, shader uint32) {
	f.attached[program] = append(f.attached[program], shader)
}

func (f *fakeGL) DetachShader(program uint32, shader uint32) {
	a := f.attached[program]
	for i := range a {
		if a[i] == shader {
			f.attached[program] = append(a[:i], a[i+1:]...)
			return
		}
	}
}

func (f *fakeGL) LinkProgram(program uint32) {
	ok := true
	for _, s := range f.attached[program] {
		if strings.Contains(f.sources[s], "nolink") {
			ok = false
		}
	}
	f.status[program] = ok
}

func (f *fakeGL) GetProgramiv(program uint32, pname uint32) int32 {
	switch pname {
	case gl.LINK_STATUS:
		if f.status[program] {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if l := f.log(program); l != "" {
			return int32(len(l) + 1)
		}
	}
	return 0
}

func (f *fakeGL) GetProgramInfoLog(program uint32, length int32) string {
	return f.log(program)
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.deleted[program]++
	f.events = append(f.events, fmt.Sprintf("delete program %d", program))
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	f.events = append(f.events, fmt.Sprintf("uniform %s", name))
	if name == "resolution" {
		return 3
	}
	return -1
}

// every object created has been deleted exactly once, except for the
// objects listed
func (f *fakeGL) expectReleased(t *testing.T, except ...uint32) {
	t.Helper()
	for id := uint32(1); id < f.next; id++ {
		want := 1
		for _, e := range except {
			if e == id {
				want = 0
			}
		}
		test.ExpectEquality(t, f.deleted[id], want)
	}
}

const vertSource = "#version 330\nin vec2 vertex;\nvoid main() {}\n"
const fragSource = "#version 330\nout vec4 fragColor;\nvoid main() {}\n"

func TestProgram(t *testing.T) {
	f := newFakeGL()
	prog, err := glsl.NewProgram(f, vertSource, fragSource, []string{"vertex"}, []string{"fragColor"})
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, prog, 0)

	// the program is the only object that survives
	f.expectReleased(t, prog)
	test.ExpectEquality(t, len(f.attached[prog]), 0)

	test.ExpectEquality(t, len(f.attribs), 1)
	test.ExpectEquality(t, f.attribs[0], "vertex=0")
	test.ExpectEquality(t, len(f.outputs), 1)
	test.ExpectEquality(t, f.outputs[0], "fragColor=0")
}

func TestBindingOrder(t *testing.T) {
	f := newFakeGL()
	_, err := glsl.NewProgram(f, vertSource, fragSource, []string{"vertex", "uv"}, []string{"fragColor", "extra"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(f.attribs, " "), "vertex=0 uv=1")
	test.ExpectEquality(t, strings.Join(f.outputs, " "), "fragColor=0 extra=1")
}

func TestCompileFailure(t *testing.T) {
	f := newFakeGL()
	prog, err := glsl.NewProgram(f, vertSource, "error", []string{"vertex"}, []string{"fragColor"})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, prog, 0)

	var se *glsl.ShaderError
	test.ExpectSuccess(t, errors.As(err, &se))
	test.ExpectEquality(t, se.Stage, "fragment")
	test.ExpectInequality(t, se.Log, "")
	test.ExpectSuccess(t, strings.Contains(err.Error(), "fragment shader"))

	// vertex shader and the failed fragment shader
	f.expectReleased(t)
	test.ExpectEquality(t, f.events[len(f.events)-1], "delete shader 1")
}

func TestVertexFailure(t *testing.T) {
	f := newFakeGL()
	_, err := glsl.NewProgram(f, "error", fragSource, nil, nil)

	var se *glsl.ShaderError
	test.ExpectSuccess(t, errors.As(err, &se))
	test.ExpectEquality(t, se.Stage, "vertex")

	// the fragment shader is never created
	test.ExpectEquality(t, f.next, uint32(2))
	f.expectReleased(t)
}

func TestLinkFailure(t *testing.T) {
	f := newFakeGL()
	prog, err := glsl.NewProgram(f, vertSource, "nolink", []string{"vertex"}, []string{"fragColor"})
	test.ExpectEquality(t, prog, 0)

	var se *glsl.ShaderError
	test.ExpectSuccess(t, errors.As(err, &se))
	test.ExpectEquality(t, se.Stage, "link")
	test.ExpectInequality(t, se.Log, "")

	f.expectReleased(t)

	// released in reverse order of creation
	n := len(f.events)
	test.ExpectEquality(t, f.events[n-3], "delete program 3")
	test.ExpectEquality(t, f.events[n-2], "delete shader 2")
	test.ExpectEquality(t, f.events[n-1], "delete shader 1")
}

func TestCreateFailure(t *testing.T) {
	f := newFakeGL()
	f.failCreate = true
	_, err := glsl.NewProgram(f, vertSource, fragSource, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glsl.ResourceError))
	test.ExpectEquality(t, len(f.deleted), 0)
}

func TestUniforms(t *testing.T) {
	f := newFakeGL()
	u := glsl.NewUniforms(f, 10)
	test.ExpectEquality(t, u.Program(), uint32(10))
	test.ExpectEquality(t, u.Location("resolution"), int32(3))
	test.ExpectEquality(t, u.Location("resolution"), int32(3))
	test.ExpectEquality(t, u.Location("unused"), int32(-1))

	// each name is only looked up once
	test.ExpectEquality(t, len(f.events), 2)
}

func TestNative(t *testing.T) {
	test.ExpectImplements[glsl.GL](t, glsl.Native{})
}
