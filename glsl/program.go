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
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/logger"
)

// ResourceError is returned when the GL fails to create an object.
const ResourceError = "glsl: failed to create %s"

// Stage of a shader.
type Stage uint32

// List of valid Stage values.
const (
	Vertex   Stage = gl.VERTEX_SHADER
	Fragment Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return fmt.Sprintf("stage(%#x)", uint32(s))
}

// ShaderError is returned when a shader fails to compile or a program fails
// to link. The Log field is the information log of the GL.
type ShaderError struct {
	// "vertex", "fragment" or "link"
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	log := strings.TrimSpace(e.Log)
	if e.Stage == "link" {
		if log == "" {
			return "glsl: failed to link program"
		}
		return fmt.Sprintf("glsl: failed to link program\n%s", log)
	}
	if log == "" {
		return fmt.Sprintf("glsl: failed to compile %s shader", e.Stage)
	}
	return fmt.Sprintf("glsl: failed to compile %s shader\n%s", e.Stage, log)
}

// Compile a single shader. On failure the shader object is deleted and the
// returned error is of type *ShaderError.
func Compile(g GL, stage Stage, source string) (uint32, error) {
	shader := g.CreateShader(uint32(stage))
	if shader == 0 {
		return 0, curated.Errorf(ResourceError, fmt.Sprintf("%s shader", stage))
	}

	g.ShaderSource(shader, source)
	g.CompileShader(shader)

	if g.GetShaderiv(shader, gl.COMPILE_STATUS) == gl.FALSE {
		err := &ShaderError{Stage: stage.String()}
		err.Log = g.GetShaderInfoLog(shader, g.GetShaderiv(shader, gl.INFO_LOG_LENGTH))
		g.DeleteShader(shader)
		return 0, err
	}

	return shader, nil
}

// Link a vertex and fragment shader into a program. Attribute and output
// names are bound to the location of their index in the slice. The shaders
// are detached but not deleted. On failure the program is deleted and the
// error is of type *ShaderError.
func Link(g GL, vert uint32, frag uint32, attribs []string, outputs []string) (uint32, error) {
	program := g.CreateProgram()
	if program == 0 {
		return 0, curated.Errorf(ResourceError, "program")
	}

	for i, name := range attribs {
		g.BindAttribLocation(program, uint32(i), name)
	}
	for i, name := range outputs {
		g.BindFragDataLocation(program, uint32(i), name)
	}

	g.AttachShader(program, vert)
	g.AttachShader(program, frag)
	g.LinkProgram(program)

	g.DetachShader(program, frag)
	g.DetachShader(program, vert)

	if g.GetProgramiv(program, gl.LINK_STATUS) == gl.FALSE {
		err := &ShaderError{Stage: "link"}
		err.Log = g.GetProgramInfoLog(program, g.GetProgramiv(program, gl.INFO_LOG_LENGTH))
		g.DeleteProgram(program)
		return 0, err
	}

	return program, nil
}

// NewProgram compiles the vertex and fragment source and links them into a
// new program. See Link() for the meaning of attribs and outputs.
func NewProgram(g GL, vertSource string, fragSource string, attribs []string, outputs []string) (uint32, error) {
	vert, err := Compile(g, Vertex, vertSource)
	if err != nil {
		return 0, err
	}
	defer g.DeleteShader(vert)

	frag, err := Compile(g, Fragment, fragSource)
	if err != nil {
		return 0, err
	}
	defer g.DeleteShader(frag)

	program, err := Link(g, vert, frag, attribs, outputs)
	if err != nil {
		return 0, err
	}

	logger.Logf(logger.Allow, "glsl", "program %d linked", program)

	return program, nil
}
