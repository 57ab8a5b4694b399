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

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/glsl"
	"github.com/jetsetilly/frag/logger"
	"github.com/jetsetilly/frag/settings"
)

// error patterns returned by the scene package.
const (
	InitError     = "scene: %v"
	ResourceError = "scene: failed to create %s"
	ProgramError  = "scene: %s program: %v"
)

// Config for a new scene.
type Config struct {
	// size of the canvas
	Width  int
	Height int

	Wrap settings.Wrap
	Bits int

	// fragment shader source of the user program
	Source string
}

// Scene holds every GL object used to draw a frame.
type Scene struct {
	gpu GL

	// release functions for every object in the order they were created
	cleanup cleanup

	vbo    uint32
	vao    uint32
	canvas *canvas

	user     uint32
	view     uint32
	userUnis *glsl.Uniforms
	viewUnis *glsl.Uniforms

	viewportWidth  int32
	viewportHeight int32

	time   float32
	frame  int32
	mouseX float32
	mouseY float32
}

// New creates the scene. A current OpenGL context is required. Objects that
// have been created are released if an error occurs.
func New(cfg Config) (*Scene, error) {
	err := gl.Init()
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}
	return newScene(nativeGL{}, cfg)
}

func newScene(g GL, cfg Config) (*Scene, error) {
	logger.Logf(logger.Allow, "scene", "GL version %s", g.GetString(gl.VERSION))

	scn := &Scene{
		gpu:            g,
		viewportWidth:  int32(cfg.Width),
		viewportHeight: int32(cfg.Height),
	}

	err := scn.build(cfg)
	if err != nil {
		scn.Destroy()
		return nil, err
	}

	return scn, nil
}

func (scn *Scene) build(cfg Config) error {
	g := scn.gpu

	scn.vbo = g.GenBuffer()
	if scn.vbo == 0 {
		return curated.Errorf(ResourceError, "vertex buffer")
	}
	vbo := scn.vbo
	scn.cleanup.add(func() { g.DeleteBuffer(vbo) })

	g.BindBuffer(gl.ARRAY_BUFFER, scn.vbo)
	g.BufferData(gl.ARRAY_BUFFER, quad, gl.STATIC_DRAW)

	scn.vao = g.GenVertexArray()
	if scn.vao == 0 {
		return curated.Errorf(ResourceError, "vertex array")
	}
	vao := scn.vao
	scn.cleanup.add(func() { g.DeleteVertexArray(vao) })

	// the vertex attribute is bound to location zero by glsl.NewProgram()
	g.BindVertexArray(scn.vao)
	g.VertexAttribPointer(0, 2, gl.FLOAT)
	g.EnableVertexAttribArray(0)

	var err error

	scn.canvas, err = newCanvas(g, &scn.cleanup, int32(cfg.Width), int32(cfg.Height), cfg.Wrap, cfg.Bits)
	if err != nil {
		return err
	}

	scn.user, err = glsl.NewProgram(g, vertexShader, cfg.Source, attribs, outputs)
	if err != nil {
		return curated.Errorf(ProgramError, "user", err)
	}
	// the user program can be replaced by Reload() so the release function
	// refers to the field and not to a copy
	scn.cleanup.add(func() {
		g.DeleteProgram(scn.user)
		scn.user = 0
	})
	scn.userUnis = glsl.NewUniforms(g, scn.user)

	scn.view, err = glsl.NewProgram(g, vertexShader, viewShader, attribs, outputs)
	if err != nil {
		return curated.Errorf(ProgramError, "view", err)
	}
	view := scn.view
	scn.cleanup.add(func() { g.DeleteProgram(view) })
	scn.viewUnis = glsl.NewUniforms(g, scn.view)

	logger.Logf(logger.Allow, "scene", "canvas %dx%d (%d bits, %s)", cfg.Width, cfg.Height, cfg.Bits, cfg.Wrap)

	return nil
}

// Destroy releases every GL object. It is safe to call Destroy() on a scene
// that was only partially built and to call it more than once.
func (scn *Scene) Destroy() {
	scn.cleanup.release()
}

// SetViewport sets the size of the window framebuffer.
func (scn *Scene) SetViewport(width, height int) {
	scn.viewportWidth = int32(width)
	scn.viewportHeight = int32(height)
}

// SetTime sets the value of the time uniform for the next frame.
func (scn *Scene) SetTime(t float64) {
	scn.time = float32(t)
}

// SetMouse sets the mouse uniform for the next frame. The values are in the
// range 0 to 1 with the origin at the bottom left and are converted to canvas
// pixels.
func (scn *Scene) SetMouse(x, y float64) {
	scn.mouseX = float32(x) * float32(scn.canvas.width)
	scn.mouseY = float32(y) * float32(scn.canvas.height)
}

// Frame returns the number of frames rendered.
func (scn *Scene) Frame() int {
	return int(scn.frame)
}

// Reload replaces the user program with one built from the new source. If
// the new program cannot be built the current program remains in use and the
// error is returned.
func (scn *Scene) Reload(source string) error {
	prog, err := glsl.NewProgram(scn.gpu, vertexShader, source, attribs, outputs)
	if err != nil {
		return curated.Errorf(ProgramError, "user", err)
	}

	scn.gpu.DeleteProgram(scn.user)
	scn.user = prog
	scn.userUnis = glsl.NewUniforms(scn.gpu, scn.user)

	logger.Log(logger.Allow, "scene", "user program reloaded")

	return nil
}

func (scn *Scene) draw() {
	scn.gpu.BindVertexArray(scn.vao)
	scn.gpu.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(quad)/2))
}

// Render draws one frame. The caller is responsible for swapping buffers.
func (scn *Scene) Render() {
	g := scn.gpu

	// first pass: user program to canvas
	id := scn.canvas.process(func() {
		g.UseProgram(scn.user)
		g.Uniform2f(scn.userUnis.Location("resolution"), float32(scn.canvas.width), float32(scn.canvas.height))
		g.Uniform1i(scn.userUnis.Location("sampler"), 0)
		g.Uniform1f(scn.userUnis.Location("time"), scn.time)
		g.Uniform1i(scn.userUnis.Location("frame"), scn.frame)
		g.Uniform2f(scn.userUnis.Location("mouse"), scn.mouseX, scn.mouseY)
		scn.draw()
	})

	// second pass: view program to window
	g.BindFramebuffer(gl.FRAMEBUFFER, 0)
	g.Viewport(0, 0, scn.viewportWidth, scn.viewportHeight)
	g.UseProgram(scn.view)
	g.Uniform2f(scn.viewUnis.Location("resolution"), float32(scn.viewportWidth), float32(scn.viewportHeight))
	g.Uniform1i(scn.viewUnis.Location("sampler"), 0)
	g.ActiveTexture(gl.TEXTURE0)
	g.BindTexture(gl.TEXTURE_2D, id)
	scn.draw()

	scn.frame++
}
