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
	"github.com/jetsetilly/frag/settings"
)

// canvas provides a two paged framebuffer. one texture is the render target
// while the other holds the previous frame.
type canvas struct {
	gpu GL

	flip    [2]uint32
	flipIdx int

	width  int32
	height int32

	fbo uint32
}

// texture formats for each supported number of bits per channel.
func textureFormat(bits int) (internal int32, xtype uint32) {
	switch bits {
	case 16:
		return gl.RGBA16F, gl.FLOAT
	case 32:
		return gl.RGBA32F, gl.FLOAT
	}
	return gl.RGBA8, gl.UNSIGNED_BYTE
}

func wrapMode(w settings.Wrap) int32 {
	if w == settings.WrapMirror {
		return gl.MIRRORED_REPEAT
	}
	return gl.REPEAT
}

// newCanvas creates the framebuffer and textures. the release functions are
// added to the cleanup stack as the objects are created.
func newCanvas(g GL, c *cleanup, width, height int32, wrap settings.Wrap, bits int) (*canvas, error) {
	cv := &canvas{
		gpu:    g,
		width:  width,
		height: height,
	}

	internal, xtype := textureFormat(bits)

	g.ActiveTexture(gl.TEXTURE0)

	for i := range cv.flip {
		cv.flip[i] = g.GenTexture()
		if cv.flip[i] == 0 {
			return nil, curated.Errorf(ResourceError, "canvas texture")
		}
		id := cv.flip[i]
		c.add(func() { g.DeleteTexture(id) })

		g.BindTexture(gl.TEXTURE_2D, id)
		g.TexImage2D(gl.TEXTURE_2D, internal, cv.width, cv.height, gl.RGBA, xtype)
		g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(wrap))
		g.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(wrap))
	}

	cv.fbo = g.GenFramebuffer()
	if cv.fbo == 0 {
		return nil, curated.Errorf(ResourceError, "framebuffer")
	}
	fbo := cv.fbo
	c.add(func() { g.DeleteFramebuffer(fbo) })

	g.BindFramebuffer(gl.FRAMEBUFFER, cv.fbo)
	g.DrawBuffers(gl.COLOR_ATTACHMENT0)

	// check completeness with each texture attached and clear the
	// texture at the same time
	for _, id := range cv.flip {
		g.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, id)
		if g.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
			g.BindFramebuffer(gl.FRAMEBUFFER, 0)
			return nil, curated.Errorf(ResourceError, "complete framebuffer")
		}
		g.ClearColor(0, 0, 0, 0)
		g.Clear(gl.COLOR_BUFFER_BIT)
	}

	g.BindFramebuffer(gl.FRAMEBUFFER, 0)

	return cv, nil
}

// texture returns the ID of the most recently drawn canvas texture.
func (cv *canvas) texture() uint32 {
	return cv.flip[cv.flipIdx]
}

// process flips to the other texture and binds it as the render target.
// during the draw function, the previous frame is bound to texture unit zero.
// returns the ID of the texture that has been drawn to.
func (cv *canvas) process(draw func()) uint32 {
	prev := cv.flip[cv.flipIdx]

	cv.flipIdx++
	if cv.flipIdx >= len(cv.flip) {
		cv.flipIdx = 0
	}

	id := cv.flip[cv.flipIdx]
	cv.gpu.BindFramebuffer(gl.FRAMEBUFFER, cv.fbo)
	cv.gpu.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, id)
	cv.gpu.Viewport(0, 0, cv.width, cv.height)

	cv.gpu.ActiveTexture(gl.TEXTURE0)
	cv.gpu.BindTexture(gl.TEXTURE_2D, prev)

	draw()

	return id
}

// bindForRead binds the framebuffer with the most recent texture attached
// for reading.
func (cv *canvas) bindForRead() {
	cv.gpu.BindFramebuffer(gl.READ_FRAMEBUFFER, cv.fbo)
	cv.gpu.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, cv.texture())
	cv.gpu.ReadBuffer(gl.COLOR_ATTACHMENT0)
}
