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

package settings

import (
	"fmt"
	"math"
	"strings"

	"github.com/jetsetilly/frag/curated"
)

// ValidationError is returned by Validate().
const ValidationError = "settings: invalid: %v"

// default values.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultScale  = 1.0
	DefaultFPS    = 60.0
	DefaultBits   = 8
)

// MaxDimension is the largest width or height of the canvas or the window.
// Sizes are passed to the GL and the window as 32 bit values.
const MaxDimension = math.MaxInt32

// Settings for a single run of a shader.
type Settings struct {
	// size of the canvas in logical pixels
	Width  int
	Height int

	// the window is Width*Scale by Height*Scale pixels
	Scale float64

	// target frame rate
	FPS float64

	// window title. the shader filename is used if this is empty
	Title string

	// filename of the fragment shader
	Filename string

	Wrap Wrap

	// bits per colour channel in the canvas textures
	Bits int

	// whether the window can be resized by the user
	Resizable bool

	Backend Backend

	// reload the shader when the file changes
	Watch bool
}

// NewSettings returns a Settings instance with the default values.
func NewSettings() *Settings {
	return &Settings{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Scale:     DefaultScale,
		FPS:       DefaultFPS,
		Wrap:      WrapRepeat,
		Bits:      DefaultBits,
		Resizable: true,
		Backend:   BackendSDL,
	}
}

// Validate returns an error if any value cannot be used to create a window
// or run the render loop.
func (s *Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return curated.Errorf(ValidationError, fmt.Sprintf("size %dx%d must be positive", s.Width, s.Height))
	}
	if !(s.Scale > 0) || math.IsInf(s.Scale, 0) {
		return curated.Errorf(ValidationError, fmt.Sprintf("scale %v must be positive", s.Scale))
	}
	if !(s.FPS > 0) || math.IsInf(s.FPS, 0) {
		return curated.Errorf(ValidationError, fmt.Sprintf("fps %v must be positive", s.FPS))
	}
	if s.Wrap != WrapRepeat && s.Wrap != WrapMirror {
		return curated.Errorf(ValidationError, fmt.Sprintf("unknown wrap mode %v", s.Wrap))
	}
	if s.Bits != 8 && s.Bits != 16 && s.Bits != 32 {
		return curated.Errorf(ValidationError, fmt.Sprintf("bits %d must be 8, 16 or 32", s.Bits))
	}
	if s.Backend != BackendSDL && s.Backend != BackendGLFW {
		return curated.Errorf(ValidationError, fmt.Sprintf("unknown backend %q", s.Backend))
	}
	if s.Filename == "" {
		return curated.Errorf(ValidationError, "no shader file specified")
	}

	if s.Width > MaxDimension || s.Height > MaxDimension {
		return curated.Errorf(ValidationError, fmt.Sprintf("size %dx%d is too large", s.Width, s.Height))
	}

	fw, fh := float64(s.Width)*s.Scale, float64(s.Height)*s.Scale
	if fw >= MaxDimension+1 || fh >= MaxDimension+1 {
		return curated.Errorf(ValidationError, fmt.Sprintf("window size %.0fx%.0f is too large", fw, fh))
	}

	w, h := s.WindowSize()
	if w <= 0 || h <= 0 {
		return curated.Errorf(ValidationError, fmt.Sprintf("window size %dx%d is too small", w, h))
	}

	return nil
}

// WindowSize returns the size of the window in pixels. The result of the
// scaling is truncated.
func (s *Settings) WindowSize() (int, int) {
	return int(float64(s.Width) * s.Scale), int(float64(s.Height) * s.Scale)
}

// WindowTitle returns the title or the shader filename if no title has been
// specified.
func (s *Settings) WindowTitle() string {
	if s.Title == "" {
		return s.Filename
	}
	return s.Title
}

func (s *Settings) String() string {
	w, h := s.WindowSize()
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("source: %s\n", s.Filename))
	b.WriteString(fmt.Sprintf("title: %s\n", s.WindowTitle()))
	b.WriteString(fmt.Sprintf("size: %d,%d\n", s.Width, s.Height))
	b.WriteString(fmt.Sprintf("scale: %g\n", s.Scale))
	b.WriteString(fmt.Sprintf("window: %dx%d\n", w, h))
	b.WriteString(fmt.Sprintf("fps: %g\n", s.FPS))
	b.WriteString(fmt.Sprintf("wrap: %s\n", s.Wrap))
	b.WriteString(fmt.Sprintf("bits: %d\n", s.Bits))
	b.WriteString(fmt.Sprintf("resizable: %v\n", s.Resizable))
	b.WriteString(fmt.Sprintf("backend: %s\n", s.Backend))
	b.WriteString(fmt.Sprintf("watch: %v\n", s.Watch))
	return b.String()
}
