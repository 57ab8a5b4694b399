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
	"github.com/jetsetilly/frag/modalflag"
)

// CommandLine holds the values of the command line flags that override
// settings. Numeric values are collected as strings and parsed by Apply()
// so that a request for help is never masked by a badly formed value.
type CommandLine struct {
	md *modalflag.Modes

	size     *string
	scale    *string
	fps      *string
	title    *string
	wrap     *string
	bits     *string
	backend  *string
	noresize *bool
	watch    *bool
}

// AddFlags adds the flags that override settings to the current mode.
func AddFlags(md *modalflag.Modes) *CommandLine {
	cl := &CommandLine{
		md:       md,
		size:     md.AddString("size", "", "surface size in pixels <width>,<height>"),
		scale:    md.AddString("scale", "", "display scale of the surface"),
		fps:      md.AddString("fps", "", "frames per second"),
		title:    md.AddString("title", "", "window title (default is the shader filename)"),
		wrap:     md.AddString("wrap", "", "canvas wrap mode <repeat|mirror>"),
		bits:     md.AddString("bits", "", "bits per colour channel of the canvas <8|16|32>"),
		backend:  md.AddString("backend", "", "window backend <sdl|glfw>"),
		noresize: md.AddBool("noresize", false, "do not allow the window to be resized"),
		watch:    md.AddBool("watch", false, "reload the shader when the file changes"),
	}

	// long and short names used by earlier versions of frag
	md.AddAlias("canvas", "size")
	md.AddAlias("c", "size")
	md.AddAlias("x", "scale")
	md.AddAlias("f", "fps")
	md.AddAlias("w", "wrap")

	return cl
}

// Apply the flags that were specified on the command line to the settings.
// Must be called after the flags have been parsed.
func (cl *CommandLine) Apply(s *Settings) error {
	var err error

	if cl.md.IsSet("size") {
		s.Width, s.Height, err = ParseSize(*cl.size)
		if err != nil {
			return err
		}
	}

	if cl.md.IsSet("scale") {
		s.Scale, err = ParseScale(*cl.scale)
		if err != nil {
			return err
		}
	}

	if cl.md.IsSet("fps") {
		s.FPS, err = ParseFPS(*cl.fps)
		if err != nil {
			return err
		}
	}

	if cl.md.IsSet("title") {
		s.Title = *cl.title
	}

	if cl.md.IsSet("wrap") {
		s.Wrap, err = ParseWrap(*cl.wrap)
		if err != nil {
			return err
		}
	}

	if cl.md.IsSet("bits") {
		s.Bits, err = ParseBits(*cl.bits)
		if err != nil {
			return err
		}
	}

	if cl.md.IsSet("backend") {
		s.Backend, err = ParseBackend(*cl.backend)
		if err != nil {
			return err
		}
	}

	if *cl.noresize {
		s.Resizable = false
	}

	if *cl.watch {
		s.Watch = true
	}

	return nil
}
