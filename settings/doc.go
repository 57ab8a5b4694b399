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

// Package settings holds the configuration of a shader run. Values are
// merged from four sources in increasing order of precedence:
//
//	built-in defaults
//	the preferences file
//	#pragma frag: directives in the shader source
//	the command line
//
// A pragma directive is a line of the form:
//
//	#pragma frag: <key> <value>
//
// Recognised keys are size (or canvas), scale, fps, wrap, bits and title.
// Unrecognised keys are ignored so that shaders written for newer versions
// still load.
//
// The Validate() function must be called after merging. Values that fail
// validation must never reach the window or the GL.
package settings
