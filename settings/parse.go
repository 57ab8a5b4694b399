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
	"strconv"
	"strings"

	"github.com/jetsetilly/frag/curated"
)

// error patterns returned by the parse functions.
const (
	SizeError    = "settings: size: %v"
	ScaleError   = "settings: scale: %v"
	FPSError     = "settings: fps: %v"
	WrapError    = "settings: wrap: %v"
	BitsError    = "settings: bits: %v"
	BackendError = "settings: backend: %v"
)

// ParseSize parses a string of the form "<width>,<height>". An 'x' or
// white space may be used instead of the comma but only one kind of
// separator is allowed. Both values must be positive integers written
// without a sign.
func ParseSize(s string) (int, int, error) {
	var p []string

	switch {
	case strings.ContainsRune(s, ','):
		p = strings.Split(s, ",")
	case strings.ContainsRune(s, 'x'):
		p = strings.Split(s, "x")
	default:
		p = strings.Fields(s)
	}

	if len(p) != 2 {
		return 0, 0, curated.Errorf(SizeError, fmt.Sprintf("%q is not of the form <width>,<height>", s))
	}

	w, err := parseDimension(p[0])
	if err != nil {
		return 0, 0, curated.Errorf(SizeError, err)
	}

	h, err := parseDimension(p[1])
	if err != nil {
		return 0, 0, curated.Errorf(SizeError, err)
	}

	return w, h, nil
}

func parseDimension(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}

	// strconv.Atoi() accepts a leading sign
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a positive integer", s)
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil || v > MaxDimension {
		return 0, fmt.Errorf("%q is too large", s)
	}
	if v == 0 {
		return 0, fmt.Errorf("%d is not positive", v)
	}
	return v, nil
}

// parse a real number that must be finite and positive
func parsePositive(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s is not positive", s)
	}
	return v, nil
}

// ParseScale parses the display scale. The entire string must be a positive
// real number.
func ParseScale(s string) (float64, error) {
	v, err := parsePositive(s)
	if err != nil {
		return 0, curated.Errorf(ScaleError, err)
	}
	return v, nil
}

// ParseFPS parses the target frame rate. The entire string must be a
// positive real number.
func ParseFPS(s string) (float64, error) {
	v, err := parsePositive(s)
	if err != nil {
		return 0, curated.Errorf(FPSError, err)
	}
	return v, nil
}

// Wrap is the texture wrap mode of the canvas.
type Wrap int

// List of valid Wrap values.
const (
	WrapRepeat Wrap = iota
	WrapMirror
)

func (w Wrap) String() string {
	switch w {
	case WrapRepeat:
		return "repeat"
	case WrapMirror:
		return "mirror"
	}
	return fmt.Sprintf("wrap(%d)", int(w))
}

// ParseWrap parses "repeat" or "mirror".
func ParseWrap(s string) (Wrap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "repeat":
		return WrapRepeat, nil
	case "mirror":
		return WrapMirror, nil
	}
	return WrapRepeat, curated.Errorf(WrapError, fmt.Sprintf("%q is not repeat or mirror", s))
}

// ParseBits parses the number of bits per colour channel of the canvas
// textures. One of 8, 16 or 32.
func ParseBits(s string) (int, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "8":
		return 8, nil
	case "16":
		return 16, nil
	case "32":
		return 32, nil
	}
	return 0, curated.Errorf(BitsError, fmt.Sprintf("%q is not 8, 16 or 32", s))
}

// Backend names the window system used to create the window and GL context.
type Backend string

// List of valid Backend values.
const (
	BackendSDL  Backend = "sdl"
	BackendGLFW Backend = "glfw"
)

// ParseBackend parses "sdl" or "glfw".
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case BackendSDL, BackendGLFW:
		return b, nil
	}
	return BackendSDL, curated.Errorf(BackendError, fmt.Sprintf("%q is not sdl or glfw", s))
}
