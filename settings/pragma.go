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
	"strings"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/logger"
)

// PragmaError is returned by ApplyPragmas() when the value of a recognised
// key cannot be parsed.
const PragmaError = "pragma line %d: %v"

const pragmaPrefix = "#pragma frag:"

// ApplyPragmas scans shader source for pragma directives and applies them
// to the settings. Directives are applied in the order they appear.
func (s *Settings) ApplyPragmas(source string) error {
	for i, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, pragmaPrefix) {
			continue // for loop
		}

		key, value := splitPragma(line[len(pragmaPrefix):])
		err := s.applyPragma(key, value)
		if err != nil {
			return curated.Errorf(PragmaError, i+1, err)
		}
	}
	return nil
}

// splits a directive into key and value on the first run of white space.
func splitPragma(s string) (string, string) {
	s = strings.TrimSpace(s)
	if p := strings.IndexAny(s, " \t"); p > 0 {
		return s[:p], strings.TrimSpace(s[p:])
	}
	return s, ""
}

func (s *Settings) applyPragma(key string, value string) error {
	var err error

	switch key {
	case "size", "canvas":
		var w, h int
		w, h, err = ParseSize(value)
		if err == nil {
			s.Width, s.Height = w, h
		}
	case "scale":
		var v float64
		v, err = ParseScale(value)
		if err == nil {
			s.Scale = v
		}
	case "fps":
		var v float64
		v, err = ParseFPS(value)
		if err == nil {
			s.FPS = v
		}
	case "wrap":
		var v Wrap
		v, err = ParseWrap(value)
		if err == nil {
			s.Wrap = v
		}
	case "bits":
		var v int
		v, err = ParseBits(value)
		if err == nil {
			s.Bits = v
		}
	case "title":
		s.Title = value
	default:
		logger.Logf(logger.Allow, "settings", "ignoring unknown pragma key %q", key)
	}

	return err
}
