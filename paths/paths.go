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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the name of the resource directory in the current working directory. the
// leading dot is removed when the directory is in the user config directory
const localConfigDir = ".frag"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base path and the sub-path.
func ResourcePath(subPth string, file string) (string, error) {
	pth, err := basePath(subPth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(pth, file), nil
}

func basePath(subPth string) (string, error) {
	var base string

	if st, err := os.Stat(localConfigDir); err == nil && st.IsDir() {
		base = localConfigDir
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(cnf, localConfigDir[1:])
	}

	pth := filepath.Join(base, subPth)

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. Note that the function does not
// test for existing files.
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS.ext
//
// The name part is omitted if it is empty. The name is usually the base name
// of the shader file without its extension.
func UniqueFilename(prepend string, name string, ext string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.TrimSpace(name)
	c = strings.TrimSuffix(c, filepath.Ext(c))

	var fn string
	if len(c) > 0 {
		fn = fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}

	return fn
}
