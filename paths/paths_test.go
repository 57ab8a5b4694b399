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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/frag/paths"
	"github.com/jetsetilly/frag/test"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("error getting working directory: %v", err)
	}

	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("error changing directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

func TestLocalResourcePath(t *testing.T) {
	dir := chdirTemp(t)
	test.ExpectSuccess(t, os.Mkdir(".frag", 0o700))

	pth, err := paths.ResourcePath("screenshots", "a.png")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".frag", "screenshots", "a.png"))

	// sub-path directory has been created
	st, err := os.Stat(filepath.Join(dir, ".frag", "screenshots"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, st.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".frag", "preferences"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".frag")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "plasma.frag", "png")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_plasma_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".png"))

	fn = paths.UniqueFilename("screenshot", "", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_"))
	test.ExpectEquality(t, filepath.Ext(fn), "")
}
