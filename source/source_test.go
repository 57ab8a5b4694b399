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

package source_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/source"
	"github.com/jetsetilly/frag/test"
)

func roundTrip(t *testing.T, size int) {
	t.Helper()

	content := make([]byte, size)
	for i := range content {
		content[i] = byte('a' + i%26)
	}

	fn := filepath.Join(t.TempDir(), "test.frag")
	err := os.WriteFile(fn, content, 0600)
	if err != nil {
		t.Fatal(err)
	}

	src, err := source.Load(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, src.Len(), size)
	test.ExpectSuccess(t, bytes.Equal(src.Bytes(), content))
	test.ExpectEquality(t, len(src.Terminated()), size+1)
	test.ExpectEquality(t, src.Terminated()[size], byte(0))
	test.ExpectEquality(t, src.String(), string(content))
	test.ExpectEquality(t, src.Filename(), fn)
}

func TestLoadSizes(t *testing.T) {
	for _, sz := range []int{0, 1, 4095, 4096, 4097, 10000} {
		roundTrip(t, sz)
	}
}

func TestLoadMissing(t *testing.T) {
	src, err := source.Load(filepath.Join(t.TempDir(), "missing.frag"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, src == nil)
	test.ExpectSuccess(t, curated.Is(err, source.FileError))
}

func TestLoadDirectory(t *testing.T) {
	_, err := source.Load(t.TempDir())
	test.ExpectFailure(t, err)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.frag")
	err := os.WriteFile(fn, []byte("void main() {}"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	w, err := source.NewWatcher(fn)
	if err != nil {
		t.Skipf("watcher not available: %v", err)
	}
	defer w.Close()

	// writing to a different file in the same directory is not reported
	err = os.WriteFile(filepath.Join(dir, "other.frag"), []byte("x"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	err = os.WriteFile(fn, []byte("void main() { }"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changed:
	case <-time.After(5 * time.Second):
		t.Error("expected change notification")
	}
}
