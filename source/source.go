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

package source

import (
	"errors"
	"io"
	"os"

	"github.com/jetsetilly/frag/curated"
)

// error patterns returned by the source package.
const (
	FileError  = "source: %v"
	WatchError = "source: watcher: %v"
)

// the initial capacity of the read buffer. the capacity doubles whenever the
// buffer fills.
const initialCapacity = 4096

// Source is the content of a shader file.
type Source struct {
	filename string

	// data includes the nul terminator
	data []byte
}

// Load reads the named file into memory. No partially read Source is
// returned on error.
func Load(filename string) (*Source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	data, err := readAll(f)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	return &Source{
		filename: filename,
		data:     data,
	}, nil
}

// readAll reads r until EOF. the returned slice is nul terminated
func readAll(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, initialCapacity)
	for {
		// leave room for the terminator
		if len(buf)+1 >= cap(buf) {
			nb := make([]byte, len(buf), cap(buf)*2)
			copy(nb, buf)
			buf = nb
		}

		n, err := r.Read(buf[len(buf) : cap(buf)-1])
		buf = buf[:len(buf)+n]
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // for loop
			}
			return nil, err
		}
	}

	return append(buf, 0), nil
}

// Filename returns the name of the file the source was loaded from.
func (src *Source) Filename() string {
	return src.filename
}

// Bytes returns the content without the terminator.
func (src *Source) Bytes() []byte {
	return src.data[:len(src.data)-1]
}

// Terminated returns the content including the nul terminator.
func (src *Source) Terminated() []byte {
	return src.data
}

// Len returns the length of the content, not counting the terminator.
func (src *Source) Len() int {
	return len(src.data) - 1
}

func (src *Source) String() string {
	return string(src.Bytes())
}
