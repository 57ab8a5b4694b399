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

package test

import "strings"

// CompareWriter collects everything written to it so that the output of a
// function can be checked against an expected string. The zero value is ready
// for use.
type CompareWriter struct {
	b strings.Builder
}

// Write implements the io.Writer interface. It never fails.
func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.b.Write(p)
}

// Clear forgets everything written so far.
func (tw *CompareWriter) Clear() {
	tw.b.Reset()
}

// Compare returns true if the output so far is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.b.String() == s
}

// String returns the output so far.
func (tw *CompareWriter) String() string {
	return tw.b.String()
}
