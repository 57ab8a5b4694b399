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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() function compares two comparable values of the same
// type. ExpectSuccess() and ExpectFailure() accept bool and error values and
// interpret them in the obvious way: true and nil are successful, false and a
// non-nil error are failures.
//
// The CompareWriter type is an implementation of io.Writer that collects
// everything written to it. It is used to test output produced by the logger
// and the help messages of the modalflag package.
package test
