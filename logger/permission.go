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

package logger

// Permission is consulted by Log() and Logf() before an entry is created. A
// false result from AllowLogging() drops the entry.
type Permission interface {
	AllowLogging() bool
}

// Permit adapts a function to the Permission interface.
type Permit func() bool

// AllowLogging implements the Permission interface.
func (p Permit) AllowLogging() bool {
	return p()
}

// Allow is the Permission for logging requests that are never refused.
var Allow Permission = Permit(func() bool { return true })
