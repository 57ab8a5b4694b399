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

package scene

// cleanup is a stack of functions that release resources. the functions are
// called in reverse order of registration.
type cleanup struct {
	fns []func()
}

func (c *cleanup) add(f func()) {
	c.fns = append(c.fns, f)
}

// release calls every registered function exactly once. calling release()
// again has no effect unless new functions have been added.
func (c *cleanup) release() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
	c.fns = nil
}
