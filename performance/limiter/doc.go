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

// Package limiter provides a way of limiting events to a fixed rate without
// blocking.
//
// A Gate is created with the target rate and a Clock:
//
//	gate := limiter.NewGate(60, limiter.SystemClock())
//
// The Ready() function is then called as often as possible. It will return
// true at most once for every period of 1/fps seconds:
//
//	for running {
//		pollEvents()
//		if gate.Ready() {
//			renderImage()
//		}
//	}
//
// The Meter type measures the rate at which events actually happen.
package limiter
