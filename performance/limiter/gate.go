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

package limiter

import (
	"time"
)

// Clock returns the time elapsed since an arbitrary fixed point. The value
// must never decrease.
type Clock interface {
	Now() time.Duration
}

type systemClock struct {
	start time.Time
}

func (c systemClock) Now() time.Duration {
	return time.Since(c.start)
}

// SystemClock returns a Clock based on the monotonic system time. Zero is
// the moment the function was called.
func SystemClock() Clock {
	return systemClock{start: time.Now()}
}

// Gate decides whether enough time has passed for the next event.
type Gate struct {
	clock Clock
	fps   float64

	// time of the last accepted event
	last time.Duration

	// the first call to Ready() is always true
	primed bool
}

// NewGate is the preferred method of initialisation for the Gate type. The fps
// value must be positive.
func NewGate(fps float64, clock Clock) *Gate {
	return &Gate{
		clock: clock,
		fps:   fps,
	}
}

// FPS returns the target rate of the gate.
func (g *Gate) FPS() float64 {
	return g.fps
}

// Ready returns true if at least 1/fps seconds have passed since Ready() last
// returned true. The time of the accepted event is recorded.
func (g *Gate) Ready() bool {
	now := g.clock.Now()

	if g.primed {
		elapsed := (now - g.last).Seconds()
		if elapsed*g.fps < 1 {
			return false
		}
	}

	g.primed = true
	g.last = now
	return true
}

// Elapsed returns the time since the gate was created as measured by the
// gate's clock.
func (g *Gate) Elapsed() time.Duration {
	return g.clock.Now()
}
