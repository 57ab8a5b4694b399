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

// the period over which the measured rate is calculated.
const measurePeriod = time.Second

// Meter measures the number of events per second. The measurement is updated
// once per second.
type Meter struct {
	clock Clock

	// start of current measurement period
	start time.Duration
	count int

	measured float64
}

// NewMeter is the preferred method of initialisation for the Meter type.
func NewMeter(clock Clock) *Meter {
	return &Meter{
		clock: clock,
		start: clock.Now(),
	}
}

// Tick records an event. Returns true if the measurement has been updated.
func (m *Meter) Tick() bool {
	m.count++

	now := m.clock.Now()
	d := now - m.start
	if d < measurePeriod {
		return false
	}

	m.measured = float64(m.count) / d.Seconds()
	m.start = now
	m.count = 0

	return true
}

// Measured returns the most recent measurement. Zero if a full period has
// not yet passed.
func (m *Meter) Measured() float64 {
	return m.measured
}
