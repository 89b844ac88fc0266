// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "time"

// Deadline is a Scheduler for hosts that poll a run loop rather than deliver
// timer callbacks. The frontends in this project service the Deadline once
// per loop iteration, which keeps the fire callback on the loop goroutine.
//
// The zero value is an unarmed Deadline ready for use.
type Deadline struct {
	armed bool
	when  time.Time
	fire  func()
}

// Arm the deadline to fire after d. Replaces any armed deadline that has
// not yet fired.
func (dl *Deadline) Arm(d time.Duration, fire func()) {
	dl.when = time.Now().Add(d)
	dl.fire = fire
	dl.armed = true
}

// Service fires the deadline if it has passed. Call from the same loop that
// calls into the Debouncer.
func (dl *Deadline) Service(now time.Time) {
	if dl.armed && !now.Before(dl.when) {
		dl.armed = false
		dl.fire()
	}
}
