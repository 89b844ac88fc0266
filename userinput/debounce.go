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

// Quiescence is the delay after the most recent accepted press before every
// held button is auto-released.
const Quiescence = 100 * time.Millisecond

// Scheduler is the host timer facility the Debouncer arms its release
// deadline with.
type Scheduler interface {
	// Arm schedules fire to be called once, after d. Arming replaces any
	// previously armed deadline that has not yet fired: there is never more
	// than one live deadline. The fire callback must be delivered on the
	// same goroutine that calls into the Debouncer.
	Arm(d time.Duration, fire func())
}

// Debouncer filters host key events into press/release transitions on a
// Handler. See the package documentation for the input model it implements.
//
// Not safe for concurrent use. Confine it to the goroutine that runs the
// host event loop, along with the Scheduler that serves it.
type Debouncer struct {
	handler Handler
	sched   Scheduler

	// current state of each button. mutated only here
	pressed [NumButtons]bool

	// whether the shared release deadline is live
	armed bool
}

// NewDebouncer is the preferred method of initialisation for the Debouncer
// type.
func NewDebouncer(handler Handler, sched Scheduler) *Debouncer {
	return &Debouncer{
		handler: handler,
		sched:   sched,
	}
}

// OnKey processes one host key event. Codes outside the translation table
// are ignored. A code that maps to a button already being held is swallowed,
// so host key-repeat never re-triggers a press. A fresh press emits the
// press transition and rearms the shared release deadline.
func (deb *Debouncer) OnKey(code KeyCode) {
	btn, ok := translate(code)
	if !ok {
		return
	}

	if deb.pressed[btn] {
		return
	}

	deb.handler.Button(btn, true)
	deb.pressed[btn] = true

	// one deadline for all buttons. arming again resets it, it does not
	// stack a second timer
	deb.sched.Arm(Quiescence, deb.quiesce)
	deb.armed = true
}

// Armed returns whether the release deadline is currently live.
func (deb *Debouncer) Armed() bool {
	return deb.armed
}

// quiesce releases every held button in one batch. this is the only path
// that produces release transitions.
func (deb *Debouncer) quiesce() {
	for btn := ButtonUp; btn < NumButtons; btn++ {
		if deb.pressed[btn] {
			deb.handler.Button(btn, false)
			deb.pressed[btn] = false
		}
	}
	deb.armed = false
}
