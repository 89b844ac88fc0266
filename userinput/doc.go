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

// Package userinput translates host key events into button transitions on
// the emulated machine.
//
// The model here is a host that only ever reports key-down events,
// repeatedly while a key is held, and never reports key-up. The Debouncer
// therefore does two jobs: it swallows the repeats (a button that is
// already held produces no further press signals) and it manufactures the
// releases, by releasing every held button after a fixed quiescence window
// with no fresh presses.
//
// There is a single release deadline shared by all buttons. A fresh press
// rearms the deadline, it never stacks a second one. The consequence, which
// is deliberate and preserved from the reference behaviour, is that two
// buttons held at different times are released together at the same
// quiescence.
package userinput
