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

// Package hardware defines the boundary to the emulated machine. The
// machine core itself (CPU, display controller, firmware) lives on the far
// side of these interfaces and is not part of this project.
package hardware

import (
	"github.com/jetsetilly/gopherboy/oled"
	"github.com/jetsetilly/gopherboy/userinput"
)

// Console is the connection to the emulated machine. The display side pulls
// frames on demand; the input side pushes button transitions.
type Console interface {
	userinput.Handler

	// Frame returns the machine's current display frame. It is pulled on
	// every render tick and treated as a read-only snapshot.
	Frame() *oled.Frame
}

// Ticker is implemented by consoles that want driving from the host's run
// loop. A real machine core runs its own clock and doesn't need this; the
// demo console does.
type Ticker interface {
	Tick()
}
