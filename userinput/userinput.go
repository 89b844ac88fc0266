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

// Button identifies one of the handheld's six physical buttons.
type Button int

// The list of valid Button values.
const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	NumButtons
)

func (btn Button) String() string {
	switch btn {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	}
	return "unknown"
}

// KeyCode is an abstract host key code. Frontends translate their native
// keysyms to these before calling Debouncer.OnKey(). The numeric values
// follow the reference frontend's key space.
type KeyCode uint32

// The key codes recognised by the translation table. The action buttons
// each have an alternate binding, matching the common z/x layout.
const (
	KeyEnter  KeyCode = 10
	KeyUp     KeyCode = 17
	KeyDown   KeyCode = 18
	KeyRight  KeyCode = 19
	KeyLeft   KeyCode = 20
	KeyEscape KeyCode = 27
	KeyX      KeyCode = 120
	KeyZ      KeyCode = 122
)

// Handler conceptualises button data being sent to the emulated machine.
type Handler interface {
	// Button forwards a press or release transition to the machine.
	Button(btn Button, pressed bool)
}

// translate maps a host key code to a button. ok is false for codes outside
// the table. the host may deliver codes for unrelated controls so an
// unknown code is not an error.
func translate(code KeyCode) (Button, bool) {
	switch code {
	case KeyUp:
		return ButtonUp, true
	case KeyDown:
		return ButtonDown, true
	case KeyLeft:
		return ButtonLeft, true
	case KeyRight:
		return ButtonRight, true
	case KeyEnter, KeyZ:
		return ButtonA, true
	case KeyEscape, KeyX:
		return ButtonB, true
	}
	return 0, false
}
