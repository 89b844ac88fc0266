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

// Package demo is a stand-in console for exercising the frontends without a
// machine core attached. It animates a bouncing block, the D-pad moves a
// paddle, the A button inverts the panel and the B button recentres the
// paddle.
package demo

import (
	"github.com/jetsetilly/gopherboy/oled"
	"github.com/jetsetilly/gopherboy/userinput"
)

const (
	ballSize = 4
	padSize  = 8
)

// Demo implements hardware.Console and hardware.Ticker.
type Demo struct {
	frame oled.Frame

	ballX, ballY int
	dirX, dirY   int

	padX, padY int

	held     [userinput.NumButtons]bool
	inverted bool
}

// NewDemo is the preferred method of initialisation for the Demo type.
func NewDemo() *Demo {
	dem := &Demo{
		ballX: oled.Width / 4,
		ballY: oled.Height / 4,
		dirX:  1,
		dirY:  1,
		padX:  (oled.Width - padSize) / 2,
		padY:  (oled.Height - padSize) / 2,
	}
	dem.redraw()
	return dem
}

// Frame implements the hardware.Console interface.
func (dem *Demo) Frame() *oled.Frame {
	return &dem.frame
}

// Button implements the userinput.Handler interface.
func (dem *Demo) Button(btn userinput.Button, pressed bool) {
	dem.held[btn] = pressed

	if !pressed {
		return
	}

	switch btn {
	case userinput.ButtonA:
		dem.inverted = !dem.inverted
	case userinput.ButtonB:
		dem.padX = (oled.Width - padSize) / 2
		dem.padY = (oled.Height - padSize) / 2
	}
}

// Tick implements the hardware.Ticker interface, advancing the animation by
// one step.
func (dem *Demo) Tick() {
	dem.ballX += dem.dirX
	dem.ballY += dem.dirY
	if dem.ballX <= 1 || dem.ballX >= oled.Width-1-ballSize {
		dem.dirX = -dem.dirX
	}
	if dem.ballY <= 1 || dem.ballY >= oled.Height-1-ballSize {
		dem.dirY = -dem.dirY
	}

	if dem.held[userinput.ButtonLeft] && dem.padX > 1 {
		dem.padX--
	}
	if dem.held[userinput.ButtonRight] && dem.padX < oled.Width-1-padSize {
		dem.padX++
	}
	if dem.held[userinput.ButtonUp] && dem.padY > 1 {
		dem.padY--
	}
	if dem.held[userinput.ButtonDown] && dem.padY < oled.Height-1-padSize {
		dem.padY++
	}

	dem.redraw()
}

func (dem *Demo) redraw() {
	on := !dem.inverted

	if dem.inverted {
		dem.frame.Fill()
	} else {
		dem.frame.Clear()
	}

	// border
	for x := 0; x < oled.Width; x++ {
		dem.frame.SetPixel(x, 0, on)
		dem.frame.SetPixel(x, oled.Height-1, on)
	}
	for y := 0; y < oled.Height; y++ {
		dem.frame.SetPixel(0, y, on)
		dem.frame.SetPixel(oled.Width-1, y, on)
	}

	dem.block(dem.ballX, dem.ballY, ballSize, on)
	dem.block(dem.padX, dem.padY, padSize, on)
}

func (dem *Demo) block(x, y, size int, on bool) {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			dem.frame.SetPixel(x+dx, y+dy, on)
		}
	}
}
