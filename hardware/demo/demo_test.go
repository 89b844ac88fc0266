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

package demo_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/demo"
	"github.com/jetsetilly/gopherboy/oled"
	"github.com/jetsetilly/gopherboy/test"
	"github.com/jetsetilly/gopherboy/userinput"
)

func TestBoundary(t *testing.T) {
	// the demo must satisfy the full console boundary
	var _ hardware.Console = demo.NewDemo()
	var _ hardware.Ticker = demo.NewDemo()
}

func TestAnimation(t *testing.T) {
	dem := demo.NewDemo()

	// border is drawn from the start
	test.Equate(t, dem.Frame().Pixel(0, 0), true)

	// the frame changes as the animation advances
	before := *dem.Frame()
	dem.Tick()
	after := *dem.Frame()

	same := true
	for page := 0; page < oled.NumPages; page++ {
		for col := 0; col < oled.Width; col++ {
			if before.Column(page, col) != after.Column(page, col) {
				same = false
			}
		}
	}
	test.Equate(t, same, false)
}

func TestInvert(t *testing.T) {
	dem := demo.NewDemo()

	// a pixel away from the border, ball and paddle
	test.Equate(t, dem.Frame().Pixel(100, 5), false)

	dem.Button(userinput.ButtonA, true)
	dem.Tick()
	test.Equate(t, dem.Frame().Pixel(100, 5), true)

	// release is recorded but does not toggle
	dem.Button(userinput.ButtonA, false)
	dem.Tick()
	test.Equate(t, dem.Frame().Pixel(100, 5), true)
}
