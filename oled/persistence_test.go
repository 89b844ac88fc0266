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

package oled_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/oled"
	"github.com/jetsetilly/gopherboy/test"
)

func TestFullBrightConvergence(t *testing.T) {
	fr := &oled.Frame{}
	fr.Fill()

	per := &oled.Persistence{}

	// with increment=i and decay=0, every cell must reach 255 within
	// ceil(255/i) calls
	const increment = 100
	calls := (255 + increment - 1) / increment

	for i := 0; i < calls; i++ {
		per.Integrate(fr, 0, increment)
	}

	for y := 0; y < oled.Height; y++ {
		for x := 0; x < oled.Width; x++ {
			if per.Luma(x, y) != 255 {
				t.Fatalf("cell (%d,%d) did not converge to 255 (got %d)", x, y, per.Luma(x, y))
			}
		}
	}

	// further integration must saturate, not wrap
	per.Integrate(fr, 0, 255)
	test.Equate(t, per.Luma(0, 0), 255)
}

func TestDecayConvergence(t *testing.T) {
	fr := &oled.Frame{}
	fr.Fill()

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 255)

	// with decay=d and a dark frame, every cell must reach 0 within
	// ceil(255/d) calls
	fr.Clear()
	const decay = 60
	calls := (255 + decay - 1) / decay

	for i := 0; i < calls; i++ {
		per.Integrate(fr, decay, 0)
	}

	for y := 0; y < oled.Height; y++ {
		for x := 0; x < oled.Width; x++ {
			if per.Luma(x, y) != 0 {
				t.Fatalf("cell (%d,%d) did not decay to 0 (got %d)", x, y, per.Luma(x, y))
			}
		}
	}

	// decay of an already dark panel saturates at zero
	per.Integrate(fr, 255, 0)
	test.Equate(t, per.Luma(0, 0), 0)
}

func TestInstantaneous(t *testing.T) {
	// decay=0 increment=255 gives a binary display with no persistence
	fr := &oled.Frame{}
	fr.SetPixel(10, 10, true)

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 255)

	test.Equate(t, per.Luma(10, 10), 255)
	test.Equate(t, per.Luma(11, 10), 0)

	// decay=255 forces a near instant fade
	fr.Clear()
	per.Integrate(fr, 255, 0)
	test.Equate(t, per.Luma(10, 10), 0)
}

func TestEveryCellVisited(t *testing.T) {
	// a uniform decay applied to a uniform map must leave the map uniform.
	// if any cell were skipped or visited twice the uniformity would break
	fr := &oled.Frame{}
	fr.Fill()

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 200)

	fr.Clear()
	per.Integrate(fr, 13, 0)

	for y := 0; y < oled.Height; y++ {
		for x := 0; x < oled.Width; x++ {
			if per.Luma(x, y) != 187 {
				t.Fatalf("cell (%d,%d) not visited exactly once (got %d, wanted 187)", x, y, per.Luma(x, y))
			}
		}
	}
}

func TestPageMapping(t *testing.T) {
	// one lit column byte lights eight vertically stacked pixels
	fr := &oled.Frame{}
	fr.SetColumn(2, 64, 0xff)

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 255)

	for y := 0; y < oled.Height; y++ {
		lit := y >= 2*oled.PageSize && y < 3*oled.PageSize
		if lit {
			test.Equate(t, per.Luma(64, y), 255)
		} else {
			test.Equate(t, per.Luma(64, y), 0)
		}
	}
}

func TestReset(t *testing.T) {
	fr := &oled.Frame{}
	fr.Fill()

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 255)
	test.Equate(t, per.Luma(0, 0), 255)

	per.Reset()
	test.Equate(t, per.Luma(0, 0), 0)
	test.Equate(t, per.Luma(oled.Width-1, oled.Height-1), 0)
}
