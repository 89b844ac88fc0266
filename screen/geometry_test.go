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

package screen_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/oled"
	"github.com/jetsetilly/gopherboy/screen"
	"github.com/jetsetilly/gopherboy/test"
)

func TestCentring(t *testing.T) {
	// height is the limiting dimension: min(168/64, 384/128) == 2
	geom := screen.ComputeGeometry(384, 168, screen.MaxCanvasPixels)
	test.Equate(t, geom.Scale, 2)
	test.Equate(t, geom.CanvasWidth, 256)
	test.Equate(t, geom.CanvasHeight, 128)
	test.Equate(t, geom.OffsetX, 64)
	test.Equate(t, geom.OffsetY, 20)
}

func TestWidthLimited(t *testing.T) {
	// width is the limiting dimension: min(1000/64, 384/128) == 3
	geom := screen.ComputeGeometry(384, 1000, screen.MaxCanvasPixels)
	test.Equate(t, geom.Scale, 3)
	test.Equate(t, geom.CanvasWidth, 384)
	test.Equate(t, geom.CanvasHeight, 192)
	test.Equate(t, geom.OffsetX, 0)
	test.Equate(t, geom.OffsetY, 404)
}

func TestDegenerateSurface(t *testing.T) {
	// a surface smaller than the OLED image clamps the scale to one and
	// produces negative offsets. the display overflows rather than
	// disappearing
	geom := screen.ComputeGeometry(50, 50, screen.MaxCanvasPixels)
	test.Equate(t, geom.Scale, 1)
	test.Equate(t, geom.CanvasWidth, oled.Width)
	test.Equate(t, geom.CanvasHeight, oled.Height)
	test.Equate(t, geom.OffsetX, -39)
	test.Equate(t, geom.OffsetY, -7)
}

func TestCapacityFallback(t *testing.T) {
	// surface supports scale 4 but the capacity only covers scale 2. the
	// geometry must fall back to scale 1 (not the largest scale that fits)
	// and recompute the centring for the unscaled size
	maxPixels := oled.Width * oled.Height * 2 * 2
	geom := screen.ComputeGeometry(oled.Width*4, oled.Height*4, maxPixels)
	test.Equate(t, geom.Scale, 1)
	test.Equate(t, geom.CanvasWidth, oled.Width)
	test.Equate(t, geom.CanvasHeight, oled.Height)
	test.Equate(t, geom.OffsetX, (oled.Width*4-oled.Width)/2)
	test.Equate(t, geom.OffsetY, (oled.Height*4-oled.Height)/2)
}

func TestCapacityExactFit(t *testing.T) {
	// a canvas exactly at capacity is not a fallback condition
	maxPixels := oled.Width * oled.Height * 4
	geom := screen.ComputeGeometry(oled.Width*2, oled.Height*2, maxPixels)
	test.Equate(t, geom.Scale, 2)
	test.Equate(t, geom.CanvasWidth, oled.Width*2)
	test.Equate(t, geom.CanvasHeight, oled.Height*2)
}
