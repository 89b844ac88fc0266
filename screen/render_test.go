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

// canvasPixel returns the RGBA bytes at the canvas coordinate.
func canvasPixel(cv *screen.Canvas, x, y int) (uint8, uint8, uint8, uint8) {
	pix := cv.Pix()
	i := y*cv.Pitch() + x*screen.Depth
	return pix[i], pix[i+1], pix[i+2], pix[i+3]
}

func TestRenderBlocks(t *testing.T) {
	fr := &oled.Frame{}
	fr.SetPixel(3, 5, true)

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 200)

	geom := screen.ComputeGeometry(oled.Width*2, oled.Height*2, screen.MaxCanvasPixels)
	test.Equate(t, geom.Scale, 2)

	cv := screen.NewCanvas(screen.MaxCanvasPixels)
	screen.Render(per, geom, cv)

	test.Equate(t, cv.Width(), oled.Width*2)
	test.Equate(t, cv.Height(), oled.Height*2)

	// the lit OLED pixel fills a uniform 2x2 block of its grayscale colour
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			r, g, b, a := canvasPixel(cv, 3*2+dx, 5*2+dy)
			test.Equate(t, r, 200)
			test.Equate(t, g, 200)
			test.Equate(t, b, 200)
			test.Equate(t, a, 255)
		}
	}

	// neighbouring blocks are opaque black
	r, g, b, a := canvasPixel(cv, 3*2+2, 5*2)
	test.Equate(t, r, 0)
	test.Equate(t, g, 0)
	test.Equate(t, b, 0)
	test.Equate(t, a, 255)
}

func TestRenderClears(t *testing.T) {
	fr := &oled.Frame{}
	fr.SetPixel(0, 0, true)

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 255)

	geom := screen.ComputeGeometry(oled.Width, oled.Height, screen.MaxCanvasPixels)
	cv := screen.NewCanvas(screen.MaxCanvasPixels)
	screen.Render(per, geom, cv)

	r, _, _, _ := canvasPixel(cv, 0, 0)
	test.Equate(t, r, 255)

	// the pixel fades to nothing over the following frames. no stale colour
	// from the previous frame may survive the background clear
	fr.Clear()
	per.Integrate(fr, 255, 0)
	screen.Render(per, geom, cv)

	for y := 0; y < cv.Height(); y++ {
		for x := 0; x < cv.Width(); x++ {
			r, g, b, a := canvasPixel(cv, x, y)
			if r != 0 || g != 0 || b != 0 || a != 255 {
				t.Fatalf("stale pixel at (%d,%d): %d,%d,%d,%d", x, y, r, g, b, a)
			}
		}
	}
}

func TestRenderGrayLevels(t *testing.T) {
	fr := &oled.Frame{}
	fr.SetPixel(10, 10, true)

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 80)

	geom := screen.ComputeGeometry(oled.Width, oled.Height, screen.MaxCanvasPixels)
	cv := screen.NewCanvas(screen.MaxCanvasPixels)
	screen.Render(per, geom, cv)

	// partial luminance maps to equal grayscale channels
	r, g, b, a := canvasPixel(cv, 10, 10)
	test.Equate(t, r, 80)
	test.Equate(t, g, 80)
	test.Equate(t, b, 80)
	test.Equate(t, a, 255)
}

func TestReshapeNeverGrows(t *testing.T) {
	cv := screen.NewCanvas(oled.Width * oled.Height)

	// a mismatched geometry (computed against a larger capacity) must not
	// overrun the canvas buffer
	geom := screen.ComputeGeometry(oled.Width*4, oled.Height*4, screen.MaxCanvasPixels)
	test.Equate(t, geom.Scale, 4)

	cv.Reshape(geom)
	test.Equate(t, cv.Width(), oled.Width)
	test.Equate(t, cv.Height(), oled.Height)
	test.Equate(t, len(cv.Pix()), oled.Width*oled.Height*screen.Depth)

	// rendering with the mismatched geometry stays within the buffer,
	// falling back to unscaled drawing
	fr := &oled.Frame{}
	fr.SetPixel(10, 10, true)

	per := &oled.Persistence{}
	per.Integrate(fr, 0, 255)

	screen.Render(per, geom, cv)
	r, _, _, _ := canvasPixel(cv, 10, 10)
	test.Equate(t, r, 255)
}
