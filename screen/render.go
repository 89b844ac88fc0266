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

package screen

import (
	"github.com/jetsetilly/gopherboy/oled"
)

// Render rasterises the persistence map into the canvas according to the
// geometry. The canvas is reshaped and cleared to opaque black before
// drawing, so no pixel from a previous frame survives. Every OLED pixel is
// drawn as a uniform Scale x Scale block of its grayscale colour
// (R=G=B=luma), fully opaque.
//
// The geometry must have been computed against the canvas capacity and for
// the current surface size. Rendering with a stale geometry is not an error
// but the image will be misplaced on the host surface.
func Render(per *oled.Persistence, geom Geometry, cv *Canvas) {
	cv.Reshape(geom)
	pix := cv.Pix()

	// clear to opaque black before drawing
	for i := 0; i < len(pix); i += Depth {
		pix[i] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 255
	}

	scale := geom.Scale
	if cv.Width() != geom.CanvasWidth || cv.Height() != geom.CanvasHeight {
		// the reshape fell back to the unscaled size. draw unscaled rather
		// than overrun the buffer
		scale = 1
	}
	pitch := cv.Pitch()

	for y := 0; y < oled.Height; y++ {
		for x := 0; x < oled.Width; x++ {
			v := per.Luma(x, y)
			if v == 0 {
				// cell is black already from the clear
				continue
			}

			for dy := 0; dy < scale; dy++ {
				i := (y*scale+dy)*pitch + x*scale*Depth
				for dx := 0; dx < scale; dx++ {
					pix[i] = v
					pix[i+1] = v
					pix[i+2] = v
					pix[i+3] = 255
					i += Depth
				}
			}
		}
	}
}
