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

// the number of bytes required for each canvas pixel.
// 4 == red + green + blue + alpha
const Depth = 4

// Canvas is the bounded destination pixel buffer the persistence map is
// rasterised into. The buffer is allocated once, at the full capacity given
// to NewCanvas(), and reshaped per geometry. It is never grown.
type Canvas struct {
	pix      []byte
	capacity int

	width  int
	height int
}

// NewCanvas allocates a canvas with a capacity of maxPixels. The same
// maxPixels value should be used for every ComputeGeometry() call that the
// canvas is rendered with, which guarantees that Reshape() always fits.
func NewCanvas(maxPixels int) *Canvas {
	return &Canvas{
		pix:      make([]byte, maxPixels*Depth),
		capacity: maxPixels,
	}
}

// Reshape adopts the canvas dimensions of the geometry. A geometry computed
// against the same capacity can never exceed it; if a mismatched geometry is
// supplied the canvas falls back to the unscaled OLED size rather than
// overrun the buffer.
func (cv *Canvas) Reshape(geom Geometry) {
	w := geom.CanvasWidth
	h := geom.CanvasHeight
	if w*h > cv.capacity {
		w = oled.Width
		h = oled.Height
	}
	cv.width = w
	cv.height = h
}

// Width of the visible portion of the canvas in pixels.
func (cv *Canvas) Width() int {
	return cv.width
}

// Height of the visible portion of the canvas in pixels.
func (cv *Canvas) Height() int {
	return cv.height
}

// Capacity of the canvas in pixels, as given to NewCanvas().
func (cv *Canvas) Capacity() int {
	return cv.capacity
}

// Pix returns the visible portion of the pixel buffer. Row-major, RGBA byte
// order, Pitch() bytes per row. The slice aliases the canvas buffer and is
// invalidated by the next Reshape().
func (cv *Canvas) Pix() []byte {
	return cv.pix[:cv.width*cv.height*Depth]
}

// Pitch is the number of bytes per canvas row.
func (cv *Canvas) Pitch() int {
	return cv.width * Depth
}
