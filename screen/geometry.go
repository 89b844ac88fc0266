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

// MaxCanvasPixels is the default canvas capacity, allowing a scale factor of
// up to eight.
const MaxCanvasPixels = oled.Width * oled.Height * 8 * 8

// Geometry describes how the OLED image fits onto the host surface.
// Immutable once computed. Recompute whenever the surface size changes.
type Geometry struct {
	// by how much each OLED pixel is scaled. always one or more
	Scale int

	// offsets that centre the canvas on the host surface. negative when the
	// surface is smaller than the canvas, in which case the host decides
	// whether to clip
	OffsetX int
	OffsetY int

	// dimensions of the scaled canvas
	CanvasWidth  int
	CanvasHeight int
}

// ComputeGeometry returns the Geometry for a host surface of the given size.
//
// The scale is the largest integer that fits the OLED image into both
// surface dimensions, floored to one. A surface smaller than the OLED image
// therefore overflows rather than disappearing.
//
// maxCanvasPixels is a hard capacity guard: if the scaled canvas would not
// fit, the geometry falls back to unscaled rendering and the centring is
// recomputed for the unscaled size.
func ComputeGeometry(surfaceWidth, surfaceHeight, maxCanvasPixels int) Geometry {
	scaleByHeight := surfaceHeight / oled.Height
	scaleByWidth := surfaceWidth / oled.Width

	geom := Geometry{Scale: scaleByHeight}
	if scaleByWidth < geom.Scale {
		geom.Scale = scaleByWidth
	}
	if geom.Scale < 1 {
		geom.Scale = 1
	}

	geom.CanvasWidth = oled.Width * geom.Scale
	geom.CanvasHeight = oled.Height * geom.Scale

	if geom.CanvasWidth*geom.CanvasHeight > maxCanvasPixels {
		geom.Scale = 1
		geom.CanvasWidth = oled.Width
		geom.CanvasHeight = oled.Height
	}

	// integer division. deliberately allowed to go negative
	geom.OffsetX = (surfaceWidth - geom.CanvasWidth) / 2
	geom.OffsetY = (surfaceHeight - geom.CanvasHeight) / 2

	return geom
}
