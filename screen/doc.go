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

// Package screen turns the OLED persistence map into host pixels.
//
// ComputeGeometry() decides how the fixed-size OLED image fits onto a host
// surface of arbitrary size: an integer scale (the largest that fits both
// dimensions, floored to one) and the offsets that centre the scaled image.
// The geometry is recomputed whenever the host surface changes size.
//
// Render() rasterises the persistence map into a Canvas according to a
// Geometry. The Canvas is a bounded pixel buffer: it is allocated once at an
// explicit capacity and reshaped per geometry, never grown. If a geometry
// would exceed the capacity, ComputeGeometry() falls back to unscaled
// rendering. The bounded buffer is an intentional constraint carried over
// from the embedded original of this frontend, not an optimisation.
package screen
