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

package oled

// Persistence maintains an 8-bit luminance value for every pixel of the
// panel, simulating the afterglow of the real display. Zero initialised,
// meaning a dark panel. Mutated in place by Integrate() and never reset
// except by Reset().
//
// Not safe for concurrent use. Confine it to the goroutine that runs the
// render loop.
type Persistence struct {
	luma [Width * Height]uint8
}

// Integrate folds one frame into the luminance map:
//
//	luma' = clamp(luma - decay + (lit ? increment : 0), 0, 255)
//
// Every one of the Width*Height cells is visited exactly once per call.
// Arithmetic saturates at the limits of the 8-bit range, it never wraps.
//
// decay and increment are supplied by the caller on every call so that the
// glow persistence is tunable: decay=0 and increment=255 gives an
// instantaneous binary display, decay=255 a near instant fade.
func (per *Persistence) Integrate(fr *Frame, decay uint8, increment uint8) {
	for page := 0; page < NumPages; page++ {
		for col := 0; col < Width; col++ {
			px := fr.vram[page][col]

			// bit 0 is the topmost row of the page
			for bit := 0; bit < PageSize; bit++ {
				idx := (page*PageSize+bit)*Width + col

				luma := int(per.luma[idx]) - int(decay)
				if px&0x01 == 0x01 {
					luma += int(increment)
				}

				if luma < 0 {
					luma = 0
				} else if luma > 255 {
					luma = 255
				}

				per.luma[idx] = uint8(luma)
				px >>= 1
			}
		}
	}
}

// Luma returns the current luminance of the pixel at the coordinate.
func (per *Persistence) Luma(x, y int) uint8 {
	return per.luma[y*Width+x]
}

// Reset returns every luminance cell to zero, as at engine start.
func (per *Persistence) Reset() {
	for i := range per.luma {
		per.luma[i] = 0
	}
}
