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

// Dimensions of the OLED panel. Height must be a multiple of PageSize.
const (
	Width    = 128
	Height   = 64
	PageSize = 8
	NumPages = Height / PageSize
)

// Frame is a snapshot of the display controller's VRAM. One byte per column
// per page, bit 0 being the topmost row of the page.
//
// A Frame is not safe for concurrent use. The display engine pulls it on
// demand from the goroutine that owns the machine.
type Frame struct {
	vram [NumPages][Width]uint8
}

// Column returns the raw VRAM byte for the specified page and column.
func (fr *Frame) Column(page, col int) uint8 {
	return fr.vram[page][col]
}

// SetColumn sets the raw VRAM byte for the specified page and column.
func (fr *Frame) SetColumn(page, col int, v uint8) {
	fr.vram[page][col] = v
}

// Pixel returns whether the pixel at the coordinate is lit.
func (fr *Frame) Pixel(x, y int) bool {
	return fr.vram[y/PageSize][x]&(1<<(y%PageSize)) != 0
}

// SetPixel sets or clears the pixel at the coordinate.
func (fr *Frame) SetPixel(x, y int, on bool) {
	mask := uint8(1) << (y % PageSize)
	if on {
		fr.vram[y/PageSize][x] |= mask
	} else {
		fr.vram[y/PageSize][x] &^= mask
	}
}

// Clear turns off every pixel in the frame.
func (fr *Frame) Clear() {
	for page := 0; page < NumPages; page++ {
		for col := 0; col < Width; col++ {
			fr.vram[page][col] = 0x00
		}
	}
}

// Fill turns on every pixel in the frame.
func (fr *Frame) Fill() {
	for page := 0; page < NumPages; page++ {
		for col := 0; col < Width; col++ {
			fr.vram[page][col] = 0xff
		}
	}
}
