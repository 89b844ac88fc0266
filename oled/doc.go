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

// Package oled represents the handheld's 128x64 monochrome OLED panel as
// seen from the display side of the machine boundary.
//
// The Frame type mirrors the display controller's VRAM layout: the panel is
// divided into pages of eight stacked rows, with one byte per column per
// page. Bit 0 of a column byte is the topmost row of the page. This is the
// format in which SSD1306-style controllers expose their memory and it is
// the format the emulated machine hands across the boundary.
//
// The Persistence type is the other half of the panel simulation. A real
// OLED pixel does not switch instantly. Persistence maintains an 8-bit
// luminance value for every pixel and the Integrate() function folds a new
// frame into it: every luminance decays by a fixed amount per tick and lit
// pixels gain an increment, saturating at the limits of the 8-bit range.
// The result is the familiar afterglow of the real panel.
package oled
