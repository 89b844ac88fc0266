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

// Package gui is the host-side presentation of the emulated handheld. Each
// sub-package is a complete frontend: it owns a host surface, runs the
// event loop, pulls frames from the console across the hardware boundary
// and pushes debounced button input back the other way.
package gui

// Frontend is the interface to a host display/input surface.
type Frontend interface {
	// Run services the host event loop, rendering frames and forwarding
	// key events, until the window is closed or the host requests a quit.
	// It blocks for the lifetime of the frontend and releases all host
	// resources before returning.
	Run() error
}

// Options collects the tunables common to all frontends.
type Options struct {
	// luminance decay and increment applied on every integration tick.
	// together with TickHz these control how long the phosphor glow lasts
	Decay     uint8
	Increment uint8

	// render/integration ticks per second
	TickHz int

	// initial window size as a multiple of the OLED dimensions. ignored by
	// frontends without a window
	WindowScale int
}

// DefaultOptions returns the reference tuning: a short glow at 60 ticks per
// second and a window at four times the OLED size.
func DefaultOptions() Options {
	return Options{
		Decay:       10,
		Increment:   160,
		TickHz:      60,
		WindowScale: 4,
	}
}
