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

// Package curated provides the error type used throughout the project. A
// curated error remembers the pattern string it was created with, meaning
// that code higher up the call chain can identify the error without string
// comparison of the formatted message.
//
// Errors are created with Errorf() and tested with Is() and Has(). The
// pattern constants themselves are defined close to the code that creates
// the error. For example:
//
//	const Setup = "sdlscreen: %v"
//
//	return curated.Errorf(Setup, err)
//
// and at the catch site:
//
//	if curated.Is(err, sdlscreen.Setup) {
//		...
//	}
//
// Error messages are normalised on formatting: adjacent duplicate message
// parts in a chain of wrapped errors are removed, keeping log output and
// user facing messages readable.
package curated
