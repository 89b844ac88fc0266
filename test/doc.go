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

// Package test contains helper functions to remove common boilerplate and
// to make testing easier.
//
// The Equate() function compares like-typed variables for equality. Some
// types (eg. uint8) can be compared against int for convenience. See
// Equate() documentation for discussion why.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. Note that the nil type is considered a
// success, which is the natural interpretation when testing error values.
package test
