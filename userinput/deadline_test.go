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

package userinput_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherboy/test"
	"github.com/jetsetilly/gopherboy/userinput"
)

func TestDeadline(t *testing.T) {
	var fired int

	dl := &userinput.Deadline{}
	dl.Arm(100*time.Millisecond, func() { fired++ })

	// not yet
	dl.Service(time.Now())
	test.Equate(t, fired, 0)

	// well past the deadline
	dl.Service(time.Now().Add(time.Second))
	test.Equate(t, fired, 1)

	// a fired deadline stays quiet until rearmed
	dl.Service(time.Now().Add(2 * time.Second))
	test.Equate(t, fired, 1)
}

func TestDeadlineRearm(t *testing.T) {
	var first int
	var second int

	dl := &userinput.Deadline{}
	dl.Arm(100*time.Millisecond, func() { first++ })

	// rearming replaces the pending deadline entirely. the first callback
	// never fires, even at a time when it would have been due
	dl.Arm(time.Hour, func() { second++ })
	dl.Service(time.Now().Add(time.Minute))
	test.Equate(t, first, 0)
	test.Equate(t, second, 0)

	dl.Service(time.Now().Add(2 * time.Hour))
	test.Equate(t, first, 0)
	test.Equate(t, second, 1)
}
