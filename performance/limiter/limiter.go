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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. The frontends use it to pace their render/integration loops.
//
// A new FpsLimiter can be created with (error handling removed for
// clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/gopherboy/curated"
)

// error patterns for the limiter package.
const (
	InvalidRate = "limiter: invalid rate (%d fps)"
)

// FpsLimiter will trigger at the requested frames per second.
//
// This is a rough attempt at rate limiting. It's only any good if the base
// performance of the machine is well above the required rate, which for
// this project it always is.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the
// FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond < 1 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
	}

	// run ticker concurrently. the sleep duration is adjusted by how long
	// the previous frame overran, keeping the average rate honest
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(adjusted)
			nt := time.Now()
			lim.tick <- true
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim, nil
}

// Wait stalls until the next frame is due.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}
