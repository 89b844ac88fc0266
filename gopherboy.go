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

// Gopherboy presents an emulated 128x64 OLED handheld on the host machine:
// the display with simulated phosphor persistence, the six buttons with
// debounced auto-releasing input. The machine core itself lives behind the
// hardware boundary; the built-in demo console stands in for it here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/gui/ebitenscreen"
	"github.com/jetsetilly/gopherboy/gui/sdlscreen"
	"github.com/jetsetilly/gopherboy/gui/termscreen"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/demo"
	"github.com/jetsetilly/gopherboy/logger"
)

func main() {
	defOpts := gui.DefaultOptions()

	frontend := flag.String("gui", "sdl", "frontend to use: sdl, ebiten or term")
	decay := flag.Int("decay", int(defOpts.Decay), "luminance decay per tick (0-255)")
	increment := flag.Int("increment", int(defOpts.Increment), "luminance increment per tick (0-255)")
	tickHz := flag.Int("tick", defOpts.TickHz, "integration/render ticks per second")
	windowScale := flag.Int("scale", defOpts.WindowScale, "initial window size as a multiple of the OLED size")
	echoLog := flag.Bool("log", false, "echo log entries to stderr")
	flag.Parse()

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *decay < 0 || *decay > 255 || *increment < 0 || *increment > 255 {
		fmt.Println("decay and increment must be in the range 0 to 255")
		os.Exit(10)
	}

	opts := gui.Options{
		Decay:       uint8(*decay),
		Increment:   uint8(*increment),
		TickHz:      *tickHz,
		WindowScale: *windowScale,
	}

	// the demo console stands in for the emulated machine core
	var console hardware.Console = demo.NewDemo()

	var scr gui.Frontend
	var err error

	switch *frontend {
	case "sdl":
		scr, err = sdlscreen.NewScreen(console, opts)
	case "ebiten":
		scr, err = ebitenscreen.NewScreen(console, opts)
	case "term":
		scr, err = termscreen.NewScreen(console, opts)
	default:
		fmt.Printf("unknown frontend (%s)\n", *frontend)
		os.Exit(10)
	}

	if err == nil {
		err = scr.Run()
	}

	if err != nil {
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}
}
