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

// Package termscreen is the terminal frontend. The OLED canvas is drawn
// with the upper-half-block character, two canvas rows per terminal row,
// using truecolour SGR sequences for the grayscale levels. The terminal is
// put into raw mode for the duration so that key bytes arrive one at a time
// and unechoed.
//
// The terminal "surface" is cols x rows*2 pixels. Geometry is recomputed
// whenever the reported terminal size changes, same as a window resize in
// the other frontends.
package termscreen

import (
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"github.com/pkg/term/termios"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/oled"
	"github.com/jetsetilly/gopherboy/performance/limiter"
	"github.com/jetsetilly/gopherboy/screen"
	"github.com/jetsetilly/gopherboy/userinput"
)

// error patterns for the termscreen package.
const (
	Setup = "termscreen: %v"
)

// Screen is the terminal implementation of the gui.Frontend interface.
type Screen struct {
	console hardware.Console
	opts    gui.Options

	input  *os.File
	output *os.File

	// terminal attributes on entry, restored on exit
	canAttr syscall.Termios
	rawAttr syscall.Termios

	// terminal size in character cells, as last reported
	cols int
	rows int

	per    *oled.Persistence
	geom   screen.Geometry
	canvas *screen.Canvas

	deb      *userinput.Debouncer
	deadline *userinput.Deadline

	lmtr *limiter.FpsLimiter

	// key bytes from the reader goroutine
	keys chan byte

	running bool
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(console hardware.Console, opts gui.Options) (gui.Frontend, error) {
	scr := &Screen{
		console: console,
		opts:    opts,
		input:   os.Stdin,
		output:  os.Stdout,
		per:     &oled.Persistence{},
		canvas:  screen.NewCanvas(screen.MaxCanvasPixels),
		keys:    make(chan byte, 64),
	}

	scr.deadline = &userinput.Deadline{}
	scr.deb = userinput.NewDebouncer(console, scr.deadline)

	var err error

	scr.lmtr, err = limiter.NewFPSLimiter(opts.TickHz)
	if err != nil {
		return nil, curated.Errorf(Setup, err)
	}

	return scr, nil
}

// Run implements the gui.Frontend interface.
func (scr *Screen) Run() error {
	if scr.running {
		// idempotent. a second Run() on a live frontend is a no-op
		return nil
	}
	scr.running = true

	// prepare the attributes for raw mode, keeping the current attributes
	// for restoration on exit
	err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr)
	if err != nil {
		scr.running = false
		return curated.Errorf(Setup, err)
	}
	scr.rawAttr = scr.canAttr
	termios.Cfmakeraw(&scr.rawAttr)

	err = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.rawAttr)
	if err != nil {
		scr.running = false
		return curated.Errorf(Setup, err)
	}

	// hide cursor and clear
	scr.print("\x1b[?25l\x1b[2J")

	defer func() {
		scr.print("\x1b[0m\x1b[?25h\x1b[2J\x1b[H")
		_ = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.canAttr)
		scr.running = false
	}()

	if err := scr.updateGeometry(); err != nil {
		return err
	}

	// reader goroutine. raw mode delivers key bytes one at a time. the
	// goroutine ends with the process; a blocked read on stdin cannot be
	// usefully interrupted
	go func() {
		b := make([]byte, 1)
		for {
			n, err := scr.input.Read(b)
			if err != nil {
				return
			}
			if n == 1 {
				scr.keys <- b[0]
			}
		}
	}()

	for {
		scr.lmtr.Wait()

		quit, err := scr.serviceKeys()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		// terminal resize is detected by polling rather than SIGWINCH. once
		// per tick is cheap and keeps everything on the loop goroutine
		if err := scr.updateGeometry(); err != nil {
			return err
		}

		scr.deadline.Service(time.Now())

		if tck, ok := scr.console.(hardware.Ticker); ok {
			tck.Tick()
		}

		scr.per.Integrate(scr.console.Frame(), scr.opts.Decay, scr.opts.Increment)
		screen.Render(scr.per, scr.geom, scr.canvas)
		scr.blit()
	}
}

// serviceKeys drains pending key bytes, decoding arrow key escape sequences.
// returns true if the quit key was pressed.
func (scr *Screen) serviceKeys() (bool, error) {
	for {
		select {
		case b := <-scr.keys:
			switch b {
			case 'q', 0x03: // q or ctrl-c
				return true, nil

			case 0x1b:
				// possible arrow key sequence. a lone escape byte is the B
				// button, same as the reference key table
				code, lone := scr.decodeEscape()
				if lone {
					scr.deb.OnKey(userinput.KeyEscape)
				} else if code != 0 {
					scr.deb.OnKey(code)
				}

			case 'z':
				scr.deb.OnKey(userinput.KeyZ)
			case 'x':
				scr.deb.OnKey(userinput.KeyX)
			case '\r', '\n':
				scr.deb.OnKey(userinput.KeyEnter)
			}

		default:
			return false, nil
		}
	}
}

// decodeEscape reads the remainder of an ANSI arrow sequence, if there is
// one pending. lone is true if the escape byte stood alone.
func (scr *Screen) decodeEscape() (code userinput.KeyCode, lone bool) {
	select {
	case b := <-scr.keys:
		if b != '[' {
			return 0, false
		}
	default:
		return 0, true
	}

	select {
	case b := <-scr.keys:
		switch b {
		case 'A':
			return userinput.KeyUp, false
		case 'B':
			return userinput.KeyDown, false
		case 'C':
			return userinput.KeyRight, false
		case 'D':
			return userinput.KeyLeft, false
		}
	default:
	}

	return 0, false
}

// updateGeometry queries the terminal size and recomputes the geometry if
// it has changed. the surface is cols x rows*2, two half-block pixels per
// character cell.
func (scr *Screen) updateGeometry() error {
	var winsize struct {
		rows uint16
		cols uint16
		x    uint16
		y    uint16
	}

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, scr.output.Fd(),
		uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(&winsize)))
	if errno != 0 {
		return curated.Errorf(Setup, fmt.Errorf("cannot read terminal geometry (%d)", errno))
	}

	if int(winsize.cols) == scr.cols && int(winsize.rows) == scr.rows {
		return nil
	}

	scr.cols = int(winsize.cols)
	scr.rows = int(winsize.rows)
	scr.geom = screen.ComputeGeometry(scr.cols, scr.rows*2, scr.canvas.Capacity())
	scr.print("\x1b[2J")

	logger.Logf("termscreen", "terminal %dx%d, scale %d", scr.cols, scr.rows, scr.geom.Scale)

	return nil
}

// blit writes the canvas to the terminal, two canvas rows per terminal row.
func (scr *Screen) blit() {
	pix := scr.canvas.Pix()
	pitch := scr.canvas.Pitch()

	// offsets in character cells, clamped when the canvas overflows
	offX := scr.geom.OffsetX
	if offX < 0 {
		offX = 0
	}
	offY := scr.geom.OffsetY / 2
	if offY < 0 {
		offY = 0
	}

	s := &strings.Builder{}

	for row := 0; row < scr.canvas.Height()/2; row++ {
		// cursor position. ANSI rows and columns are one-based
		s.WriteString(fmt.Sprintf("\x1b[%d;%dH", offY+row+1, offX+1))

		for col := 0; col < scr.canvas.Width(); col++ {
			// grayscale means the red channel is as good as any
			upper := pix[(row*2)*pitch+col*screen.Depth]
			lower := pix[(row*2+1)*pitch+col*screen.Depth]
			s.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				upper, upper, upper, lower, lower, lower))
		}

		s.WriteString("\x1b[0m")
	}

	scr.print(s.String())
}

// print writes the string to the output terminal.
func (scr *Screen) print(s string) {
	scr.output.WriteString(s)
	scr.output.Sync()
}
