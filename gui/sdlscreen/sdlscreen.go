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

// Package sdlscreen is the SDL frontend. The OLED canvas is streamed into
// an SDL texture every tick and copied to the renderer at the centring
// offsets computed by the screen package.
//
// Keyboard handling follows the key-down-only model described in the
// userinput package: KEYDOWN events, including host key repeats, are
// translated and forwarded; KEYUP events are deliberately discarded.
package sdlscreen

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/oled"
	"github.com/jetsetilly/gopherboy/performance/limiter"
	"github.com/jetsetilly/gopherboy/screen"
	"github.com/jetsetilly/gopherboy/userinput"
)

// error patterns for the sdlscreen package.
const (
	Setup = "sdlscreen: %v"
)

// Screen is the SDL implementation of the gui.Frontend interface.
type Screen struct {
	console hardware.Console
	opts    gui.Options

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	per    *oled.Persistence
	geom   screen.Geometry
	canvas *screen.Canvas

	deb      *userinput.Debouncer
	deadline *userinput.Deadline

	lmtr *limiter.FpsLimiter

	running bool
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(console hardware.Console, opts gui.Options) (gui.Frontend, error) {
	scr := &Screen{
		console: console,
		opts:    opts,
		per:     &oled.Persistence{},
		canvas:  screen.NewCanvas(screen.MaxCanvasPixels),
	}

	scr.deadline = &userinput.Deadline{}
	scr.deb = userinput.NewDebouncer(console, scr.deadline)

	var err error

	scr.lmtr, err = limiter.NewFPSLimiter(opts.TickHz)
	if err != nil {
		return nil, curated.Errorf(Setup, err)
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(Setup, err)
	}

	scr.window, err = sdl.CreateWindow("Gopherboy",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(oled.Width*opts.WindowScale), int32(oled.Height*opts.WindowScale),
		uint32(sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf(Setup, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(Setup, err)
	}

	err = scr.resize()
	if err != nil {
		return nil, curated.Errorf(Setup, err)
	}

	return scr, nil
}

// resize recomputes the geometry for the current window size and prepares a
// texture of the new canvas size.
func (scr *Screen) resize() error {
	w, h := scr.window.GetSize()
	geom := screen.ComputeGeometry(int(w), int(h), scr.canvas.Capacity())

	if scr.texture != nil {
		if geom.CanvasWidth == scr.geom.CanvasWidth && geom.CanvasHeight == scr.geom.CanvasHeight {
			// canvas size unchanged. only the centring offsets move
			scr.geom = geom
			return nil
		}
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	scr.geom = geom

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(scr.geom.CanvasWidth), int32(scr.geom.CanvasHeight))
	if err != nil {
		return err
	}

	logger.Logf("sdlscreen", "scale %d, canvas %dx%d", scr.geom.Scale, scr.geom.CanvasWidth, scr.geom.CanvasHeight)

	return nil
}

// Run implements the gui.Frontend interface. Must be called from the main
// goroutine, as required by SDL.
func (scr *Screen) Run() error {
	if scr.running {
		// idempotent. a second Run() on a live frontend is a no-op
		return nil
	}
	scr.running = true

	defer func() {
		if scr.texture != nil {
			_ = scr.texture.Destroy()
		}
		_ = scr.renderer.Destroy()
		_ = scr.window.Destroy()
		sdl.Quit()
		scr.running = false
	}()

	for {
		scr.lmtr.Wait()

		// loop until there are no more events to retrieve. servicing one
		// event per tick would leave queued key events a tick behind
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.WindowEvent:
				if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					if err := scr.resize(); err != nil {
						return curated.Errorf(Setup, err)
					}
				}

			case *sdl.KeyboardEvent:
				// key-down only, repeats included. the debouncer swallows
				// the repeats and manufactures the releases
				if ev.Type == sdl.KEYDOWN {
					if ev.Keysym.Sym == sdl.K_q {
						return nil
					}
					if code, ok := translateKeysym(ev.Keysym.Sym); ok {
						scr.deb.OnKey(code)
					}
				}
			}
		}

		scr.deadline.Service(time.Now())

		if tck, ok := scr.console.(hardware.Ticker); ok {
			tck.Tick()
		}

		scr.per.Integrate(scr.console.Frame(), scr.opts.Decay, scr.opts.Increment)
		screen.Render(scr.per, scr.geom, scr.canvas)

		err := scr.texture.Update(nil, scr.canvas.Pix(), scr.canvas.Pitch())
		if err != nil {
			return curated.Errorf(Setup, err)
		}

		_ = scr.renderer.SetDrawColor(0, 0, 0, 255)
		_ = scr.renderer.Clear()

		err = scr.renderer.Copy(scr.texture, nil, &sdl.Rect{
			X: int32(scr.geom.OffsetX),
			Y: int32(scr.geom.OffsetY),
			W: int32(scr.geom.CanvasWidth),
			H: int32(scr.geom.CanvasHeight),
		})
		if err != nil {
			return curated.Errorf(Setup, err)
		}

		scr.renderer.Present()
	}
}

// translateKeysym maps SDL keysyms onto the abstract key code space of the
// userinput package.
func translateKeysym(sym sdl.Keycode) (userinput.KeyCode, bool) {
	switch sym {
	case sdl.K_UP:
		return userinput.KeyUp, true
	case sdl.K_DOWN:
		return userinput.KeyDown, true
	case sdl.K_LEFT:
		return userinput.KeyLeft, true
	case sdl.K_RIGHT:
		return userinput.KeyRight, true
	case sdl.K_RETURN:
		return userinput.KeyEnter, true
	case sdl.K_z:
		return userinput.KeyZ, true
	case sdl.K_ESCAPE:
		return userinput.KeyEscape, true
	case sdl.K_x:
		return userinput.KeyX, true
	}
	return 0, false
}
