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

// Package ebitenscreen is the Ebitengine frontend. Unlike the SDL frontend
// it does not own an explicit event loop: Ebitengine calls Update() at the
// configured tick rate and Draw() every display frame, which maps neatly
// onto the integration tick and render tick of the screen engine.
//
// Key input is polled. A key that is down during Update() is forwarded as a
// key-down event, every tick, for as long as it is held. That is exactly
// the repeat-only host model the userinput package is built for.
package ebitenscreen

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jetsetilly/gopherboy/gui"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/oled"
	"github.com/jetsetilly/gopherboy/screen"
	"github.com/jetsetilly/gopherboy/userinput"
)

// the keys polled during Update() and the abstract codes they map to.
var keyMap = map[ebiten.Key]userinput.KeyCode{
	ebiten.KeyArrowUp:    userinput.KeyUp,
	ebiten.KeyArrowDown:  userinput.KeyDown,
	ebiten.KeyArrowLeft:  userinput.KeyLeft,
	ebiten.KeyArrowRight: userinput.KeyRight,
	ebiten.KeyEnter:      userinput.KeyEnter,
	ebiten.KeyZ:          userinput.KeyZ,
	ebiten.KeyEscape:     userinput.KeyEscape,
	ebiten.KeyX:          userinput.KeyX,
}

// Screen is the Ebitengine implementation of the gui.Frontend interface.
// It also implements ebiten.Game.
type Screen struct {
	console hardware.Console
	opts    gui.Options

	per    *oled.Persistence
	geom   screen.Geometry
	canvas *screen.Canvas

	// surface dimensions as reported by Layout()
	surfaceWidth  int
	surfaceHeight int

	// offscreen image the canvas is written into before being drawn at the
	// centring offsets
	offscreen *ebiten.Image

	deb      *userinput.Debouncer
	deadline *userinput.Deadline

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

	return scr, nil
}

// Run implements the gui.Frontend interface. Must be called from the main
// goroutine, as required by Ebitengine.
func (scr *Screen) Run() error {
	if scr.running {
		// idempotent. a second Run() on a live frontend is a no-op
		return nil
	}
	scr.running = true
	defer func() { scr.running = false }()

	ebiten.SetWindowSize(oled.Width*scr.opts.WindowScale, oled.Height*scr.opts.WindowScale)
	ebiten.SetWindowTitle("Gopherboy")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(scr.opts.TickHz)

	return ebiten.RunGame(scr)
}

// Update implements the ebiten.Game interface. This is the integration
// tick: input, auto-release deadline, machine tick and lumamap integration.
func (scr *Screen) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for key, code := range keyMap {
		if ebiten.IsKeyPressed(key) {
			scr.deb.OnKey(code)
		}
	}

	scr.deadline.Service(time.Now())

	if tck, ok := scr.console.(hardware.Ticker); ok {
		tck.Tick()
	}

	scr.per.Integrate(scr.console.Frame(), scr.opts.Decay, scr.opts.Increment)

	return nil
}

// Draw implements the ebiten.Game interface.
func (scr *Screen) Draw(surface *ebiten.Image) {
	surface.Fill(color.Black)

	screen.Render(scr.per, scr.geom, scr.canvas)

	if scr.offscreen == nil ||
		scr.offscreen.Bounds().Dx() != scr.canvas.Width() ||
		scr.offscreen.Bounds().Dy() != scr.canvas.Height() {
		scr.offscreen = ebiten.NewImage(scr.canvas.Width(), scr.canvas.Height())
	}
	scr.offscreen.WritePixels(scr.canvas.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(scr.geom.OffsetX), float64(scr.geom.OffsetY))
	surface.DrawImage(scr.offscreen, op)
}

// Layout implements the ebiten.Game interface. The logical surface size is
// the window size, giving pixel-for-pixel rendering of the canvas.
func (scr *Screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != scr.surfaceWidth || outsideHeight != scr.surfaceHeight {
		scr.surfaceWidth = outsideWidth
		scr.surfaceHeight = outsideHeight
		scr.geom = screen.ComputeGeometry(outsideWidth, outsideHeight, scr.canvas.Capacity())
		logger.Logf("ebitenscreen", "scale %d, canvas %dx%d", scr.geom.Scale, scr.geom.CanvasWidth, scr.geom.CanvasHeight)
	}
	return outsideWidth, outsideHeight
}
