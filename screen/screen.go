// This file is part of Scanterm.
//
// Scanterm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Scanterm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Scanterm.  If not, see <https://www.gnu.org/licenses/>.

// Package screen displays the generated signal in an SDL window, standing in
// for the monitor on the other end of the wire. The screen is a raster.Port:
// it accumulates the values emitted for each frame and paints them into a
// streaming texture at the frame boundary.
//
// SDL requires that window management happens on one OS thread. NewScreen()
// latches the calling goroutine to its thread; create the screen and run the
// engine from the same goroutine.
package screen

import (
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/softraster/scanterm/curated"
	"github.com/softraster/scanterm/hardware/raster/specification"
	"github.com/softraster/scanterm/logger"
)

// Mode decides how an emitted value becomes pixels.
type Mode int

// In ModeText each value is a glyph slice, eight pixels packed
// least-significant-bit leftmost. In ModeBitmap each value is a single pixel
// intensity.
const (
	ModeText Mode = iota
	ModeBitmap
)

// phosphor colours
var (
	colourLit   = [3]uint8{0x33, 0xff, 0x33}
	colourUnlit = [3]uint8{0x05, 0x11, 0x05}
)

// Screen is the SDL output backend. It implements raster.Port and
// hardware.FrameTrigger.
type Screen struct {
	spec  specification.Spec
	mode  Mode
	scale int

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// signal values accumulated over the current frame. stride per scanline
	// is Cols+1: one value per cell plus the blanking value
	signal []uint8
	cursor int

	// texture extent in pixels
	width  int
	height int

	quit chan struct{}
}

// NewScreen is the preferred method of initialisation of the Screen type.
func NewScreen(spec specification.Spec, mode Mode, scale int) (*Screen, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &Screen{
		spec:   spec,
		mode:   mode,
		scale:  scale,
		signal: make([]uint8, (spec.Cols+1)*spec.ActiveLines),
		quit:   make(chan struct{}),
	}

	scr.width = spec.Cols
	if mode == ModeText {
		scr.width = spec.Cols * 8
	}
	scr.height = spec.ActiveLines

	// SDL windows must be created and serviced from a single OS thread
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("screen: %v", err)
	}

	window, err := sdl.CreateWindow("scanterm", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(scr.width*scale), int32(scr.height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("screen: %v", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, curated.Errorf("screen: %v", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, int32(scr.width), int32(scr.height))
	if err != nil {
		return nil, curated.Errorf("screen: %v", err)
	}

	scr.window = window
	scr.renderer = renderer
	scr.texture = texture

	logger.Logf("screen", "%dx%d window at scale %d", scr.width, scr.height, scale)

	return scr, nil
}

// Quit yields when the window has been asked to close.
func (scr *Screen) Quit() <-chan struct{} {
	return scr.quit
}

// Write implements the raster.Port interface.
func (scr *Screen) Write(v uint8) {
	if scr.cursor < len(scr.signal) {
		scr.signal[scr.cursor] = v
		scr.cursor++
	}
}

// NewFrame implements the hardware.FrameTrigger interface. The accumulated
// frame is painted and presented.
func (scr *Screen) NewFrame(_ int) error {
	scr.service()

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("screen: %v", err)
	}

	stride := scr.spec.Cols + 1
	for y := 0; y < scr.height; y++ {
		line := scr.signal[y*stride : y*stride+scr.spec.Cols]
		if scr.mode == ModeText {
			for col, v := range line {
				for bit := 0; bit < 8; bit++ {
					c := colourUnlit
					if v&(1<<bit) != 0 {
						c = colourLit
					}
					setPixel(pixels, pitch, col*8+bit, y, c[0], c[1], c[2])
				}
			}
		} else {
			for col, v := range line {
				setPixel(pixels, pitch, col, y, v, v, v)
			}
		}
	}

	scr.texture.Unlock()

	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("screen: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("screen: %v", err)
	}
	scr.renderer.Present()

	scr.cursor = 0

	return nil
}

// setPixel writes one ARGB8888 pixel. Byte order within the pixel is
// B, G, R, A.
func setPixel(pixels []byte, pitch int, x, y int, r, g, b uint8) {
	offset := y*pitch + x*4
	pixels[offset] = b
	pixels[offset+1] = g
	pixels[offset+2] = r
	pixels[offset+3] = 0xff
}

// service the SDL event loop. the only event of interest is the window
// being closed
func (scr *Screen) service() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			select {
			case <-scr.quit:
			default:
				close(scr.quit)
			}
		}
	}
}

// Destroy releases the SDL resources. The screen is unusable afterwards.
func (scr *Screen) Destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
