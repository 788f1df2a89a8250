// Package sdlui is an SDL2 window frontend.
package sdlui

import (
	"runtime"

	"github.com/koushik255/chip8go/internal/frontend"
	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var keyMap = map[sdl.Keycode]int{
	sdl.K_1: 0x1, sdl.K_2: 0x2, sdl.K_3: 0x3, sdl.K_4: 0xC,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0xD,
	sdl.K_a: 0x7, sdl.K_s: 0x8, sdl.K_d: 0x9, sdl.K_f: 0xE,
	sdl.K_z: 0xA, sdl.K_x: 0x0, sdl.K_c: 0xB, sdl.K_v: 0xF,
}

// Window is an SDL window with an accelerated renderer. It must be used
// from the goroutine that created it.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32

	// keypad state, updated from key events
	keys [chip8.NumKeys]bool
}

// New opens a window for a 64x32 framebuffer scaled by scale.
func New(title string, scale int) (*Window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.Wrap(err, "initializing SDL2")
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(chip8.Width*scale), int32(chip8.Height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "creating window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "creating renderer")
	}

	return &Window{
		window:   window,
		renderer: renderer,
		scale:    int32(scale),
	}, nil
}

// Poll implements frontend.Frontend.
func (w *Window) Poll(keys *[chip8.NumKeys]bool) (frontend.Controls, error) {
	var ctl frontend.Controls

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			ctl.Quit = true

		case *sdl.KeyboardEvent:
			down := ev.Type == sdl.KEYDOWN
			if k, ok := keyMap[ev.Keysym.Sym]; ok {
				w.keys[k] = down
				continue
			}
			if !down || ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				ctl.Quit = true
			case sdl.K_p:
				ctl.Pause = !ctl.Pause
			case sdl.K_n:
				ctl.Step = true
			}
		}
	}

	*keys = w.keys
	return ctl, nil
}

// Render implements frontend.Frontend.
func (w *Window) Render(c *chip8.Chip8) error {
	if !c.Redraw {
		return nil
	}
	c.Redraw = false

	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return errors.Wrap(err, "setting draw color")
	}
	if err := w.renderer.Clear(); err != nil {
		return errors.Wrap(err, "clearing")
	}
	if err := w.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return errors.Wrap(err, "setting draw color")
	}

	for y := int32(0); y < chip8.Height; y++ {
		for x := int32(0); x < chip8.Width; x++ {
			if !c.Display[y*chip8.Width+x] {
				continue
			}
			rect := &sdl.Rect{X: x * w.scale, Y: y * w.scale, W: w.scale, H: w.scale}
			if err := w.renderer.FillRect(rect); err != nil {
				return errors.Wrap(err, "drawing pixel")
			}
		}
	}

	w.renderer.Present()
	return nil
}

// Close implements frontend.Frontend.
func (w *Window) Close() error {
	if err := w.renderer.Destroy(); err != nil {
		return errors.Wrap(err, "destroying renderer")
	}
	if err := w.window.Destroy(); err != nil {
		return errors.Wrap(err, "destroying window")
	}
	sdl.Quit()
	return nil
}
