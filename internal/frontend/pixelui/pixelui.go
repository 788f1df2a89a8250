// Package pixelui is an OpenGL window frontend built on faiface/pixel.
package pixelui

import (
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/koushik255/chip8go/internal/frontend"
	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// keyMap maps keyboard keys to the CHIP-8 keypad.
var keyMap = map[pixelgl.Button]int{
	pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5, pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
	pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8, pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
	pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0, pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,
}

// Run runs f on the main thread as pixelgl requires. New and every method
// of Window must be called from within f.
func Run(f func()) {
	pixelgl.Run(f)
}

// Window draws the framebuffer into a window scaled by an integer factor.
type Window struct {
	win   *pixelgl.Window
	imd   *imdraw.IMDraw
	scale float64
}

// New opens a window for a 64x32 framebuffer scaled by scale.
func New(title string, scale int) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(chip8.Width*scale), float64(chip8.Height*scale)),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating window")
	}

	return &Window{
		win:   win,
		imd:   imdraw.New(nil),
		scale: float64(scale),
	}, nil
}

// Poll implements frontend.Frontend.
func (w *Window) Poll(keys *[chip8.NumKeys]bool) (frontend.Controls, error) {
	var ctl frontend.Controls

	if w.win.Closed() || w.win.JustPressed(pixelgl.KeyEscape) {
		ctl.Quit = true
	}
	ctl.Pause = w.win.JustPressed(pixelgl.KeyP)
	ctl.Step = w.win.JustPressed(pixelgl.KeyN)

	for key, chipKey := range keyMap {
		keys[chipKey] = w.win.Pressed(key)
	}
	return ctl, nil
}

// Render implements frontend.Frontend. Updating the window also collects
// the input read by the next Poll. Pixel's y axis points up, so rows are
// flipped.
func (w *Window) Render(c *chip8.Chip8) error {
	c.Redraw = false

	w.win.Clear(colornames.Black)
	w.imd.Clear()
	w.imd.Color = colornames.White

	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if !c.Display[y*chip8.Width+x] {
				continue
			}
			row := float64(chip8.Height - 1 - y)
			w.imd.Push(
				pixel.V(float64(x)*w.scale, row*w.scale),
				pixel.V(float64(x+1)*w.scale, (row+1)*w.scale),
			)
			w.imd.Rectangle(0)
		}
	}

	w.imd.Draw(w.win)
	w.win.Update()
	return nil
}

// Close implements frontend.Frontend.
func (w *Window) Close() error {
	w.win.Destroy()
	return nil
}
