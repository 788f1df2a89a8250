package termui

import (
	"strings"

	"github.com/koushik255/chip8go/pkg/chip8"
)

const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// half blocks indexed by top | bottom<<1
var blocks = [4]string{" ", "▀", "▄", "█"}

// frame renders the display with two pixel rows per text line. Lines end
// in CRLF as output post-processing is off in raw mode.
func frame(display *[chip8.Width * chip8.Height]bool) string {
	var b strings.Builder
	b.Grow(len(cursorHome) + chip8.Height/2*(chip8.Width*3+2))
	b.WriteString(cursorHome)

	for y := 0; y < chip8.Height; y += 2 {
		top := display[y*chip8.Width : (y+1)*chip8.Width]
		bottom := display[(y+1)*chip8.Width : (y+2)*chip8.Width]

		for x := 0; x < chip8.Width; x++ {
			idx := 0
			if top[x] {
				idx |= 1
			}
			if bottom[x] {
				idx |= 2
			}
			b.WriteString(blocks[idx])
		}
		b.WriteString("\r\n")
	}
	return b.String()
}
