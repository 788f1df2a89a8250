package termui

import (
	"github.com/koushik255/chip8go/internal/frontend"
	"github.com/koushik255/chip8go/pkg/chip8"
)

const ctrlC = 0x03

// input turns keystrokes into keypad state. Terminals report key presses
// but no releases, so a key counts as held for a number of frames after
// each keystroke. Auto repeat of a held key keeps refreshing it.
type input struct {
	hold   int
	frames [chip8.NumKeys]int
	ctl    frontend.Controls
}

func newInput(holdFrames int) *input {
	return &input{hold: holdFrames}
}

// feed processes one chunk of bytes read from the terminal.
func (in *input) feed(buf []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		switch {
		case b == ctrlC:
			in.ctl.Quit = true
		case b == frontend.KeyQuit && i+1 < len(buf):
			// start of an escape sequence such as a cursor key
			return
		default:
			if k, ok := frontend.KeyForRune(rune(b)); ok {
				in.frames[k] = in.hold
				continue
			}
			frontend.ControlForRune(rune(b), &in.ctl)
		}
	}
}

// poll writes the held keys, advances one frame and returns the controls
// collected since the last poll.
func (in *input) poll(keys *[chip8.NumKeys]bool) frontend.Controls {
	for k, n := range in.frames {
		keys[k] = n > 0
		if n > 0 {
			in.frames[k] = n - 1
		}
	}

	ctl := in.ctl
	in.ctl = frontend.Controls{}
	return ctl
}
