// Package frontend defines what the runner needs from a display and input
// backend and the keyboard layout shared by all of them.
package frontend

import (
	"github.com/koushik255/chip8go/pkg/chip8"
)

// Controls are the emulator commands read from the input device alongside
// the keypad state.
type Controls struct {
	Quit  bool // close the emulator
	Pause bool // toggle pausing
	Step  bool // execute one instruction while paused
}

// Frontend is a display and keyboard.
type Frontend interface {
	// Poll writes the current keypad state into keys and returns the
	// emulator controls triggered since the last call.
	Poll(keys *[chip8.NumKeys]bool) (Controls, error)

	// Render draws the framebuffer of c.
	Render(c *chip8.Chip8) error

	Close() error
}

// Layout maps the 4x4 block of keys starting at 1 on a QWERTY keyboard to
// the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var Layout = [chip8.NumKeys]rune{
	0x1: '1', 0x2: '2', 0x3: '3', 0xC: '4',
	0x4: 'q', 0x5: 'w', 0x6: 'e', 0xD: 'r',
	0x7: 'a', 0x8: 's', 0x9: 'd', 0xE: 'f',
	0xA: 'z', 0x0: 'x', 0xB: 'c', 0xF: 'v',
}

// Control keys.
const (
	KeyPause = 'p'
	KeyStep  = 'n'
	KeyQuit  = 0x1b // escape
)

// KeyForRune returns the keypad key for a keyboard character.
func KeyForRune(r rune) (int, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for k, layout := range Layout {
		if layout == r {
			return k, true
		}
	}
	return 0, false
}

// ControlForRune applies the control bound to r, if any, to ctl.
func ControlForRune(r rune, ctl *Controls) bool {
	switch r {
	case KeyQuit:
		ctl.Quit = true
	case KeyPause, 'P':
		ctl.Pause = !ctl.Pause
	case KeyStep, 'N':
		ctl.Step = true
	default:
		return false
	}
	return true
}
