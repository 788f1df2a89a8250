package termui

import (
	"strings"
	"testing"

	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestInputHoldsKeys(t *testing.T) {
	in := newInput(2)
	var keys [chip8.NumKeys]bool

	in.feed([]byte("w"))
	in.poll(&keys)
	assert.True(t, keys[0x5])
	in.poll(&keys)
	assert.True(t, keys[0x5])
	in.poll(&keys)
	assert.False(t, keys[0x5])

	// repeated keystrokes refresh the hold time
	in.feed([]byte("x"))
	in.poll(&keys)
	in.feed([]byte("x"))
	in.poll(&keys)
	in.poll(&keys)
	assert.True(t, keys[0x0])
	in.poll(&keys)
	assert.False(t, keys[0x0])
}

func TestInputControls(t *testing.T) {
	in := newInput(1)
	var keys [chip8.NumKeys]bool

	in.feed([]byte("pn"))
	ctl := in.poll(&keys)
	assert.True(t, ctl.Pause)
	assert.True(t, ctl.Step)
	assert.False(t, ctl.Quit)

	// controls are reported once
	ctl = in.poll(&keys)
	assert.False(t, ctl.Pause)
	assert.False(t, ctl.Step)

	in.feed([]byte{0x1b})
	assert.True(t, in.poll(&keys).Quit)

	in.feed([]byte{ctrlC})
	assert.True(t, in.poll(&keys).Quit)
}

func TestInputSkipsEscapeSequences(t *testing.T) {
	in := newInput(1)
	var keys [chip8.NumKeys]bool

	// cursor up
	in.feed([]byte{0x1b, '[', 'A'})
	ctl := in.poll(&keys)
	assert.False(t, ctl.Quit)
	assert.Equal(t, [chip8.NumKeys]bool{}, keys)
}

func TestFrame(t *testing.T) {
	var display [chip8.Width * chip8.Height]bool
	// first line: top, bottom, both, none
	display[0] = true
	display[chip8.Width+1] = true
	display[2] = true
	display[chip8.Width+2] = true
	// last line: bottom
	display[31*chip8.Width] = true

	out := frame(&display)
	assert.True(t, strings.HasPrefix(out, cursorHome))

	lines := strings.Split(strings.TrimPrefix(out, cursorHome), "\r\n")
	assert.Len(t, lines, chip8.Height/2+1)
	assert.Equal(t, "", lines[chip8.Height/2])

	first := []rune(lines[0])
	assert.Len(t, first, chip8.Width)
	assert.Equal(t, "▀▄█ ", string(first[:4]))

	last := []rune(lines[chip8.Height/2-1])
	assert.Equal(t, '▄', last[0])
}
