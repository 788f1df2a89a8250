// Package termui is a frontend that runs inside a terminal. Input is read
// from a terminal in raw mode, the display is drawn with Unicode half
// blocks.
package termui

import (
	"io"
	"os"
	"sync"

	"github.com/koushik255/chip8go/internal/frontend"
	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is a frontend on a pair of terminal files.
type Terminal struct {
	in  *os.File
	out io.Writer

	restore unix.Termios
	input   *input

	bytes chan []byte
	done  chan struct{}
	wg    sync.WaitGroup
}

// New switches in to raw mode and starts reading keystrokes from it.
// holdFrames is the number of frames a key stays pressed after each
// keystroke.
func New(in *os.File, out io.Writer, holdFrames int) (*Terminal, error) {
	t := &Terminal{
		in:    in,
		out:   out,
		input: newInput(holdFrames),
		bytes: make(chan []byte, 64),
		done:  make(chan struct{}),
	}

	if err := termios.Tcgetattr(in.Fd(), &t.restore); err != nil {
		return nil, errors.Wrap(err, "reading terminal attributes")
	}

	raw := t.restore
	termios.Cfmakeraw(&raw)
	// reads return after a 100ms timeout so the reader can be stopped
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := termios.Tcsetattr(in.Fd(), termios.TCSAFLUSH, &raw); err != nil {
		return nil, errors.Wrap(err, "setting raw mode")
	}

	if _, err := io.WriteString(out, clearScreen+hideCursor); err != nil {
		_ = termios.Tcsetattr(in.Fd(), termios.TCSANOW, &t.restore)
		return nil, errors.Wrap(err, "writing to terminal")
	}

	t.wg.Add(1)
	go t.read()
	return t, nil
}

func (t *Terminal) read() {
	defer t.wg.Done()

	for {
		buf := make([]byte, 32)
		n, err := t.in.Read(buf)

		select {
		case <-t.done:
			return
		default:
		}

		// a read timeout is reported as EOF
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}
		if n > 0 {
			t.bytes <- buf[:n]
		}
	}
}

// Poll implements frontend.Frontend.
func (t *Terminal) Poll(keys *[chip8.NumKeys]bool) (frontend.Controls, error) {
drain:
	for {
		select {
		case buf := <-t.bytes:
			t.input.feed(buf)
		default:
			break drain
		}
	}
	return t.input.poll(keys), nil
}

// Render implements frontend.Frontend.
func (t *Terminal) Render(c *chip8.Chip8) error {
	if !c.Redraw {
		return nil
	}
	c.Redraw = false

	if _, err := io.WriteString(t.out, frame(&c.Display)); err != nil {
		return errors.Wrap(err, "writing frame")
	}
	return nil
}

// Close stops the reader and restores the terminal.
func (t *Terminal) Close() error {
	close(t.done)

	// unblock a reader waiting on a full channel
	go func() {
		for range t.bytes {
		}
	}()
	t.wg.Wait()
	close(t.bytes)

	_, _ = io.WriteString(t.out, showCursor+"\r\n")
	if err := termios.Tcsetattr(t.in.Fd(), termios.TCSANOW, &t.restore); err != nil {
		return errors.Wrap(err, "restoring terminal")
	}
	return nil
}
