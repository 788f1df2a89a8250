// Package runner drives a machine at a fixed frame rate and connects it to
// a frontend.
package runner

import (
	"context"
	"time"

	"github.com/koushik255/chip8go/internal/frontend"
	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/koushik255/chip8go/pkg/debugger"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// Runner executes CyclesPerFrame instructions per frame, FrameRate frames
// per second.
type Runner struct {
	Machine  *chip8.Chip8
	Frontend frontend.Frontend
	Logger   *log.Logger

	// Debugger is optional and attached to Machine by Run. Breaks it
	// reports pause the runner.
	Debugger *debugger.Debugger

	CyclesPerFrame int
	FrameRate      int

	paused bool
	frames uint64
}

// Paused reports whether execution is paused.
func (r *Runner) Paused() bool {
	return r.paused
}

// Frames returns the number of frames run so far.
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Run loops until the frontend asks to quit, the context is cancelled or
// the machine faults.
func (r *Runner) Run(ctx context.Context) error {
	if r.CyclesPerFrame < 1 || r.FrameRate < 1 {
		return errors.Errorf("invalid speed: %d cycles at %d fps", r.CyclesPerFrame, r.FrameRate)
	}

	if r.Debugger != nil {
		r.Machine.Debugger = r.Debugger
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.FrameRate))
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := r.frame()
		if err != nil || quit {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// frame polls input, executes one frame worth of instructions and renders.
func (r *Runner) frame() (bool, error) {
	ctl, err := r.Frontend.Poll(&r.Machine.Keys)
	if err != nil {
		return false, errors.Wrap(err, "polling input")
	}
	if ctl.Quit {
		r.Logger.Debug("Quit requested", log.Int("frames", int(r.frames)))
		return true, nil
	}

	if ctl.Pause {
		r.paused = !r.paused
		if r.paused {
			r.Logger.Info("Paused")
			r.dump()
		} else {
			r.Logger.Info("Resumed")
		}
	}

	switch {
	case !r.paused:
		for i := 0; i < r.CyclesPerFrame && !r.paused; i++ {
			if err := r.step(); err != nil {
				return false, err
			}
		}

	case ctl.Step:
		if err := r.step(); err != nil {
			return false, err
		}
		if r.paused {
			r.dump()
		}
	}

	if err := r.Frontend.Render(r.Machine); err != nil {
		return false, errors.Wrap(err, "rendering")
	}
	r.frames++
	return false, nil
}

func (r *Runner) step() error {
	err := r.Machine.Step()
	if err == nil {
		return nil
	}

	var brk *debugger.BreakError
	if errors.As(err, &brk) {
		r.paused = true
		r.Logger.Info("Stopped", log.String("reason", brk.Error()))
		r.dump()
		return nil
	}
	return err
}

func (r *Runner) dump() {
	r.Logger.Info("Machine state\n" + debugger.Dump(r.Machine))
}
