package runner

import (
	"context"
	"testing"

	"github.com/koushik255/chip8go/internal/frontend"
	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/koushik255/chip8go/pkg/debugger"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// scripted replays one Controls value per poll and quits when the script
// runs out.
type scripted struct {
	script  []frontend.Controls
	keys    [chip8.NumKeys]bool
	polls   int
	renders int
	closed  bool
	pollErr error
}

func (s *scripted) Poll(keys *[chip8.NumKeys]bool) (frontend.Controls, error) {
	if s.pollErr != nil {
		return frontend.Controls{}, s.pollErr
	}
	*keys = s.keys

	if s.polls >= len(s.script) {
		return frontend.Controls{Quit: true}, nil
	}
	ctl := s.script[s.polls]
	s.polls++
	return ctl, nil
}

func (s *scripted) Render(c *chip8.Chip8) error {
	c.Redraw = false
	s.renders++
	return nil
}

func (s *scripted) Close() error {
	s.closed = true
	return nil
}

// newRunner loads words or, without any, a loop incrementing V0 every
// two cycles.
func newRunner(t *testing.T, fe frontend.Frontend, words ...uint16) *Runner {
	t.Helper()

	logger := log.NewTestLogger(t)
	c := chip8.New(logger, chip8.Options{Seed: 1})
	if len(words) == 0 {
		words = []uint16{0x7001, 0x1200}
	}
	rom := make([]byte, 0, 2*len(words))
	for _, w := range words {
		rom = append(rom, byte(w>>8), byte(w))
	}
	assert.NoError(t, c.LoadROM(rom))

	return &Runner{
		Machine:        c,
		Frontend:       fe,
		Logger:         logger,
		CyclesPerFrame: 4,
		FrameRate:      1000,
	}
}

func TestRunQuits(t *testing.T) {
	fe := &scripted{script: make([]frontend.Controls, 3)}
	r := newRunner(t, fe)

	assert.NoError(t, r.Run(context.Background()))
	assert.Equal(t, uint64(3), r.Frames())
	assert.Equal(t, 3, fe.renders)
	assert.Equal(t, uint64(12), r.Machine.Cycles)
	assert.Equal(t, byte(6), r.Machine.V[0])
}

func TestRunPassesKeys(t *testing.T) {
	fe := &scripted{script: make([]frontend.Controls, 1)}
	fe.keys[0xA] = true
	r := newRunner(t, fe)

	assert.NoError(t, r.Run(context.Background()))
	assert.True(t, r.Machine.Keys[0xA])
}

func TestRunPauseAndStep(t *testing.T) {
	fe := &scripted{script: []frontend.Controls{
		{},
		{Pause: true},
		{},
		{Step: true},
		{Step: true},
		{Pause: true},
	}}
	r := newRunner(t, fe)

	assert.NoError(t, r.Run(context.Background()))
	// one running frame, two single steps, one running frame
	assert.Equal(t, uint64(4+2+4), r.Machine.Cycles)
	assert.Equal(t, 6, fe.renders)
	assert.False(t, r.Paused())
}

func TestRunBreakpointPauses(t *testing.T) {
	fe := &scripted{script: []frontend.Controls{{}, {}, {Step: true}, {Pause: true}}}
	r := newRunner(t, fe, 0x7001, 0x7101, 0x1200)

	dbg := debugger.New(r.Logger)
	dbg.AddBreakpoint(0x202)
	r.Debugger = dbg

	assert.NoError(t, r.Run(context.Background()))

	// frame 1: ADD V0 then stop at $202; frame 2 paused; the step runs
	// ADD V1; frame 4 runs JP, ADD V0 and stops again at $202
	assert.Equal(t, byte(2), r.Machine.V[0])
	assert.Equal(t, byte(1), r.Machine.V[1])
	assert.Equal(t, uint16(0x202), r.Machine.PC)
	assert.True(t, r.Paused())
}

func TestRunMachineFault(t *testing.T) {
	fe := &scripted{script: make([]frontend.Controls, 5)}
	r := newRunner(t, fe, 0x00EE)

	err := r.Run(context.Background())
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.Equal(t, 0, fe.renders)
}

func TestRunFrontendError(t *testing.T) {
	fe := &scripted{pollErr: errors.New("device gone")}
	r := newRunner(t, fe)

	err := r.Run(context.Background())
	assert.ErrorContains(t, err, "polling input: device gone")
}

func TestRunContextCancel(t *testing.T) {
	fe := &scripted{script: make([]frontend.Controls, 1000)}
	r := newRunner(t, fe)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), r.Frames())
	assert.Equal(t, 0, fe.polls)
}

func TestRunInvalidSpeed(t *testing.T) {
	r := newRunner(t, &scripted{})
	r.FrameRate = 0
	assert.Error(t, r.Run(context.Background()))
}
