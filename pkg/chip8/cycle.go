package chip8

import (
	"github.com/pkg/errors"
)

// Step executes one cycle:
//  1. Fetch the instruction at PC
//  2. Advance PC by 2
//  3. Look the instruction up and execute it
//  4. Count both timers down towards zero
//
// An attached debugger may stop the cycle before the fetch, in which case its
// error is returned unchanged. A faulting instruction returns an *ExecError
// and leaves the machine as it was before the fetch, timers included.
func (c *Chip8) Step() error {
	if c.Debugger != nil {
		if err := c.Debugger.Step(c); err != nil {
			return err
		}
	}

	pc, prev := c.PC, c.Opcode
	in := Fetch(&c.Memory, pc)
	c.Opcode = in
	c.PC += 2

	kind := Lookup(in)
	if err := c.execute(kind, in); err != nil {
		// the fault leaves the machine as it was before the fetch
		c.PC, c.Opcode = pc, prev
		return &ExecError{
			PC:     pc,
			Opcode: in,
			Kind:   kind,
			Err:    err,
		}
	}

	c.Cycles++

	if c.DelayTimer > 0 {
		c.DelayTimer--
	}
	if c.SoundTimer > 0 {
		c.SoundTimer--
	}

	return nil
}

// Run executes up to n cycles, stopping at the first error.
func (c *Chip8) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			return errors.WithMessagef(err, "cycle %d of %d", i+1, n)
		}
	}
	return nil
}
