package chip8_test

import (
	"testing"

	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newMachine returns a deterministic machine with the program words loaded
// at the entry address.
func newMachine(t *testing.T, words ...uint16) *chip8.Chip8 {
	t.Helper()

	c := chip8.New(log.NewTestLogger(t), chip8.Options{Seed: 1})
	assert.NoError(t, c.LoadROM(program(words...)))
	return c
}

func program(words ...uint16) []byte {
	rom := make([]byte, 0, 2*len(words))
	for _, w := range words {
		rom = append(rom, byte(w>>8), byte(w))
	}
	return rom
}

// step runs n cycles and fails the test on any error.
func step(t *testing.T, c *chip8.Chip8, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		assert.NoError(t, c.Step())
	}
}
