package chip8

import (
	"os"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// LoadROM copies rom into memory starting at EntryAddress. A ROM larger than
// MaxROMSize is rejected and memory is left untouched.
func (c *Chip8) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return errors.Wrapf(ErrROMTooLarge, "%d bytes (max: %d)", len(rom), MaxROMSize)
	}

	copy(c.Memory[EntryAddress:], rom)

	if c.logger != nil {
		c.logger.Debug("ROM loaded",
			log.Int("size", len(rom)),
			log.Hex("end", EntryAddress+len(rom)))
	}
	return nil
}

// LoadFile reads a raw ROM image from disk and loads it with LoadROM.
func (c *Chip8) LoadFile(path string) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading rom")
	}
	if err := c.LoadROM(rom); err != nil {
		return errors.WithMessage(err, path)
	}
	return nil
}
