package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// execute runs the handler for kind. PC already points past the instruction.
func (c *Chip8) execute(kind Kind, in Instruction) error {
	switch kind {
	case KindCls:
		c.cls()
	case KindRet:
		return c.ret()
	case KindJp:
		c.PC = in.NNN()
	case KindCall:
		return c.call(in.NNN())
	case KindSeVxByte:
		c.skipIf(c.V[in.X()] == in.KK())
	case KindSneVxByte:
		c.skipIf(c.V[in.X()] != in.KK())
	case KindSeVxVy:
		c.skipIf(c.V[in.X()] == c.V[in.Y()])
	case KindLdVxByte:
		c.V[in.X()] = in.KK()
	case KindAddVxByte:
		// no carry flag for the immediate add
		c.V[in.X()] += in.KK()

	case KindLdVxVy:
		c.V[in.X()] = c.V[in.Y()]
	case KindOr:
		c.V[in.X()] |= c.V[in.Y()]
	case KindAnd:
		c.V[in.X()] &= c.V[in.Y()]
	case KindXor:
		c.V[in.X()] ^= c.V[in.Y()]
	case KindAddVxVy:
		c.add(in.X(), in.Y())
	case KindSub:
		c.sub(in.X(), in.Y())
	case KindShr:
		c.shr(in.X())
	case KindSubn:
		c.subn(in.X(), in.Y())
	case KindShl:
		c.shl(in.X())

	case KindSneVxVy:
		c.skipIf(c.V[in.X()] != c.V[in.Y()])
	case KindLdI:
		c.I = in.NNN()
	case KindJpV0:
		c.PC = (in.NNN() + uint16(c.V[0])) & AddressMask
	case KindRnd:
		c.V[in.X()] = byte(c.rng.Intn(256)) & in.KK()
	case KindDrw:
		c.drw(c.V[in.X()], c.V[in.Y()], in.N())

	case KindSkp:
		c.skipIf(c.Keys[c.V[in.X()]&0xF])
	case KindSknp:
		c.skipIf(!c.Keys[c.V[in.X()]&0xF])

	case KindLdVxDT:
		c.V[in.X()] = c.DelayTimer
	case KindLdVxK:
		c.waitKey(in.X())
	case KindLdDTVx:
		c.DelayTimer = c.V[in.X()]
	case KindLdSTVx:
		c.SoundTimer = c.V[in.X()]
	case KindAddIVx:
		// VF is left alone on index overflow
		c.I += uint16(c.V[in.X()])
	case KindLdFVx:
		c.I = GlyphAddress(c.V[in.X()])
	case KindLdBVx:
		c.bcd(c.V[in.X()])
	case KindLdIVx:
		for i := uint16(0); i <= uint16(in.X()); i++ {
			c.write(c.I+i, c.V[i])
		}
	case KindLdVxI:
		for i := uint16(0); i <= uint16(in.X()); i++ {
			c.V[i] = c.read(c.I + i)
		}

	default:
		return c.unknown(in)
	}
	return nil
}

func (c *Chip8) unknown(in Instruction) error {
	if c.opts.Strict {
		return ErrUnknownOpcode
	}
	c.Unknown++
	if c.logger != nil {
		c.logger.Debug("Skipping unknown opcode",
			log.Hex("pc", c.PC-2),
			log.Hex("opcode", uint16(in)))
	}
	return nil
}

func (c *Chip8) skipIf(cond bool) {
	if cond {
		c.PC += 2
	}
}

// 00E0
func (c *Chip8) cls() {
	c.Display = [Width * Height]bool{}
	c.Redraw = true
}

// 00EE: pop the return address.
func (c *Chip8) ret() error {
	if c.SP == 0 {
		return ErrStackUnderflow
	}
	c.SP--
	c.PC = c.Stack[c.SP]
	return nil
}

// 2nnn: push PC, which already points at the instruction after the call.
func (c *Chip8) call(addr uint16) error {
	if int(c.SP) >= StackDepth {
		return ErrStackOverflow
	}
	c.Stack[c.SP] = c.PC
	c.SP++
	c.PC = addr
	return nil
}

// 8xy4: VF is the carry out of bit 7.
func (c *Chip8) add(x, y uint8) {
	sum := uint16(c.V[x]) + uint16(c.V[y])
	c.V[x] = byte(sum)
	c.V[FlagRegister] = byte(sum >> 8)
}

// 8xy5: VF is set when no borrow happens, strictly Vx > Vy.
func (c *Chip8) sub(x, y uint8) {
	flag := byte(0)
	if c.V[x] > c.V[y] {
		flag = 1
	}
	c.V[x] -= c.V[y]
	c.V[FlagRegister] = flag
}

// 8xy7
func (c *Chip8) subn(x, y uint8) {
	flag := byte(0)
	if c.V[y] > c.V[x] {
		flag = 1
	}
	c.V[x] = c.V[y] - c.V[x]
	c.V[FlagRegister] = flag
}

// 8xy6: VF gets the bit shifted out.
func (c *Chip8) shr(x uint8) {
	flag := c.V[x] & 0x01
	c.V[x] >>= 1
	c.V[FlagRegister] = flag
}

// 8xyE
func (c *Chip8) shl(x uint8) {
	flag := c.V[x] >> 7
	c.V[x] <<= 1
	c.V[FlagRegister] = flag
}

// Dxyn: XOR an n-row sprite from memory at I onto the display. The start
// position is reduced into the screen and every pixel wraps at the edges.
// VF ends up 1 if any set pixel was cleared.
func (c *Chip8) drw(vx, vy byte, height uint8) {
	x := uint16(vx) % Width
	y := uint16(vy) % Height

	c.V[FlagRegister] = 0

	for row := uint16(0); row < uint16(height); row++ {
		sprite := c.read(c.I + row)

		for col := uint16(0); col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			pos := ((y+row)%Height)*Width + (x+col)%Width
			if c.Display[pos] {
				c.V[FlagRegister] = 1
			}
			c.Display[pos] = !c.Display[pos]
		}
	}

	c.Redraw = true
}

// Fx0A: scan the keypad in order; with nothing pressed the instruction is
// fetched again on the next cycle.
func (c *Chip8) waitKey(x uint8) {
	for k, down := range c.Keys {
		if down {
			c.V[x] = byte(k)
			return
		}
	}
	c.PC -= 2
}

// Fx33: hundreds, tens and units of v at I, I+1 and I+2.
func (c *Chip8) bcd(v byte) {
	c.write(c.I, v/100)
	c.write(c.I+1, (v/10)%10)
	c.write(c.I+2, v%10)
}
