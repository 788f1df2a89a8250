package chip8

import "fmt"

// Instruction is a raw 16-bit CHIP-8 instruction word. The methods extract
// the canonical operand fields; every 16-bit value is a valid Instruction.
//
//	Group  X     Y     N
//	[ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
//	              KK (low byte)
//	        NNN (low 12 bits)
type Instruction uint16

// Fetch reads the big-endian instruction word at addr. Both bytes are read
// modulo the memory size.
func Fetch(mem *[MemorySize]byte, addr uint16) Instruction {
	hi := mem[addr&AddressMask]
	lo := mem[(addr+1)&AddressMask]
	return Instruction(uint16(hi)<<8 | uint16(lo))
}

// Group returns the high nibble, the opcode group.
func (in Instruction) Group() uint8 {
	return uint8(in >> 12)
}

// X returns the register index in bits 8-11.
func (in Instruction) X() uint8 {
	return uint8(in>>8) & 0xF
}

// Y returns the register index in bits 4-7.
func (in Instruction) Y() uint8 {
	return uint8(in>>4) & 0xF
}

// N returns the low nibble.
func (in Instruction) N() uint8 {
	return uint8(in) & 0xF
}

// KK returns the low byte.
func (in Instruction) KK() byte {
	return byte(in)
}

// NNN returns the low 12 bits, an address.
func (in Instruction) NNN() uint16 {
	return uint16(in) & 0x0FFF
}

func (in Instruction) String() string {
	return fmt.Sprintf("%04X", uint16(in))
}
