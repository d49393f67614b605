package cpu

import "fmt"

// An AddressingMode tells the addressing unit where to find the
// operand a given instruction needs. There are thirteen named modes.
// Implied and Accumulator touch no memory: Implied resolves nothing,
// and Accumulator takes its operand from A.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y

	Relative
)

// resolve fills in c.AbsAddress and, where the mode reads an operand,
// c.M, advancing PC past however many operand bytes the mode consumes.
func (c *Cpu) resolve(mode AddressingMode) error {
	switch mode {

	case Implied:
		return nil

	case Accumulator:
		c.M = c.A
		return nil

	case Immediate:
		c.AbsAddress = c.PC
		c.PC++

	case ZeroPage:
		c.AbsAddress = uint16(c.Read(c.PC))
		c.PC++

	case ZeroPageX:
		c.AbsAddress = uint16(c.Read(c.PC) + c.X)
		c.PC++

	case ZeroPageY:
		c.AbsAddress = uint16(c.Read(c.PC) + c.Y)
		c.PC++

	case Absolute:
		c.AbsAddress = c.ReadU16(c.PC)
		c.PC += 2

	case AbsoluteX:
		c.AbsAddress = c.ReadU16(c.PC) + uint16(c.X)
		c.PC += 2

	case AbsoluteY:
		c.AbsAddress = c.ReadU16(c.PC) + uint16(c.Y)
		c.PC += 2

	case IndexedIndirect:
		ptr := c.Read(c.PC)
		c.PC++
		lo := c.Read(uint16(ptr+c.X) & 0x00ff)
		hi := c.Read(uint16(ptr+1+c.X) & 0x00ff)
		c.AbsAddress = uint16(hi)<<8 | uint16(lo)

	case IndirectIndexed:
		ptr := c.Read(c.PC)
		c.PC++
		lo := c.Read(uint16(ptr) & 0x00ff)
		hi := c.Read(uint16(ptr+1) & 0x00ff)
		c.AbsAddress = uint16(hi)<<8 | uint16(lo)
		c.AbsAddress += uint16(c.Y)

	case Indirect:
		// JMP only. Reads a pointer word, then the effective word
		// stored at that pointer, without modeling the hardware's
		// page-boundary wraparound bug.
		ptr := c.ReadU16(c.PC)
		c.PC += 2
		lo := c.Read(ptr)
		hi := c.Read(ptr + 1)
		c.AbsAddress = uint16(hi)<<8 | uint16(lo)
		return nil

	case Relative:
		// The offset is measured from the address of the offset byte
		// itself, not from the address of the following instruction;
		// the operand byte is still consumed (PC advances past it)
		// so normal fetch/decode resumes correctly on a non-taken
		// branch.
		offset := int8(c.Read(c.PC))
		c.AbsAddress = uint16(int32(c.PC) + int32(offset))
		c.PC++
		return nil

	default:
		return fmt.Errorf("%w: %d", ErrAddressingNotSupported, mode)
	}

	c.M = c.Read(c.AbsAddress)
	return nil
}

// writeOperand writes v back to wherever the current instruction's
// operand came from: the Accumulator if the instruction ran in
// Accumulator mode, or AbsAddress for every memory-backed mode.
func (c *Cpu) writeOperand(v byte) {
	if c.mode == Accumulator {
		c.A = v
		return
	}
	c.Write(c.AbsAddress, v)
}

// branch takes the pending relative jump (AbsAddress, computed by
// resolve in Relative mode) if taken is true. PC wraps modulo 2^16;
// no page-cross cycle penalty is tracked since this core does not
// model cycle counts.
func (c *Cpu) branch(taken bool) {
	if taken {
		c.PC = c.AbsAddress
	}
}
