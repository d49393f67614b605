package cpu

// Instruction bodies. Each receives its operand (and, for writes, its
// destination) already resolved into c.M / c.AbsAddress by resolve;
// none of them touch PC except the control-flow instructions
// (branches, JMP, JSR, RTS, BRK, RTI).
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// ADC - Add with Carry
func (c *Cpu) ADC() error {
	var carry uint16
	if c.GetFlag(Carry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(c.M) + carry
	result := byte(sum)
	c.SetFlag(Carry, sum > 0xff)
	c.SetFlag(Overflow, (c.A^result)&(c.M^result)&0x80 != 0)
	c.A = result
	c.applyZN(c.A)
	return nil
}

// AND - Logical AND
func (c *Cpu) AND() error {
	c.A &= c.M
	c.applyZN(c.A)
	return nil
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL() error {
	c.SetFlag(Carry, c.M&0x80 != 0)
	result := c.M << 1
	c.applyZN(result)
	c.writeOperand(result)
	return nil
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC() error { c.branch(!c.GetFlag(Carry)); return nil }

// BCS - Branch if Carry Set
func (c *Cpu) BCS() error { c.branch(c.GetFlag(Carry)); return nil }

// BEQ - Branch if Equal
func (c *Cpu) BEQ() error { c.branch(c.GetFlag(Zero)); return nil }

// BIT - Bit Test
func (c *Cpu) BIT() error {
	c.SetFlag(Zero, c.A&c.M == 0)
	c.SetFlag(Overflow, c.M&0x40 != 0)
	c.SetFlag(Negative, c.M&0x80 != 0)
	return nil
}

// BMI - Branch if Minus
func (c *Cpu) BMI() error { c.branch(c.GetFlag(Negative)); return nil }

// BNE - Branch if Not Equal
func (c *Cpu) BNE() error { c.branch(!c.GetFlag(Zero)); return nil }

// BPL - Branch if Positive
func (c *Cpu) BPL() error { c.branch(!c.GetFlag(Negative)); return nil }

// BRK - Force Interrupt
//
// BRK is a two-byte instruction: the byte after the opcode is a
// signature ignored by hardware. PC is already past the opcode byte by
// the time Instruction runs, so the extra increment here makes the
// pushed return address PC+2 relative to the opcode, matching hardware
// rather than the one-byte-short convention some emulators use.
func (c *Cpu) BRK() error {
	c.PC++
	c.pushU16(c.PC)
	c.push(c.statusForPush(true))
	c.SetFlag(DisableInterrupt, true)
	c.PC = c.ReadU16(IRQVector)
	return nil
}

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC() error { c.branch(!c.GetFlag(Overflow)); return nil }

// BVS - Branch if Overflow Set
func (c *Cpu) BVS() error { c.branch(c.GetFlag(Overflow)); return nil }

// CLC - Clear Carry Flag
func (c *Cpu) CLC() error { c.SetFlag(Carry, false); return nil }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD() error { c.SetFlag(Decimal, false); return nil }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI() error { c.SetFlag(DisableInterrupt, false); return nil }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV() error { c.SetFlag(Overflow, false); return nil }

// CMP - Compare (Accumulator). Leaves A unchanged.
func (c *Cpu) CMP() error {
	c.SetFlag(Carry, c.A >= c.M)
	c.applyZN(c.A - c.M)
	return nil
}

// CPX - Compare X Register. Leaves X unchanged.
func (c *Cpu) CPX() error {
	c.SetFlag(Carry, c.X >= c.M)
	c.applyZN(c.X - c.M)
	return nil
}

// CPY - Compare Y Register. Leaves Y unchanged.
func (c *Cpu) CPY() error {
	c.SetFlag(Carry, c.Y >= c.M)
	c.applyZN(c.Y - c.M)
	return nil
}

// DEC - Decrement Memory
func (c *Cpu) DEC() error {
	v := c.M - 1
	c.applyZN(v)
	c.writeOperand(v)
	return nil
}

// DEX - Decrement X Register
func (c *Cpu) DEX() error { c.X--; c.applyZN(c.X); return nil }

// DEY - Decrement Y Register
func (c *Cpu) DEY() error { c.Y--; c.applyZN(c.Y); return nil }

// EOR - Exclusive OR
func (c *Cpu) EOR() error {
	c.A ^= c.M
	c.applyZN(c.A)
	return nil
}

// INC - Increment Memory
func (c *Cpu) INC() error {
	v := c.M + 1
	c.applyZN(v)
	c.writeOperand(v)
	return nil
}

// INX - Increment X Register
func (c *Cpu) INX() error { c.X++; c.applyZN(c.X); return nil }

// INY - Increment Y Register
func (c *Cpu) INY() error { c.Y++; c.applyZN(c.Y); return nil }

// JMP - Jump. resolve has already computed the effective address for
// both Absolute and Indirect modes, so this is a plain PC assignment.
func (c *Cpu) JMP() error {
	c.PC = c.AbsAddress
	return nil
}

// JSR - Jump to Subroutine. Pushes the address of the last byte of the
// JSR instruction (PC-1, since resolve has already advanced PC past
// the two operand bytes), as real hardware does.
func (c *Cpu) JSR() error {
	c.pushU16(c.PC - 1)
	c.PC = c.AbsAddress
	return nil
}

// LDA - Load Accumulator
func (c *Cpu) LDA() error { c.A = c.M; c.applyZN(c.A); return nil }

// LDX - Load X Register
func (c *Cpu) LDX() error { c.X = c.M; c.applyZN(c.X); return nil }

// LDY - Load Y Register
func (c *Cpu) LDY() error { c.Y = c.M; c.applyZN(c.Y); return nil }

// LSR - Logical Shift Right
func (c *Cpu) LSR() error {
	c.SetFlag(Carry, c.M&0x01 != 0)
	result := c.M >> 1
	c.applyZN(result)
	c.writeOperand(result)
	return nil
}

// NOP - No Operation
func (c *Cpu) NOP() error { return nil }

// ORA - Logical Inclusive OR
func (c *Cpu) ORA() error {
	c.A |= c.M
	c.applyZN(c.A)
	return nil
}

// PHA - Push Accumulator
func (c *Cpu) PHA() error { c.push(c.A); return nil }

// PHP - Push Processor Status. The pushed byte always has Break set,
// regardless of the live flag.
func (c *Cpu) PHP() error { c.push(c.statusForPush(true)); return nil }

// PLA - Pull Accumulator
func (c *Cpu) PLA() error { c.A = c.pop(); c.applyZN(c.A); return nil }

// PLP - Pull Processor Status. Unused is always forced back on; the
// pulled Break bit has no effect on CPU behavior and is kept only for
// bit-for-bit state fidelity.
func (c *Cpu) PLP() error {
	c.Status = c.pop()
	c.SetFlag(Unused, true)
	return nil
}

// ROL - Rotate Left
func (c *Cpu) ROL() error {
	oldCarry := c.GetFlag(Carry)
	c.SetFlag(Carry, c.M&0x80 != 0)
	result := c.M << 1
	if oldCarry {
		result |= 0x01
	}
	c.applyZN(result)
	c.writeOperand(result)
	return nil
}

// ROR - Rotate Right
func (c *Cpu) ROR() error {
	oldCarry := c.GetFlag(Carry)
	c.SetFlag(Carry, c.M&0x01 != 0)
	result := c.M >> 1
	if oldCarry {
		result |= 0x80
	}
	c.applyZN(result)
	c.writeOperand(result)
	return nil
}

// RTI - Return from Interrupt
func (c *Cpu) RTI() error {
	c.Status = c.pop()
	c.SetFlag(Unused, true)
	c.PC = c.popU16()
	return nil
}

// RTS - Return from Subroutine
func (c *Cpu) RTS() error {
	c.PC = c.popU16() + 1
	return nil
}

// SBC - Subtract with Carry, implemented as ADC of the ones' complement
// of the operand so the carry/overflow derivation is identical.
func (c *Cpu) SBC() error {
	value := c.M ^ 0xff
	var carry uint16
	if c.GetFlag(Carry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	result := byte(sum)
	c.SetFlag(Carry, sum > 0xff)
	c.SetFlag(Overflow, (c.A^result)&(value^result)&0x80 != 0)
	c.A = result
	c.applyZN(c.A)
	return nil
}

// SEC - Set Carry Flag
func (c *Cpu) SEC() error { c.SetFlag(Carry, true); return nil }

// SED - Set Decimal Flag
func (c *Cpu) SED() error { c.SetFlag(Decimal, true); return nil }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI() error { c.SetFlag(DisableInterrupt, true); return nil }

// STA - Store Accumulator
func (c *Cpu) STA() error { c.Write(c.AbsAddress, c.A); return nil }

// STX - Store X Register
func (c *Cpu) STX() error { c.Write(c.AbsAddress, c.X); return nil }

// STY - Store Y Register
func (c *Cpu) STY() error { c.Write(c.AbsAddress, c.Y); return nil }

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX() error { c.X = c.A; c.applyZN(c.X); return nil }

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY() error { c.Y = c.A; c.applyZN(c.Y); return nil }

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX() error { c.X = c.SP; c.applyZN(c.X); return nil }

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA() error { c.A = c.X; c.applyZN(c.A); return nil }

// TXS - Transfer X to Stack Pointer. Does not affect flags.
func (c *Cpu) TXS() error { c.SP = c.X; return nil }

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA() error { c.A = c.Y; c.applyZN(c.A); return nil }
