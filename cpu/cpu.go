// Package cpu implements the MOS Technology 6502 microprocessor.
package cpu

import (
	"fmt"

	"sixtwo/mem"
)

// Interrupt and reset vectors, and the conventional load address used
// by LoadProgram/QuickStart.
const (
	NMIVector   uint16 = 0xfffa
	ResetVector uint16 = 0xfffc
	IRQVector   uint16 = 0xfffe

	ProgramLoadAddr uint16 = 0x0600
)

// The Cpu has no memory of its own beyond its registers. It interfaces
// with a Bus that provides the full 64 kB address space.
type Cpu struct {
	Bus *mem.Bus

	A  byte // Accumulator
	X  byte
	Y  byte
	SP byte // stack pointer, page 0x01; wraps mod 256

	PC uint16

	// Status holds the eight processor flags packed as C Z I D B U V N
	// (LSB to MSB). Use GetFlag/SetFlag; instructions should not poke
	// this directly except where the hardware itself exposes the packed
	// byte (PHP, PLP, BRK, RTI).
	Status byte

	Opcode byte // the byte last fetched by step

	// M and AbsAddress are scratch space filled in by resolve for the
	// instruction about to run. M holds the fetched operand for any mode
	// that reads one; AbsAddress holds the effective address, or is
	// unused for Implied/Accumulator/Immediate.
	M          byte
	AbsAddress uint16
	mode       AddressingMode
}

// New returns a Cpu wired to bus, with all registers zeroed. Call Reset
// before running a program so the interrupt vector is honored.
func New(bus *mem.Bus) *Cpu {
	return &Cpu{Bus: bus}
}

// Custom builds a Cpu with every register set explicitly, bypassing
// Reset. Intended for tests that need to drop into the middle of a
// known machine state.
func Custom(a, x, y, sp byte, pc uint16, status, opcode byte, bus *mem.Bus) *Cpu {
	return &Cpu{
		Bus:    bus,
		A:      a,
		X:      x,
		Y:      y,
		SP:     sp,
		PC:     pc,
		Status: status,
		Opcode: opcode,
	}
}

// Read reads one byte from addr via the Bus.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr, true)
}

// Write stores data at addr via the Bus.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// ReadU16 reads a little-endian word at addr.
func (c *Cpu) ReadU16(addr uint16) uint16 {
	return c.Bus.ReadU16(addr)
}

// WriteU16 stores a little-endian word at addr.
func (c *Cpu) WriteU16(addr uint16, data uint16) {
	c.Bus.WriteU16(addr, data)
}

// LoadProgram writes program at ProgramLoadAddr and points the reset
// vector at it, mirroring a cartridge wired straight to 0x0600. Reset
// must still be called to actually move PC there.
func (c *Cpu) LoadProgram(program []byte) {
	for i, b := range program {
		c.Write(ProgramLoadAddr+uint16(i), b)
	}
	c.WriteU16(ResetVector, ProgramLoadAddr)
}

// QuickStart loads program, resets, and runs to completion (the first
// BRK), returning any error raised along the way.
func (c *Cpu) QuickStart(program []byte) error {
	c.LoadProgram(program)
	c.Reset()
	return c.Clock()
}

// Reset puts the Cpu in its post-power-on state: A, X, Y, P, and Opcode
// cleared, SP at 0xff, and PC pointed at ResetVector itself rather than
// its contents. The indirection through the vector happens lazily, the
// first time step runs with PC sitting on ResetVector, mirroring the
// two-stage reset a real 6502 performs: reset only sets up the address
// of the vector, and the first fetch/decode cycle is what actually
// follows it.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xff
	c.Status = 0
	c.Opcode = 0
	c.PC = ResetVector
	c.M, c.AbsAddress = 0, 0
}

// push writes v to the stack page and decrements SP, wrapping mod 256.
func (c *Cpu) push(v byte) {
	c.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

// pop increments SP, wrapping mod 256, and returns the byte it now
// points at.
func (c *Cpu) pop() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

// pushU16 pushes v high byte first, then low byte, so that popU16 (low
// then high) reconstructs it in the same order a real 6502 does for
// JSR/RTS and interrupt entry/exit.
func (c *Cpu) pushU16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) popU16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// fetch looks up the opcode byte b in Opcodes. It neither reads memory
// nor advances PC; step does both.
func (c *Cpu) fetch(b byte) (Opcode, error) {
	op, ok := Opcodes[b]
	if !ok {
		return Opcode{}, fmt.Errorf("%w: %#02x", ErrIllegalOpcode, b)
	}
	return op, nil
}

// step runs one fetch/decode/execute cycle: PC is advanced past the
// opcode and its operand bytes, the operand is resolved per the
// instruction's addressing mode, and the instruction body runs. halt
// reports whether the instruction was BRK, which both Clock and
// Advance treat as the end of a run.
//
// If PC is still sitting on ResetVector (i.e. this is the first step
// after Reset), step only follows the vector and returns; the
// instruction at the destination runs on the next call.
func (c *Cpu) step() (halt bool, err error) {
	if c.PC == ResetVector {
		c.PC = c.ReadU16(ResetVector)
		return false, nil
	}

	b := c.Read(c.PC)
	op, err := c.fetch(b)
	if err != nil {
		return false, err
	}
	c.Opcode = b
	c.PC++

	c.mode = op.Mode
	if err := c.resolve(op.Mode); err != nil {
		return false, err
	}

	if err := op.Instruction(c); err != nil {
		return false, err
	}

	return b == 0x00, nil
}

// Advance runs exactly one step: one instruction, or, on the first call
// after Reset, only the jump through ResetVector.
func (c *Cpu) Advance() error {
	_, err := c.step()
	return err
}

// Clock runs instructions until BRK executes or an error occurs.
func (c *Cpu) Clock() error {
	for {
		halt, err := c.step()
		if err != nil {
			return err
		}
		if halt {
			return nil
		}
	}
}

// Irq requests a maskable interrupt. A no-op if DisableInterrupt is
// set.
func (c *Cpu) Irq() {
	if c.GetFlag(DisableInterrupt) {
		return
	}
	c.pushU16(c.PC)
	c.push(c.statusForPush(false))
	c.SetFlag(DisableInterrupt, true)
	c.PC = c.ReadU16(IRQVector)
}

// Nmi requests a non-maskable interrupt; unlike Irq it cannot be
// disabled.
func (c *Cpu) Nmi() {
	c.pushU16(c.PC)
	c.push(c.statusForPush(false))
	c.SetFlag(DisableInterrupt, true)
	c.PC = c.ReadU16(NMIVector)
}

// statusForPush returns the byte to push for PHP/BRK/IRQ/NMI: the
// Unused bit is always forced to 1, and the Break bit reflects whether
// this push originates from BRK/PHP (true) or a hardware IRQ/NMI
// (false).
func (c *Cpu) statusForPush(brk bool) byte {
	s := c.Status | byte(Unused)
	if brk {
		s |= byte(Break)
	} else {
		s &^= byte(Break)
	}
	return s
}

// CpuState is a snapshot of every externally visible register, in the
// order a debugger or test would want to print them.
type CpuState struct {
	A      byte
	X      byte
	Y      byte
	SP     byte
	PC     uint16
	Status byte
	Opcode byte
}

// State returns a snapshot of the Cpu's registers.
func (c *Cpu) State() CpuState {
	return CpuState{
		A:      c.A,
		X:      c.X,
		Y:      c.Y,
		SP:     c.SP,
		PC:     c.PC,
		Status: c.Status,
		Opcode: c.Opcode,
	}
}

// Memory returns a snapshot of the full address space behind the Cpu's
// Bus.
func (c *Cpu) Memory() [64 * 1024]byte {
	return c.Bus.Snapshot()
}
