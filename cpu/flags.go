package cpu

// A Flag identifies one bit of the status register (P). Bit layout,
// LSB to MSB: C Z I D B U V N.
//
// https://www.nesdev.org/wiki/Status_flags#Flags
// https://www.nesdev.org/obelisk-6502-guide/reference.html#FLAGS
type Flag byte

const (
	Carry            Flag = 1 << 0
	Zero             Flag = 1 << 1
	DisableInterrupt Flag = 1 << 2
	Decimal          Flag = 1 << 3
	Break            Flag = 1 << 4
	Unused           Flag = 1 << 5
	Overflow         Flag = 1 << 6
	Negative         Flag = 1 << 7
)

// GetFlag reports whether f is set in the status register.
func (c *Cpu) GetFlag(f Flag) bool {
	return c.Status&byte(f) != 0
}

// SetFlag sets or clears f in the status register, leaving every other
// bit untouched.
func (c *Cpu) SetFlag(f Flag, v bool) {
	if v {
		c.Status |= byte(f)
	} else {
		c.Status &^= byte(f)
	}
}

// applyZN sets Zero iff v is 0 and Negative iff bit 7 of v is set. Used
// after any instruction that places a result in A, X, Y, or memory.
func (c *Cpu) applyZN(v byte) {
	c.SetFlag(Zero, v == 0)
	c.SetFlag(Negative, v&0x80 != 0)
}
