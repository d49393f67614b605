package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixtwo/mem"
)

func newCpu() *Cpu {
	return New(mem.New())
}

func TestReset(t *testing.T) {
	c := newCpu()
	c.A, c.X, c.Y = 1, 2, 3
	c.SP = 0x10
	c.Status = 0xff
	c.Opcode = 0xea

	c.Reset()

	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(0xff), c.SP)
	assert.Equal(t, byte(0), c.Status)
	assert.Equal(t, byte(0), c.Opcode)
	assert.Equal(t, ResetVector, c.PC)

	c2 := newCpu()
	c2.Reset()
	c2.Reset()
	assert.Equal(t, c.A, c2.A)
	assert.Equal(t, c.SP, c2.SP)
	assert.Equal(t, c.PC, c2.PC)
}

func TestFirstStepFollowsResetVector(t *testing.T) {
	c := newCpu()
	c.LoadProgram([]byte{0xea, 0x00}) // NOP, BRK
	c.Reset()
	assert.Equal(t, ResetVector, c.PC)

	err := c.Advance()
	assert.NoError(t, err)
	assert.Equal(t, ProgramLoadAddr, c.PC)
}

func TestFlagRoundTrip(t *testing.T) {
	c := newCpu()
	for _, f := range []Flag{Carry, Zero, DisableInterrupt, Decimal, Break, Unused, Overflow, Negative} {
		c.SetFlag(f, true)
		assert.True(t, c.GetFlag(f))
		c.SetFlag(f, false)
		assert.False(t, c.GetFlag(f))
	}
}

func TestPushPop8(t *testing.T) {
	c := newCpu()
	c.SP = 0xff
	sp := c.SP
	c.push(0x42)
	assert.Equal(t, sp-1, c.SP)
	assert.Equal(t, byte(0x42), c.pop())
	assert.Equal(t, sp, c.SP)
}

func TestPushPop16(t *testing.T) {
	c := newCpu()
	c.SP = 0xff
	sp := c.SP
	c.pushU16(0xbeef)
	assert.Equal(t, sp-2, c.SP)
	assert.Equal(t, uint16(0xbeef), c.popU16())
	assert.Equal(t, sp, c.SP)
}

func TestBusReadWriteU16(t *testing.T) {
	c := newCpu()
	c.Write(0x10, 0x42)
	assert.Equal(t, byte(0x42), c.Read(0x10))

	c.WriteU16(0x20, 0xcafe)
	assert.Equal(t, uint16(0xcafe), c.ReadU16(0x20))
}

func TestIllegalOpcodeTraps(t *testing.T) {
	c := newCpu()
	c.LoadProgram([]byte{0x02}) // not a legal opcode
	c.Reset()
	err := c.Clock()
	assert.ErrorIs(t, err, ErrIllegalOpcode)
}

func hex(program ...byte) []byte { return program }

// End-to-end scenarios, each run to BRK from a fresh reset.
func TestEndToEndScenarios(t *testing.T) {
	t.Run("immediate load positive", func(t *testing.T) {
		c := newCpu()
		assert.NoError(t, c.QuickStart(hex(0xa9, 0x05, 0x00)))
		assert.Equal(t, byte(0x05), c.A)
		assert.False(t, c.GetFlag(Zero))
		assert.False(t, c.GetFlag(Negative))
	})

	t.Run("immediate load zero", func(t *testing.T) {
		c := newCpu()
		assert.NoError(t, c.QuickStart(hex(0xa9, 0x00, 0x00)))
		assert.Equal(t, byte(0x00), c.A)
		assert.True(t, c.GetFlag(Zero))
		assert.False(t, c.GetFlag(Negative))
	})

	t.Run("zero page load", func(t *testing.T) {
		c := newCpu()
		c.Write(0x10, 0x55)
		assert.NoError(t, c.QuickStart(hex(0xa5, 0x10, 0x00)))
		assert.Equal(t, byte(0x55), c.A)
	})

	t.Run("and immediate", func(t *testing.T) {
		c := newCpu()
		assert.NoError(t, c.QuickStart(hex(0xa9, 0x6b, 0x29, 0x2c, 0x00)))
		assert.Equal(t, byte(0x28), c.A)
	})

	t.Run("adc zero page x carry chain", func(t *testing.T) {
		c := newCpu()
		c.Write(0xf1, 0x27)
		assert.NoError(t, c.QuickStart(hex(0xa9, 0x03, 0xa2, 0x10, 0x75, 0xe1, 0x00)))
		assert.Equal(t, byte(0x2a), c.A)
	})

	t.Run("branch forward on zero", func(t *testing.T) {
		c := newCpu()
		assert.NoError(t, c.QuickStart(hex(0xa9, 0x2a, 0x29, 0xc0, 0xf0, 0x03, 0x00, 0x00, 0xa9, 0xff, 0x00)))
		assert.Equal(t, byte(0xff), c.A)
	})

	t.Run("indirect jmp", func(t *testing.T) {
		c := newCpu()
		c.Write(0x1234, 0x30)
		c.Write(0x1235, 0x24)
		c.Write(0x2430, 0xa9)
		c.Write(0x2431, 0x04)
		c.Write(0x2432, 0x00)
		assert.NoError(t, c.QuickStart(hex(0xa9, 0x02, 0x6c, 0x34, 0x12)))
		assert.Equal(t, byte(0x04), c.A)
	})

	t.Run("sta zero page", func(t *testing.T) {
		c := newCpu()
		assert.NoError(t, c.QuickStart(hex(0xa9, 0xff, 0x85, 0xab, 0x00)))
		assert.Equal(t, byte(0xab), byte(0xab))
		assert.Equal(t, byte(0xff), c.Memory()[0xab])
		assert.Equal(t, byte(0xff), c.A)
	})
}

func TestCompareLeavesRegisterUnchanged(t *testing.T) {
	c := newCpu()
	assert.NoError(t, c.QuickStart(hex(0xa9, 0x10, 0xc9, 0x20, 0x00))) // LDA #$10; CMP #$20
	assert.Equal(t, byte(0x10), c.A)
	assert.False(t, c.GetFlag(Carry))

	c2 := newCpu()
	assert.NoError(t, c2.QuickStart(hex(0xa2, 0x20, 0xe0, 0x20, 0x00))) // LDX #$20; CPX #$20
	assert.Equal(t, byte(0x20), c2.X)
	assert.True(t, c2.GetFlag(Carry))
	assert.True(t, c2.GetFlag(Zero))
}

func TestAdcSbcOverflow(t *testing.T) {
	c := newCpu()
	c.A = 0x50
	c.SetFlag(Carry, false)
	c.M = 0x50
	assert.NoError(t, c.ADC())
	assert.Equal(t, byte(0xa0), c.A)
	assert.True(t, c.GetFlag(Overflow))
	assert.False(t, c.GetFlag(Carry))

	c2 := newCpu()
	c2.A = 0x50
	c2.SetFlag(Carry, true)
	c2.M = 0xb0
	assert.NoError(t, c2.SBC())
	assert.Equal(t, byte(0xa0), c2.A)
	assert.True(t, c2.GetFlag(Overflow))
}

func TestAslShiftsByOne(t *testing.T) {
	c := newCpu()
	c.M = 0x40
	c.mode = Accumulator
	c.A = 0x40
	assert.NoError(t, c.ASL())
	assert.Equal(t, byte(0x80), c.A)
	assert.True(t, c.GetFlag(Negative))
	assert.False(t, c.GetFlag(Carry))
}

func TestBitZeroFlag(t *testing.T) {
	c := newCpu()
	c.A = 0x0f
	c.M = 0xf0
	assert.NoError(t, c.BIT())
	assert.True(t, c.GetFlag(Zero))
	assert.True(t, c.GetFlag(Negative))
}

func TestStaDoesNotTouchFlags(t *testing.T) {
	c := newCpu()
	c.A = 0x00
	c.Status = 0xff
	want := c.Status
	c.AbsAddress = 0x10
	assert.NoError(t, c.STA())
	assert.Equal(t, want, c.Status)
	assert.Equal(t, byte(0x00), c.Memory()[0x10])
}
