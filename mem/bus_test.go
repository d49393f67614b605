package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteIsObservedThroughPointer(t *testing.T) {
	b := New()
	b.Write(0x1234, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x1234, true))
}

func TestReadWriteU16LittleEndian(t *testing.T) {
	b := New()
	b.WriteU16(0x10, 0xbeef)
	assert.Equal(t, byte(0xef), b.Read(0x10, true))
	assert.Equal(t, byte(0xbe), b.Read(0x11, true))
	assert.Equal(t, uint16(0xbeef), b.ReadU16(0x10))
}

func TestSnapshotIsACopy(t *testing.T) {
	b := New()
	b.Write(0, 1)
	snap := b.Snapshot()
	b.Write(0, 2)
	assert.Equal(t, byte(1), snap[0])
	assert.Equal(t, byte(2), b.Read(0, true))
}
