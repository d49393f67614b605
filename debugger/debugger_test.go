package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixtwo/cpu"
	"sixtwo/mem"
)

// The very first render after Reset sees PC still sitting on
// cpu.ResetVector (0xfffc); the top page (start=0xfff0) must not wrap
// its upper bound back to 0x0000.
func TestPageTableOnResetVectorPage(t *testing.T) {
	c := cpu.New(mem.New())
	c.LoadProgram([]byte{0xea, 0x00})
	c.Reset()

	m := model{cpu: c}
	assert.NotPanics(t, func() {
		m.pageTable(c.Memory())
	})
}

func TestRenderPageTopPage(t *testing.T) {
	c := cpu.New(mem.New())
	c.Reset()

	m := model{cpu: c}
	var out string
	assert.NotPanics(t, func() {
		out = m.renderPage(c.Memory(), 0xfff0)
	})
	assert.Contains(t, out, "fff0")
}
