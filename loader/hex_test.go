package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadHex(t *testing.T) {
	program, err := LoadHex(strings.NewReader("A9 05\n00\n"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xa9, 0x05, 0x00}, program)
}

func TestLoadHexSkipsBlankLines(t *testing.T) {
	program, err := LoadHex(strings.NewReader("A9 05\n\n\n00\n"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xa9, 0x05, 0x00}, program)
}

func TestLoadHexRejectsGarbage(t *testing.T) {
	_, err := LoadHex(strings.NewReader("zz"))
	assert.ErrorIs(t, err, ErrLoad)
}
