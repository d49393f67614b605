package cpu

import "errors"

// ErrIllegalOpcode is returned by fetch when the byte at PC does not
// correspond to any entry in Opcodes. The core does not attempt to
// emulate illegal/undocumented opcodes; it traps instead.
var ErrIllegalOpcode = errors.New("cpu: illegal opcode")

// ErrAddressingNotSupported is returned if an AddressingMode reaches
// resolve without a matching case. Every entry in Opcodes names a mode
// resolve knows how to handle, so this only fires if the table and the
// addressing unit drift apart.
var ErrAddressingNotSupported = errors.New("cpu: addressing mode not supported")
