package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup finds the base instruction set definition matching the opcode.
func Lookup(opcode uint16) (Instruction, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	opcodes := chip8.Opcodes[int(firstNibble)]
	for _, op := range opcodes {
		if op.Info.Mask&opcode == op.Info.Value {
			return Instruction{ins: op.Instruction}, op.Instruction != nil
		}
	}
	return Instruction{}, false
}

// Mnemonics of the extension instructions.
const (
	scrollDown  = "scd"
	scrollRight = "scr"
	scrollLeft  = "scl"
	exit        = "exit"
	low         = "low"
	high        = "high"
	loadHF      = "ld hf"
	saveFlags   = "ld r"
	loadFlags   = "ld vx, r"
	unknown     = "unknown"
)

// extensionName returns the mnemonic of SUPER-CHIP and XO-CHIP instructions.
func extensionName(opcode uint16) (string, bool) {
	switch {
	case opcode&0xFFF0 == 0x00C0:
		return scrollDown, true
	case opcode == 0x00FB:
		return scrollRight, true
	case opcode == 0x00FC:
		return scrollLeft, true
	case opcode == 0x00FD:
		return exit, true
	case opcode == 0x00FE:
		return low, true
	case opcode == 0x00FF:
		return high, true
	case opcode&0xF0FF == 0xF030:
		return loadHF, true
	case opcode&0xF0FF == 0xF075:
		return saveFlags, true
	case opcode&0xF0FF == 0xF085:
		return loadFlags, true
	}
	return "", false
}

// Name returns the mnemonic of the opcode, or "unknown" if it is not part of
// any supported instruction set.
func Name(opcode uint16) string {
	if name, ok := extensionName(opcode); ok {
		return name
	}
	if ins, ok := Lookup(opcode); ok {
		return ins.Name()
	}
	return unknown
}
