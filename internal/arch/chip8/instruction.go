package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction wraps a retrogolib CHIP-8 instruction definition.
type Instruction struct {
	ins *chip8.Instruction
}

// IsNil returns true if the instruction is nil.
func (i Instruction) IsNil() bool {
	return i.ins == nil
}

// Name returns the instruction name.
func (i Instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return i.ins.Name
}

// IsCall returns true if the instruction is a call instruction.
func (i Instruction) IsCall() bool {
	return i.ins == chip8.Call
}

// IsJump returns true if the instruction is a jump instruction.
func (i Instruction) IsJump() bool {
	return i.ins == chip8.Jp
}

// IsReturn returns true if the instruction is a return instruction.
func (i Instruction) IsReturn() bool {
	return i.ins == chip8.Ret
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	if i.ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.ins.Name)
}
