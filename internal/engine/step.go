package engine

import (
	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/log"
)

// operands holds the decoded nibble fields of an opcode.
type operands struct {
	x   byte
	y   byte
	n   byte
	nn  byte
	nnn uint16
}

func decode(opcode uint16) operands {
	return operands{
		x:   byte(opcode>>8) & 0xF,
		y:   byte(opcode>>4) & 0xF,
		n:   byte(opcode) & 0xF,
		nn:  byte(opcode),
		nnn: opcode & 0x0FFF,
	}
}

// Step fetches, decodes and executes one instruction. It does nothing while
// the engine is halted or waiting for a key. An error stops the engine, all
// following calls return the same error.
func (e *Engine) Step() error {
	if e.fault != nil {
		return e.fault
	}
	if e.state != Running {
		return nil
	}

	address := e.pc
	if int(address)+1 >= MemorySize {
		return e.fail(address, 0, ErrAddressOutOfRange)
	}
	opcode := uint16(e.memory[address])<<8 | uint16(e.memory[address+1])

	// advance before execution so that jumps and calls are not affected
	e.pc += 2

	if e.trace && e.logger != nil {
		e.logger.Debug("Executing",
			log.Hex("address", address),
			log.Hex("opcode", opcode),
			log.String("instruction", chip8.Name(opcode)),
			log.Stringer("flow", chip8.Classify(opcode)))
	}

	if err := e.execute(opcode); err != nil {
		return e.fail(address, opcode, err)
	}
	return nil
}

func (e *Engine) fail(address, opcode uint16, err error) error {
	e.fault = &ExecutionError{
		Address: address,
		Opcode:  opcode,
		Name:    chip8.Name(opcode),
		Err:     err,
	}
	return e.fault
}

// IsIdle returns whether the next instruction is a jump to itself, which
// programs use to stop once they are done.
func (e *Engine) IsIdle() bool {
	if e.state != Running || int(e.pc)+1 >= MemorySize {
		return false
	}
	opcode := uint16(e.memory[e.pc])<<8 | uint16(e.memory[e.pc+1])
	return chip8.IsSelfJump(e.pc, opcode)
}

func (e *Engine) execute(opcode uint16) error {
	op := decode(opcode)

	switch opcode >> 12 {
	case 0x0:
		return e.executeSystem(opcode, op)
	case 0x1:
		e.pc = op.nnn
	case 0x2:
		return e.call(op.nnn)
	case 0x3:
		e.skipIf(e.v[op.x] == op.nn)
	case 0x4:
		e.skipIf(e.v[op.x] != op.nn)
	case 0x5:
		if op.n != 0 {
			return ErrIllegalInstruction
		}
		e.skipIf(e.v[op.x] == e.v[op.y])
	case 0x6:
		e.v[op.x] = op.nn
	case 0x7:
		e.v[op.x] += op.nn
	case 0x8:
		return e.executeArithmetic(op)
	case 0x9:
		if op.n != 0 {
			return ErrIllegalInstruction
		}
		e.skipIf(e.v[op.x] != e.v[op.y])
	case 0xA:
		e.i = op.nnn
	case 0xB:
		e.jumpWithOffset(op)
	case 0xC:
		e.v[op.x] = e.random() & op.nn
	case 0xD:
		return e.draw(op)
	case 0xE:
		return e.executeKeySkip(op)
	case 0xF:
		return e.executeMisc(op)
	}
	return nil
}

// executeSystem handles the 0NNN group.
func (e *Engine) executeSystem(opcode uint16, op operands) error {
	switch {
	case opcode&0xFFF0 == 0x00C0:
		if !e.cfg.ScrollingEnabled {
			return ErrIllegalInstruction
		}
		e.screen.ScrollDown(int(op.n))

	case opcode == 0x00E0:
		e.screen.Clear()

	case opcode == 0x00EE:
		return e.ret()

	case opcode == 0x00FB, opcode == 0x00FC:
		if !e.cfg.ScrollingEnabled {
			return ErrIllegalInstruction
		}
		if opcode == 0x00FB {
			e.screen.ScrollRight()
		} else {
			e.screen.ScrollLeft()
		}

	case opcode == 0x00FD:
		if !e.cfg.HiresEnabled {
			return ErrIllegalInstruction
		}
		e.state = Halted

	case opcode == 0x00FE, opcode == 0x00FF:
		if !e.cfg.HiresEnabled {
			return ErrIllegalInstruction
		}
		e.screen.SetHires(opcode == 0x00FF)

	default:
		// machine code routines of the host processor are not supported
		if e.logger != nil {
			e.logger.Debug("Ignoring machine code call", log.Hex("target", op.nnn))
		}
	}
	return nil
}

func (e *Engine) call(target uint16) error {
	if e.sp >= StackSize {
		return ErrStackOverflow
	}
	e.stack[e.sp] = e.pc
	e.sp++
	e.pc = target
	return nil
}

func (e *Engine) ret() error {
	if e.sp == 0 {
		return ErrStackUnderflow
	}
	e.sp--
	e.pc = e.stack[e.sp]
	return nil
}

func (e *Engine) skipIf(condition bool) {
	if condition {
		e.pc += 2
	}
}

// jumpWithOffset handles BNNN, which adds V0 or with the jump quirk VX,
// where X is the highest nibble of the address.
func (e *Engine) jumpWithOffset(op operands) {
	register := byte(0)
	if e.cfg.JumpQuirk {
		register = op.x
	}
	e.pc = op.nnn + uint16(e.v[register])
}

// executeArithmetic handles the 8XYN group. The flag register is written
// after the result so that VF as destination holds the flag.
func (e *Engine) executeArithmetic(op operands) error {
	x, y := op.x, op.y

	switch op.n {
	case 0x0:
		e.v[x] = e.v[y]

	case 0x1:
		e.v[x] |= e.v[y]
		e.resetFlagOnLogic()

	case 0x2:
		e.v[x] &= e.v[y]
		e.resetFlagOnLogic()

	case 0x3:
		e.v[x] ^= e.v[y]
		e.resetFlagOnLogic()

	case 0x4:
		sum := uint16(e.v[x]) + uint16(e.v[y])
		e.v[x] = byte(sum)
		e.v[flagRegister] = boolToByte(sum > 0xFF)

	case 0x5:
		noBorrow := e.v[x] >= e.v[y]
		e.v[x] -= e.v[y]
		e.v[flagRegister] = boolToByte(noBorrow)

	case 0x6:
		source := e.shiftSource(op)
		e.v[x] = source >> 1
		e.v[flagRegister] = source & 0x01

	case 0x7:
		noBorrow := e.v[y] >= e.v[x]
		e.v[x] = e.v[y] - e.v[x]
		e.v[flagRegister] = boolToByte(noBorrow)

	case 0xE:
		source := e.shiftSource(op)
		e.v[x] = source << 1
		e.v[flagRegister] = source >> 7

	default:
		return ErrIllegalInstruction
	}
	return nil
}

func (e *Engine) resetFlagOnLogic() {
	if e.cfg.LogicQuirk {
		e.v[flagRegister] = 0
	}
}

// shiftSource returns the value to shift, VX with the shift quirk and VY
// otherwise.
func (e *Engine) shiftSource(op operands) byte {
	if e.cfg.ShiftQuirk {
		return e.v[op.x]
	}
	return e.v[op.y]
}

func (e *Engine) executeKeySkip(op operands) error {
	key := e.v[op.x] & 0xF

	switch op.nn {
	case 0x9E:
		e.skipIf(e.KeyPressed(key))
	case 0xA1:
		e.skipIf(!e.KeyPressed(key))
	default:
		return ErrIllegalInstruction
	}
	return nil
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
