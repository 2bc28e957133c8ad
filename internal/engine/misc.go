package engine

import (
	"github.com/retroenv/retrochip8/internal/font"
)

// executeMisc handles the FXNN group.
func (e *Engine) executeMisc(op operands) error {
	x := op.x

	switch op.nn {
	case 0x07:
		e.v[x] = e.timers.Delay

	case 0x0A:
		e.state = WaitingForKey
		e.waitRegister = x

	case 0x15:
		e.timers.Delay = e.v[x]

	case 0x18:
		e.timers.Sound = e.v[x]

	case 0x1E:
		e.i = (e.i + uint16(e.v[x])) & e.cfg.IndexMask

	case 0x29:
		e.i = font.SmallGlyph(e.v[x])

	case 0x30:
		if !e.cfg.HiresEnabled {
			return ErrIllegalInstruction
		}
		e.i = font.BigGlyph(e.v[x])

	case 0x33:
		return e.storeBCD(x)

	case 0x55:
		return e.storeRegisters(x)

	case 0x65:
		return e.loadRegisters(x)

	case 0x75:
		if !e.cfg.FlagRegistersEnabled {
			return ErrIllegalInstruction
		}
		copy(e.flagRegisters[:x+1], e.v[:x+1])

	case 0x85:
		if !e.cfg.FlagRegistersEnabled {
			return ErrIllegalInstruction
		}
		copy(e.v[:x+1], e.flagRegisters[:x+1])

	default:
		return ErrIllegalInstruction
	}
	return nil
}

// memoryRange returns the memory window of length bytes starting at I.
func (e *Engine) memoryRange(length int) ([]byte, error) {
	start := int(e.i)
	if start+length > MemorySize {
		return nil, ErrAddressOutOfRange
	}
	return e.memory[start : start+length], nil
}

func (e *Engine) storeBCD(x byte) error {
	digits, err := e.memoryRange(3)
	if err != nil {
		return err
	}

	value := e.v[x]
	digits[0] = value / 100
	digits[1] = value / 10 % 10
	digits[2] = value % 10
	return nil
}

func (e *Engine) storeRegisters(x byte) error {
	window, err := e.memoryRange(int(x) + 1)
	if err != nil {
		return err
	}
	copy(window, e.v[:x+1])
	e.advanceIndexAfterLoadStore(x)
	return nil
}

func (e *Engine) loadRegisters(x byte) error {
	window, err := e.memoryRange(int(x) + 1)
	if err != nil {
		return err
	}
	copy(e.v[:x+1], window)
	e.advanceIndexAfterLoadStore(x)
	return nil
}

// advanceIndexAfterLoadStore applies the legacy behavior of FX55/FX65
// that leaves I pointing past the transferred registers.
func (e *Engine) advanceIndexAfterLoadStore(x byte) {
	if !e.cfg.LoadStoreIncrement {
		return
	}
	e.i = (e.i + uint16(x) + uint16(e.cfg.LoadStoreOffset)) & e.cfg.IndexMask
}
