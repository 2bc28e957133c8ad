package engine

import (
	"errors"
	"fmt"
)

// Engine-fatal execution errors, wrapped in an *ExecutionError by Step.
var (
	ErrIllegalInstruction = errors.New("illegal instruction")
	ErrStackOverflow      = errors.New("stack overflow")
	ErrStackUnderflow     = errors.New("stack underflow")
	ErrAddressOutOfRange  = errors.New("address out of range")
)

// ErrRomTooLarge is returned when a ROM does not fit into the program memory.
var ErrRomTooLarge = errors.New("rom exceeds available memory")

// RomLoadError is returned when a ROM can not be read or placed into memory.
type RomLoadError struct {
	Path string // empty when loading from a buffer
	Err  error
}

func (e *RomLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading rom: %s", e.Err)
	}
	return fmt.Sprintf("loading rom %s: %s", e.Path, e.Err)
}

func (e *RomLoadError) Unwrap() error {
	return e.Err
}

// ExecutionError describes the instruction that stopped the engine.
type ExecutionError struct {
	Address uint16 // address of the failing instruction
	Opcode  uint16
	Name    string // mnemonic of the opcode
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s at $%03X: opcode %04X (%s)", e.Err, e.Address, e.Opcode, e.Name)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
