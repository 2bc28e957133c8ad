// Package engine implements the CHIP-8 instruction execution engine.
//
// An Engine owns the complete machine state: memory, registers, timers,
// call stack, key state and the framebuffer. All mutation happens inside
// Step, DecrementTimers, PressKey and ReleaseKey which the host calls from a
// single goroutine.
package engine

import (
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrochip8/internal/variant"
	"github.com/retroenv/retrogolib/log"
)

// Machine dimensions.
const (
	MemorySize    = 4096
	StackSize     = 16
	RegisterCount = 16
	KeyCount      = 16

	flagRegister = 0xF
)

// State is the execution state of the engine.
type State int

// Execution states.
const (
	Running State = iota
	Halted
	WaitingForKey
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case WaitingForKey:
		return "waiting for key"
	default:
		return "unknown"
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the source of random bytes used by the CXNN instruction.
func WithRandom(random func() byte) Option {
	return func(e *Engine) {
		e.random = random
	}
}

// WithLogger sets the logger for diagnostic messages.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTrace enables logging of every executed instruction at debug level.
// It has no effect without a logger.
func WithTrace(trace bool) Option {
	return func(e *Engine) {
		e.trace = trace
	}
}

// Engine is a CHIP-8 interpreter instance.
type Engine struct {
	cfg    variant.Config
	logger *log.Logger
	random func() byte
	trace  bool

	memory [MemorySize]byte
	v      [RegisterCount]byte
	i      uint16
	pc     uint16
	stack  [StackSize]uint16
	sp     int
	timers timer.Timers
	keys   uint16

	state        State
	waitRegister byte
	fault        error
	vblank       bool

	flagRegisters [RegisterCount]byte

	screen *framebuffer.Framebuffer
}

// New returns an engine for the given variant configuration with the fonts
// loaded and the program counter at the start address.
func New(cfg variant.Config, options ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		random: randomByte,
		pc:     cfg.PCStart,
		screen: framebuffer.New(cfg.Resolutions, cfg.ScrollQuirk),
	}
	font.Load(e.memory[:])

	for _, option := range options {
		option(e)
	}
	return e
}

func randomByte() byte {
	return byte(rand.UintN(256))
}

// LoadROM copies the program into memory at the start address.
func (e *Engine) LoadROM(rom []byte) error {
	available := MemorySize - int(e.cfg.PCStart)
	if len(rom) > available {
		return &RomLoadError{Err: ErrRomTooLarge}
	}
	copy(e.memory[e.cfg.PCStart:], rom)
	return nil
}

// Config returns the variant configuration of the engine.
func (e *Engine) Config() variant.Config {
	return e.cfg
}

// State returns the current execution state.
func (e *Engine) State() State {
	return e.state
}

// IsHalted returns whether the program executed the exit instruction.
func (e *Engine) IsHalted() bool {
	return e.state == Halted
}

// IsWaitingForKey returns whether the engine is suspended until a key is
// released.
func (e *Engine) IsWaitingForKey() bool {
	return e.state == WaitingForKey
}

// Err returns the error that stopped the engine, or nil.
func (e *Engine) Err() error {
	return e.fault
}

// PC returns the program counter.
func (e *Engine) PC() uint16 {
	return e.pc
}

// I returns the index register.
func (e *Engine) I() uint16 {
	return e.i
}

// V returns the general purpose register x.
func (e *Engine) V(x int) byte {
	return e.v[x&0xF]
}

// SP returns the number of entries on the call stack.
func (e *Engine) SP() int {
	return e.sp
}

// Memory returns the byte at the given address, addresses wrap at the end
// of memory.
func (e *Engine) Memory(address uint16) byte {
	return e.memory[int(address)%MemorySize]
}

// DelayTimer returns the delay timer value.
func (e *Engine) DelayTimer() byte {
	return e.timers.Delay
}

// SoundTimer returns the sound timer value.
func (e *Engine) SoundTimer() byte {
	return e.timers.Sound
}

// DecrementTimers counts the delay and sound timers down once. The host
// calls it at 60 Hz independent of the number of executed instructions.
func (e *Engine) DecrementTimers() {
	e.timers.Decrement()
}

// IsSoundActive returns whether the beeper should be playing.
func (e *Engine) IsSoundActive() bool {
	return e.timers.SoundActive()
}

// PressKey marks a key of the 16 key pad as held. Invalid keys are ignored.
func (e *Engine) PressKey(key byte) {
	if key >= KeyCount {
		return
	}
	e.keys |= 1 << key
}

// ReleaseKey marks a key as released. When the engine is waiting for a key,
// the key is stored in the waiting register and execution resumes.
func (e *Engine) ReleaseKey(key byte) {
	if key >= KeyCount {
		return
	}
	e.keys &^= 1 << key

	if e.state == WaitingForKey {
		e.v[e.waitRegister] = key
		e.state = Running
	}
}

// KeyPressed returns whether the key is currently held.
func (e *Engine) KeyPressed(key byte) bool {
	return e.keys&(1<<(key&0xF)) != 0
}

// VblankPending returns whether a draw requested to wait for the next frame.
func (e *Engine) VblankPending() bool {
	return e.vblank
}

// ResetVblank acknowledges the vblank request at a frame boundary.
func (e *Engine) ResetVblank() {
	e.vblank = false
}

// Snapshot returns a copy of the screen for rendering.
func (e *Engine) Snapshot() framebuffer.Snapshot {
	return e.screen.Snapshot()
}
