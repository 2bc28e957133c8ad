// Package session implements the host loop that drives an engine frame by
// frame and connects it to the display, audio and input collaborators.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrogolib/log"
)

// Timing defaults.
const (
	DefaultInstructionsPerFrame = 11
	FrameRate                   = 60
)

// ErrQuit is returned by RunFrame when the input source requested to quit.
var ErrQuit = errors.New("quit requested")

// Renderer displays a screen snapshot.
type Renderer interface {
	Render(snapshot framebuffer.Snapshot) error
}

// Beeper plays a tone while active.
type Beeper interface {
	SetActive(active bool)
}

// InputSource returns the key events that happened since the last poll.
type InputSource interface {
	Poll() []InputEvent
}

// InputEvent is a key transition of the hex keypad or a quit request.
type InputEvent struct {
	Key     byte
	Pressed bool
	Quit    bool
}

// FrameResult describes the outcome of a single frame.
type FrameResult struct {
	Executed int  // number of steps taken
	Halted   bool // the program executed the exit instruction
	Idle     bool // the program loops on a jump to itself
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the renderer that receives a snapshot after each frame.
func WithRenderer(renderer Renderer) Option {
	return func(s *Session) {
		s.renderer = renderer
	}
}

// WithBeeper adds a beeper, multiple beepers receive the same state.
func WithBeeper(beeper Beeper) Option {
	return func(s *Session) {
		s.beepers = append(s.beepers, beeper)
	}
}

// WithInput sets the source of key events.
func WithInput(input InputSource) Option {
	return func(s *Session) {
		s.input = input
	}
}

// WithInstructionsPerFrame sets the number of instructions executed per frame.
func WithInstructionsPerFrame(count int) Option {
	return func(s *Session) {
		s.instructionsPerFrame = count
	}
}

// WithStopWhenIdle ends Run once the program loops on a jump to itself.
func WithStopWhenIdle() Option {
	return func(s *Session) {
		s.stopWhenIdle = true
	}
}

// Session runs an engine at a fixed frame rate.
type Session struct {
	engine *engine.Engine
	logger *log.Logger

	renderer Renderer
	beepers  []Beeper
	input    InputSource

	instructionsPerFrame int
	stopWhenIdle         bool
	frames               int
}

// New returns a session for the given engine with a ROM already loaded.
func New(e *engine.Engine, logger *log.Logger, options ...Option) *Session {
	s := &Session{
		engine:               e,
		logger:               logger,
		instructionsPerFrame: DefaultInstructionsPerFrame,
	}
	for _, option := range options {
		option(s)
	}
	if s.instructionsPerFrame < 1 {
		s.instructionsPerFrame = DefaultInstructionsPerFrame
	}
	return s
}

// Engine returns the engine driven by the session.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Frames returns the number of completed frames.
func (s *Session) Frames() int {
	return s.frames
}

// RunFrame applies pending input, executes up to the configured number of
// instructions, counts the timers down once and updates the collaborators.
// Execution ends early when a draw waits for the vertical blank.
func (s *Session) RunFrame() (FrameResult, error) {
	var result FrameResult

	if err := s.applyInput(); err != nil {
		return result, err
	}

	for range s.instructionsPerFrame {
		if s.engine.State() != engine.Running {
			break
		}
		if err := s.engine.Step(); err != nil {
			s.logFault(err)
			return result, fmt.Errorf("executing frame %d: %w", s.frames, err)
		}
		result.Executed++

		if s.engine.VblankPending() {
			break
		}
	}
	s.engine.ResetVblank()
	s.engine.DecrementTimers()

	active := s.engine.IsSoundActive()
	for _, beeper := range s.beepers {
		beeper.SetActive(active)
	}

	if s.renderer != nil {
		if err := s.renderer.Render(s.engine.Snapshot()); err != nil {
			return result, fmt.Errorf("rendering frame %d: %w", s.frames, err)
		}
	}

	s.frames++
	result.Halted = s.engine.IsHalted()
	result.Idle = s.engine.IsIdle()
	return result, nil
}

func (s *Session) applyInput() error {
	if s.input == nil {
		return nil
	}

	for _, event := range s.input.Poll() {
		switch {
		case event.Quit:
			return ErrQuit
		case event.Pressed:
			s.engine.PressKey(event.Key)
		default:
			s.engine.ReleaseKey(event.Key)
		}
	}
	return nil
}

func (s *Session) logFault(err error) {
	var execErr *engine.ExecutionError
	if !errors.As(err, &execErr) {
		return
	}
	s.logger.Error("Execution stopped",
		log.Hex("address", execErr.Address),
		log.Hex("opcode", execErr.Opcode),
		log.String("instruction", execErr.Name),
		log.Err(execErr.Err))
}

// Run executes frames until the frame limit is reached, the program halts,
// the input requests to quit or the context is cancelled. A frames value of
// 0 runs without limit. When paced, frames are spaced at 60 Hz.
func (s *Session) Run(ctx context.Context, frames int, paced bool) error {
	var tick <-chan time.Time
	if paced {
		ticker := time.NewTicker(time.Second / FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	for frame := 0; frames == 0 || frame < frames; frame++ {
		if err := s.wait(ctx, tick); err != nil {
			return err
		}

		result, err := s.RunFrame()
		switch {
		case errors.Is(err, ErrQuit):
			s.logger.Debug("Quit requested", log.Int("frame", frame))
			return nil
		case err != nil:
			return err
		case result.Halted:
			s.logger.Debug("Program exited", log.Int("frame", frame))
			return nil
		case result.Idle && s.stopWhenIdle:
			s.logger.Debug("Program is idle", log.Int("frame", frame))
			return nil
		}
	}
	return nil
}

func (s *Session) wait(ctx context.Context, tick <-chan time.Time) error {
	if tick == nil {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}
