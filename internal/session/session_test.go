package session

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/variant"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type recordingRenderer struct {
	frames []framebuffer.Snapshot
	err    error
}

func (r *recordingRenderer) Render(snapshot framebuffer.Snapshot) error {
	r.frames = append(r.frames, snapshot)
	return r.err
}

type recordingBeeper struct {
	states []bool
}

func (b *recordingBeeper) SetActive(active bool) {
	b.states = append(b.states, active)
}

type scriptedInput struct {
	polls [][]InputEvent
}

func (s *scriptedInput) Poll() []InputEvent {
	if len(s.polls) == 0 {
		return nil
	}
	events := s.polls[0]
	s.polls = s.polls[1:]
	return events
}

func newTestSession(t *testing.T, v variant.Variant, rom []byte, options ...Option) *Session {
	t.Helper()

	e := engine.New(variant.Resolve(v))
	assert.NoError(t, e.LoadROM(rom))
	return New(e, log.NewTestLogger(t), options...)
}

func TestRunFrameInstructionCount(t *testing.T) {
	// 7001 / 1200 loop increments V0 every other instruction
	s := newTestSession(t, variant.Chip8, []byte{0x70, 0x01, 0x12, 0x00},
		WithInstructionsPerFrame(10))

	result, err := s.RunFrame()
	assert.NoError(t, err)
	assert.Equal(t, 10, result.Executed)
	assert.Equal(t, byte(5), s.Engine().V(0))
	assert.Equal(t, 1, s.Frames())
}

func TestRunFrameVblank(t *testing.T) {
	tests := []struct {
		name     string
		variant  variant.Variant
		executed int
	}{
		{"draw ends the frame", variant.Chip8, 1},
		{"draw does not wait", variant.SuperChipModern, DefaultInstructionsPerFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// D001 / 1200 loop draws the first font row over and over
			s := newTestSession(t, tt.variant, []byte{0xD0, 0x01, 0x12, 0x00})

			result, err := s.RunFrame()
			assert.NoError(t, err)
			assert.Equal(t, tt.executed, result.Executed)
			assert.False(t, s.Engine().VblankPending())
		})
	}
}

func TestRunFrameTimersAndBeeper(t *testing.T) {
	beeper := &recordingBeeper{}
	// V0 = 2, sound timer = V0, delay timer = V0, idle loop
	s := newTestSession(t, variant.Chip8,
		[]byte{0x60, 0x02, 0xF0, 0x18, 0xF0, 0x15, 0x12, 0x06},
		WithBeeper(beeper))

	for range 3 {
		_, err := s.RunFrame()
		assert.NoError(t, err)
	}

	// one decrement per frame regardless of the executed instructions
	assert.Len(t, beeper.states, 3)
	assert.True(t, beeper.states[0])
	assert.False(t, beeper.states[1])
	assert.False(t, beeper.states[2])
	assert.Equal(t, byte(0), s.Engine().DelayTimer())
}

func TestRunFrameRenders(t *testing.T) {
	renderer := &recordingRenderer{}
	s := newTestSession(t, variant.Chip8, []byte{0xD0, 0x05, 0x12, 0x02},
		WithRenderer(renderer))

	_, err := s.RunFrame()
	assert.NoError(t, err)
	assert.Len(t, renderer.frames, 1)
	assert.Equal(t, 14, renderer.frames[0].Lit())

	renderer.err = errors.New("window closed")
	_, err = s.RunFrame()
	assert.ErrorContains(t, err, "window closed")
}

func TestRunFrameInput(t *testing.T) {
	input := &scriptedInput{polls: [][]InputEvent{
		nil,
		{{Key: 0xA, Pressed: true}},
		{{Key: 0xA, Pressed: false}},
		{{Quit: true}},
	}}
	// wait for a key into V5
	s := newTestSession(t, variant.Chip8, []byte{0xF5, 0x0A, 0x12, 0x02}, WithInput(input))

	result, err := s.RunFrame()
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Executed)
	assert.True(t, s.Engine().IsWaitingForKey())

	result, err = s.RunFrame()
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Executed)
	assert.True(t, s.Engine().KeyPressed(0xA))

	_, err = s.RunFrame()
	assert.NoError(t, err)
	assert.False(t, s.Engine().IsWaitingForKey())
	assert.Equal(t, byte(0xA), s.Engine().V(5))

	_, err = s.RunFrame()
	assert.True(t, errors.Is(err, ErrQuit))
}

func TestRunFrameError(t *testing.T) {
	s := newTestSession(t, variant.Chip8, []byte{0x00, 0xEE})

	_, err := s.RunFrame()
	assert.True(t, errors.Is(err, engine.ErrStackUnderflow))

	var execErr *engine.ExecutionError
	assert.True(t, errors.As(err, &execErr))
	assert.Equal(t, uint16(0x200), execErr.Address)
}

func TestRun(t *testing.T) {
	t.Run("frame limit", func(t *testing.T) {
		s := newTestSession(t, variant.Chip8, []byte{0x70, 0x01, 0x12, 0x00})

		assert.NoError(t, s.Run(context.Background(), 5, false))
		assert.Equal(t, 5, s.Frames())
	})

	t.Run("halt ends run after rendering", func(t *testing.T) {
		renderer := &recordingRenderer{}
		s := newTestSession(t, variant.SuperChip11, []byte{0x60, 0x01, 0x00, 0xFD},
			WithRenderer(renderer))

		assert.NoError(t, s.Run(context.Background(), 0, false))
		assert.Equal(t, 1, s.Frames())
		assert.Len(t, renderer.frames, 1)
	})

	t.Run("idle ends run", func(t *testing.T) {
		s := newTestSession(t, variant.Chip8, []byte{0x12, 0x00}, WithStopWhenIdle())

		assert.NoError(t, s.Run(context.Background(), 0, false))
		assert.Equal(t, 1, s.Frames())
	})

	t.Run("quit ends run", func(t *testing.T) {
		input := &scriptedInput{polls: [][]InputEvent{nil, {{Quit: true}}}}
		s := newTestSession(t, variant.Chip8, []byte{0x12, 0x00}, WithInput(input))

		assert.NoError(t, s.Run(context.Background(), 0, false))
		assert.Equal(t, 1, s.Frames())
	})

	t.Run("error ends run", func(t *testing.T) {
		s := newTestSession(t, variant.Chip8, []byte{0xFF, 0xFF})

		err := s.Run(context.Background(), 0, false)
		assert.True(t, errors.Is(err, engine.ErrIllegalInstruction))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := newTestSession(t, variant.Chip8, []byte{0x12, 0x00})

		err := s.Run(ctx, 0, true)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 0, s.Frames())
	})

	t.Run("paced", func(t *testing.T) {
		s := newTestSession(t, variant.Chip8, []byte{0x12, 0x00})

		assert.NoError(t, s.Run(context.Background(), 2, true))
		assert.Equal(t, 2, s.Frames())
	})
}
