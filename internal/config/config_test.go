package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/variant"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestEngineOptions(t *testing.T) {
	opts := options.Program{Flags: options.Flags{Debug: true}}
	engineOpts := EngineOptions(log.NewTestLogger(t), opts)
	assert.Len(t, engineOpts, 2)

	e := engine.New(variant.Resolve(variant.Chip8), engineOpts...)
	assert.NoError(t, e.LoadROM([]byte{0x60, 0x01}))
	assert.NoError(t, e.Step())
	assert.Equal(t, byte(1), e.V(0))
}
