package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/variant"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load rom into memory", func(t *testing.T) {
		path := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})
		e := engine.New(variant.Resolve(variant.Chip8))

		assert.NoError(t, New().Load(path, e))
		assert.Equal(t, byte(0x12), e.Memory(0x200))
		assert.Equal(t, byte(0x78), e.Memory(0x203))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		e := engine.New(variant.Resolve(variant.Chip8))

		err := New().Load("/nonexistent/file.ch8", e)
		assert.Error(t, err)

		var loadErr *engine.RomLoadError
		assert.True(t, errors.As(err, &loadErr))
		assert.Equal(t, "/nonexistent/file.ch8", loadErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("error on rom too large", func(t *testing.T) {
		path := createTempFile(t, make([]byte, engine.MemorySize))
		e := engine.New(variant.Resolve(variant.Chip8))

		err := New().Load(path, e)
		assert.True(t, errors.Is(err, engine.ErrRomTooLarge))

		var loadErr *engine.RomLoadError
		assert.True(t, errors.As(err, &loadErr))
		assert.Equal(t, path, loadErr.Path)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("largest rom fits", func(t *testing.T) {
		path := createTempFile(t, make([]byte, engine.MemorySize-variant.ProgramStart))
		e := engine.New(variant.Resolve(variant.Chip8))

		assert.NoError(t, New().Load(path, e))
	})
}

func TestRead(t *testing.T) {
	data := []byte{0x00, 0xE0, 0x12, 0x00}
	path := createTempFile(t, data)

	rom, err := New().Read(path)
	assert.NoError(t, err)
	assert.Equal(t, len(data), len(rom))
	assert.Equal(t, data[1], rom[1])
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
