// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/engine"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file and places it into the engine memory.
// All failures are returned as *engine.RomLoadError.
func (l *Loader) Load(path string, e *engine.Engine) error {
	rom, err := l.Read(path)
	if err != nil {
		return err
	}
	if err := e.LoadROM(rom); err != nil {
		return &engine.RomLoadError{Path: path, Err: unwrapLoadError(err)}
	}
	return nil
}

// Read returns the content of the ROM file.
func (l *Loader) Read(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &engine.RomLoadError{Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	rom, err := io.ReadAll(io.LimitReader(file, engine.MemorySize+1))
	if err != nil {
		return nil, &engine.RomLoadError{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}
	return rom, nil
}

// unwrapLoadError strips a path-less load error so that the path can be
// attached without nesting the message.
func unwrapLoadError(err error) error {
	var loadErr *engine.RomLoadError
	if errors.As(err, &loadErr) && loadErr.Path == "" {
		return loadErr.Err
	}
	return err
}
