// Package headless runs an engine without a window for a fixed number of
// frames and optionally prints the final screen.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/session"
	"github.com/retroenv/retrogolib/log"
)

// Frontend runs sessions without display and input.
type Frontend struct {
	logger *log.Logger
	frames int
	dump   io.Writer
}

// New returns a headless frontend that runs up to frames frames. When dump
// is not nil the final screen is written to it as text.
func New(logger *log.Logger, frames int, dump io.Writer) *Frontend {
	return &Frontend{
		logger: logger,
		frames: frames,
		dump:   dump,
	}
}

// Run executes the engine until the frame limit is reached or the program
// exits, halts or loops on itself and returns the final screen.
func (f *Frontend) Run(ctx context.Context, e *engine.Engine, options ...session.Option) (framebuffer.Snapshot, error) {
	options = append(options, session.WithStopWhenIdle())
	s := session.New(e, f.logger, options...)

	err := s.Run(ctx, f.frames, false)
	snapshot := e.Snapshot()

	f.logger.Debug("Headless run finished",
		log.Int("frames", s.Frames()),
		log.Stringer("state", e.State()),
		log.Hex("pc", e.PC()))

	if f.dump != nil {
		if _, werr := io.WriteString(f.dump, snapshot.String()); werr != nil && err == nil {
			err = fmt.Errorf("writing screen dump: %w", werr)
		}
	}
	return snapshot, err
}
