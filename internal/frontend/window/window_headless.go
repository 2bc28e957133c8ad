//go:build headless

package window

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/session"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned when the binary was built without window support.
var ErrUnavailable = errors.New("window not available in headless build, use -headless")

// Frontend is not available in headless builds.
type Frontend struct{}

// New returns a frontend that can not be run.
func New(string, int) *Frontend {
	return &Frontend{}
}

// Run returns ErrUnavailable.
func (f *Frontend) Run(context.Context, *engine.Engine, *log.Logger, ...session.Option) error {
	return ErrUnavailable
}
