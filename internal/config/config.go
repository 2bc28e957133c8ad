// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// EngineOptions returns the engine options for the program options.
// The debug flag enables the instruction trace.
func EngineOptions(logger *log.Logger, opts options.Program) []engine.Option {
	return []engine.Option{
		engine.WithLogger(logger),
		engine.WithTrace(opts.Debug),
	}
}
