// Package pipeline orchestrates the steps of running a ROM.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/session"
	"github.com/retroenv/retrochip8/internal/variant"
	"github.com/retroenv/retrochip8/internal/wavwriter"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates detection, loading and execution of a ROM.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	dump     io.Writer // receives the screen dump of headless runs
}

// New creates a new pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		dump:     os.Stdout,
	}
}

// Execute runs the ROM given in the options until it exits, fails or the
// frontend is closed.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (rerr error) {
	e, err := p.createEngine(opts)
	if err != nil {
		return err
	}

	sessionOpts := []session.Option{
		session.WithInstructionsPerFrame(opts.InstructionsPerFrame),
	}

	if opts.Wav != "" {
		recorder := wavwriter.New(p.logger, opts.Wav)
		sessionOpts = append(sessionOpts, session.WithBeeper(recorder))
		defer func() {
			if err := recorder.Close(); err != nil {
				rerr = errors.Join(rerr, fmt.Errorf("writing wav file: %w", err))
			}
		}()
	}

	if opts.Headless {
		return p.runHeadless(ctx, e, opts, sessionOpts)
	}

	if !opts.NoSound {
		beeper, err := audio.New()
		if err != nil {
			p.logger.Warn("Audio output disabled", log.Err(err))
		} else {
			sessionOpts = append(sessionOpts, session.WithBeeper(beeper))
			defer func() { _ = beeper.Close() }()
		}
	}

	title := fmt.Sprintf("retrochip8 - %s (%s)", filepath.Base(opts.Input), e.Config().Variant)
	if err := window.New(title, opts.Scale).Run(ctx, e, p.logger, sessionOpts...); err != nil {
		return fmt.Errorf("running frontend: %w", err)
	}
	return nil
}

// createEngine detects the variant, creates the engine and loads the ROM.
func (p *Pipeline) createEngine(opts options.Program) (*engine.Engine, error) {
	v, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting variant: %w", err)
	}

	cfg := variant.Resolve(v)
	e := engine.New(cfg, config.EngineOptions(p.logger, opts)...)

	if err := p.loader.Load(opts.Input, e); err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	p.printInfo(opts, cfg)
	return e, nil
}

func (p *Pipeline) runHeadless(ctx context.Context, e *engine.Engine, opts options.Program,
	sessionOpts []session.Option) error {

	var dump io.Writer
	if opts.Dump {
		dump = p.dump
	}

	frontend := headless.New(p.logger, opts.Frames, dump)
	if _, err := frontend.Run(ctx, e, sessionOpts...); err != nil {
		return fmt.Errorf("running headless: %w", err)
	}
	return nil
}

// printInfo prints information about the ROM being run.
func (p *Pipeline) printInfo(opts options.Program, cfg variant.Config) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Stringer("variant", cfg.Variant),
		log.Stringer("resolution", cfg.MaxResolution()),
		log.Int("ipf", opts.InstructionsPerFrame),
	)
}
