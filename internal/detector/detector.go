// Package detector handles interpreter variant detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/variant"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles variant detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new variant detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the interpreter variant from options or file auto-detection.
// It first checks if a variant is explicitly specified in options, otherwise
// attempts to detect the variant from the input filename extension.
func (d *Detector) Detect(opts options.Program) (variant.Variant, error) {
	if opts.Variant != "" {
		v, err := variant.ParseVariant(opts.Variant)
		if err != nil {
			return 0, fmt.Errorf("parsing variant: %w", err)
		}
		return v, nil
	}

	v := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected variant",
		log.Stringer("variant", v),
		log.String("file", opts.Input))
	return v, nil
}

// detectFromFile determines the variant based on file extension.
func (d *Detector) detectFromFile(filename string) variant.Variant {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".c8x", ".sc8":
		return variant.SuperChip11
	case ".xo8":
		return variant.XOChip
	default:
		// .ch8 and unknown extensions run as plain CHIP-8
		return variant.Chip8
	}
}
