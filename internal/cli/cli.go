// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/variant"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:], flag.ExitOnError)
}

func parseArgs(name string, args []string, handling flag.ErrorHandling) (options.Program, error) {
	flags := flag.NewFlagSet(name, handling)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(args)
	positional := flags.Args()
	if err != nil || (len(positional) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(positional); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" && opts.Batch == "" {
		opts.Input = positional[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text and all flag defaults.
func (e *UsageError) ShowUsage() {
	e.WriteUsage(os.Stdout)
}

// WriteUsage writes the usage text to w.
func (e *UsageError) WriteUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	_, _ = fmt.Fprintln(w)
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Variant != "" {
		v, err := variant.ParseVariant(opts.Variant)
		if err != nil {
			return err
		}
		opts.Variant = v.String()
	}

	if opts.InstructionsPerFrame < 1 || opts.InstructionsPerFrame > options.MaxInstructionsPerFrame {
		return fmt.Errorf("instructions per frame %d out of range 1..%d",
			opts.InstructionsPerFrame, options.MaxInstructionsPerFrame)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid window scale %d", opts.Scale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}

	// a batch has no window to show
	if opts.Batch != "" {
		opts.Headless = true
	}
	if opts.Headless && opts.Frames == 0 {
		opts.Frames = options.DefaultHeadlessFrames
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Variant, "s", "", "interpreter variant ("+strings.Join(variant.Names(), ", ")+") - if not auto-detected from file extension")
	flags.StringVar(&opts.Wav, "wav", "", "name of a .wav file to record the beeper output to")
	flags.StringVar(&opts.Batch, "batch", "", "run a batch of ROMs matching the given path and file mask headless, for example *.ch8")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", options.DefaultInstructionsPerFrame, "instructions executed per 60 Hz frame")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor")
	flags.IntVar(&opts.Frames, "frames", 0, "number of frames to run, 0 runs until the program exits (headless default 600)")
	flags.BoolVar(&opts.Headless, "headless", false, "run without opening a window")
	flags.BoolVar(&opts.Dump, "dump", false, "print the screen as text after a headless run")
	flags.BoolVar(&opts.NoSound, "nosound", false, "disable audio output")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging and instruction tracing")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
