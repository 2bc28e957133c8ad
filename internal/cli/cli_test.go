package cli

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "defaults",
			args: []string{"pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Machine:    options.Machine{InstructionsPerFrame: 11, Scale: 8},
			},
		},
		{
			name: "variant alias is normalized",
			args: []string{"-s", "SCHIP", "game.sc8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.sc8"},
				Flags:      options.Flags{Variant: "schip1.1"},
				Machine:    options.Machine{InstructionsPerFrame: 11, Scale: 8},
			},
		},
		{
			name: "headless gets a frame limit",
			args: []string{"-headless", "-dump", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{Headless: true, Dump: true},
				Machine:    options.Machine{InstructionsPerFrame: 11, Scale: 8, Frames: 600},
			},
		},
		{
			name: "explicit frames are kept",
			args: []string{"-headless", "-frames", "42", "-ipf", "30", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags:      options.Flags{Headless: true},
				Machine:    options.Machine{InstructionsPerFrame: 30, Scale: 8, Frames: 42},
			},
		},
		{
			name: "batch implies headless",
			args: []string{"-batch", "roms/*.ch8", "-q"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "roms/*.ch8"},
				Flags:      options.Flags{Headless: true, Quiet: true},
				Machine:    options.Machine{InstructionsPerFrame: 11, Scale: 8, Frames: 600},
			},
		},
		{
			name: "input flag",
			args: []string{"-i", "maze.ch8", "-nosound", "-wav", "out.wav", "-scale", "4"},
			want: options.Program{
				Parameters: options.Parameters{Input: "maze.ch8", Wav: "out.wav"},
				Flags:      options.Flags{NoSound: true},
				Machine:    options.Machine{InstructionsPerFrame: 11, Scale: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs("retrochip8", tt.args, flag.ContinueOnError)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{name: "no rom", args: nil, usage: true},
		{name: "flag after rom", args: []string{"pong.ch8", "-debug"}, usage: true},
		{name: "unknown variant", args: []string{"-s", "chip9", "pong.ch8"}},
		{name: "zero instructions per frame", args: []string{"-ipf", "0", "pong.ch8"}},
		{name: "too many instructions per frame", args: []string{"-ipf", "1001", "pong.ch8"}},
		{name: "invalid scale", args: []string{"-scale", "0", "pong.ch8"}},
		{name: "negative frames", args: []string{"-frames", "-1", "pong.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs("retrochip8", tt.args, flag.ContinueOnError)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"retrochip8", "-s", "xochip", "test.xo8"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "xochip", opts.Variant)
	assert.Equal(t, "test.xo8", opts.Input)
}

func TestWriteUsage(t *testing.T) {
	_, err := parseArgs("retrochip8", nil, flag.ContinueOnError)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))

	var buf bytes.Buffer
	usageErr.WriteUsage(&buf)
	assert.Contains(t, buf.String(), "usage: retrochip8")
	assert.Contains(t, buf.String(), "-ipf")
}
