// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
	Wav   string `flag:"wav" usage:"record the beeper to a .wav file"`
	Batch string `flag:"batch" usage:"run a batch of files matching pattern headless (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	Variant  string `flag:"s" usage:"interpreter variant (default: auto-detect)"`
	Debug    bool   `flag:"debug" usage:"enable debug logging and instruction trace"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
	NoSound  bool   `flag:"nosound" usage:"disable audio output"`
	Headless bool   `flag:"headless" usage:"run without a window"`
	Dump     bool   `flag:"dump" usage:"print the screen after a headless run"`
}

// Machine contains the emulation timing and display options.
type Machine struct {
	InstructionsPerFrame int `flag:"ipf" usage:"instructions executed per 60 Hz frame" default:"11"`
	Scale                int `flag:"scale" usage:"window scale factor" default:"8"`
	Frames               int `flag:"frames" usage:"number of frames to run, 0 for unlimited"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Machine
}

// Defaults for the machine options.
const (
	DefaultInstructionsPerFrame = 11
	MaxInstructionsPerFrame     = 1000
	DefaultScale                = 8
	DefaultHeadlessFrames       = 600
)
