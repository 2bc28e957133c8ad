package variant

import "fmt"

// Resolution is a width and height pair in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Base and extended screen resolutions.
var (
	LoRes = Resolution{Width: 64, Height: 32}
	HiRes = Resolution{Width: 128, Height: 64}
)

// Index masks applied by the add to I instruction.
const (
	IndexMask12 = 0x0FFF
	IndexMask16 = 0xFFFF
)

// Config is the immutable behavior profile of a variant.
type Config struct {
	Variant Variant

	// enabled features
	HiresEnabled         bool
	ScrollingEnabled     bool
	FlagRegistersEnabled bool

	LogicQuirk  bool // AND/OR/XOR reset VF
	ShiftQuirk  bool // shifts operate on VX instead of VY
	JumpQuirk   bool // BNNN jumps to XNN + VX instead of NNN + V0
	VblankQuirk bool // drawing waits for the next frame
	ScrollQuirk bool // scroll distance is measured in lores pixels

	// LoadStoreIncrement enables the legacy FX55/FX65 behavior of advancing
	// I by X + LoadStoreOffset.
	LoadStoreIncrement bool
	LoadStoreOffset    int

	// Dxy0LoresWidth is the width of the big sprite drawn by DXY0,
	// 0 when DXY0 draws nothing.
	Dxy0LoresWidth int

	IndexMask uint16
	PCStart   uint16

	// Resolutions in ascending order, the first is the base resolution
	// and the last the maximum resolution.
	Resolutions []Resolution
}

// BaseResolution returns the resolution the machine starts in.
func (c Config) BaseResolution() Resolution {
	return c.Resolutions[0]
}

// MaxResolution returns the largest supported resolution.
func (c Config) MaxResolution() Resolution {
	return c.Resolutions[len(c.Resolutions)-1]
}

// Resolve returns the configuration of the given variant.
func Resolve(v Variant) Config {
	cfg := defaultConfig()
	cfg.Variant = v

	switch v {
	case Chip8:

	case Chip48:
		cfg.ShiftQuirk = true
		cfg.LogicQuirk = false
		cfg.JumpQuirk = true
		cfg.LoadStoreOffset = 0

	case SuperChip10:
		cfg.HiresEnabled = true
		cfg.FlagRegistersEnabled = true
		cfg.LogicQuirk = false
		cfg.ShiftQuirk = true
		cfg.JumpQuirk = true
		cfg.LoadStoreOffset = 0
		cfg.Dxy0LoresWidth = 8
		cfg.Resolutions = []Resolution{LoRes, HiRes}

	case SuperChip11:
		cfg.HiresEnabled = true
		cfg.ScrollingEnabled = true
		cfg.FlagRegistersEnabled = true
		cfg.LogicQuirk = false
		cfg.ShiftQuirk = true
		cfg.JumpQuirk = true
		cfg.LoadStoreIncrement = false
		cfg.LoadStoreOffset = 0
		cfg.Dxy0LoresWidth = 8
		cfg.Resolutions = []Resolution{LoRes, HiRes}

	case SuperChipC:
		cfg.HiresEnabled = true
		cfg.ScrollingEnabled = true
		cfg.FlagRegistersEnabled = true
		cfg.LogicQuirk = false
		cfg.VblankQuirk = false
		cfg.Dxy0LoresWidth = 16
		cfg.Resolutions = []Resolution{LoRes, HiRes}

	case SuperChipModern:
		cfg.HiresEnabled = true
		cfg.ScrollingEnabled = true
		cfg.FlagRegistersEnabled = true
		cfg.LogicQuirk = false
		cfg.ShiftQuirk = true
		cfg.JumpQuirk = true
		cfg.VblankQuirk = false
		cfg.LoadStoreIncrement = false
		cfg.LoadStoreOffset = 0
		cfg.Dxy0LoresWidth = 16
		cfg.Resolutions = []Resolution{LoRes, HiRes}

	case XOChip:
		cfg.HiresEnabled = true
		cfg.ScrollingEnabled = true
		cfg.FlagRegistersEnabled = true
		cfg.LogicQuirk = false
		cfg.Dxy0LoresWidth = 16
		cfg.IndexMask = IndexMask16
		cfg.Resolutions = []Resolution{LoRes, HiRes}

	default:
		panic(fmt.Sprintf("unsupported variant %d", int(v)))
	}

	return cfg
}

// defaultConfig returns the profile of the COSMAC VIP CHIP-8 interpreter that
// all other variants derive from.
func defaultConfig() Config {
	return Config{
		LogicQuirk:         true,
		VblankQuirk:        true,
		LoadStoreIncrement: true,
		LoadStoreOffset:    1,
		IndexMask:          IndexMask12,
		PCStart:            ProgramStart,
		Resolutions:        []Resolution{LoRes},
	}
}
