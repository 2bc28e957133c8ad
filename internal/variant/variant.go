// Package variant resolves a CHIP-8 machine dialect into its immutable
// configuration of quirks, feature flags and supported resolutions.
package variant

import (
	"fmt"
	"strings"
)

// Variant is a named CHIP-8 machine dialect.
type Variant int

// Supported dialects.
const (
	Chip8 Variant = iota
	Chip48
	SuperChip10
	SuperChip11
	SuperChipModern
	SuperChipC
	XOChip

	variantCount
)

// ProgramStart is the memory address where every supported dialect loads
// and starts executing the program.
const ProgramStart = 0x200

var variantNames = [variantCount]string{
	Chip8:           "chip8",
	Chip48:          "chip48",
	SuperChip10:     "schip1.0",
	SuperChip11:     "schip1.1",
	SuperChipModern: "schip-modern",
	SuperChipC:      "schipc",
	XOChip:          "xochip",
}

// aliases accepted by ParseVariant in addition to the canonical names.
var variantAliases = map[string]Variant{
	"chip-8":      Chip8,
	"base":        Chip8,
	"chip-48":     Chip48,
	"schip":       SuperChip11,
	"schip10":     SuperChip10,
	"schip11":     SuperChip11,
	"superchip":   SuperChip11,
	"schipmodern": SuperChipModern,
	"xo-chip":     XOChip,
}

// String returns the canonical name of the variant.
func (v Variant) String() string {
	if v < 0 || v >= variantCount {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// All returns all supported variants in declaration order.
func All() []Variant {
	variants := make([]Variant, 0, variantCount)
	for v := range variantCount {
		variants = append(variants, v)
	}
	return variants
}

// Names returns the canonical names of all supported variants.
func Names() []string {
	names := make([]string, 0, variantCount)
	for _, v := range All() {
		names = append(names, v.String())
	}
	return names
}

// ParseVariant returns the variant for the given case-insensitive name.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, s := range variantNames {
		if s == name {
			return Variant(v), nil
		}
	}
	if v, ok := variantAliases[name]; ok {
		return v, nil
	}
	return Chip8, fmt.Errorf("unsupported variant '%s', valid options: %s",
		name, strings.Join(Names(), ", "))
}
