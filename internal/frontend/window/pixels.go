// Package window implements the desktop frontend that shows the screen in a
// window and reads the hex keypad from the keyboard.
package window

import (
	"image/color"

	"github.com/retroenv/retrochip8/internal/framebuffer"
)

// Display colors.
var (
	Foreground = color.RGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF}
	Background = color.RGBA{R: 0x99, G: 0x66, B: 0x00, A: 0xFF}
)

// fillPixels converts the backing grid of the snapshot to RGBA pixels.
// dst must hold 4 bytes per backing pixel.
func fillPixels(dst []byte, snapshot framebuffer.Snapshot) {
	for i, lit := range snapshot.Pixels {
		c := Background
		if lit {
			c = Foreground
		}
		offset := i * 4
		dst[offset] = c.R
		dst[offset+1] = c.G
		dst[offset+2] = c.B
		dst[offset+3] = c.A
	}
}
