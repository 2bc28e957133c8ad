// Package framebuffer implements the multi-resolution monochrome pixel grid
// that CHIP-8 programs draw into.
//
// The backing grid always has the size of the largest resolution of the
// variant. When a lower resolution is active, every logical pixel covers a
// block of backing pixels so that switching resolution never reallocates.
package framebuffer

import (
	"github.com/retroenv/retrochip8/internal/variant"
)

// horizontalScroll is the distance in pixels of the left and right scroll
// instructions.
const horizontalScroll = 4

// Framebuffer is a fixed-capacity boolean pixel grid.
type Framebuffer struct {
	pixels      []bool
	base        variant.Resolution
	max         variant.Resolution
	current     variant.Resolution
	scrollQuirk bool
}

// New returns a cleared framebuffer sized to the largest of the given
// resolutions, starting in the first one. The resolutions must be in
// ascending order.
func New(resolutions []variant.Resolution, scrollQuirk bool) *Framebuffer {
	base := resolutions[0]
	maxRes := resolutions[len(resolutions)-1]
	return &Framebuffer{
		pixels:      make([]bool, maxRes.Width*maxRes.Height),
		base:        base,
		max:         maxRes,
		current:     base,
		scrollQuirk: scrollQuirk,
	}
}

// Current returns the active logical resolution.
func (f *Framebuffer) Current() variant.Resolution {
	return f.current
}

// Max returns the resolution of the backing grid.
func (f *Framebuffer) Max() variant.Resolution {
	return f.max
}

// Scale returns the number of backing pixels per logical pixel on each axis.
func (f *Framebuffer) Scale() (int, int) {
	return f.max.Width / f.current.Width, f.max.Height / f.current.Height
}

// Pixel returns the state of the backing pixel at x, y. Coordinates outside
// of the grid report an unset pixel.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= f.max.Width || y >= f.max.Height {
		return false
	}
	return f.pixels[y*f.max.Width+x]
}

// Clear unsets all pixels.
func (f *Framebuffer) Clear() {
	clear(f.pixels)
}

// SetHires switches between the base and the maximum resolution and clears
// the screen.
func (f *Framebuffer) SetHires(hires bool) {
	if hires {
		f.current = f.max
	} else {
		f.current = f.base
	}
	f.Clear()
}

// scrollDistance scales a scroll distance when the scroll quirk measures it
// in logical pixels of the active resolution.
func (f *Framebuffer) scrollDistance(n int) int {
	if !f.scrollQuirk {
		return n
	}
	_, sy := f.Scale()
	return n * sy
}

// ScrollDown moves all rows down by n, vacated rows are cleared.
func (f *Framebuffer) ScrollDown(n int) {
	n = f.scrollDistance(n)
	width := f.max.Width

	for y := f.max.Height - 1; y >= 0; y-- {
		row := f.pixels[y*width : (y+1)*width]
		if y >= n {
			copy(row, f.pixels[(y-n)*width:(y-n+1)*width])
		} else {
			clear(row)
		}
	}
}

// ScrollRight moves all columns right by 4, vacated columns are cleared.
func (f *Framebuffer) ScrollRight() {
	n := min(f.scrollDistance(horizontalScroll), f.max.Width)
	width := f.max.Width

	for y := range f.max.Height {
		row := f.pixels[y*width : (y+1)*width]
		copy(row[n:], row[:width-n])
		clear(row[:n])
	}
}

// ScrollLeft moves all columns left by 4, vacated columns are cleared.
func (f *Framebuffer) ScrollLeft() {
	n := min(f.scrollDistance(horizontalScroll), f.max.Width)
	width := f.max.Width

	for y := range f.max.Height {
		row := f.pixels[y*width : (y+1)*width]
		copy(row, row[n:])
		clear(row[width-n:])
	}
}

// DrawSprite XORs a sprite onto the screen and reports whether any set pixel
// was turned off. Each entry of rows is one sprite line whose lowest width
// bits are the pixels, most significant bit leftmost.
//
// The start position wraps around the active resolution, the sprite body is
// clipped at the edge of the backing grid.
func (f *Framebuffer) DrawSprite(x, y byte, rows []uint16, width int) bool {
	sx, sy := f.Scale()
	originX := int(x) % f.current.Width
	originY := int(y) % f.current.Height
	collision := false

	for line, bits := range rows {
		top := (originY + line) * sy
		if top >= f.max.Height {
			break
		}

		for column := range width {
			if bits&(1<<(width-1-column)) == 0 {
				continue
			}

			left := (originX + column) * sx
			if left >= f.max.Width {
				break
			}

			if f.toggleBlock(left, top, sx, sy) {
				collision = true
			}
		}
	}

	return collision
}

// toggleBlock flips a block of backing pixels and reports whether any of
// them was set before.
func (f *Framebuffer) toggleBlock(left, top, width, height int) bool {
	collision := false
	for y := top; y < top+height && y < f.max.Height; y++ {
		for x := left; x < left+width && x < f.max.Width; x++ {
			index := y*f.max.Width + x
			if f.pixels[index] {
				collision = true
			}
			f.pixels[index] = !f.pixels[index]
		}
	}
	return collision
}

// Snapshot returns a copy of the current screen state.
func (f *Framebuffer) Snapshot() Snapshot {
	pixels := make([]bool, len(f.pixels))
	copy(pixels, f.pixels)

	return Snapshot{
		Pixels:    pixels,
		Width:     f.current.Width,
		Height:    f.current.Height,
		MaxWidth:  f.max.Width,
		MaxHeight: f.max.Height,
	}
}
