package framebuffer

import "strings"

// Snapshot is a read-only copy of the screen handed to renderers.
// Pixels is the backing grid of MaxWidth x MaxHeight in row-major order,
// Width and Height are the active logical resolution.
type Snapshot struct {
	Pixels    []bool
	Width     int
	Height    int
	MaxWidth  int
	MaxHeight int
}

// At returns the backing pixel at x, y.
func (s Snapshot) At(x, y int) bool {
	if x < 0 || y < 0 || x >= s.MaxWidth || y >= s.MaxHeight {
		return false
	}
	return s.Pixels[y*s.MaxWidth+x]
}

// Lit returns the number of set pixels.
func (s Snapshot) Lit() int {
	count := 0
	for _, p := range s.Pixels {
		if p {
			count++
		}
	}
	return count
}

// String renders the backing grid as text, one line per row.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow((s.MaxWidth + 1) * s.MaxHeight)

	for y := range s.MaxHeight {
		for x := range s.MaxWidth {
			if s.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
