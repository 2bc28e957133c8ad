//go:build headless

package audio

import "errors"

// ErrUnavailable is returned when the binary was built without audio support.
var ErrUnavailable = errors.New("audio output not available in headless build")

// Beeper is not available in headless builds.
type Beeper struct {
	*Tone
}

// New returns ErrUnavailable.
func New() (*Beeper, error) {
	return nil, ErrUnavailable
}

// Close does nothing.
func (b *Beeper) Close() error {
	return nil
}
