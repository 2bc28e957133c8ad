// Package timer implements the delay and sound countdown registers.
package timer

// Timers holds the two 8-bit countdown registers. They are decremented by
// the host once per frame and never go below zero.
type Timers struct {
	Delay byte
	Sound byte
}

// Decrement counts both timers down by one, saturating at zero.
func (t *Timers) Decrement() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// SoundActive returns whether the beeper should be playing.
func (t *Timers) SoundActive() bool {
	return t.Sound > 0
}
