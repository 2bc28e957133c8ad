// Package audio implements the beeper tone of the interpreter.
package audio

import (
	"encoding/binary"
	"sync/atomic"
)

// Tone parameters of the beeper.
const (
	SampleRate = 44100
	Frequency  = 440
	Amplitude  = 0x2000
)

// Square generates the two levels of a square wave.
type Square struct {
	sampleRate int
	frequency  int
	phase      int
}

// NewSquare returns a square wave generator.
func NewSquare(sampleRate, frequency int) *Square {
	return &Square{
		sampleRate: sampleRate,
		frequency:  frequency,
	}
}

// Next advances the wave by one sample and returns whether the sample is in
// the high half of the period.
func (s *Square) Next() bool {
	high := s.phase*2 < s.sampleRate
	s.phase += s.frequency
	if s.phase >= s.sampleRate {
		s.phase -= s.sampleRate
	}
	return high
}

// Tone is a mono signed 16-bit little endian PCM stream of the beeper. It
// produces silence while inactive. SetActive may be called from another
// goroutine than Read.
type Tone struct {
	active atomic.Bool
	wave   *Square
}

// NewTone returns an inactive tone.
func NewTone() *Tone {
	return &Tone{
		wave: NewSquare(SampleRate, Frequency),
	}
}

// SetActive switches the tone on or off.
func (t *Tone) SetActive(active bool) {
	t.active.Store(active)
}

// Active returns whether the tone is playing.
func (t *Tone) Active() bool {
	return t.active.Load()
}

// Read fills p with whole samples.
func (t *Tone) Read(p []byte) (int, error) {
	n := len(p) &^ 1
	active := t.active.Load()

	for i := 0; i < n; i += 2 {
		var sample int16
		if active {
			sample = -Amplitude
			if t.wave.Next() {
				sample = Amplitude
			}
		}
		binary.LittleEndian.PutUint16(p[i:], uint16(sample))
	}
	return n, nil
}
