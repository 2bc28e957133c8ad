package audio

import (
	"encoding/binary"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSquare(t *testing.T) {
	wave := NewSquare(8, 1)

	var levels []bool
	for range 16 {
		levels = append(levels, wave.Next())
	}

	for i, high := range levels {
		assert.Equal(t, i%8 < 4, high)
	}
}

func TestSquareFrequency(t *testing.T) {
	wave := NewSquare(SampleRate, Frequency)

	transitions := 0
	previous := wave.Next()
	for range SampleRate - 1 {
		level := wave.Next()
		if level && !previous {
			transitions++
		}
		previous = level
	}
	// one rising edge per period, the first period starts high
	assert.Equal(t, Frequency-1, transitions)
}

func TestToneSilentWhenInactive(t *testing.T) {
	tone := NewTone()
	assert.False(t, tone.Active())

	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = 0xFF
	}

	n, err := tone.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 64, n)
	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
}

func TestToneActive(t *testing.T) {
	tone := NewTone()
	tone.SetActive(true)
	assert.True(t, tone.Active())

	buf := make([]byte, 201)
	n, err := tone.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 200, n)

	first := int16(binary.LittleEndian.Uint16(buf))
	assert.Equal(t, int16(Amplitude), first)

	sawLow := false
	for i := 0; i < n; i += 2 {
		sample := int16(binary.LittleEndian.Uint16(buf[i:]))
		assert.True(t, sample == Amplitude || sample == -Amplitude)
		if sample == -Amplitude {
			sawLow = true
		}
	}
	assert.True(t, sawLow)
}
