// Package wavwriter records the beeper output to a WAV file. The audio data
// is buffered in memory and written to disk on Close.
package wavwriter

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrogolib/log"
	"github.com/youpy/go-wav"
)

// Recording format.
const (
	SampleRate      = 22050
	FrameRate       = 60
	SamplesPerFrame = SampleRate / FrameRate

	silence   = 0x80
	amplitude = 0x20
)

// WavWriter implements the session.Beeper interface, each call records the
// beeper state for the duration of one frame.
type WavWriter struct {
	logger   *log.Logger
	filename string
	buffer   []wav.Sample
	wave     *audio.Square
}

// New returns a writer that creates filename on Close.
func New(logger *log.Logger, filename string) *WavWriter {
	return &WavWriter{
		logger:   logger,
		filename: filename,
		buffer:   make([]wav.Sample, 0, SamplesPerFrame*FrameRate),
		wave:     audio.NewSquare(SampleRate, audio.Frequency),
	}
}

// SetActive records one frame of tone or silence.
func (w *WavWriter) SetActive(active bool) {
	for range SamplesPerFrame {
		value := silence
		if active {
			value = silence - amplitude
			if w.wave.Next() {
				value = silence + amplitude
			}
		}

		var s wav.Sample
		s.Values[0] = value
		w.buffer = append(w.buffer, s)
	}
}

// Samples returns the number of recorded samples.
func (w *WavWriter) Samples() int {
	return len(w.buffer)
}

// Close writes the recording to disk.
func (w *WavWriter) Close() (rerr error) {
	f, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing wav file: %w", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(w.buffer)), 1, SampleRate, 8)
	if enc == nil {
		return errors.New("bad parameters for wav encoding")
	}

	w.logger.Info("Writing audio", log.String("file", w.filename), log.Int("samples", len(w.buffer)))
	if err := enc.WriteSamples(w.buffer); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	return nil
}
