package wavwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/youpy/go-wav"
)

func TestWavWriter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "beep.wav")
	w := New(log.NewTestLogger(t), filename)

	w.SetActive(false)
	w.SetActive(true)
	w.SetActive(true)
	assert.Equal(t, 3*SamplesPerFrame, w.Samples())
	assert.Equal(t, silence, w.buffer[0].Values[0])
	assert.Equal(t, silence+amplitude, w.buffer[SamplesPerFrame].Values[0])

	assert.NoError(t, w.Close())

	f, err := os.Open(filename)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	reader := wav.NewReader(f)
	format, err := reader.Format()
	assert.NoError(t, err)
	assert.Equal(t, uint16(1), format.NumChannels)
	assert.Equal(t, uint32(SampleRate), format.SampleRate)
	assert.Equal(t, uint16(8), format.BitsPerSample)

	info, err := f.Stat()
	assert.NoError(t, err)
	assert.True(t, info.Size() > int64(3*SamplesPerFrame))
}

func TestWavWriterInvalidPath(t *testing.T) {
	w := New(log.NewTestLogger(t), filepath.Join(t.TempDir(), "missing", "beep.wav"))
	w.SetActive(true)
	assert.Error(t, w.Close())
}
