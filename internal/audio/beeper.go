//go:build !headless

package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Beeper plays the tone on the default audio device.
type Beeper struct {
	*Tone

	ctx    *oto.Context
	player *oto.Player
}

// New opens the audio device and starts the silent beeper stream.
func New() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{
		Tone: NewTone(),
		ctx:  ctx,
	}
	b.player = ctx.NewPlayer(b.Tone)
	b.player.Play()
	return b, nil
}

// Close stops the audio stream.
func (b *Beeper) Close() error {
	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
