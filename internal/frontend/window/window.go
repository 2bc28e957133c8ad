//go:build !headless

package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/session"
	"github.com/retroenv/retrogolib/log"
)

// Frontend implements ebiten.Game, it runs one session frame per update.
type Frontend struct {
	title string
	scale int

	ctx     context.Context
	session *session.Session
	image   *ebiten.Image
	pixels  []byte
	width   int
	height  int
	events  []session.InputEvent
}

// New returns a window frontend with the given title and window scale.
func New(title string, scale int) *Frontend {
	return &Frontend{
		title: title,
		scale: scale,
	}
}

// Run opens the window and runs the engine until the window is closed, the
// program exits or fails. The frontend acts as renderer and input source of
// the session. Cancelling the context closes the window.
func (f *Frontend) Run(ctx context.Context, e *engine.Engine, logger *log.Logger, options ...session.Option) error {
	f.ctx = ctx
	cfg := e.Config()
	maxRes := cfg.MaxResolution()
	base := cfg.BaseResolution()

	f.width, f.height = maxRes.Width, maxRes.Height
	f.pixels = make([]byte, f.width*f.height*4)
	fillPixels(f.pixels, e.Snapshot())

	options = append(options, session.WithRenderer(f), session.WithInput(f))
	f.session = session.New(e, logger, options...)

	ebiten.SetWindowSize(base.Width*f.scale, base.Height*f.scale)
	ebiten.SetWindowTitle(f.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(session.FrameRate)

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (f *Frontend) Update() error {
	if ebiten.IsWindowBeingClosed() || f.ctx.Err() != nil {
		return ebiten.Termination
	}

	result, err := f.session.RunFrame()
	switch {
	case errors.Is(err, session.ErrQuit):
		return ebiten.Termination
	case err != nil:
		return err
	case result.Halted:
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (f *Frontend) Draw(screen *ebiten.Image) {
	if f.image == nil {
		f.image = ebiten.NewImage(f.width, f.height)
	}
	f.image.WritePixels(f.pixels)
	screen.DrawImage(f.image, nil)
}

// Layout implements ebiten.Game.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return f.width, f.height
}

// Render implements session.Renderer.
func (f *Frontend) Render(snapshot framebuffer.Snapshot) error {
	fillPixels(f.pixels, snapshot)
	return nil
}

// Poll implements session.InputSource.
func (f *Frontend) Poll() []session.InputEvent {
	f.events = f.events[:0]

	if inpututil.IsKeyJustPressed(quitKey) {
		return append(f.events, session.InputEvent{Quit: true})
	}

	for key, value := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			f.events = append(f.events, session.InputEvent{Key: value, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(key) {
			f.events = append(f.events, session.InputEvent{Key: value})
		}
	}
	return f.events
}
