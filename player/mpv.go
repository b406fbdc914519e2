package player

import (
	"context"
	"fmt"
	"time"

	"github.com/wildeyedskies/go-mpv/mpv"
)

// MPVPlayer implements Player on top of an embedded mpv instance. Audio
// decoding happens entirely inside mpv; this wrapper only issues commands.
type MPVPlayer struct {
	handle *mpv.Mpv
	events chan *mpv.Event
}

var _ Player = (*MPVPlayer)(nil)

// NewMPVPlayer creates and initializes an mpv instance configured for
// audio-only streaming. The event listener is bound to ctx and stops with it.
func NewMPVPlayer(ctx context.Context) (*MPVPlayer, error) {
	handle := mpv.Create()
	handle.SetOptionString("audio-display", "no")
	handle.SetOptionString("video", "no")

	if err := handle.Initialize(); err != nil {
		handle.TerminateDestroy()
		return nil, fmt.Errorf("failed to initialize mpv: %w", err)
	}

	return &MPVPlayer{
		handle: handle,
		events: listenEvents(ctx, handle),
	}, nil
}

func (p *MPVPlayer) Play(url string) error {
	if p.handle == nil {
		return fmt.Errorf("mpv instance not initialized")
	}
	return p.handle.Command([]string{"loadfile", url})
}

func (p *MPVPlayer) TogglePause() error {
	if p.handle == nil {
		return fmt.Errorf("mpv instance not initialized")
	}
	return p.handle.Command([]string{"cycle", "pause"})
}

func (p *MPVPlayer) Stop() error {
	if p.handle == nil {
		return fmt.Errorf("mpv instance not initialized")
	}
	return p.handle.Command([]string{"stop"})
}

func (p *MPVPlayer) GetProgress() (float64, float64, error) {
	if p.handle == nil {
		return 0, 0, fmt.Errorf("mpv instance not initialized")
	}
	pos, err := p.handle.GetProperty("time-pos", mpv.FORMAT_DOUBLE)
	if err != nil {
		return 0, 0, err
	}
	duration, err := p.handle.GetProperty("duration", mpv.FORMAT_DOUBLE)
	if err != nil {
		return 0, 0, err
	}
	return pos.(float64), duration.(float64), nil
}

func (p *MPVPlayer) IsPaused() (bool, error) {
	if p.handle == nil {
		return false, fmt.Errorf("mpv instance not initialized")
	}
	paused, err := p.handle.GetProperty("pause", mpv.FORMAT_FLAG)
	if err != nil {
		return false, err
	}
	return paused.(bool), nil
}

func (p *MPVPlayer) IsSongLoaded() (bool, error) {
	if p.handle == nil {
		return false, fmt.Errorf("mpv instance not initialized")
	}
	idle, err := p.handle.GetProperty("idle-active", mpv.FORMAT_FLAG)
	if err != nil {
		return false, err
	}
	return !idle.(bool), nil
}

func (p *MPVPlayer) Events() <-chan *mpv.Event {
	return p.events
}

func (p *MPVPlayer) Cleanup() {
	if p.handle != nil {
		p.handle.Command([]string{"quit"})
		p.handle.TerminateDestroy()
		p.handle = nil
	}
}

func listenEvents(ctx context.Context, handle *mpv.Mpv) chan *mpv.Event {
	c := make(chan *mpv.Event)
	go func() {
		defer close(c)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				e := handle.WaitEvent(1)
				if e == nil {
					// avoid spinning when mpv has nothing to report
					time.Sleep(10 * time.Millisecond)
					continue
				}
				select {
				case c <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return c
}
