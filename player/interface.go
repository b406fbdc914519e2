package player

import "github.com/wildeyedskies/go-mpv/mpv"

// Player is the delegated playback capability. The controller never touches
// it; the presentation layer drives it from controller state and stream URLs.
type Player interface {
	// Play starts playback of the given stream URL, replacing anything playing.
	Play(url string) error

	// TogglePause flips the pause state of the loaded stream.
	TogglePause() error

	// Stop stops playback completely
	Stop() error

	// GetProgress returns the current playback position and total duration in seconds
	GetProgress() (currentPos, totalDuration float64, err error)

	// IsPaused returns whether playback is currently paused
	IsPaused() (bool, error)

	// IsSongLoaded returns whether a stream is currently loaded
	IsSongLoaded() (bool, error)

	// Events returns a channel of raw player events (end-of-file drives
	// auto-advance)
	Events() <-chan *mpv.Event

	// Cleanup terminates the engine and releases its resources
	Cleanup()
}
