// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

var (
	// ErrNoSource is returned by Play when no source has been loaded.
	ErrNoSource = errors.New("no source loaded")
	// ErrNotReady is returned when the loaded source has not been decoded yet.
	ErrNotReady = errors.New("source not ready")
	// ErrUnsupportedFormat is reported when the fetched audio cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrClosed is returned by operations on a closed element.
	ErrClosed = errors.New("player closed")
)

// Interface is the media element contract.
//
// Commands return immediately. Progress is reported through events delivered
// asynchronously, in order, to the listeners registered with Subscribe. Every
// event carries the generation returned by the Load that produced it, so
// listeners can discard events from a source that has since been replaced.
type Interface interface {
	// Load assigns a new source and starts fetching it. Any previous source
	// is released. Returns the generation tagging this load's events.
	Load(src string) uint64
	Play() error
	Pause()
	// Stop releases the current source without emitting events.
	Stop()
	SeekTo(pos time.Duration) error
	// SetVolume sets the output level (0.0 to 1.0).
	SetVolume(level float64)
	Volume() float64
	State() State
	Position() time.Duration
	Duration() time.Duration
	// Subscribe registers fn for all subsequent events. The returned func
	// removes it and is safe to call more than once.
	Subscribe(fn func(Event)) (unsubscribe func())
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
