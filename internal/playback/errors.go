package playback

import "errors"

var (
	// ErrIndexOutOfRange is returned by SelectTrack for an invalid index.
	ErrIndexOutOfRange = errors.New("track index out of range")
	// ErrInvalidFraction is returned by SeekTo for a NaN fraction.
	ErrInvalidFraction = errors.New("invalid seek fraction")
	// ErrInvalidVolume is returned by SetVolume for a NaN volume.
	ErrInvalidVolume = errors.New("invalid volume")
	// ErrClosed is returned by operations on a closed controller.
	ErrClosed = errors.New("controller closed")
)

// Operation names carried by ErrorEvent.
const (
	OpLoad = "load"
	OpPlay = "play"
	OpSeek = "seek"
)
