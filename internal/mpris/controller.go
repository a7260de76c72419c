// Package mpris exposes playback over the MPRIS D-Bus interface.
package mpris

import (
	"github.com/llehouerou/onestop/internal/playback"
)

// Controller is the subset of *playback.Controller driven by remote clients.
type Controller interface {
	TogglePlayPause() error
	Play() error
	Pause() error
	Next()
	Prev()
	SeekTo(fraction float64) error
	SetVolume(v float64) error
	Snapshot() playback.State
}

var _ Controller = (*playback.Controller)(nil)
