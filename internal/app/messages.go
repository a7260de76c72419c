// Package app contains the Bubble Tea application shell: it fetches the
// catalog, routes keys to the playback controller and renders the views.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/playback"
)

// PlaybackMessage is implemented by messages coming from the playback
// controller subscription.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// CatalogLoadedMsg carries the result of the startup catalog fetch.
type CatalogLoadedMsg struct {
	Catalog catalog.Catalog
	Err     error
}

// CoverLoadedMsg carries a downloaded cover image.
type CoverLoadedMsg struct {
	URL  string
	Data []byte
	Err  error
}

// StderrMsg carries a line written to fd 2 by a C library.
type StderrMsg struct {
	Line string
}

// ServiceStateChangedMsg is sent when the phase or play intent changes.
type ServiceStateChangedMsg playback.StateChange

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when the current track changes.
type ServiceTrackChangedMsg playback.TrackChange

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServicePositionChangedMsg is sent on time updates and seeks.
type ServicePositionChangedMsg playback.PositionChange

func (ServicePositionChangedMsg) playbackMessage() {}

// ServiceVolumeChangedMsg is sent when the volume changes.
type ServiceVolumeChangedMsg playback.VolumeChange

func (ServiceVolumeChangedMsg) playbackMessage() {}

// ServiceCatalogChangedMsg is sent when a catalog is loaded into the controller.
type ServiceCatalogChangedMsg playback.CatalogChange

func (ServiceCatalogChangedMsg) playbackMessage() {}

// ServiceProgressMsg reports download progress of the current track.
type ServiceProgressMsg playback.ProgressChange

func (ServiceProgressMsg) playbackMessage() {}

// ServiceErrorMsg is sent when loading, playing or seeking fails.
type ServiceErrorMsg playback.ErrorEvent

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the controller is closed.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}
