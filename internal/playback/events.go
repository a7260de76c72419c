package playback

import (
	"time"

	"github.com/llehouerou/onestop/internal/catalog"
)

// StateChange is emitted when the phase or the play intent changes.
type StateChange struct {
	Previous Phase
	Current  Phase
	Playing  bool
}

// TrackChange is emitted when the current track is swapped.
//
// Emitted by LoadCatalog, SelectTrack, Next, Prev and auto-advance on end
// of track. Not emitted when a failed load is retried on the same track.
// Index is -1 and Track nil when the catalog became empty.
type TrackChange struct {
	PreviousIndex int
	Index         int
	Track         *catalog.Track
}

// PositionChange is emitted on time updates and seeks.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
	Fraction float64
}

// VolumeChange is emitted when the volume changes.
type VolumeChange struct {
	Volume float64
}

// CatalogChange is emitted when a catalog is loaded.
type CatalogChange struct {
	Len int
}

// ProgressChange reports download progress of the current track.
type ProgressChange struct {
	Loaded int64
	Total  int64
}

// ErrorEvent is emitted when an error occurs during playback.
type ErrorEvent struct {
	Operation string // OpLoad, OpPlay or OpSeek
	Index     int
	Track     *catalog.Track
	Err       error
}
