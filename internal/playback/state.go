// internal/playback/state.go
package playback

import (
	"time"

	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/player"
)

// State is a read-only snapshot of the controller, suitable for rendering.
type State struct {
	// CurrentIndex is -1 when the catalog is empty.
	CurrentIndex int
	// IsPlaying is the user's play intent, reconciled with the element.
	IsPlaying bool
	// SeekFraction is the playback position as a fraction of the duration.
	SeekFraction float64
	// Volume is in [0, 100].
	Volume float64

	Phase    Phase
	Track    *catalog.Track
	Info     *player.TrackInfo
	Position time.Duration
	Duration time.Duration
	// Loaded and Total are the byte counts of the in-flight load. Total is
	// -1 when unknown.
	Loaded     int64
	Total      int64
	CatalogLen int
	// Err is the last playback error, cleared by the next track swap.
	Err error
}

// IsEmpty returns true if there is no catalog to play from.
func (s State) IsEmpty() bool {
	return s.CatalogLen == 0
}

// IsLoading returns true while the current track is being fetched.
func (s State) IsLoading() bool {
	return s.Phase == PhaseLoading
}
