package player

import (
	"fmt"
	"time"
)

// EventType identifies a media element signal.
type EventType int

const (
	// EventLoadStart is emitted when a new source starts fetching.
	EventLoadStart EventType = iota
	// EventProgress reports downloaded bytes of the current source.
	EventProgress
	// EventCanPlay is emitted once the source is decoded and playable.
	EventCanPlay
	EventPlaying
	EventPause
	// EventTimeUpdate is emitted periodically while playing.
	EventTimeUpdate
	EventSeeked
	// EventEnded is emitted when the stream reaches its end.
	EventEnded
	// EventError reports a fetch or decode failure.
	EventError
)

// String returns the event name for debugging.
func (t EventType) String() string {
	switch t {
	case EventLoadStart:
		return "loadstart"
	case EventProgress:
		return "progress"
	case EventCanPlay:
		return "canplay"
	case EventPlaying:
		return "playing"
	case EventPause:
		return "pause"
	case EventTimeUpdate:
		return "timeupdate"
	case EventSeeked:
		return "seeked"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

// Event is a signal from the media element.
type Event struct {
	Type       EventType
	Generation uint64

	Position time.Duration
	Duration time.Duration

	// Loaded and Total are byte counts for EventProgress. Total is -1 when
	// the server did not announce a length.
	Loaded int64
	Total  int64

	// Info is set on EventCanPlay.
	Info *TrackInfo
	// Err is set on EventError.
	Err error
}
