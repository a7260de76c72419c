package player

import (
	"bytes"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
)

// TrackInfo describes a decoded source. Tag fields are empty when the
// resource carries no embedded metadata.
type TrackInfo struct {
	Title      string
	Artist     string
	Album      string
	Year       int
	Genre      string
	Format     string
	SampleRate int
	BitDepth   int
	Duration   time.Duration
}

// readTrackInfo builds a TrackInfo from the decoded format and whatever
// tags dhowden/tag finds in data.
func readTrackInfo(data []byte, kind string, format beep.Format, length int) *TrackInfo {
	info := &TrackInfo{
		Format:     kind,
		SampleRate: int(format.SampleRate),
		BitDepth:   format.Precision * 8,
		Duration:   format.SampleRate.D(length),
	}

	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return info
	}
	info.Title = m.Title()
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Year = m.Year()
	info.Genre = m.Genre()
	return info
}
