// Package catalog holds the track list served by the song catalog endpoint.
package catalog

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Track is one playable song. Tracks are immutable once fetched.
type Track struct {
	ID       string
	Title    string
	Artist   string
	CoverURL string
	AudioURL string
}

// DisplayTitle returns the title, falling back to the last URL segment.
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	if i := strings.LastIndex(t.AudioURL, "/"); i >= 0 && i < len(t.AudioURL)-1 {
		return t.AudioURL[i+1:]
	}
	return t.AudioURL
}

// Catalog is the ordered, read-only list of tracks for a session.
type Catalog struct {
	tracks []Track
	index  map[string]int
}

// New builds a catalog from raw tracks.
// Tracks without an audio URL are dropped, duplicate IDs keep their first
// occurrence, and tracks without an ID get one derived from the audio URL.
func New(tracks []Track) Catalog {
	c := Catalog{
		tracks: make([]Track, 0, len(tracks)),
		index:  make(map[string]int, len(tracks)),
	}
	for _, t := range tracks {
		t.AudioURL = strings.TrimSpace(t.AudioURL)
		if t.AudioURL == "" {
			continue
		}
		if t.ID == "" {
			t.ID = derivedID(t.AudioURL)
		}
		if _, dup := c.index[t.ID]; dup {
			continue
		}
		c.index[t.ID] = len(c.tracks)
		c.tracks = append(c.tracks, t)
	}
	return c
}

// Len returns the number of tracks.
func (c Catalog) Len() int {
	return len(c.tracks)
}

// IsEmpty returns true if the catalog has no tracks.
func (c Catalog) IsEmpty() bool {
	return len(c.tracks) == 0
}

// At returns the track at index i, or nil if out of bounds.
// The returned track is a copy.
func (c Catalog) At(i int) *Track {
	if i < 0 || i >= len(c.tracks) {
		return nil
	}
	t := c.tracks[i]
	return &t
}

// Tracks returns a copy of all tracks in order.
func (c Catalog) Tracks() []Track {
	result := make([]Track, len(c.tracks))
	copy(result, c.tracks)
	return result
}

// IndexOf returns the position of the track with the given ID, or -1.
func (c Catalog) IndexOf(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

func derivedID(audioURL string) string {
	h := fnv.New64a()
	h.Write([]byte(audioURL))
	return fmt.Sprintf("url-%x", h.Sum64())
}
