package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// songRecord is a track record as served by the catalog endpoint.
type songRecord struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	SongAvatarURL string `json:"songAvatarURL"`
	SongURL       string `json:"songURL"`
}

// allSongsResponse is the envelope returned by the /allsongs endpoint.
type allSongsResponse struct {
	AllSongs []songRecord `json:"allsongs"`
}

func (r songRecord) toTrack() Track {
	return Track{
		ID:       r.ID,
		Title:    r.Title,
		Artist:   r.Artist,
		CoverURL: r.SongAvatarURL,
		AudioURL: r.SongURL,
	}
}

// decodeSongs parses either the {"allsongs": [...]} envelope or a bare array.
func decodeSongs(body []byte) ([]Track, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var records []songRecord
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
	} else {
		var env allSongsResponse
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		if env.AllSongs == nil {
			return nil, fmt.Errorf("missing %q field", "allsongs")
		}
		records = env.AllSongs
	}

	tracks := make([]Track, len(records))
	for i, r := range records {
		tracks[i] = r.toTrack()
	}
	return tracks, nil
}
