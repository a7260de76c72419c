package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCatalogFetch,
			err:      nil,
			expected: "",
		},
		{
			name:     "catalog fetch",
			op:       OpCatalogFetch,
			err:      errors.New("unexpected status: 502 Bad Gateway"),
			expected: "Failed to load songs: unexpected status: 502 Bad Gateway",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "seek operation",
			op:       OpPlaybackSeek,
			err:      errors.New("invalid fraction"),
			expected: "Failed to seek: invalid fraction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTrackLoad,
			context:  "Song",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpTrackLoad,
			context:  "Artist - Song",
			err:      errors.New("unsupported audio format"),
			expected: "Failed to load track 'Artist - Song': unsupported audio format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpCoverFetch,
			context:  "",
			err:      errors.New("timeout"),
			expected: "Failed to load cover art: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
