// Package icons selects the glyphs used by the player UI.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio   string
	Artist  string
	Play    string
	Pause   string
	Stop    string
	Volume  string
	Muted   string
	Playing string // marker on the catalog card of the current track
	NoCover string
}

var (
	nerdIcons = Icons{
		Audio:   " ", // nf-fa-music
		Artist:  " ", // nf-fa-user
		Play:    "", // nf-fa-play
		Pause:   "", // nf-fa-pause
		Stop:    "", // nf-fa-stop
		Volume:  "󰕾", // nf-md-volume_high
		Muted:   "󰝟", // nf-md-volume_off
		Playing: "󰎈 ", // nf-md-music_note
		NoCover: "󰀥", // nf-md-album
	}

	unicodeIcons = Icons{
		Audio:   "🎵 ",
		Artist:  "👤 ",
		Play:    "▶",
		Pause:   "⏸",
		Stop:    "■",
		Volume:  "🔊",
		Muted:   "🔇",
		Playing: "♪ ",
		NoCover: "💿",
	}

	noneIcons = Icons{
		Play:    ">",
		Pause:   "||",
		Stop:    "[]",
		Volume:  "vol",
		Muted:   "mute",
		Playing: "* ",
		NoCover: "?",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatTitle formats a track title with the audio icon.
func FormatTitle(name string) string {
	return current.Audio + name
}

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string {
	if name == "" {
		return ""
	}
	return current.Artist + name
}

// PlayState returns the icon for the transport state.
func PlayState(playing, hasTrack bool) string {
	switch {
	case !hasTrack:
		return current.Stop
	case playing:
		return current.Play
	default:
		return current.Pause
	}
}

// Volume returns the volume icon for a level in [0, 100].
func Volume(level float64) string {
	if level <= 0 {
		return current.Muted
	}
	return current.Volume
}

// Playing returns the current-track marker.
func Playing() string {
	return current.Playing
}

// NoCover returns the placeholder shown when a track has no cover art.
func NoCover() string {
	return current.NoCover
}
