// Package playerbar renders the transport bar: play state, seek and volume
// sliders, elapsed time and the loading indicator.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/onestop/internal/icons"
	"github.com/llehouerou/onestop/internal/playback"
	"github.com/llehouerou/onestop/internal/ui/render"
	"github.com/llehouerou/onestop/internal/ui/styles"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // Single-line view
	ModeExpanded                    // Cover art and metadata
)

// Toggle returns the other mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeExpanded {
		return ModeCompact
	}
	return ModeExpanded
}

// Layout constants.
const (
	artCols     = 20
	artRows     = 10
	contentRows = artRows
	minExpanded = 50 // narrower terminals fall back to compact
	volumeWidth = 10
	minSeekBar  = 5
)

// View holds everything needed to render the bar besides the playback state.
type View struct {
	Mode    DisplayMode
	Spinner string // current spinner frame, shown while loading
	Cover   string // terminal image sequence for the current cover, if any
}

// Height returns the rendered height for the given mode and width.
// The bar takes no space when there is nothing to play.
func Height(s playback.State, mode DisplayMode, width int) int {
	if s.IsEmpty() {
		return 0
	}
	if mode == ModeExpanded && width >= minExpanded {
		return contentRows + 2
	}
	return 3
}

// Render returns the player bar for the given width.
// Returns empty string when the catalog is empty.
func Render(s playback.State, v View, width int) string {
	if s.IsEmpty() {
		return ""
	}
	if v.Mode == ModeExpanded && width >= minExpanded {
		return renderExpanded(s, v, width)
	}
	return renderCompact(s, v, width)
}

func renderCompact(s playback.State, v View, width int) string {
	innerWidth := max(width-6, 0) // border and padding
	st := styles.T().S()

	status := statusIcon(s, v)
	sep := "   "
	volume := renderVolume(s.Volume, volumeWidth)
	timeStr := st.Time.Render(timeLabel(s))

	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(timeStr) + len(sep)
	if innerWidth-fixed-lipgloss.Width(volume)-len(sep) >= minSeekBar+10 {
		fixed += lipgloss.Width(volume) + len(sep)
	} else {
		volume = ""
	}

	label := trackLabel(s)
	labelWidth := min(lipgloss.Width(label), max(innerWidth-fixed-len(sep)-minSeekBar, 0))
	if labelWidth > 0 {
		fixed += len(sep)
	}
	barWidth := max(innerWidth-fixed-labelWidth, minSeekBar)

	var middle string
	if s.IsLoading() {
		middle = render.Pad(render.TruncateStyled(loadingLabel(s), barWidth), barWidth)
	} else {
		middle = seekBar(s.SeekFraction, barWidth)
	}

	var b strings.Builder
	if labelWidth > 0 {
		b.WriteString(st.Playing.Render(render.TruncateStyled(label, labelWidth)))
		b.WriteString(sep)
	}
	b.WriteString(status)
	b.WriteString("  ")
	b.WriteString(middle)
	b.WriteString(sep)
	b.WriteString(timeStr)
	if volume != "" {
		b.WriteString(sep)
		b.WriteString(volume)
	}

	return st.Bar.Padding(0, 2).Width(max(width-2, 0)).Render(b.String())
}

func statusIcon(s playback.State, v View) string {
	if s.IsLoading() && v.Spinner != "" {
		return v.Spinner
	}
	return icons.PlayState(s.IsPlaying, s.Track != nil)
}

func trackLabel(s playback.State) string {
	if s.Track == nil {
		return "No track"
	}
	label := s.Track.DisplayTitle()
	if s.Track.Artist != "" {
		label += " · " + s.Track.Artist
	}
	return render.Sanitize(label)
}

func timeLabel(s playback.State) string {
	return render.Duration(s.Position) + " / " + render.Duration(s.Duration)
}
