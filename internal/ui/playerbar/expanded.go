package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/onestop/internal/icons"
	"github.com/llehouerou/onestop/internal/playback"
	"github.com/llehouerou/onestop/internal/player"
	"github.com/llehouerou/onestop/internal/ui/kittyimg"
	"github.com/llehouerou/onestop/internal/ui/render"
	"github.com/llehouerou/onestop/internal/ui/styles"
)

// ArtSize returns the cover art size in cells used by the expanded mode.
func ArtSize() (cols, rows int) {
	return artCols, artRows
}

func renderExpanded(s playback.State, v View, width int) string {
	st := styles.T().S()
	innerWidth := max(width-2, 0)
	metaWidth := innerWidth - artCols - 2 // gap between art and metadata

	meta := make([]string, 0, contentRows)
	meta = append(meta,
		st.Playing.Render(render.TruncateStyled(trackTitle(s), metaWidth)),
		st.Base.Render(render.TruncateStyled(trackArtist(s), metaWidth)),
		"",
		st.Muted.Render(render.TruncateStyled(albumLine(s.Info), metaWidth)),
		st.Subtle.Render(render.TruncateStyled(formatLine(s.Info), metaWidth)),
		"",
		statusLine(s, v, metaWidth),
		progressLine(s, v, metaWidth),
		renderVolume(s.Volume, min(volumeWidth, max(metaWidth-10, 1))),
	)
	for len(meta) < contentRows {
		meta = append(meta, "")
	}
	meta = meta[:contentRows]

	art := strings.Split(kittyimg.Placeholder(artCols, artRows), "\n")
	if v.Cover != "" {
		blank := strings.Repeat(" ", artCols)
		for i := range art {
			art[i] = blank
		}
	}

	lines := make([]string, contentRows)
	for i := range contentRows {
		left := strings.Repeat(" ", artCols)
		if i < len(art) {
			left = art[i]
		}
		lines[i] = left + "  " + meta[i]
	}

	rendered := st.Bar.Width(innerWidth).Render(strings.Join(lines, "\n"))
	if v.Cover == "" {
		return rendered
	}
	return injectCover(rendered, v.Cover)
}

// injectCover places the image sequence right after the left border of the
// first content line, so the terminal draws it over the blank art area.
func injectCover(rendered, cover string) string {
	top, rest, ok := strings.Cut(rendered, "\n")
	if !ok {
		return rendered
	}
	border := "│"
	if !strings.HasPrefix(rest, border) {
		return rendered
	}
	return top + "\n" + border + cover + rest[len(border):]
}

func trackTitle(s playback.State) string {
	if s.Track == nil {
		return "No track"
	}
	return icons.FormatTitle(render.Sanitize(s.Track.Title))
}

func trackArtist(s playback.State) string {
	if s.Track == nil || s.Track.Artist == "" {
		return "Unknown Artist"
	}
	return icons.FormatArtist(render.Sanitize(s.Track.Artist))
}

func albumLine(info *player.TrackInfo) string {
	if info == nil || info.Album == "" {
		return ""
	}
	if info.Year > 0 {
		return fmt.Sprintf("%s (%d)", info.Album, info.Year)
	}
	return info.Album
}

func formatLine(info *player.TrackInfo) string {
	if info == nil || info.Format == "" {
		return ""
	}
	parts := []string{info.Format}
	if info.SampleRate > 0 {
		khz := float64(info.SampleRate) / 1000
		if khz == float64(int(khz)) {
			parts = append(parts, fmt.Sprintf("%d kHz", int(khz)))
		} else {
			parts = append(parts, fmt.Sprintf("%.1f kHz", khz))
		}
	}
	if info.BitDepth > 0 && info.Format != "MP3" {
		parts = append(parts, fmt.Sprintf("%d-bit", info.BitDepth))
	}
	if info.Genre != "" {
		parts = append(parts, info.Genre)
	}
	return strings.Join(parts, " · ")
}

func statusLine(s playback.State, v View, width int) string {
	st := styles.T().S()
	switch {
	case s.IsLoading():
		label := loadingLabel(s)
		if v.Spinner != "" {
			label = v.Spinner + " " + label
		}
		return st.Muted.Render(render.TruncateStyled(label, width))
	case s.Err != nil:
		return st.Error.Render(render.TruncateStyled(s.Err.Error(), width))
	}
	return ""
}

// progressLine renders "▶  1:23  ━━━━───  3:58", or a download bar while
// the track is loading and its size is known.
func progressLine(s playback.State, v View, width int) string {
	if s.IsLoading() {
		if f := loadedFraction(s); f >= 0 {
			bar := progress.New(progress.WithSolidFill(string(styles.T().Primary)), progress.WithoutPercentage())
			bar.Width = max(width, 1)
			return bar.ViewAs(f)
		}
		return ""
	}

	status := statusIcon(s, v)
	pos := render.Duration(s.Position)
	dur := render.Duration(s.Duration)
	fixed := lipgloss.Width(status) + lipgloss.Width(pos) + lipgloss.Width(dur) + 6
	barWidth := width - fixed
	if barWidth < 3 {
		return status + "  " + pos + " / " + dur
	}
	return status + "  " + pos + "  " + seekBar(s.SeekFraction, barWidth) + "  " + dur
}
