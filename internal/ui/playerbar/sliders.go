package playerbar

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/onestop/internal/icons"
	"github.com/llehouerou/onestop/internal/playback"
	"github.com/llehouerou/onestop/internal/ui/render"
	"github.com/llehouerou/onestop/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// seekBar draws the 0-100 seek slider for a fraction in [0, 1].
func seekBar(fraction float64, width int) string {
	return slider(fraction*100, width)
}

func slider(value float64, width int) string {
	st := styles.T().S()
	filled := render.SliderFill(value, width)
	return st.SliderFilled.Render(strings.Repeat(filledBlock, filled)) +
		st.SliderEmpty.Render(strings.Repeat(emptyBlock, max(width-filled, 0)))
}

// renderVolume renders "icon ━━━── 50".
func renderVolume(volume float64, width int) string {
	return fmt.Sprintf("%s %s %3d", icons.Volume(volume), slider(volume, width), int(volume+0.5))
}

// loadingLabel describes the in-flight download.
func loadingLabel(s playback.State) string {
	if s.Loaded <= 0 {
		return "Loading…"
	}
	loaded := humanize.Bytes(uint64(s.Loaded)) //nolint:gosec // Loaded is positive here
	if s.Total > 0 {
		return fmt.Sprintf("Loading %s / %s", loaded, humanize.Bytes(uint64(s.Total))) //nolint:gosec // Total is positive here
	}
	return "Loading " + loaded
}

// loadedFraction returns the download progress in [0, 1], or -1 if unknown.
func loadedFraction(s playback.State) float64 {
	if s.Total <= 0 {
		return -1
	}
	return min(max(float64(s.Loaded)/float64(s.Total), 0), 1)
}
