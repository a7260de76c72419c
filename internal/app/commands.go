package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/onestop/internal/stderr"
)

// FetchCatalogCmd fetches the catalog once.
func FetchCatalogCmd(ctx context.Context, src CatalogSource) tea.Cmd {
	return func() tea.Msg {
		c, err := src.Fetch(ctx)
		return CatalogLoadedMsg{Catalog: c, Err: err}
	}
}

// FetchCoverCmd downloads a cover image.
func FetchCoverCmd(ctx context.Context, src CatalogSource, url string) tea.Cmd {
	return func() tea.Msg {
		data, err := src.FetchCover(ctx, url)
		return CoverLoadedMsg{URL: url, Data: data, Err: err}
	}
}

// WatchServiceEvents returns a command that waits for the next controller
// event and converts it to a tea.Msg. Re-issue it after each message.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.playbackSub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg(e)
		case e := <-sub.PositionChanged:
			return ServicePositionChangedMsg(e)
		case e := <-sub.VolumeChanged:
			return ServiceVolumeChangedMsg(e)
		case e := <-sub.CatalogChanged:
			return ServiceCatalogChangedMsg(e)
		case e := <-sub.ProgressChanged:
			return ServiceProgressMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// waitForChannel creates a command that waits for a value from a channel
// and converts it to a message. ok is false once the channel is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		return onResult(v, ok)
	}
}

// WatchStderr returns a command that waits for stderr output from C libraries.
func WatchStderr() tea.Cmd {
	return waitForChannel(stderr.Lines(), func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}
