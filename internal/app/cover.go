package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/onestop/internal/errmsg"
	"github.com/llehouerou/onestop/internal/ui/playerbar"
)

// coverCmd returns a command fetching the current track's cover when the
// expanded bar can show it. A cached cover is applied immediately.
func (m *Model) coverCmd() tea.Cmd {
	if !m.Art.Enabled() || m.DisplayMode != playerbar.ModeExpanded {
		return nil
	}
	t := m.state.Track
	if t == nil || t.CoverURL == "" || t.CoverURL == m.coverURL {
		return nil
	}
	cols, rows := playerbar.ArtSize()
	m.coverURL = t.CoverURL
	if seq, ok := m.Art.Cached(t.CoverURL, cols, rows); ok {
		m.coverSeq = seq
		return nil
	}
	return FetchCoverCmd(m.ctx, m.Source, t.CoverURL)
}

func (m *Model) handleCoverLoaded(msg CoverLoadedMsg) {
	if msg.Err != nil {
		log.Print(errmsg.FormatWith(errmsg.OpCoverFetch, msg.URL, msg.Err))
		return
	}
	cols, rows := playerbar.ArtSize()
	seq, err := m.Art.Render(msg.URL, msg.Data, cols, rows)
	if err != nil {
		log.Print(errmsg.FormatWith(errmsg.OpCoverFetch, msg.URL, err))
		return
	}
	// The track may have changed while the image was downloading.
	if msg.URL == m.coverURL {
		m.coverSeq = seq
	}
}
