package app

import (
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/onestop/internal/errmsg"
	"github.com/llehouerou/onestop/internal/playback"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, m.coverCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		m.spinning = true
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case CoverLoadedMsg:
		m.handleCoverLoaded(msg)
		return m, nil

	case StderrMsg:
		log.Printf("stderr: %s", msg.Line)
		return m, WatchStderr()

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)
	}
	return m, nil
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.fetching = false
	if msg.Err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpCatalogFetch, msg.Err)
		log.Print(m.ErrorMsg)
		m.Catalog.SetError(m.ErrorMsg)
		m.refresh()
		return m, nil
	}

	tracks := msg.Catalog.Tracks()
	log.Printf("catalog: %d tracks", len(tracks))
	m.Controller.LoadCatalog(tracks)
	m.Catalog.SetTracks(m.Controller.Catalog().Tracks())
	m.refresh()
	return m, tea.Batch(m.startSpinner(), m.coverCmd())
}

// handlePlaybackMsg routes controller events. Every event refreshes the
// snapshot and re-arms the subscription watch.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	if _, closed := msg.(ServiceClosedMsg); closed {
		return m, nil
	}

	cmds := []tea.Cmd{m.WatchServiceEvents()}
	switch msg := msg.(type) {
	case ServiceTrackChangedMsg:
		if msg.Index >= 0 {
			m.Catalog.Follow(msg.Index)
		}
		if msg.Index < 0 || msg.Index != msg.PreviousIndex {
			m.coverSeq = ""
			m.coverURL = ""
		}
		m.refresh()
		cmds = append(cmds, m.coverCmd())
	case ServiceErrorMsg:
		m.ErrorMsg = formatPlaybackError(playback.ErrorEvent(msg))
		log.Print(m.ErrorMsg)
		m.refresh()
	case ServiceStateChangedMsg:
		if msg.Current == playback.PhaseReady || msg.Current == playback.PhasePlaying {
			m.ErrorMsg = ""
		}
		m.refresh()
	default:
		m.refresh()
	}

	cmds = append(cmds, m.startSpinner())
	return m, tea.Batch(cmds...)
}

func formatPlaybackError(e playback.ErrorEvent) string {
	op := errmsg.OpTrackLoad
	switch e.Operation {
	case playback.OpPlay:
		op = errmsg.OpPlaybackStart
	case playback.OpSeek:
		op = errmsg.OpPlaybackSeek
	}
	name := ""
	if e.Track != nil {
		name = e.Track.DisplayTitle()
	}
	return errmsg.FormatWith(op, name, e.Err)
}
