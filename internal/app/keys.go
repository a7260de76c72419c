package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/onestop/internal/app/handler"
	"github.com/llehouerou/onestop/internal/errmsg"
	"github.com/llehouerou/onestop/internal/keymap"
)

// Slider steps on the 0-100 scales of the seek and volume sliders.
const (
	seekStep   = 5
	volumeStep = 5
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.Resolve(msg.String())
	handled, cmd := handler.Chain(action,
		m.handleGlobalKeys,
		m.handleCatalogKeys,
		m.handlePlaybackKeys,
	)
	if !handled {
		return m, nil
	}
	m.refresh()
	return m, tea.Batch(cmd, m.startSpinner())
}

// handleGlobalKeys handles quit and help.
func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling global actions
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.Help.ShowAll = !m.Help.ShowAll
		m.layout()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// handleCatalogKeys moves the grid cursor and selects tracks.
func (m *Model) handleCatalogKeys(a keymap.Action) handler.Result {
	if a == keymap.ActionSelect {
		if idx := m.Catalog.Cursor(); idx >= 0 {
			m.report(errmsg.OpTrackLoad, m.Controller.SelectTrack(idx))
		}
		return handler.HandledNoCmd
	}
	if m.Catalog.HandleAction(a) {
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// handlePlaybackKeys drives the transport.
func (m *Model) handlePlaybackKeys(a keymap.Action) handler.Result {
	if f, ok := keymap.SeekSlot(a); ok {
		m.report(errmsg.OpPlaybackSeek, m.Controller.SeekTo(f))
		return handler.HandledNoCmd
	}

	switch a { //nolint:exhaustive // only handling playback actions
	case keymap.ActionPlayPause:
		// Rejections are also published as error events.
		if err := m.Controller.TogglePlayPause(); err != nil {
			log.Printf("toggle play/pause: %v", err)
		}
	case keymap.ActionNextTrack:
		m.Controller.Next()
	case keymap.ActionPrevTrack:
		m.Controller.Prev()
	case keymap.ActionSeekForward:
		m.report(errmsg.OpPlaybackSeek, m.Controller.SeekBy(seekStep/100.0))
	case keymap.ActionSeekBack:
		m.report(errmsg.OpPlaybackSeek, m.Controller.SeekBy(-seekStep/100.0))
	case keymap.ActionVolumeUp:
		m.report(errmsg.OpVolume, m.Controller.AdjustVolume(volumeStep))
	case keymap.ActionVolumeDown:
		m.report(errmsg.OpVolume, m.Controller.AdjustVolume(-volumeStep))
	case keymap.ActionTogglePlayerDisplay:
		m.DisplayMode = m.DisplayMode.Toggle()
		m.layout()
		return handler.Handled(m.coverCmd())
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// report shows and logs a synchronous controller error.
func (m *Model) report(op errmsg.Op, err error) {
	if err == nil {
		return
	}
	m.ErrorMsg = errmsg.Format(op, err)
	log.Print(m.ErrorMsg)
}
