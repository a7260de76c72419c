// Package catalogview renders the song catalog as a grid of cards and
// tracks the grid cursor.
package catalogview

import (
	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/keymap"
	"github.com/llehouerou/onestop/internal/ui"
	"github.com/llehouerou/onestop/internal/ui/cursor"
)

// Card geometry in cells.
const (
	MinColumns   = 2
	minCardWidth = 28
	cardHeight   = 4 // border + title + artist
)

// Model holds the grid state. The track list is read-only.
type Model struct {
	ui.Base
	tracks  []catalog.Track
	cursor  cursor.Grid
	current int // index of the current track, -1 for none
	playing bool
	loading bool
	err     string
}

// New creates an empty catalog view.
func New() Model {
	return Model{
		cursor:  cursor.New(1),
		current: -1,
		loading: true,
	}
}

// SetTracks replaces the track list and resets the cursor.
func (m *Model) SetTracks(tracks []catalog.Track) {
	m.tracks = tracks
	m.loading = false
	m.err = ""
	m.cursor.Reset()
	m.cursor.ClampToBounds(len(tracks))
}

// SetError records a catalog fetch failure.
func (m *Model) SetError(msg string) {
	m.loading = false
	m.err = msg
}

// SetSize sets the view dimensions and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureVisible(len(m.tracks), m.Columns(), m.visibleRows())
}

// SetCurrent marks the current track and whether it is playing.
func (m *Model) SetCurrent(index int, playing bool) {
	m.current = index
	m.playing = playing
}

// Len returns the number of tracks.
func (m Model) Len() int {
	return len(m.tracks)
}

// Cursor returns the track index under the cursor, or -1 when empty.
func (m Model) Cursor() int {
	if len(m.tracks) == 0 {
		return -1
	}
	return m.cursor.Pos()
}

// Follow moves the cursor to index, used when playback changes track.
func (m *Model) Follow(index int) {
	m.cursor.Jump(index, len(m.tracks), m.Columns(), m.visibleRows())
}

// Columns returns the number of card columns for the current width.
func (m Model) Columns() int {
	return max(m.Width()/minCardWidth, MinColumns)
}

func (m Model) cardWidth() int {
	return max(m.Width()/m.Columns(), 8)
}

func (m Model) visibleRows() int {
	return max(m.Height()/cardHeight, 1)
}

// HandleAction applies a grid navigation action.
// Returns true if the action was handled.
func (m *Model) HandleAction(a keymap.Action) bool {
	n, cols, rows := len(m.tracks), m.Columns(), m.visibleRows()
	switch a {
	case keymap.ActionMoveUp:
		m.cursor.MoveRow(-1, n, cols, rows)
	case keymap.ActionMoveDown:
		m.cursor.MoveRow(1, n, cols, rows)
	case keymap.ActionMoveLeft:
		m.cursor.MoveCol(-1, n, cols, rows)
	case keymap.ActionMoveRight:
		m.cursor.MoveCol(1, n, cols, rows)
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(n, cols, rows)
	default:
		return false
	}
	return true
}
