package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/icons"
	"github.com/llehouerou/onestop/internal/playback"
	"github.com/llehouerou/onestop/internal/player"
	"github.com/llehouerou/onestop/internal/ui/albumart"
	"github.com/llehouerou/onestop/internal/ui/playerbar"
	"github.com/llehouerou/onestop/internal/ui/testutil"
)

type fakeSource struct {
	cat    catalog.Catalog
	err    error
	covers []string
}

func (f *fakeSource) Fetch(context.Context) (catalog.Catalog, error) {
	return f.cat, f.err
}

func (f *fakeSource) FetchCover(_ context.Context, url string) ([]byte, error) {
	f.covers = append(f.covers, url)
	return nil, errors.New("no covers in tests")
}

func testCatalog(n int) catalog.Catalog {
	tracks := make([]catalog.Track, n)
	for i := range tracks {
		tracks[i] = catalog.Track{
			ID:       fmt.Sprintf("id%d", i),
			Title:    fmt.Sprintf("Song %d", i),
			Artist:   "Band",
			CoverURL: fmt.Sprintf("http://img/%d.jpg", i),
			AudioURL: fmt.Sprintf("http://audio/%d.mp3", i),
		}
	}
	return catalog.New(tracks)
}

func newTestModel(t *testing.T, opts ...Option) (Model, *player.Mock, *fakeSource) {
	t.Helper()
	icons.Init("none")
	mock := player.NewMock()
	ctrl := playback.New(mock)
	t.Cleanup(func() { _ = ctrl.Close() })
	src := &fakeSource{cat: testCatalog(4)}
	m := New(ctrl, src, opts...)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, mock, src
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result
}

func loaded(t *testing.T, m Model, src *fakeSource) Model {
	t.Helper()
	return update(t, m, CatalogLoadedMsg{Catalog: src.cat})
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, 100, m.Width)
	assert.Equal(t, 30, m.Height)
	assert.Equal(t, 100, m.Catalog.Width())
	assert.Positive(t, m.Catalog.Height())
}

func TestInit_FetchesCatalog(t *testing.T) {
	m, _, src := newTestModel(t)
	msg := FetchCatalogCmd(context.Background(), src)()
	got, ok := msg.(CatalogLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 4, got.Catalog.Len())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "fetching songs")
}

func TestCatalogLoaded(t *testing.T) {
	m, mock, src := newTestModel(t)
	m = loaded(t, m, src)

	assert.Equal(t, 4, m.Catalog.Len())
	assert.Equal(t, 4, m.State().CatalogLen)
	assert.Equal(t, 0, m.State().CurrentIndex)
	assert.Equal(t, []string{"http://audio/0.mp3"}, mock.LoadCalls())
	assert.Contains(t, m.View(), "4 songs")
	assert.Contains(t, m.View(), "Song 3")
}

func TestCatalogLoaded_Error(t *testing.T) {
	m, mock, _ := newTestModel(t)
	m = update(t, m, CatalogLoadedMsg{Err: errors.New("unexpected status: 500 Internal Server Error")})

	assert.Equal(t, "Failed to load songs: unexpected status: 500 Internal Server Error", m.ErrorMsg)
	assert.Equal(t, -1, m.State().CurrentIndex)
	assert.Empty(t, mock.LoadCalls())

	view := m.View()
	assert.Contains(t, view, "Failed to load songs")
	assert.NotContains(t, view, "0:00 / 0:00", "transport bar hidden")
}

func TestKeys_SelectAndNavigate(t *testing.T) {
	m, mock, src := newTestModel(t)
	m = loaded(t, m, src)

	// 100 columns -> 3 card columns; down moves to index 3.
	m = update(t, m, testutil.Key("down"))
	assert.Equal(t, 3, m.Catalog.Cursor())
	m = update(t, m, testutil.Key("enter"))

	assert.Equal(t, 3, m.State().CurrentIndex)
	assert.Equal(t, "http://audio/3.mp3", mock.LoadCalls()[len(mock.LoadCalls())-1])

	m = update(t, m, testutil.Key("n"))
	assert.Equal(t, 0, m.State().CurrentIndex, "next wraps")
	m = update(t, m, testutil.Key("p"))
	assert.Equal(t, 3, m.State().CurrentIndex)
	m = update(t, m, testutil.Key("pgdown"))
	assert.Equal(t, 0, m.State().CurrentIndex)
}

func TestKeys_PlayPause(t *testing.T) {
	m, mock, src := newTestModel(t)
	m = loaded(t, m, src)

	m = update(t, m, testutil.Key(" "))
	assert.True(t, m.State().IsPlaying, "intent recorded while loading")
	assert.Equal(t, 0, mock.PlayCalls())

	mock.EmitCanPlay(2 * time.Minute)
	assert.Equal(t, 1, mock.PlayCalls())

	m = update(t, m, testutil.Key(" "))
	assert.False(t, m.State().IsPlaying)
	assert.Equal(t, 1, mock.PauseCalls())
}

func TestKeys_PlayRejected(t *testing.T) {
	m, mock, src := newTestModel(t)
	m = loaded(t, m, src)
	mock.EmitCanPlay(time.Minute)
	mock.SetPlayError(errors.New("audio device unavailable"))

	m = update(t, m, testutil.Key(" "))
	assert.False(t, m.State().IsPlaying)
}

func TestKeys_Seek(t *testing.T) {
	m, mock, src := newTestModel(t)
	m = loaded(t, m, src)
	mock.EmitCanPlay(100 * time.Second)

	m = update(t, m, testutil.Key("5"))
	assert.InDelta(t, 0.5, m.State().SeekFraction, 1e-9)
	m = update(t, m, testutil.Key("shift+right"))
	assert.InDelta(t, 0.55, m.State().SeekFraction, 1e-9)
	m = update(t, m, testutil.Key("0"))
	assert.InDelta(t, 0.0, m.State().SeekFraction, 1e-9)

	seeks := mock.SeekCalls()
	require.Len(t, seeks, 3)
	assert.Equal(t, 50*time.Second, seeks[0])
	assert.Equal(t, 55*time.Second, seeks[1])
}

func TestKeys_Volume(t *testing.T) {
	m, mock, _ := newTestModel(t)

	m = update(t, m, testutil.Key("+"))
	assert.InDelta(t, 55.0, m.State().Volume, 1e-9)
	assert.InDelta(t, 0.55, mock.Volume(), 1e-9)

	for range 30 {
		m = update(t, m, testutil.Key("-"))
	}
	assert.InDelta(t, 0.0, m.State().Volume, 1e-9)
}

func TestKeys_ToggleDisplayAndHelp(t *testing.T) {
	m, _, src := newTestModel(t)
	m = loaded(t, m, src)
	compactHeight := m.Catalog.Height()

	m = update(t, m, testutil.Key("v"))
	assert.Equal(t, playerbar.ModeExpanded, m.DisplayMode)
	assert.Less(t, m.Catalog.Height(), compactHeight)

	m = update(t, m, testutil.Key("?"))
	assert.True(t, m.Help.ShowAll)
}

func TestKeys_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(testutil.Key("q"))
	require.NotNil(t, cmd)
	msg := cmd()
	// The batch wraps tea.Quit.
	if batch, ok := msg.(tea.BatchMsg); ok {
		found := false
		for _, c := range batch {
			if c == nil {
				continue
			}
			if _, ok := c().(tea.QuitMsg); ok {
				found = true
			}
		}
		assert.True(t, found)
		return
	}
	assert.IsType(t, tea.QuitMsg{}, msg)
}

func TestServiceEvents(t *testing.T) {
	m, mock, src := newTestModel(t)
	m = loaded(t, m, src)

	mock.EmitError(errors.New("decode MP3: bad frame"))

	msg := drain(t, m, func(msg tea.Msg) bool {
		_, ok := msg.(ServiceErrorMsg)
		return ok
	})
	m = update(t, m, msg)
	assert.Equal(t, "Failed to load track 'Song 0': decode MP3: bad frame", m.ErrorMsg)
	assert.Equal(t, playback.PhaseIdle, m.State().Phase)
	assert.NotEmpty(t, testutil.FindLine(m.View(), "decode MP3"))
}

func TestView(t *testing.T) {
	m, _, src := newTestModel(t)
	assert.Contains(t, testutil.FindLine(m.View(), "onestop"), "fetching songs")

	m = loaded(t, m, src)
	view := m.View()
	assert.Contains(t, testutil.FindLine(view, "onestop"), "4 songs")
	assert.NotEmpty(t, testutil.FindLine(view, "Song 3"))
	assert.NotEmpty(t, testutil.FindLine(view, "Song 0 · Band"), "transport bar shows current track")
	assert.LessOrEqual(t, len(testutil.SplitLines(view)), m.Height)
}

func TestServiceEvents_TrackChangeFollowsCursor(t *testing.T) {
	m, _, src := newTestModel(t)
	m = loaded(t, m, src)
	m.Controller.Next()
	m.Controller.Next()

	msg := drain(t, m, func(msg tea.Msg) bool {
		e, ok := msg.(ServiceTrackChangedMsg)
		return ok && e.Index == 2
	})
	m = update(t, m, msg)
	assert.Equal(t, 2, m.Catalog.Cursor())
	assert.Equal(t, 2, m.State().CurrentIndex)
}

func TestCover_FetchedInExpandedMode(t *testing.T) {
	m, _, src := newTestModel(t,
		WithDisplayMode(playerbar.ModeExpanded),
		WithAlbumArt(albumart.New(true, 4)),
	)
	next, cmd := m.Update(CatalogLoadedMsg{Catalog: src.cat})
	m = next.(Model)
	require.NotNil(t, cmd)

	m = update(t, m, FetchCoverCmd(context.Background(), src, "http://img/0.jpg")())
	assert.Equal(t, []string{"http://img/0.jpg"}, src.covers)
	assert.Empty(t, m.coverSeq, "failed fetch leaves placeholder")
	assert.Equal(t, "http://img/0.jpg", m.coverURL)
}

func TestCover_DisabledWithoutRenderer(t *testing.T) {
	m, _, src := newTestModel(t, WithDisplayMode(playerbar.ModeExpanded))
	m = loaded(t, m, src)
	assert.Nil(t, m.coverCmd())
}

func TestFormatPlaybackError(t *testing.T) {
	track := &catalog.Track{Title: "Song"}
	tests := []struct {
		op   string
		want string
	}{
		{playback.OpLoad, "Failed to load track 'Song': boom"},
		{playback.OpPlay, "Failed to start playback 'Song': boom"},
		{playback.OpSeek, "Failed to seek 'Song': boom"},
	}
	for _, tt := range tests {
		got := formatPlaybackError(playback.ErrorEvent{Operation: tt.op, Track: track, Err: errors.New("boom")})
		assert.Equal(t, tt.want, got)
	}
}

// drain runs WatchServiceEvents until match accepts a message.
func drain(t *testing.T, m Model, match func(tea.Msg) bool) tea.Msg {
	t.Helper()
	for range 64 {
		msg := m.WatchServiceEvents()()
		if match(msg) {
			return msg
		}
	}
	t.Fatal("expected message not received")
	return nil
}
