//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/playback"
	"github.com/llehouerou/onestop/internal/player"
)

type fakeController struct {
	state   playback.State
	toggles int
	next    int
	prev    int
	seeks   []float64
	volumes []float64
}

func (f *fakeController) TogglePlayPause() error {
	f.toggles++
	f.state.IsPlaying = !f.state.IsPlaying
	return nil
}

func (f *fakeController) Play() error {
	if !f.state.IsPlaying {
		f.toggles++
		f.state.IsPlaying = true
	}
	return nil
}

func (f *fakeController) Pause() error {
	if f.state.IsPlaying {
		f.toggles++
		f.state.IsPlaying = false
	}
	return nil
}

func (f *fakeController) Next() { f.next++ }
func (f *fakeController) Prev() { f.prev++ }

func (f *fakeController) SeekTo(fraction float64) error {
	f.seeks = append(f.seeks, fraction)
	return nil
}

func (f *fakeController) SetVolume(v float64) error {
	f.volumes = append(f.volumes, v)
	return nil
}

func (f *fakeController) Snapshot() playback.State { return f.state }

func loaded() *fakeController {
	return &fakeController{state: playback.State{
		CurrentIndex: 0,
		Volume:       40,
		Track:        &catalog.Track{ID: "a", Title: "Song", Artist: "Band", CoverURL: "https://x/c.jpg"},
		Position:     30 * time.Second,
		Duration:     2 * time.Minute,
		CatalogLen:   3,
	}}
}

func TestPlayer_PlayPauseIdempotent(t *testing.T) {
	ctrl := loaded()
	p := &playerAdapter{ctrl: ctrl}

	require.NoError(t, p.Pause())
	assert.Equal(t, 0, ctrl.toggles, "pause while paused")

	require.NoError(t, p.Play())
	require.NoError(t, p.Play())
	assert.Equal(t, 1, ctrl.toggles)
	assert.True(t, ctrl.state.IsPlaying)

	require.NoError(t, p.Stop())
	assert.False(t, ctrl.state.IsPlaying)

	require.NoError(t, p.PlayPause())
	assert.Equal(t, 3, ctrl.toggles)
}

func TestPlayer_PlayPauseOnController(t *testing.T) {
	mock := player.NewMock()
	ctrl := playback.New(mock)
	t.Cleanup(func() { _ = ctrl.Close() })
	ctrl.LoadCatalog([]catalog.Track{{ID: "a", AudioURL: "https://x/a.mp3"}})
	mock.EmitCanPlay(time.Minute)
	p := &playerAdapter{ctrl: ctrl}

	require.NoError(t, p.Play())
	require.NoError(t, p.Play())
	assert.True(t, ctrl.Snapshot().IsPlaying)
	assert.Equal(t, 1, mock.PlayCalls())

	require.NoError(t, p.Pause())
	require.NoError(t, p.Stop())
	assert.False(t, ctrl.Snapshot().IsPlaying)
	assert.Equal(t, 1, mock.PauseCalls())
}

func TestPlayer_NextPrevious(t *testing.T) {
	ctrl := loaded()
	p := &playerAdapter{ctrl: ctrl}

	require.NoError(t, p.Next())
	require.NoError(t, p.Previous())
	require.NoError(t, p.Previous())
	assert.Equal(t, 1, ctrl.next)
	assert.Equal(t, 2, ctrl.prev)
}

func TestPlayer_Seek(t *testing.T) {
	ctrl := loaded()
	p := &playerAdapter{ctrl: ctrl}

	require.NoError(t, p.Seek(types.Microseconds((30 * time.Second).Microseconds())))
	require.Len(t, ctrl.seeks, 1)
	assert.InDelta(t, 0.5, ctrl.seeks[0], 1e-9)

	id := formatTrackID("a")
	require.NoError(t, p.SetPosition(id, types.Microseconds((90 * time.Second).Microseconds())))
	require.Len(t, ctrl.seeks, 2)
	assert.InDelta(t, 0.75, ctrl.seeks[1], 1e-9)

	require.NoError(t, p.SetPosition(formatTrackID("other"), 0))
	assert.Len(t, ctrl.seeks, 2, "stale track id ignored")
}

func TestPlayer_SeekWithoutDuration(t *testing.T) {
	ctrl := loaded()
	ctrl.state.Duration = 0
	p := &playerAdapter{ctrl: ctrl}

	require.NoError(t, p.Seek(1000))
	assert.Empty(t, ctrl.seeks)

	canSeek, err := p.CanSeek()
	require.NoError(t, err)
	assert.False(t, canSeek)
}

func TestPlayer_Volume(t *testing.T) {
	ctrl := loaded()
	p := &playerAdapter{ctrl: ctrl}

	v, err := p.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, v, 1e-9)

	require.NoError(t, p.SetVolume(0.8))
	require.Len(t, ctrl.volumes, 1)
	assert.InDelta(t, 80, ctrl.volumes[0], 1e-9)
}

func TestPlayer_PlaybackStatus(t *testing.T) {
	ctrl := loaded()
	p := &playerAdapter{ctrl: ctrl}

	status, err := p.PlaybackStatus()
	require.NoError(t, err)
	assert.Equal(t, types.PlaybackStatusPaused, status)

	ctrl.state.IsPlaying = true
	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPlaying, status)

	ctrl.state = playback.State{CurrentIndex: -1}
	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusStopped, status)

	canPlay, _ := p.CanPlay()
	assert.False(t, canPlay)
}

func TestPlayer_Metadata(t *testing.T) {
	p := &playerAdapter{ctrl: loaded()}

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Song", meta.Title)
	assert.Equal(t, []string{"Band"}, meta.Artist)
	assert.Equal(t, "https://x/c.jpg", meta.ArtUrl)
	assert.Equal(t, types.Microseconds((2 * time.Minute).Microseconds()), meta.Length)
	assert.Equal(t, formatTrackID("a"), string(meta.TrackId))

	empty := &playerAdapter{ctrl: &fakeController{state: playback.State{CurrentIndex: -1}}}
	meta, err = empty.Metadata()
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
}

func TestFormatTrackID(t *testing.T) {
	assert.Equal(t, formatTrackID("a"), formatTrackID("a"))
	assert.NotEqual(t, formatTrackID("a"), formatTrackID("b"))
	assert.Contains(t, formatTrackID("a"), "/org/mpris/MediaPlayer2/Track/")
}
