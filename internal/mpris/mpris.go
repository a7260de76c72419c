//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// Name is the MPRIS bus name suffix (org.mpris.MediaPlayer2.onestop).
const Name = "onestop"

// Adapter exposes a playback controller over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(ctrl Controller) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer(Name, &rootAdapter{}, &playerAdapter{ctrl: ctrl}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Onestop", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"https", "http"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/wav", "audio/x-wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	ctrl Controller
}

func (p *playerAdapter) Next() error {
	p.ctrl.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.ctrl.Prev()
	return nil
}

func (p *playerAdapter) Pause() error {
	return p.ctrl.Pause()
}

func (p *playerAdapter) PlayPause() error {
	return p.ctrl.TogglePlayPause()
}

// Stop pauses. The controller has no stopped state while a catalog is loaded.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	return p.ctrl.Play()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	s := p.ctrl.Snapshot()
	if s.Duration <= 0 {
		return nil
	}
	pos := s.Position + time.Duration(offset)*time.Microsecond
	return p.ctrl.SeekTo(fraction(pos, s.Duration))
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	s := p.ctrl.Snapshot()
	if s.Track == nil || s.Duration <= 0 || trackID != formatTrackID(s.Track.ID) {
		return nil
	}
	return p.ctrl.SeekTo(fraction(time.Duration(position)*time.Microsecond, s.Duration))
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.ctrl.Snapshot()
	switch {
	case s.IsEmpty() || s.Track == nil:
		return types.PlaybackStatusStopped, nil
	case s.IsPlaying:
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.ctrl.Snapshot()
	track := s.Track
	if track == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.ID)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   track.DisplayTitle(),
		ArtUrl:  track.CoverURL,
	}
	if track.Artist != "" {
		meta.Artist = []string{track.Artist}
	}
	if s.Info != nil {
		meta.Album = s.Info.Album
	}
	return meta, nil
}

// Volume reports the controller volume on the MPRIS 0-1 scale.
func (p *playerAdapter) Volume() (float64, error) {
	return p.ctrl.Snapshot().Volume / 100, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.ctrl.SetVolume(v * 100)
}

func (p *playerAdapter) Position() (int64, error) {
	return p.ctrl.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return !p.ctrl.Snapshot().IsEmpty(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return !p.ctrl.Snapshot().IsEmpty(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return !p.ctrl.Snapshot().IsEmpty(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.ctrl.Snapshot().Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func fraction(pos, dur time.Duration) float64 {
	return float64(pos) / float64(dur)
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
