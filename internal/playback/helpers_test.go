package playback

import (
	"fmt"
	"testing"
	"time"

	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/player"
)

func testTracks(n int) []catalog.Track {
	tracks := make([]catalog.Track, n)
	for i := range tracks {
		tracks[i] = catalog.Track{
			ID:       fmt.Sprintf("id-%d", i),
			Title:    fmt.Sprintf("Song %d", i),
			Artist:   "Artist",
			AudioURL: fmt.Sprintf("https://cdn.example/%d.mp3", i),
		}
	}
	return tracks
}

func newTestController(t *testing.T, n int, opts ...Option) (*Controller, *player.Mock) {
	t.Helper()
	m := player.NewMock()
	c := New(m, opts...)
	c.LoadCatalog(testTracks(n))
	t.Cleanup(func() { _ = c.Close() })
	return c, m
}

// readyController returns a controller whose first track is decoded.
func readyController(t *testing.T, n int, d time.Duration) (*Controller, *player.Mock) {
	t.Helper()
	c, m := newTestController(t, n)
	m.EmitCanPlay(d)
	return c, m
}

func lastLoad(t *testing.T, m *player.Mock) string {
	t.Helper()
	calls := m.LoadCalls()
	if len(calls) == 0 {
		t.Fatal("no Load calls")
	}
	return calls[len(calls)-1]
}
