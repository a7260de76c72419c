package notify

import (
	"context"
	"log"

	"github.com/llehouerou/onestop/internal/catalog"
	"github.com/llehouerou/onestop/internal/playback"
)

const (
	trackIcon     = "audio-x-generic"
	trackCategory = "x-gnome.music"
	trackTimeout  = 5000
)

// TrackNotification builds the notification shown when t starts.
func TrackNotification(t catalog.Track) Notification {
	return Notification{
		Title:    t.DisplayTitle(),
		Body:     t.Artist,
		Icon:     trackIcon,
		Category: trackCategory,
		Timeout:  trackTimeout,
		Urgency:  UrgencyLow,
	}
}

// Watch announces track changes from sub until ctx is done or the
// subscription ends. Each notification replaces the previous one.
// The first track of a freshly loaded catalog is not announced.
func Watch(ctx context.Context, n Notifier, sub *playback.Subscription) error {
	var lastID uint32
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sub.Done:
			return nil
		case e := <-sub.TrackChanged:
			if e.Track == nil || e.PreviousIndex < 0 {
				continue
			}
			notif := TrackNotification(*e.Track)
			notif.ReplacesID = lastID
			id, err := n.Notify(notif)
			if err != nil {
				log.Printf("notify: %v", err)
				continue
			}
			lastID = id
		}
	}
}
