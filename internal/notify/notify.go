// Package notify announces track changes as desktop notifications.
package notify

// AppName is sent as the notification application name.
const AppName = "onestop"

// Urgency levels of the freedesktop notification protocol.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // icon name or image path
	Category   string // freedesktop category hint, empty to omit
	Timeout    int32  // ms, -1 = server default, 0 = never expire
	ReplacesID uint32 // id of a notification to replace, 0 for a new one
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its id. Unavailable backends return 0
	// and a nil error.
	Notify(n Notification) (uint32, error)
	// Close dismisses a notification.
	Close(id uint32) error
}
