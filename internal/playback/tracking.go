package playback

// tracking is the listener session attached to the element for one load.
// Only the controller's active session may change state; signals reaching
// any other session, or carrying another load's generation, are ignored.
type tracking struct {
	gen         uint64
	unsubscribe func()
	stopped     bool
}

// stop detaches the session from the element. Safe to call more than once.
func (t *tracking) stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	if t.unsubscribe != nil {
		t.unsubscribe()
	}
}

// accepts reports whether a signal of generation gen belongs to this session.
func (t *tracking) accepts(gen uint64) bool {
	return t != nil && !t.stopped && t.gen == gen
}
