// internal/player/state.go
package player

// State is the media element's own view of its source.
//
//	Stopped ──load──▶ Loading ──decoded──▶ Ready ──play──▶ Playing ⇄ Paused
//	                     │                                    │
//	                     └──error──▶ Stopped         end of stream
//	                                                          ▼
//	                                              Ended ──play──▶ Playing
//
// Load from any state goes back to Loading. Stop from any state goes to
// Stopped and forgets the source.
type State int

const (
	Stopped State = iota
	Loading
	Ready
	Playing
	Paused
	Ended
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// HasMedia returns true if a decoded source is available.
func (s State) HasMedia() bool {
	return s == Ready || s == Playing || s == Paused || s == Ended
}

// CanPlay returns true if Play would start or resume output.
func (s State) CanPlay() bool {
	return s == Ready || s == Paused || s == Ended
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}
