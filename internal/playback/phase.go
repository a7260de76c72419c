// internal/playback/phase.go
package playback

// Phase is the controller's view of the current track's lifecycle.
//
//	Idle ──swap──▶ Loading ──canplay──▶ Ready ──play──▶ Playing ⇄ Paused
//	                  │                                    │
//	                  └──error──▶ Idle                  ended
//	                                                       ▼
//	                                             Ended ──auto-advance──▶ Loading
//
// Selecting another track from any phase starts over at Loading.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhasePlaying
	PhasePaused
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Loading"
	case PhaseReady:
		return "Ready"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// HasMedia returns true if the current source is decoded.
func (p Phase) HasMedia() bool {
	return p == PhaseReady || p == PhasePlaying || p == PhasePaused || p == PhaseEnded
}
