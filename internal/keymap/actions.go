// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause           Action = "play_pause"
	ActionNextTrack           Action = "next_track"
	ActionPrevTrack           Action = "prev_track"
	ActionSeekForward         Action = "seek_forward"
	ActionSeekBack            Action = "seek_back"
	ActionVolumeUp            Action = "volume_up"
	ActionVolumeDown          Action = "volume_down"
	ActionTogglePlayerDisplay Action = "toggle_player_display"

	// Seek slider positions: 0 jumps to the start, 9 to 90%.
	ActionSeekTo0 Action = "seek_to_0"
	ActionSeekTo1 Action = "seek_to_1"
	ActionSeekTo2 Action = "seek_to_2"
	ActionSeekTo3 Action = "seek_to_3"
	ActionSeekTo4 Action = "seek_to_4"
	ActionSeekTo5 Action = "seek_to_5"
	ActionSeekTo6 Action = "seek_to_6"
	ActionSeekTo7 Action = "seek_to_7"
	ActionSeekTo8 Action = "seek_to_8"
	ActionSeekTo9 Action = "seek_to_9"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Selection/activation actions
	ActionSelect Action = "select" // enter - play the track under the cursor
)

var seekSlots = []Action{
	ActionSeekTo0, ActionSeekTo1, ActionSeekTo2, ActionSeekTo3, ActionSeekTo4,
	ActionSeekTo5, ActionSeekTo6, ActionSeekTo7, ActionSeekTo8, ActionSeekTo9,
}

// SeekSlot returns the slider position (0.0 to 0.9) for a seek_to_N action.
func SeekSlot(a Action) (float64, bool) {
	for i, s := range seekSlots {
		if s == a {
			return float64(i) / 10, true
		}
	}
	return 0, false
}
