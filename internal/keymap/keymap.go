package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "catalog"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"shift+right"}, "Seek +5", "playback"},
	{ActionSeekBack, []string{"shift+left"}, "Seek -5", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume +5", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume -5", "playback"},
	{ActionTogglePlayerDisplay, []string{"v"}, "Toggle player display", "playback"},
	{ActionSeekTo0, []string{"0"}, "Seek to start", "playback"},
	{ActionSeekTo1, []string{"1"}, "Seek to 10%", "playback"},
	{ActionSeekTo2, []string{"2"}, "Seek to 20%", "playback"},
	{ActionSeekTo3, []string{"3"}, "Seek to 30%", "playback"},
	{ActionSeekTo4, []string{"4"}, "Seek to 40%", "playback"},
	{ActionSeekTo5, []string{"5"}, "Seek to 50%", "playback"},
	{ActionSeekTo6, []string{"6"}, "Seek to 60%", "playback"},
	{ActionSeekTo7, []string{"7"}, "Seek to 70%", "playback"},
	{ActionSeekTo8, []string{"8"}, "Seek to 80%", "playback"},
	{ActionSeekTo9, []string{"9"}, "Seek to 90%", "playback"},

	// Catalog grid
	{ActionMoveUp, []string{"k", "up"}, "Move up", "catalog"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "catalog"},
	{ActionMoveLeft, []string{"h", "left"}, "Move left", "catalog"},
	{ActionMoveRight, []string{"l", "right"}, "Move right", "catalog"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "catalog"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "catalog"},
	{ActionSelect, []string{"enter"}, "Play track", "catalog"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
