package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// shortHelpActions are shown in the one-line help.
var shortHelpActions = []Action{
	ActionSelect, ActionPlayPause, ActionNextTrack, ActionPrevTrack,
	ActionVolumeUp, ActionHelp, ActionQuit,
}

// HelpMap adapts a Resolver to bubbles/help.
type HelpMap struct {
	r *Resolver
}

// NewHelpMap creates a help key map over r.
func NewHelpMap(r *Resolver) HelpMap {
	return HelpMap{r: r}
}

// ShortHelp returns bindings for the compact help line.
func (h HelpMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(shortHelpActions))
	for _, a := range shortHelpActions {
		if b, ok := h.binding(a); ok {
			out = append(out, b)
		}
	}
	return out
}

// FullHelp returns bindings grouped by context, one column each.
// Seek slot bindings are folded into a single "0-9" entry.
func (h HelpMap) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, context := range []string{"catalog", "playback", "global"} {
		var col []key.Binding
		for _, kb := range ByContext(context) {
			if _, slot := SeekSlot(kb.Action); slot {
				continue
			}
			if b, ok := h.binding(kb.Action); ok {
				col = append(col, b)
			}
		}
		if context == "playback" {
			col = append(col, key.NewBinding(
				key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
				key.WithHelp("0-9", "seek to 0-90%"),
			))
		}
		groups = append(groups, col)
	}
	return groups
}

func (h HelpMap) binding(a Action) (key.Binding, bool) {
	keys := h.r.KeysFor(a)
	if len(keys) == 0 {
		return key.Binding{}, false
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(displayKeys(keys), h.r.Description(a)),
	), true
}

func displayKeys(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return strings.Join(out, "/")
}
