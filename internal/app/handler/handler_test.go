package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/onestop/internal/keymap"
)

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be empty")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should be handled without command")
	}
	cmd := func() tea.Msg { return "test" }
	if r := Handled(cmd); !r.Handled || r.Cmd == nil {
		t.Error("Handled(cmd) should carry the command")
	}
}

func TestChain(t *testing.T) {
	var calls []string
	quit := func(a keymap.Action) Result {
		calls = append(calls, "quit")
		if a == keymap.ActionQuit {
			return Handled(tea.Quit)
		}
		return NotHandled
	}
	play := func(a keymap.Action) Result {
		calls = append(calls, "play")
		if a == keymap.ActionPlayPause {
			return HandledNoCmd
		}
		return NotHandled
	}

	t.Run("first handler wins", func(t *testing.T) {
		calls = nil
		handled, cmd := Chain(keymap.ActionQuit, quit, play)
		if !handled || cmd == nil {
			t.Fatal("expected quit to be handled with a command")
		}
		if len(calls) != 1 {
			t.Errorf("calls = %v, want only quit", calls)
		}
	})

	t.Run("falls through", func(t *testing.T) {
		calls = nil
		handled, cmd := Chain(keymap.ActionPlayPause, quit, play)
		if !handled || cmd != nil {
			t.Errorf("handled=%v cmd=%v", handled, cmd)
		}
		if len(calls) != 2 {
			t.Errorf("calls = %v, want quit then play", calls)
		}
	})

	t.Run("unhandled", func(t *testing.T) {
		handled, _ := Chain(keymap.ActionHelp, quit, play)
		if handled {
			t.Error("ActionHelp should not be handled")
		}
	})

	t.Run("empty action", func(t *testing.T) {
		calls = nil
		handled, _ := Chain("", quit, play)
		if handled || len(calls) != 0 {
			t.Error("empty action should short-circuit")
		}
	})
}
