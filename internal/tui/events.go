package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/rumbo/internal/events"
)

// refreshMsg carries a store event into the update loop
type refreshMsg struct {
	event events.Event
}

// waitForEvent returns a command that blocks on the next store event.
// The command is re-armed after every refreshMsg so the subscription
// stays live for the whole session.
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			// Publisher shut down
			return nil
		}
		return refreshMsg{event: event}
	}
}
