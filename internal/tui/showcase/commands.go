package showcase

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// waitForSignal blocks until ch fires and then delivers msg. A closed
// channel ends the subscription.
func waitForSignal(ch <-chan struct{}, msg tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return msg
	}
}

// refreshWidgetsCmd refreshes every widget once
func refreshWidgetsCmd(ctx context.Context, session *Session) tea.Cmd {
	return func() tea.Msg {
		return widgetsRefreshedMsg{Err: session.RefreshAll(ctx)}
	}
}
