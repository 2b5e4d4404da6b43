package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/terrafusion/internal/notify"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Registry messages re-arm their subscription; the redraw happens
	// because a message arrived.
	case notificationsChangedMsg:
		return m, waitForSignal(m.notifyCh, notificationsChangedMsg{})

	case overlayChangedMsg:
		return m, waitForSignal(m.overlayCh, overlayChangedMsg{})

	case widgetChangedMsg:
		if msg.Index < 0 || msg.Index >= len(m.widgetChs) {
			return m, nil
		}
		return m, waitForSignal(m.widgetChs[msg.Index], msg)

	case widgetsRefreshedMsg:
		if msg.Err != nil {
			m.session.Notifications().Add(notify.Input{
				Kind:    notify.KindError,
				Title:   "Refresh failed",
				Message: msg.Err.Error(),
			})
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys to the modal, the search box or the page
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.session.Overlays().IsOpen() {
		return m.handleModalKeys(msg)
	}

	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPage):
		m.page = (m.page + 1) % Page(len(Pages()))
		m.offset = 0
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.offset = max(m.offset-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.offset++
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.appearance.ToggleVariant()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		m.appearance.ToggleMode()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	if m.page == PageAdvanced {
		return m.handleAdvancedKeys(msg)
	}
	return m, nil
}

// handleAdvancedKeys handles the table, notification and modal triggers
func (m Model) handleAdvancedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	// Table
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.ColumnLeft):
		m.moveColumn(-1)
		return m, nil

	case key.Matches(msg, m.keys.ColumnRight):
		m.moveColumn(1)
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.table.ToggleSortAt(m.selectedColumn)
		return m, nil

	case key.Matches(msg, m.keys.TableNext):
		m.table.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.TablePrev):
		m.table.PrevPage()
		return m, nil

	// Notifications
	case key.Matches(msg, m.keys.NotifySuccess):
		m.session.DemoNotification(notify.KindSuccess)
		return m, nil

	case key.Matches(msg, m.keys.NotifyError):
		m.session.DemoNotification(notify.KindError)
		return m, nil

	case key.Matches(msg, m.keys.NotifyInfo):
		m.session.DemoNotification(notify.KindInfo)
		return m, nil

	case key.Matches(msg, m.keys.NotifyWarning):
		m.session.DemoNotification(notify.KindWarning)
		return m, nil

	// Modals
	case key.Matches(msg, m.keys.OpenConfig):
		m.session.OpenConfig()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.session.ConfirmRestart()
		return m, nil

	// Widgets
	case key.Matches(msg, m.keys.Refresh):
		return m, refreshWidgetsCmd(m.ctx, m.session)

	case key.Matches(msg, m.keys.Outage):
		m.session.ToggleOutage()
		return m, nil
	}

	return m, nil
}

// handleModalKeys runs the primary or cancel action of the open modal
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	overlays := m.session.Overlays()
	active, ok := overlays.Active()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		if action, ok := active.PrimaryAction(); ok {
			action.Run()
		} else {
			overlays.Close()
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if action, ok := active.CancelAction(); ok {
			action.Run()
		} else {
			overlays.Close()
		}
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleSearchKeys edits the search query and filters as the user types
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.table.SetSearch("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.table.Search() {
		m.table.SetSearch(m.search.Value())
	}
	return m, cmd
}

// moveColumn selects the next column by delta, wrapping at both ends
func (m *Model) moveColumn(delta int) {
	n := len(m.table.Columns())
	if n == 0 {
		return
	}
	m.selectedColumn = ((m.selectedColumn+delta)%n + n) % n
}
