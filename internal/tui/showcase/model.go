package showcase

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/terrafusion/internal/datatable"
	"github.com/alexisbeaulieu97/terrafusion/internal/ui/components"
)

// Model is the showcase program model
type Model struct {
	session    *Session
	ctx        context.Context
	appearance components.Appearance

	// UI state
	page      Page
	keys      KeyMap
	help      help.Model
	showHelp  bool
	search    textinput.Model
	searching bool
	spinner   spinner.Model

	// Table state
	table          *datatable.Table[Member]
	selectedColumn int

	// Subscriptions
	notifyCh  <-chan struct{}
	overlayCh <-chan struct{}
	widgetChs []<-chan struct{}

	// Dimensions
	width  int
	height int
	offset int

	maxToasts int
	quitting  bool
}

// NewModel creates the showcase model for session, starting on page. The
// session must outlive the program; the caller closes it afterwards.
func NewModel(ctx context.Context, session *Session, page Page) Model {
	cfg := session.Config()

	appearance := components.DefaultAppearance()
	if v, err := components.ParseThemeVariant(cfg.Theme.Variant); err == nil {
		appearance.SetVariant(v)
	}
	if mode, err := components.ParseThemeMode(cfg.Theme.Mode); err == nil {
		appearance.SetMode(mode)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	search := textinput.New()
	search.Placeholder = "Search team..."
	search.Prompt = "/ "
	search.CharLimit = 64

	widgetChs := make([]<-chan struct{}, len(session.Widgets()))
	for i, w := range session.Widgets() {
		widgetChs[i] = w.Subscribe()
	}

	return Model{
		session:    session,
		ctx:        ctx,
		appearance: appearance,
		page:       page,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		search:     search,
		spinner:    s,
		table:      NewTeamTable(cfg.Table.PageSize),
		notifyCh:   session.Notifications().Subscribe(),
		overlayCh:  session.Overlays().Subscribe(),
		widgetChs:  widgetChs,
		width:      100,
		height:     40,
		maxToasts:  cfg.Notifications.MaxVisible,
	}
}

// Init starts the spinner and the registry subscriptions
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		waitForSignal(m.notifyCh, notificationsChangedMsg{}),
		waitForSignal(m.overlayCh, overlayChangedMsg{}),
	}
	for i, ch := range m.widgetChs {
		cmds = append(cmds, waitForSignal(ch, widgetChangedMsg{Index: i}))
	}
	return tea.Batch(cmds...)
}

// Page returns the current page.
func (m Model) Page() Page {
	return m.page
}

// Appearance returns the current theme choice.
func (m Model) Appearance() components.Appearance {
	return m.appearance
}

// Theme resolves the current appearance.
func (m Model) Theme() components.Theme {
	return m.appearance.Theme()
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool {
	return m.searching
}

// Table returns the team table state.
func (m Model) Table() *datatable.Table[Member] {
	return m.table
}

// SelectedColumn returns the index of the column the sort key acts on.
func (m Model) SelectedColumn() int {
	return m.selectedColumn
}

// now returns the session clock.
func (m Model) now() time.Time {
	return m.session.Now()
}
