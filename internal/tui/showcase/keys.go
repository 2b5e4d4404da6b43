package showcase

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the showcase.
type KeyMap struct {
	NextPage    key.Binding
	ToggleMode  key.Binding
	ToggleTheme key.Binding
	Help        key.Binding
	Quit        key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding

	Search      key.Binding
	ColumnLeft  key.Binding
	ColumnRight key.Binding
	Sort        key.Binding
	TableNext   key.Binding
	TablePrev   key.Binding

	NotifySuccess key.Binding
	NotifyError   key.Binding
	NotifyInfo    key.Binding
	NotifyWarning key.Binding
	OpenConfig    key.Binding
	Restart       key.Binding
	Refresh       key.Binding
	Outage        key.Binding

	Confirm key.Binding
	Cancel  key.Binding
	Accept  key.Binding
	Clear   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPage:    newBinding([]string{"tab"}, "switch page", "tab"),
		ToggleTheme: newBinding([]string{"t"}, "toggle theme", "t"),
		ToggleMode:  newBinding([]string{"d"}, "dark/light", "d"),
		Help:        newBinding([]string{"?"}, "help", "?"),
		Quit:        newBinding([]string{"q", "ctrl+c"}, "quit", "q"),
		ScrollUp:    newBinding([]string{"k", "up", "pgup"}, "scroll up", "k/↑"),
		ScrollDown:  newBinding([]string{"j", "down", "pgdown"}, "scroll down", "j/↓"),

		Search:      newBinding([]string{"/"}, "search", "/"),
		ColumnLeft:  newBinding([]string{"h", "left"}, "previous column", "h/←"),
		ColumnRight: newBinding([]string{"l", "right"}, "next column", "l/→"),
		Sort:        newBinding([]string{"s"}, "sort column", "s"),
		TableNext:   newBinding([]string{"n"}, "next page", "n"),
		TablePrev:   newBinding([]string{"p"}, "previous page", "p"),

		NotifySuccess: newBinding([]string{"1"}, "success toast", "1"),
		NotifyError:   newBinding([]string{"2"}, "error toast", "2"),
		NotifyInfo:    newBinding([]string{"3"}, "info toast", "3"),
		NotifyWarning: newBinding([]string{"4"}, "warning toast", "4"),
		OpenConfig:    newBinding([]string{"m"}, "configuration", "m"),
		Restart:       newBinding([]string{"c"}, "restart system", "c"),
		Refresh:       newBinding([]string{"r"}, "refresh widgets", "r"),
		Outage:        newBinding([]string{"f"}, "simulate outage", "f"),

		Confirm: newBinding([]string{"y", "enter"}, "confirm", "y/enter"),
		Cancel:  newBinding([]string{"n", "esc"}, "cancel", "n/esc"),
		Accept:  newBinding([]string{"enter"}, "apply search", "enter"),
		Clear:   newBinding([]string{"esc"}, "clear search", "esc"),
	}
}

func newBinding(keys []string, help, display string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(display, help),
	)
}

// pageHelp adapts the bindings of one page to help.KeyMap.
type pageHelp struct {
	keys KeyMap
	page Page
}

// ShortHelp returns the bindings shown in the footer.
func (h pageHelp) ShortHelp() []key.Binding {
	k := h.keys
	if h.page == PageAdvanced {
		return []key.Binding{k.NextPage, k.Search, k.Sort, k.NotifySuccess, k.OpenConfig, k.Restart, k.Help, k.Quit}
	}
	return []key.Binding{k.NextPage, k.ToggleTheme, k.ToggleMode, k.Help, k.Quit}
}

// FullHelp returns every binding of the page grouped in columns.
func (h pageHelp) FullHelp() [][]key.Binding {
	k := h.keys
	global := []key.Binding{k.NextPage, k.ToggleTheme, k.ToggleMode, k.ScrollUp, k.ScrollDown, k.Help, k.Quit}
	if h.page != PageAdvanced {
		return [][]key.Binding{global}
	}
	return [][]key.Binding{
		global,
		{k.Search, k.ColumnLeft, k.ColumnRight, k.Sort, k.TableNext, k.TablePrev},
		{k.NotifySuccess, k.NotifyError, k.NotifyInfo, k.NotifyWarning},
		{k.OpenConfig, k.Restart, k.Refresh, k.Outage},
	}
}

// modalHelp lists the keys that act on an open modal.
type modalHelp struct {
	keys KeyMap
}

func (h modalHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Confirm, h.keys.Cancel}
}

func (h modalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// searchHelp lists the keys of the search box.
type searchHelp struct {
	keys KeyMap
}

func (h searchHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Accept, h.keys.Clear}
}

func (h searchHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
