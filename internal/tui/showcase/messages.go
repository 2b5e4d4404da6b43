package showcase

// Page selects which demonstration page is shown.
type Page int

const (
	PageComponents Page = iota
	PageAdvanced
)

// Pages lists the pages in tab order.
func Pages() []Page {
	return []Page{PageComponents, PageAdvanced}
}

func (p Page) String() string {
	switch p {
	case PageAdvanced:
		return "Advanced"
	default:
		return "Components"
	}
}

// ParsePage converts a page name such as "components" or "advanced".
func ParsePage(name string) (Page, bool) {
	switch name {
	case "components":
		return PageComponents, true
	case "advanced":
		return PageAdvanced, true
	default:
		return PageComponents, false
	}
}

// Registry Messages

// notificationsChangedMsg indicates the notification list changed
type notificationsChangedMsg struct{}

// overlayChangedMsg indicates a modal opened or closed
type overlayChangedMsg struct{}

// widgetChangedMsg indicates a widget state changed
type widgetChangedMsg struct {
	Index int
}

// Operation Messages

// widgetsRefreshedMsg reports the result of a manual refresh
type widgetsRefreshedMsg struct {
	Err error
}
