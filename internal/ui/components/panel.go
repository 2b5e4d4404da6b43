package components

import (
	"github.com/alexisbeaulieu97/terrafusion/internal/ui"
)

// Panel is a titled section of a page. It is lighter than a Card: a heading,
// a rule and the content, without a frame.
type Panel struct {
	*Container
	title string
}

// NewPanel creates a panel with a title.
func NewPanel(title string, children ...ui.Renderable) *Panel {
	container := NewContainer(children...).WithPadding(Spacing{Bottom: 1})
	p := &Panel{Container: container, title: title}
	if title != "" {
		container.Prepend(HeadingText(title).WithAppliers(Foreground(PalettePrimary)), NewDivider())
	}
	return p
}

// Title returns the panel title.
func (p *Panel) Title() string {
	return p.title
}
