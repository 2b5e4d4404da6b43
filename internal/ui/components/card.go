package components

import (
	"github.com/alexisbeaulieu97/terrafusion/internal/ui"
)

// Card is a bordered container using the theme's card border.
type Card struct {
	*Container
}

// NewCard creates a card around children.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...)
	container.WithAppliers(CardBaseStyle()...)
	return &Card{Container: container}
}

// WithTitle puts a header above the content.
func (c *Card) WithTitle(title string) *Card {
	c.Prepend(NewHeader(title))
	return c
}

// WithHeader puts a title and description above the content.
func (c *Card) WithHeader(title, description string) *Card {
	c.Prepend(NewHeader(title).WithSubtitle(description))
	return c
}

// WithFooter adds a divider and footer below the content.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(NewDivider(), footer)
	return c
}

// WithWidth fixes the card width.
func (c *Card) WithWidth(width int) *Card {
	c.Container.WithWidth(width)
	return c
}
