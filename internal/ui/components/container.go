package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/terrafusion/internal/ui"
)

// Container is a box around a vertical stack of children. Card and Panel
// build on it.
type Container struct {
	BaseComponent
	layout  *Stack
	padding Spacing
	width   int
}

// NewContainer creates an unstyled container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children inside the container frame. The frame
// is sized to the fixed width when set, otherwise it shrinks to fit the
// width limit.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	outer := c.width
	if outer <= 0 && ctx.Constraints.HasWidth() {
		outer = ctx.Constraints.MaxWidth
	}

	inner := ctx
	if outer > 0 {
		frame := style.GetHorizontalFrameSize()
		inner = ctx.WithMaxWidth(max(outer-frame, 1))
		if c.width > 0 {
			style = style.Width(max(outer-style.GetHorizontalBorderSize(), 1))
		}
	}

	return style.Render(c.layout.ViewWithContext(inner))
}

// WithPadding sets inner spacing.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithWidth fixes the outer width including the border.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithStyle sets the raw lipgloss style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers appends theme-aware style functions.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Prepend inserts children before the existing ones.
func (c *Container) Prepend(children ...ui.Renderable) *Container {
	existing := c.layout.Children()
	all := make([]ui.Renderable, 0, len(children)+len(existing))
	all = append(all, children...)
	all = append(all, existing...)
	c.layout.children = all
	return c
}
