package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider is a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that fills the available width.
func NewDivider() *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
	d.SetAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.Raised.Muted)
	})
	return d
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider at its width, the context width or a
// default of 40 cells, in that order.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Constraints.HasWidth() {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 {
		width = defaultDividerWidth
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar changes the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// GlowDivider is the heavy rule of the advanced theme.
func GlowDivider() *Divider {
	d := NewDivider().WithChar("━")
	d.SetAppliers(Foreground(PalettePrimary))
	return d
}
