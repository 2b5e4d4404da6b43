package components

import "github.com/charmbracelet/lipgloss"

// Header is a section title with an optional subtitle line.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header using the title typography.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.SetAppliers(Typography(TypographyTitle))
	return h
}

// View renders the header with the default theme.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := h.ComputeStyle(ctx.Theme).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	subtitle := ctx.Theme.TextStyle(TypographySubtitle).Render(h.subtitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// WithSubtitle sets the line shown under the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers replaces the title styling.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
