package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/terrafusion/internal/overlay"
)

// ModalWidth maps a modal size to its outer width in cells. Full modals take
// the available width, or 96 cells when unconstrained.
func ModalWidth(size overlay.Size, available int) int {
	var width int
	switch size {
	case overlay.SizeSmall:
		width = 40
	case overlay.SizeLarge:
		width = 72
	case overlay.SizeFull:
		width = 96
		if available > 0 {
			width = available
		}
	default:
		width = 56
	}
	if available > 0 && width > available {
		width = available
	}
	return width
}

// ActionButton renders an overlay action as a button. Danger and warning
// actions keep their colours; other primary actions use the primary button
// and the rest are outlined.
func ActionButton(action overlay.Action) *Button {
	button := NewButton(action.Label)
	switch {
	case action.Severity == overlay.SeverityDanger:
		button.WithVariant(ButtonVariantDanger)
	case action.Severity == overlay.SeverityWarning:
		button.WithVariant(ButtonVariantWarning)
	case action.Primary:
		button.WithVariant(ButtonVariantPrimary)
	default:
		button.WithVariant(ButtonVariantOutline)
	}
	return button.WithFocused(action.Primary)
}

// Modal draws the descriptor of the active overlay.
type Modal struct {
	BaseComponent
	descriptor overlay.Descriptor
}

// NewModal creates a modal for d.
func NewModal(d overlay.Descriptor) *Modal {
	return &Modal{
		BaseComponent: NewBaseComponent(),
		descriptor:    d,
	}
}

// View renders the modal with the default theme.
func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the modal box. The caller positions it.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	d := m.descriptor
	width := ModalWidth(d.Size, ctx.Constraints.MaxWidth)

	style := m.ComputeStyle(theme).
		Border(theme.BorderFor(BorderVariantDouble)).
		BorderForeground(theme.Palette.Primary.Base).
		Background(theme.Palette.Raised.Base).
		Padding(0, 1).
		Width(max(width-2, 1))
	inner := ctx.WithMaxWidth(max(width-style.GetHorizontalFrameSize(), 1))

	sections := make([]string, 0, 6)
	if d.Title != "" {
		header := NewHeader(d.Title)
		if d.Description != "" {
			header.WithSubtitle(d.Description)
		}
		sections = append(sections, header.ViewWithContext(inner), NewDivider().ViewWithContext(inner))
	}
	if body := Render(inner, d.Body); body != "" {
		sections = append(sections, body)
	}
	if footer := Render(inner, d.Footer); footer != "" {
		sections = append(sections, footer)
	}
	if len(d.Actions) > 0 {
		buttons := make([]string, 0, len(d.Actions)*2)
		for i, action := range d.Actions {
			if i > 0 {
				buttons = append(buttons, " ")
			}
			buttons = append(buttons, ActionButton(action).ViewWithContext(inner))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
		sections = append(sections, lipgloss.PlaceHorizontal(inner.Constraints.MaxWidth, lipgloss.Right, row))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Overlay places box in the middle of a width by height area. The page
// behind the modal is not drawn.
func Overlay(box string, width, height int, theme Theme) string {
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(theme.Palette.Surface.Muted))
}
