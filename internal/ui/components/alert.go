package components

import "github.com/charmbracelet/lipgloss"

// AlertVariant picks the alert colours and icon.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// Icon returns the glyph shown before the alert message.
func (v AlertVariant) Icon() string {
	switch v {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "⚠"
	case AlertVariantError:
		return "✗"
	default:
		return "ℹ"
	}
}

// Alert is an inline message box.
type Alert struct {
	BaseComponent
	title   string
	message string
	variant AlertVariant
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	style := a.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	if ctx.Constraints.HasWidth() {
		style = style.Width(max(ctx.Constraints.MaxWidth-style.GetHorizontalBorderSize(), 1))
	}

	line := a.variant.Icon() + " " + a.message
	if a.title == "" {
		return style.Render(line)
	}
	title := lipgloss.NewStyle().Bold(true).Render(a.title)
	body := ctx.Theme.TextStyle(TypographyBody).Render(a.message)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, a.variant.Icon()+" "+title, body))
}

// WithVariant sets the variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithTitle shows a bold title above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
