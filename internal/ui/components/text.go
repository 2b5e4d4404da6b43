package components

import "github.com/charmbracelet/lipgloss"

// Text renders a run of styled text.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, wrapping it to the width limit.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if ctx.Constraints.HasWidth() {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	return style.Render(t.content)
}

// Content returns the text.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the text.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers appends theme-aware style functions.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText uses the title typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyTitle))
}

// HeadingText uses the heading typography.
func HeadingText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyHeading))
}

// BodyText uses the body typography.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyBody))
}

// CaptionText uses the caption typography.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCaption))
}

// MutedText uses the muted typography.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyMuted))
}

// EmphasisText uses the emphasis typography.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyEmphasis))
}

// CodeText uses the code typography.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCode))
}
