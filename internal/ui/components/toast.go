package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/terrafusion/internal/notify"
)

const defaultToastWidth = 40

// KindIcon returns the glyph shown for a notification kind.
func KindIcon(kind notify.Kind) string {
	switch kind {
	case notify.KindSuccess:
		return AlertVariantSuccess.Icon()
	case notify.KindError:
		return AlertVariantError.Icon()
	case notify.KindWarning:
		return AlertVariantWarning.Icon()
	default:
		return AlertVariantInfo.Icon()
	}
}

func kindSlot(kind notify.Kind) PaletteSlot {
	switch kind {
	case notify.KindSuccess:
		return PaletteSuccess
	case notify.KindError:
		return PaletteDanger
	case notify.KindWarning:
		return PaletteWarning
	default:
		return PaletteInfo
	}
}

// Toast draws a single notification.
type Toast struct {
	BaseComponent
	item  notify.Notification
	now   time.Time
	width int
}

// NewToast creates a toast for n. Ages are measured against now.
func NewToast(n notify.Notification, now time.Time) *Toast {
	return &Toast{
		BaseComponent: NewBaseComponent(),
		item:          n,
		now:           now,
		width:         defaultToastWidth,
	}
}

// WithWidth sets the outer width.
func (t *Toast) WithWidth(width int) *Toast {
	t.width = width
	return t
}

// View renders the toast with the default theme.
func (t *Toast) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toast.
func (t *Toast) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	slot := kindSlot(t.item.Kind)
	colour := slot(theme.Palette).Base

	width := t.width
	if ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth < width {
		width = ctx.Constraints.MaxWidth
	}

	style := t.ComputeStyle(theme).
		Border(theme.BorderFor(BorderVariantRounded)).
		BorderForeground(colour).
		Background(theme.Palette.Raised.Base).
		Padding(0, 1).
		Width(max(width-2, 1))

	icon := lipgloss.NewStyle().Foreground(colour).Bold(true).Render(KindIcon(t.item.Kind))
	title := theme.TextStyle(TypographyEmphasis).Render(t.item.Title)
	lines := []string{icon + " " + title}
	if t.item.Message != "" {
		lines = append(lines, theme.TextStyle(TypographyBody).Render(t.item.Message))
	}
	lines = append(lines, theme.TextStyle(TypographyCaption).Render(RelativeAge(t.item.CreatedAt, t.now)))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ToastStack draws notifications oldest first, one above the other.
type ToastStack struct {
	items []notify.Notification
	now   time.Time
	width int
	limit int
}

// NewToastStack creates a stack for items.
func NewToastStack(items []notify.Notification, now time.Time) *ToastStack {
	return &ToastStack{items: items, now: now, width: defaultToastWidth}
}

// WithWidth sets the width of each toast.
func (s *ToastStack) WithWidth(width int) *ToastStack {
	s.width = width
	return s
}

// WithLimit shows only the newest limit notifications. Zero shows all.
func (s *ToastStack) WithLimit(limit int) *ToastStack {
	s.limit = limit
	return s
}

// Len returns how many toasts are drawn.
func (s *ToastStack) Len() int {
	if s.limit > 0 && len(s.items) > s.limit {
		return s.limit
	}
	return len(s.items)
}

// View renders the stack with the default theme.
func (s *ToastStack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack. An empty stack renders nothing.
func (s *ToastStack) ViewWithContext(ctx RenderContext) string {
	items := s.items[len(s.items)-s.Len():]
	if len(items) == 0 {
		return ""
	}
	views := make([]string, len(items))
	for i, item := range items {
		views[i] = NewToast(item, s.now).WithWidth(s.width).ViewWithContext(ctx)
	}
	return lipgloss.JoinVertical(lipgloss.Right, views...)
}
