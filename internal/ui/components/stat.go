package components

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/terrafusion/internal/widget"
)

// StatCard shows a headline number with its change since the last period.
type StatCard struct {
	BaseComponent
	title       string
	value       string
	unit        string
	icon        string
	description string
	change      float64
	hasChange   bool
	status      string
	failed      bool
	width       int
}

// NewStatCard creates a stat card.
func NewStatCard(title, value string) *StatCard {
	s := &StatCard{
		BaseComponent: NewBaseComponent(),
		title:         title,
		value:         value,
	}
	s.SetAppliers(CardBaseStyle()...)
	return s
}

// WithUnit sets the unit printed after the value.
func (s *StatCard) WithUnit(unit string) *StatCard {
	s.unit = unit
	return s
}

// WithIcon sets the glyph shown before the title.
func (s *StatCard) WithIcon(icon string) *StatCard {
	s.icon = icon
	return s
}

// WithDescription sets the caption after the change indicator.
func (s *StatCard) WithDescription(description string) *StatCard {
	s.description = description
	return s
}

// WithChange shows the percentage change. Positive changes render as an
// upward trend.
func (s *StatCard) WithChange(percent float64) *StatCard {
	s.change = percent
	s.hasChange = true
	return s
}

// WithStatus sets the status line at the bottom of the card. Failed
// statuses use the danger colour.
func (s *StatCard) WithStatus(status string, failed bool) *StatCard {
	s.status = status
	s.failed = failed
	return s
}

// WithWidth fixes the outer width.
func (s *StatCard) WithWidth(width int) *StatCard {
	s.width = width
	return s
}

// View renders the card with the default theme.
func (s *StatCard) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card.
func (s *StatCard) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := s.ComputeStyle(theme)

	width := s.width
	if width <= 0 && ctx.Constraints.HasWidth() {
		width = ctx.Constraints.MaxWidth
	}
	if width > 0 {
		style = style.Width(max(width-style.GetHorizontalBorderSize(), 1))
	}

	title := s.title
	if s.icon != "" {
		title = s.icon + " " + title
	}
	value := lipgloss.NewStyle().Bold(true).Foreground(theme.Palette.Primary.Base).Render(s.value)
	if s.unit != "" {
		value += theme.TextStyle(TypographySubtitle).Render(" " + s.unit)
	}

	lines := []string{theme.TextStyle(TypographySubtitle).Render(title), value}
	if s.hasChange || s.description != "" {
		var parts []string
		if s.hasChange {
			parts = append(parts, changeStyle(theme, s.change).Render(FormatChange(s.change)))
		}
		if s.description != "" {
			parts = append(parts, theme.TextStyle(TypographyCaption).Render(s.description))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(parts)...))
	}
	if s.status != "" {
		statusStyle := theme.TextStyle(TypographyCaption)
		if s.failed {
			statusStyle = lipgloss.NewStyle().Foreground(theme.Palette.Danger.Base)
		}
		lines = append(lines, statusStyle.Render(s.status))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}

func changeStyle(theme Theme, percent float64) lipgloss.Style {
	switch {
	case percent > 0:
		return lipgloss.NewStyle().Foreground(theme.Palette.Success.Base)
	case percent < 0:
		return lipgloss.NewStyle().Foreground(theme.Palette.Danger.Base)
	default:
		return theme.TextStyle(TypographyMuted)
	}
}

// FormatChange renders a percentage change with its trend arrow and one
// decimal, for example "▲ 5.9%".
func FormatChange(percent float64) string {
	arrow := "–"
	switch {
	case percent > 0:
		arrow = "▲"
	case percent < 0:
		arrow = "▼"
	}
	return fmt.Sprintf("%s %.1f%%", arrow, math.Abs(percent))
}

// WidgetCard builds the stat card for a widget snapshot. While a refresh is
// running the status shows spinnerFrame; otherwise it shows the last error
// or the time since the last update.
func WidgetCard(state widget.State, spinnerFrame string, now time.Time) *StatCard {
	card := NewStatCard(state.Title, state.Value.String()).
		WithUnit(state.Unit).
		WithIcon(state.Icon)
	if pct, ok := state.PercentChange(); ok {
		card.WithChange(pct).WithDescription("from previous")
	}

	switch {
	case state.Refreshing:
		card.WithStatus(spinnerFrame+" refreshing…", false)
	case state.Err != nil:
		card.WithStatus(AlertVariantError.Icon()+" refresh failed", true)
	case state.LastUpdated.IsZero():
		card.WithStatus("Waiting for first refresh", false)
	default:
		card.WithStatus("Updated "+RelativeAge(state.LastUpdated, now), false)
	}
	return card
}
