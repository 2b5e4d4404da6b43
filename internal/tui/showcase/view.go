package showcase

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/terrafusion/internal/overlay"
	"github.com/alexisbeaulieu97/terrafusion/internal/ui/components"
)

const toastWidth = 40

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	theme := m.Theme()
	ctx := components.ContextFor(theme).WithMaxWidth(m.width)

	if active, ok := m.session.Overlays().Active(); ok {
		return m.renderModal(ctx, active)
	}

	header := m.renderHeader(ctx)
	footer := m.renderFooter()
	body := m.renderPage(ctx)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body = m.scrollWindow(body, bodyHeight)
	body = m.withToasts(ctx, body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Snapshot renders the header and the whole page once, without scrolling,
// toasts or modal. It backs the non-interactive render command.
func (m Model) Snapshot() string {
	ctx := components.ContextFor(m.Theme()).WithMaxWidth(m.width)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(ctx), m.renderPage(ctx))
}

// WithSize returns a copy of the model sized to width by height.
func (m Model) WithSize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

// WithPage returns a copy of the model showing page.
func (m Model) WithPage(page Page) Model {
	m.page = page
	m.offset = 0
	return m
}

// WithAppearance returns a copy of the model using appearance.
func (m Model) WithAppearance(appearance components.Appearance) Model {
	m.appearance = appearance
	return m
}

// renderHeader renders the title, the page tabs and the theme badge
func (m Model) renderHeader(ctx components.RenderContext) string {
	theme := ctx.Theme
	title := components.TitleText("◆ TerraFusion Design System").ViewWithContext(ctx)

	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Palette.Primary.OnBase).
		Background(theme.Palette.Primary.Base).
		Padding(0, 1)
	inactive := theme.TextStyle(components.TypographySubtitle).Padding(0, 1)

	tabs := make([]string, 0, len(Pages()))
	for _, p := range Pages() {
		if p == m.page {
			tabs = append(tabs, active.Render(p.String()))
		} else {
			tabs = append(tabs, inactive.Render(p.String()))
		}
	}
	badge := components.OutlineBadge(m.appearance.String()).ViewWithContext(ctx)
	row := lipgloss.JoinHorizontal(lipgloss.Center, append(tabs, "  ", badge)...)

	divider := components.NewDivider()
	if theme.Variant == components.ThemeAdvanced {
		divider = components.GlowDivider()
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, row, divider.ViewWithContext(ctx))
}

// renderFooter renders the search box hint or the key help
func (m Model) renderFooter() string {
	var keys help.KeyMap = pageHelp{keys: m.keys, page: m.page}
	if m.searching {
		keys = searchHelp{keys: m.keys}
	}
	return m.help.View(keys)
}

// renderPage renders the body of the current page
func (m Model) renderPage(ctx components.RenderContext) string {
	if m.page == PageAdvanced {
		return m.renderAdvancedPage(ctx)
	}
	return renderComponentsPage(ctx)
}

// renderModal centres the active modal on an otherwise empty screen
func (m Model) renderModal(ctx components.RenderContext, active overlay.Descriptor) string {
	box := components.NewModal(active).ViewWithContext(ctx.WithMaxWidth(max(m.width-4, 20)))
	hint := m.help.View(modalHelp{keys: m.keys})
	screen := lipgloss.JoinVertical(lipgloss.Center, box, hint)
	return components.Overlay(screen, m.width, m.height, ctx.Theme)
}

// scrollWindow keeps height lines of body starting at the scroll offset
func (m Model) scrollWindow(body string, height int) string {
	if height <= 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	if len(lines) <= height {
		return body
	}
	start := min(m.offset, len(lines)-height)
	visible := lines[start : start+height]
	if start > 0 {
		visible[0] = components.MutedText("▲ More above").View()
	}
	if start+height < len(lines) {
		visible[len(visible)-1] = components.MutedText("▼ More below").View()
	}
	return strings.Join(visible, "\n")
}

// withToasts draws the newest notifications over the bottom-right corner
// of body
func (m Model) withToasts(ctx components.RenderContext, body string) string {
	items := m.session.Notifications().List()
	if len(items) == 0 {
		return body
	}
	stack := components.NewToastStack(items, m.now()).
		WithWidth(min(toastWidth, m.width)).
		WithLimit(m.maxToasts).
		ViewWithContext(ctx)
	return overlayBottomRight(body, stack, m.width)
}

// overlayBottomRight replaces the right end of the last lines of base with
// box. Lines are padded so the box always sits against the right edge of
// width.
func overlayBottomRight(base, box string, width int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)
	if width < boxWidth {
		width = boxWidth
	}
	for len(baseLines) < len(boxLines) {
		baseLines = append(baseLines, "")
	}

	start := len(baseLines) - len(boxLines)
	left := width - boxWidth
	for i, boxLine := range boxLines {
		line := ansi.Truncate(baseLines[start+i], left, "")
		if pad := left - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		baseLines[start+i] = line + boxLine
	}
	return strings.Join(baseLines, "\n")
}
