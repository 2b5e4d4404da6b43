package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/terrafusion/internal/ui"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestTextWrapsToWidth(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithMaxWidth(10)
	view := NewText("terrafusion design system").ViewWithContext(ctx)
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 10)
	}
	assert.Equal(t, "plain", plain(BodyText("plain").View()))
}

func TestRenderFallsBackToView(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	assert.Equal(t, "", Render(ctx, nil))
	assert.Equal(t, "static", Render(ctx, ui.Static("static")))
	assert.Equal(t, "fn", Render(ctx, ui.RenderFunc(func() string { return "fn" })))
}

func TestStackLayout(t *testing.T) {
	t.Parallel()

	vertical := plain(VStack(ui.Static("a"), ui.Static(""), ui.Static("b")).View())
	assert.Equal(t, "a\nb", vertical)

	gapped := plain(VStack(ui.Static("a"), ui.Static("b")).WithGap(2).View())
	assert.Equal(t, []string{"a", " ", " ", "b"}, strings.Split(gapped, "\n"))

	horizontal := plain(HStack(ui.Static("a"), ui.Static("b")).WithGap(1).View())
	assert.Equal(t, "a b", horizontal)
}

func TestContainerFixedWidth(t *testing.T) {
	t.Parallel()

	card := NewCard(BodyText("hello")).WithTitle("Title").WithWidth(30)
	view := card.View()
	for _, line := range strings.Split(view, "\n") {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
	assert.Contains(t, plain(view), "Title")
	assert.Contains(t, plain(view), "hello")
}

func TestCardFitsWidthLimit(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithMaxWidth(24)
	view := NewCard(BodyText(strings.Repeat("word ", 20))).ViewWithContext(ctx)
	assert.LessOrEqual(t, lipgloss.Width(view), 24)
}

func TestPanelHasHeading(t *testing.T) {
	t.Parallel()

	panel := NewPanel("Settings", BodyText("body"))
	assert.Equal(t, "Settings", panel.Title())
	view := plain(panel.View())
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "─")
}

func TestButtonsBadgesAlerts(t *testing.T) {
	t.Parallel()

	buttons := []*Button{
		PrimaryButton("Save"), SecondaryButton("Back"), OutlineButton("Edit"),
		GhostButton("Skip"), DangerButton("Delete"), WarningButton("Reset"),
	}
	for _, b := range buttons {
		assert.Contains(t, plain(b.View()), b.Label())
	}
	assert.Equal(t, ButtonVariantDanger, DangerButton("x").Variant())
	assert.Contains(t, plain(OutlineButton("Edit").View()), "╭")

	assert.Contains(t, plain(SuccessBadge("Active").View()), "Active")

	alert := ErrorAlert("Disk full").WithTitle("Storage")
	view := plain(alert.View())
	assert.Contains(t, view, "✗")
	assert.Contains(t, view, "Storage")
	assert.Contains(t, view, "Disk full")
	assert.Contains(t, plain(InfoAlert("note").View()), "ℹ note")
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, lipgloss.Width(NewDivider().ViewWithContext(DefaultContext().WithMaxWidth(12))))
	assert.Equal(t, 5, lipgloss.Width(NewDivider().WithWidth(5).View()))
}

func TestProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		max   float64
		want  float64
	}{
		{"partial", 65, 100, 65},
		{"over max", 150, 100, 100},
		{"negative", -5, 100, 0},
		{"zero max", 5, 0, 0},
		{"custom max", 3, 4, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ClampPercent(tt.value, tt.max), 1e-9)
		})
	}

	view := plain(NewProgress("Storage", 150, 100).WithWidth(20).View())
	assert.Contains(t, view, "Storage 100%")
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 20, lipgloss.Width(lines[1]))

	hidden := plain(NewProgress("CPU", 1, 2).WithValueHidden().View())
	assert.NotContains(t, hidden, "%")
}

func TestRelativeAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{"zero time", time.Time{}, "never"},
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"future", now.Add(time.Hour), "just now"},
		{"1 minute ago", now.Add(-time.Minute), "1 minute ago"},
		{"5 minutes ago", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"1 hour ago", now.Add(-time.Hour), "1 hour ago"},
		{"3 hours ago", now.Add(-3 * time.Hour), "3 hours ago"},
		{"1 day ago", now.Add(-24 * time.Hour), "1 day ago"},
		{"3 days ago", now.Add(-72 * time.Hour), "3 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeAge(tt.then, now))
		})
	}
}

func TestSwatchRowWraps(t *testing.T) {
	t.Parallel()

	row := NewSwatchRow(BrandSwatches()...).WithChipWidth(12)
	wide := plain(row.View())
	assert.Contains(t, wide, "Dark Blue")
	assert.Contains(t, wide, "#00E5FF")
	assert.Len(t, strings.Split(wide, "\n"), 2)

	narrow := plain(row.ViewWithContext(DefaultContext().WithMaxWidth(30)))
	// two chips per line, three lines of chips
	assert.Len(t, strings.Split(narrow, "\n"), 6)
	assert.Empty(t, NewSwatchRow().View())
}
