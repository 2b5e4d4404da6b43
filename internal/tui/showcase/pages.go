package showcase

import (
	"fmt"

	"github.com/alexisbeaulieu97/terrafusion/internal/ui"
	"github.com/alexisbeaulieu97/terrafusion/internal/ui/components"
)

// columnWidth splits the available width into n columns separated by gap.
func columnWidth(ctx components.RenderContext, n, gap, minimum int) int {
	if !ctx.Constraints.HasWidth() || n <= 0 {
		return minimum
	}
	return max((ctx.Constraints.MaxWidth-gap*(n-1))/n, minimum)
}

// renderComponentsPage renders the static component gallery
func renderComponentsPage(ctx components.RenderContext) string {
	theme := ctx.Theme
	cardWidth := columnWidth(ctx, 3, 2, 24)

	palette := components.NewPanel("Colour Palette",
		components.NewSwatchRow(components.PaletteSwatches(theme)...),
		components.CaptionText("Brand"),
		components.NewSwatchRow(components.BrandSwatches()...),
	)

	typography := components.NewPanel("Typography",
		components.TitleText("Title: The quick brown fox"),
		components.HeadingText("Heading: jumps over the lazy dog"),
		components.BodyText("Body: TerraFusion components render with the active theme."),
		components.EmphasisText("Emphasis: highlighted copy"),
		components.CaptionText("Caption: supporting details"),
		components.MutedText("Muted: secondary information"),
		components.CodeText("code: terrafusion render advanced"),
	)

	buttons := components.NewPanel("Buttons",
		components.HStack(
			components.PrimaryButton("Primary"),
			components.SecondaryButton("Secondary"),
			components.OutlineButton("Outline"),
			components.GhostButton("Ghost"),
			components.DangerButton("Danger"),
			components.WarningButton("Warning"),
		).WithGap(1),
		components.HStack(
			components.PrimaryButton("Focused").WithFocused(true),
			components.PrimaryButton("Disabled").WithDisabled(true),
		).WithGap(1),
	)

	badges := components.NewPanel("Badges",
		components.HStack(
			components.PrimaryBadge("Primary"),
			components.SuccessBadge("Success"),
			components.WarningBadge("Warning"),
			components.ErrorBadge("Error"),
			components.InfoBadge("Info"),
			components.OutlineBadge("Outline"),
		).WithGap(1),
	)

	alerts := components.NewPanel("Alerts",
		components.SuccessAlert("Deployment finished without errors.").WithTitle("Success"),
		components.InfoAlert("A new version of the design system is available.").WithTitle("Info"),
		components.WarningAlert("Storage is nearly full.").WithTitle("Warning"),
		components.ErrorAlert("The build pipeline failed.").WithTitle("Error"),
	)

	cards := components.NewPanel("Cards",
		components.HStack(
			components.NewCard(components.BodyText("A card groups related content.")).
				WithTitle("Simple Card").
				WithWidth(cardWidth),
			components.NewCard(components.BodyText("Cards can carry a description.")).
				WithHeader("Described Card", "With a subtitle").
				WithWidth(cardWidth),
			components.NewCard(components.BodyText("And a footer for actions.")).
				WithTitle("Footer Card").
				WithFooter(components.HStack(components.GhostButton("Cancel"), components.PrimaryButton("Save")).WithGap(1)).
				WithWidth(cardWidth),
		).WithGap(2),
	)

	stats := components.NewPanel("Statistics",
		components.HStack(
			components.NewStatCard("Revenue", "$48,250").
				WithIcon("$").
				WithChange(12.5).
				WithDescription("from last month").
				WithWidth(cardWidth),
			components.NewStatCard("Orders", "1,284").
				WithIcon("◫").
				WithChange(-3.2).
				WithDescription("from last month").
				WithWidth(cardWidth),
			components.NewStatCard("Conversion", "3.6").
				WithUnit("%").
				WithIcon("◎").
				WithChange(0).
				WithDescription("no change").
				WithWidth(cardWidth),
		).WithGap(2),
	)

	progress := components.NewPanel("Progress",
		components.NewProgress("Storage", 72, 100).WithWidth(40),
		components.NewProgress("Bandwidth", 45, 100).WithSlot(components.PaletteInfo).WithWidth(40),
		components.NewProgress("Error budget", 91, 100).WithSlot(components.PaletteDanger).WithWidth(40),
	)

	page := components.VStack(palette, typography, buttons, badges, alerts, cards, stats, progress)
	return page.ViewWithContext(ctx)
}

// renderAdvancedPage renders the live widgets, the team table and the
// notification and modal triggers
func (m Model) renderAdvancedPage(ctx components.RenderContext) string {
	now := m.now()
	cardWidth := columnWidth(ctx, 3, 2, 24)

	cards := make([]ui.Renderable, 0, len(m.session.Widgets()))
	for _, w := range m.session.Widgets() {
		cards = append(cards, components.WidgetCard(w.State(), m.spinner.View(), now).WithWidth(cardWidth))
	}
	widgets := components.NewPanel("Live Widgets", components.HStack(cards...).WithGap(2))
	if m.session.Simulator().Failing() {
		widgets.Add(components.WarningAlert("Simulated outage: refreshes fail until you press f again.").
			WithTitle("Outage"))
	}

	widgets.Add(components.CaptionText("Press r to refresh now · f to toggle an outage"))

	team := components.NewPanel("Team Members", m.renderSearch(), m.renderTable(ctx))

	notifications := components.NewPanel("Notifications",
		components.HStack(
			components.PrimaryButton("1 Success"),
			components.DangerButton("2 Error"),
			components.SecondaryButton("3 Info"),
			components.WarningButton("4 Warning"),
		).WithGap(1),
		components.CaptionText(fmt.Sprintf("%d active", m.session.Notifications().Len())),
	)

	modals := components.NewPanel("Modals",
		components.HStack(
			components.OutlineButton("m Configuration"),
			components.DangerButton("c Restart System"),
		).WithGap(1),
	)

	return components.VStack(widgets, team, notifications, modals).ViewWithContext(ctx)
}

// renderSearch renders the search box or the active query
func (m Model) renderSearch() ui.Renderable {
	if m.searching {
		return ui.Static(m.search.View())
	}
	if q := m.table.Search(); q != "" {
		return components.MutedText(fmt.Sprintf("Filter: %q (press / to edit)", q))
	}
	return components.MutedText("Press / to search by name, email or role")
}

// renderTable renders the current page of the team table
func (m Model) renderTable(ctx components.RenderContext) ui.Renderable {
	return components.NewDataTable(TeamColumns(ctx.Theme), m.table.View()).
		WithSort(m.table.Sort()).
		WithSelectedColumn(m.selectedColumn)
}
