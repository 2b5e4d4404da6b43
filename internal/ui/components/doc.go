// Package components is the TerraFusion component library for terminal
// interfaces. Components render to strings with lipgloss and take every
// styling decision from a Theme passed through RenderContext.
//
// # Theme System
//
// A Theme is built from an Appearance, which pairs a variant (standard or
// advanced) with a mode (dark or light):
//
//	appearance := components.DefaultAppearance()
//	appearance.ToggleVariant()
//	ctx := components.ContextFor(appearance.Theme()).WithMaxWidth(80)
//	output := card.ViewWithContext(ctx)
//
// View() renders with the default theme.
//
// # Core Components
//
// Primitives: Text, Spacer, Divider, Header.
// Layout: Stack, Container, Card, Panel.
// Semantic: Button, Badge, Alert, Progress, SwatchRow.
// Data: DataTable over a datatable.Result, StatCard and WidgetCard over
// widget snapshots, Toast and ToastStack over notifications, Modal over the
// active overlay descriptor.
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	card := components.NewCard(body).WithAppliers(
//		components.Background(components.PaletteRaised),
//		components.Padding(components.SpacingMedium),
//	)
//
// Variants of buttons, badges and alerts are looked up in the theme's
// VariantRegistry, keyed by their typed variant constants.
package components
