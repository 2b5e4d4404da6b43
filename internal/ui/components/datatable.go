package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/terrafusion/internal/datatable"
)

// Sort indicators shown after sortable headers.
const (
	SortIndicatorNone       = "↕"
	SortIndicatorAscending  = "▲"
	SortIndicatorDescending = "▼"
)

// DefaultEmptyMessage is shown when a table has no rows to display.
const DefaultEmptyMessage = "No results found"

// DataTable draws one projected page of a datatable with its summary line
// and pagination bar.
type DataTable[T any] struct {
	BaseComponent
	columns      []datatable.Column[T]
	result       datatable.Result[T]
	sort         datatable.SortState
	emptyMessage string
	selected     int
}

// NewDataTable creates a table component for result.
func NewDataTable[T any](columns []datatable.Column[T], result datatable.Result[T]) *DataTable[T] {
	return &DataTable[T]{
		BaseComponent: NewBaseComponent(),
		columns:       columns,
		result:        result,
		emptyMessage:  DefaultEmptyMessage,
		selected:      -1,
	}
}

// WithSort marks the active sort column in the header.
func (d *DataTable[T]) WithSort(state datatable.SortState) *DataTable[T] {
	d.sort = state
	return d
}

// WithEmptyMessage replaces the text shown for an empty result.
func (d *DataTable[T]) WithEmptyMessage(message string) *DataTable[T] {
	d.emptyMessage = message
	return d
}

// WithSelectedColumn marks the header of column i as selected. A negative
// index selects nothing.
func (d *DataTable[T]) WithSelectedColumn(i int) *DataTable[T] {
	d.selected = i
	return d
}

// View renders the table with the default theme.
func (d *DataTable[T]) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table.
func (d *DataTable[T]) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	palette := theme.Palette

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(palette.Surface.OnBase).Padding(0, 1)
	oddStyle := cellStyle.Foreground(palette.Surface.Muted)

	rows := make([][]string, 0, len(d.result.Rows))
	for _, row := range d.result.Rows {
		cells := make([]string, len(d.columns))
		for i, col := range d.columns {
			cells[i] = datatable.FormatCell(col, row)
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(theme.BorderFor(theme.CardBorder)).
		BorderStyle(lipgloss.NewStyle().Foreground(palette.Raised.Muted)).
		Headers(d.headers()...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 1:
				return oddStyle
			default:
				return cellStyle
			}
		})
	if ctx.Constraints.HasWidth() {
		t = t.Width(ctx.Constraints.MaxWidth)
	}

	sections := []string{t.String()}
	if len(d.result.Rows) == 0 {
		sections = append(sections, theme.TextStyle(TypographyMuted).Padding(0, 1).Render(d.emptyMessage))
	}
	footer := theme.TextStyle(TypographyCaption).Render(Summary(d.result))
	if bar := d.pageBar(theme); bar != "" {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, footer, "   ", bar)
	}
	sections = append(sections, footer)

	style := d.ComputeStyle(theme)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (d *DataTable[T]) headers() []string {
	headers := make([]string, len(d.columns))
	for i, col := range d.columns {
		label := col.Header
		if col.Sortable() {
			label += " " + SortIndicator(d.sort, col.Key)
		}
		if i == d.selected {
			label = "▸ " + label
		}
		headers[i] = label
	}
	return headers
}

func (d *DataTable[T]) pageBar(theme Theme) string {
	if !d.result.Paginated || len(d.result.Pages) == 0 {
		return ""
	}
	current := lipgloss.NewStyle().
		Background(theme.Palette.Primary.Base).
		Foreground(theme.Palette.Primary.OnBase).
		Bold(true).
		Padding(0, 1)
	other := lipgloss.NewStyle().Foreground(theme.Palette.Surface.OnBase).Padding(0, 1)
	gap := theme.TextStyle(TypographyMuted).Padding(0, 1)

	items := make([]string, 0, len(d.result.Pages))
	for _, item := range d.result.Pages {
		switch {
		case item.IsEllipsis():
			items = append(items, gap.Render("…"))
		case item.Number == d.result.Page.Current:
			items = append(items, current.Render(item.String()))
		default:
			items = append(items, other.Render(item.String()))
		}
	}
	return strings.Join(items, "")
}

// SortIndicator returns the glyph for key under state.
func SortIndicator(state datatable.SortState, key string) string {
	switch state.DirectionFor(key) {
	case datatable.Ascending:
		return SortIndicatorAscending
	case datatable.Descending:
		return SortIndicatorDescending
	default:
		return SortIndicatorNone
	}
}

// Summary describes which rows of a result are visible.
func Summary[T any](r datatable.Result[T]) string {
	return fmt.Sprintf("Showing %d to %d of %d results", r.From(), r.To(), r.Total)
}
