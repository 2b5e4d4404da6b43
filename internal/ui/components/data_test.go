package components

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/terrafusion/internal/datatable"
	"github.com/alexisbeaulieu97/terrafusion/internal/notify"
	"github.com/alexisbeaulieu97/terrafusion/internal/overlay"
	"github.com/alexisbeaulieu97/terrafusion/internal/ui"
	"github.com/alexisbeaulieu97/terrafusion/internal/widget"
)

type person struct {
	name   string
	role   string
	status string
}

var people = []person{
	{"Alex", "Admin", "Active"},
	{"Sarah", "User", "Active"},
	{"Michael", "Editor", "Inactive"},
	{"Emily", "User", "Active"},
	{"David", "Admin", "Active"},
	{"Jessica", "User", "Pending"},
	{"Ryan", "Editor", "Active"},
}

func personColumns() []datatable.Column[person] {
	return []datatable.Column[person]{
		{Header: "Name", Key: "name", Value: func(p person) any { return p.name }},
		{Header: "Role", Key: "role", Value: func(p person) any { return p.role }},
		{Header: "Status", Key: "status", Value: func(p person) any { return p.status }, DisableSort: true},
	}
}

func newPeopleTable() *datatable.Table[person] {
	tbl := datatable.NewTable(personColumns(), datatable.Options{SearchKeys: []string{"name", "role"}})
	tbl.SetData(people)
	return tbl
}

func renderTable(tbl *datatable.Table[person]) *DataTable[person] {
	return NewDataTable(tbl.Columns(), tbl.View()).WithSort(tbl.Sort())
}

func TestDataTableRendersPage(t *testing.T) {
	t.Parallel()

	tbl := newPeopleTable()
	view := plain(renderTable(tbl).View())

	assert.Contains(t, view, "Name ↕")
	assert.Contains(t, view, "Role ↕")
	assert.NotContains(t, view, "Status ↕")
	assert.Contains(t, view, "Alex")
	assert.Contains(t, view, "David")
	assert.NotContains(t, view, "Jessica")
	assert.Contains(t, view, "Showing 1 to 5 of 7 results")
	assert.NotContains(t, view, DefaultEmptyMessage)
}

func TestDataTableSortIndicators(t *testing.T) {
	t.Parallel()

	tbl := newPeopleTable()
	require.True(t, tbl.ToggleSort("name"))
	view := plain(renderTable(tbl).View())
	assert.Contains(t, view, "Name ▲")
	assert.Contains(t, view, "Role ↕")

	require.True(t, tbl.ToggleSort("name"))
	view = plain(renderTable(tbl).View())
	assert.Contains(t, view, "Name ▼")
	assert.Contains(t, view, "Sarah")
	assert.NotContains(t, view, "Alex")

	selected := plain(renderTable(tbl).WithSelectedColumn(1).View())
	assert.Contains(t, selected, "Name ▼")
	assert.Contains(t, selected, "▸ Role ↕")
	assert.NotContains(t, selected, "▸ Name")
}

func TestDataTableEmpty(t *testing.T) {
	t.Parallel()

	tbl := newPeopleTable()
	tbl.SetSearch("nobody")
	view := plain(renderTable(tbl).View())
	assert.Contains(t, view, DefaultEmptyMessage)
	assert.Contains(t, view, "Showing 0 to 0 of 0 results")

	custom := plain(renderTable(tbl).WithEmptyMessage("No team members").View())
	assert.Contains(t, custom, "No team members")
}

func TestDataTableSecondPage(t *testing.T) {
	t.Parallel()

	tbl := newPeopleTable()
	tbl.NextPage()
	view := plain(renderTable(tbl).View())
	assert.Contains(t, view, "Jessica")
	assert.Contains(t, view, "Ryan")
	assert.Contains(t, view, "Showing 6 to 7 of 7 results")
}

func TestDataTableRespectsWidth(t *testing.T) {
	t.Parallel()

	view := renderTable(newPeopleTable()).ViewWithContext(DefaultContext().WithMaxWidth(50))
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 50)
	}
}

func TestSortIndicator(t *testing.T) {
	t.Parallel()

	state := datatable.SortState{Key: "name", Direction: datatable.Descending}
	assert.Equal(t, SortIndicatorDescending, SortIndicator(state, "name"))
	assert.Equal(t, SortIndicatorNone, SortIndicator(state, "role"))
	assert.Equal(t, SortIndicatorNone, SortIndicator(datatable.SortState{}, "name"))
}

func TestToast(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := notify.Notification{
		ID:        "a",
		Kind:      notify.KindSuccess,
		Title:     "Saved",
		Message:   "All changes stored",
		CreatedAt: now.Add(-2 * time.Minute),
	}
	view := NewToast(n, now).View()
	text := plain(view)
	assert.Contains(t, text, "✓ Saved")
	assert.Contains(t, text, "All changes stored")
	assert.Contains(t, text, "2 minutes ago")
	for _, line := range strings.Split(view, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}

	narrow := NewToast(n, now).ViewWithContext(DefaultContext().WithMaxWidth(24))
	assert.Equal(t, 24, lipgloss.Width(narrow))
}

func TestToastStackShowsNewest(t *testing.T) {
	t.Parallel()

	now := time.Now()
	items := []notify.Notification{
		{ID: "1", Kind: notify.KindInfo, Title: "first", CreatedAt: now},
		{ID: "2", Kind: notify.KindWarning, Title: "second", CreatedAt: now},
		{ID: "3", Kind: notify.KindError, Title: "third", CreatedAt: now},
	}

	stack := NewToastStack(items, now).WithLimit(2)
	assert.Equal(t, 2, stack.Len())
	view := plain(stack.View())
	assert.NotContains(t, view, "first")
	assert.Contains(t, view, "⚠ second")
	assert.Contains(t, view, "✗ third")
	assert.Less(t, strings.Index(view, "second"), strings.Index(view, "third"))

	assert.Empty(t, NewToastStack(nil, now).View())
	assert.Equal(t, 3, NewToastStack(items, now).Len())
}

func TestKindIcon(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✓", KindIcon(notify.KindSuccess))
	assert.Equal(t, "✗", KindIcon(notify.KindError))
	assert.Equal(t, "⚠", KindIcon(notify.KindWarning))
	assert.Equal(t, "ℹ", KindIcon(notify.KindInfo))
	assert.Equal(t, "ℹ", KindIcon("other"))
}

func TestModalWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size      overlay.Size
		available int
		want      int
	}{
		{overlay.SizeSmall, 0, 40},
		{overlay.SizeMedium, 0, 56},
		{overlay.SizeLarge, 0, 72},
		{overlay.SizeFull, 0, 96},
		{overlay.SizeFull, 120, 120},
		{overlay.SizeLarge, 60, 60},
		{overlay.SizeSmall, 100, 40},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ModalWidth(tt.size, tt.available))
		})
	}
}

func TestModalView(t *testing.T) {
	t.Parallel()

	d := overlay.Descriptor{
		Title:       "Restart System",
		Description: "All services will be restarted",
		Body:        ui.Static("Continue?"),
		Size:        overlay.SizeSmall,
		Actions: []overlay.Action{
			{Label: "Cancel"},
			{Label: "Restart", Primary: true, Severity: overlay.SeverityDanger},
		},
	}
	view := NewModal(d).View()
	text := plain(view)
	for _, want := range []string{"Restart System", "All services will be restarted", "Continue?", "Cancel", "Restart"} {
		assert.Contains(t, text, want)
	}
	for _, line := range strings.Split(view, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}

func TestActionButton(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ButtonVariantDanger, ActionButton(overlay.Action{Severity: overlay.SeverityDanger}).Variant())
	assert.Equal(t, ButtonVariantWarning, ActionButton(overlay.Action{Severity: overlay.SeverityWarning, Primary: true}).Variant())
	assert.Equal(t, ButtonVariantPrimary, ActionButton(overlay.Action{Primary: true}).Variant())
	assert.Equal(t, ButtonVariantOutline, ActionButton(overlay.Action{}).Variant())
}

func TestOverlayCentersBox(t *testing.T) {
	t.Parallel()

	placed := Overlay("box", 20, 5, DefaultTheme())
	lines := strings.Split(placed, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, 20, lipgloss.Width(lines[2]))
	assert.Contains(t, lines[2], "box")
	assert.Equal(t, "box", Overlay("box", 0, 0, DefaultTheme()))
}

func TestFormatChange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "▲ 5.9%", FormatChange(5.93))
	assert.Equal(t, "▼ 2.0%", FormatChange(-2))
	assert.Equal(t, "– 0.0%", FormatChange(0))
}

func TestWidgetCard(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	base := widget.State{
		Title:    "Active Users",
		Icon:     "◉",
		Value:    widget.Number(1250),
		Previous: widget.Number(1180),
	}

	tests := []struct {
		name   string
		mutate func(*widget.State)
		want   []string
	}{
		{
			name:   "waiting",
			mutate: func(*widget.State) {},
			want:   []string{"◉ Active Users", "1,250", "▲ 5.9%", "Waiting for first refresh"},
		},
		{
			name:   "refreshing",
			mutate: func(s *widget.State) { s.Refreshing = true },
			want:   []string{"⣾ refreshing…"},
		},
		{
			name:   "failed",
			mutate: func(s *widget.State) { s.Err = errors.New("boom") },
			want:   []string{"✗ refresh failed"},
		},
		{
			name:   "updated",
			mutate: func(s *widget.State) { s.LastUpdated = now.Add(-3 * time.Minute) },
			want:   []string{"Updated 3 minutes ago"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := base
			tt.mutate(&state)
			view := plain(WidgetCard(state, "⣾", now).View())
			for _, want := range tt.want {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestStatCardUnitAndNoChange(t *testing.T) {
	t.Parallel()

	view := plain(NewStatCard("CPU Usage", "42").WithUnit("%").WithWidth(30).View())
	assert.Contains(t, view, "42 %")
	assert.NotContains(t, view, "▲")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}
