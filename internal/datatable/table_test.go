package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortStateCyclesWithPeriodFour(t *testing.T) {
	t.Parallel()

	var s SortState
	want := []Direction{Ascending, Descending, None, Ascending, Descending, None}
	for i, dir := range want {
		s = s.Next("name")
		assert.Equal(t, dir, s.Direction, "step %d", i)
		if dir == None {
			assert.Empty(t, s.Key, "key clears together with direction")
			assert.False(t, s.Active())
		}
	}
}

func TestSortStateDifferentKeyResetsToAscending(t *testing.T) {
	t.Parallel()

	s := SortState{}.Next("name").Next("name")
	require.Equal(t, Descending, s.Direction)

	s = s.Next("email")
	assert.Equal(t, SortState{Key: "email", Direction: Ascending}, s)
	assert.Equal(t, Ascending, s.DirectionFor("email"))
	assert.Equal(t, None, s.DirectionFor("name"))
}

func TestTableSearchResetsPage(t *testing.T) {
	t.Parallel()

	table := NewTable(memberColumns(), Options{SearchKeys: []string{"name", "role"}})
	table.SetData(sevenMembers())

	table.NextPage()
	require.Equal(t, 2, table.View().Page.Current)

	table.SetSearch("user")
	view := table.View()
	assert.Equal(t, 1, view.Page.Current)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, "user", table.Search())
}

func TestTablePagingIsClamped(t *testing.T) {
	t.Parallel()

	table := NewTable(memberColumns(), Options{})
	table.SetData(sevenMembers())

	table.PrevPage()
	assert.Equal(t, 1, table.Page().Current)

	table.NextPage()
	table.NextPage()
	table.NextPage()
	assert.Equal(t, 2, table.Page().Current)

	table.GotoPage(-4)
	assert.Equal(t, 1, table.Page().Current)
}

func TestTableToggleSortIgnoresUnsortableColumns(t *testing.T) {
	t.Parallel()

	table := NewTable(memberColumns(), Options{})
	table.SetData(sevenMembers())

	assert.False(t, table.ToggleSort("id"))
	assert.False(t, table.ToggleSort("missing"))
	assert.False(t, table.ToggleSortAt(12))
	assert.Equal(t, SortState{}, table.Sort())

	assert.True(t, table.ToggleSortAt(0))
	assert.Equal(t, "Alex Johnson", table.View().Rows[0].Name)

	assert.True(t, table.ToggleSort("name"))
	assert.Equal(t, "Sarah Williams", table.View().Rows[0].Name)

	assert.True(t, table.ToggleSort("name"))
	assert.Equal(t, names(sevenMembers()[:5]), names(table.View().Rows))
}

func TestTableNonPositivePageSize(t *testing.T) {
	t.Parallel()

	table := NewTable(memberColumns(), Options{PageSize: -3})
	table.SetData(sevenMembers())
	assert.Equal(t, 1, table.Page().Size)
	assert.Len(t, table.View().Rows, 1)
}

func TestTableWithoutPagination(t *testing.T) {
	t.Parallel()

	table := NewTable(memberColumns(), Options{DisablePagination: true})
	table.SetData(sevenMembers())
	assert.Len(t, table.View().Rows, 7)
}
