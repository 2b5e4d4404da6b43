package datatable

// DefaultPageSize is the page size used when Options leaves it unset.
const DefaultPageSize = 5

// Options configures a Table.
type Options struct {
	// SearchKeys lists the column keys the search query applies to.
	SearchKeys []string
	// PageSize defaults to DefaultPageSize when zero. Negative values are
	// clamped to 1.
	PageSize int
	// DisablePagination shows every filtered row on one page.
	DisablePagination bool
}

// Table holds the interactive state of a data table: the search query, the
// sort state and the current page. It does not own the data; callers may
// replace it at any time with SetData.
type Table[T any] struct {
	columns []Column[T]
	data    []T
	opts    Options

	search string
	sort   SortState
	page   PageState
}

// NewTable creates a table over columns with the given options.
func NewTable[T any](columns []Column[T], opts Options) *Table[T] {
	size := opts.PageSize
	if size == 0 {
		size = DefaultPageSize
	}
	return &Table[T]{
		columns: columns,
		opts:    opts,
		page:    PageState{Current: 1, Size: size}.Normalize(),
	}
}

// Columns returns the column descriptors in display order.
func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

// SetData replaces the underlying rows.
func (t *Table[T]) SetData(data []T) {
	t.data = data
}

// Search returns the active search query.
func (t *Table[T]) Search() string {
	return t.search
}

// SetSearch changes the search query and returns to the first page.
func (t *Table[T]) SetSearch(query string) {
	if query == t.search {
		return
	}
	t.search = query
	t.page.Current = 1
}

// Sort returns the active sort state.
func (t *Table[T]) Sort() SortState {
	return t.sort
}

// ToggleSort advances the sort cycle for key. Unknown and non-sortable
// columns are ignored; the return value reports whether the state changed.
func (t *Table[T]) ToggleSort(key string) bool {
	col, ok := columnIndex(t.columns)[key]
	if !ok || !col.Sortable() {
		return false
	}
	t.sort = t.sort.Next(key)
	return true
}

// ToggleSortAt advances the sort cycle for the column at position i.
func (t *Table[T]) ToggleSortAt(i int) bool {
	if i < 0 || i >= len(t.columns) {
		return false
	}
	return t.ToggleSort(t.columns[i].Key)
}

// Page returns the requested page state.
func (t *Table[T]) Page() PageState {
	return t.page
}

// GotoPage selects page n, clamped to the available range.
func (t *Table[T]) GotoPage(n int) {
	total := t.View().TotalPages
	switch {
	case n < 1:
		n = 1
	case n > total:
		n = total
	}
	t.page.Current = n
}

// NextPage advances one page unless already on the last one.
func (t *Table[T]) NextPage() {
	t.GotoPage(t.View().Page.Current + 1)
}

// PrevPage goes back one page unless already on the first one.
func (t *Table[T]) PrevPage() {
	t.GotoPage(t.View().Page.Current - 1)
}

// View projects the current data with the table's state.
func (t *Table[T]) View() Result[T] {
	return Project(t.data, t.columns, Query{
		Search:     t.search,
		SearchKeys: t.opts.SearchKeys,
		Sort:       t.sort,
		Page:       t.page,
		Paginate:   !t.opts.DisablePagination,
	})
}
