package datatable

import "strings"

// Query holds everything that shapes a projection besides the data itself.
type Query struct {
	Search     string
	SearchKeys []string
	Sort       SortState
	Page       PageState
	Paginate   bool
}

// Result is the projected view of a data set.
type Result[T any] struct {
	// Rows are the records to display on the current page.
	Rows []T
	// Total counts the records that survived filtering.
	Total int
	// TotalPages is at least 1.
	TotalPages int
	// Pages is the pagination bar for Page.Current.
	Pages []PageItem
	// Page is the normalized page state actually used.
	Page PageState
	// Paginated reports whether Rows is a single page of the filtered set.
	Paginated bool
}

// From returns the 1-based index of the first visible row, or 0 when there
// is none.
func (r Result[T]) From() int {
	if r.Total == 0 || len(r.Rows) == 0 {
		return 0
	}
	if !r.Paginated {
		return 1
	}
	return (r.Page.Current-1)*r.Page.Size + 1
}

// To returns the 1-based index of the last visible row.
func (r Result[T]) To() int {
	if r.From() == 0 {
		return 0
	}
	return r.From() + len(r.Rows) - 1
}

// Project filters, sorts and paginates data. The input slice is never
// modified. A current page past the end is clamped to the last page.
func Project[T any](data []T, columns []Column[T], q Query) Result[T] {
	index := columnIndex(columns)

	rows := filterRows(data, index, q.Search, q.SearchKeys)

	if q.Sort.Active() {
		if col, ok := index[q.Sort.Key]; ok {
			sortRows(rows, col, q.Sort.Direction)
		}
	}

	total := len(rows)
	if !q.Paginate {
		return Result[T]{
			Rows:       rows,
			Total:      total,
			TotalPages: 1,
			Pages:      PageNumbers(1, 1),
			Page:       PageState{Current: 1, Size: max(total, 1)},
		}
	}

	page := q.Page.Normalize()
	totalPages := TotalPages(total, page.Size)
	if page.Current > totalPages {
		page.Current = totalPages
	}

	start := (page.Current - 1) * page.Size
	end := min(start+page.Size, total)
	visible := rows[start:end]
	if start >= end {
		visible = rows[:0]
	}

	return Result[T]{
		Rows:       visible,
		Total:      total,
		TotalPages: totalPages,
		Pages:      PageNumbers(page.Current, totalPages),
		Page:       page,
		Paginated:  true,
	}
}

// Filter keeps the records for which at least one search key matches
// query. It returns a copy of data when query or keys are empty.
func Filter[T any](data []T, columns []Column[T], query string, keys []string) []T {
	return filterRows(data, columnIndex(columns), query, keys)
}

func filterRows[T any](data []T, index map[string]Column[T], query string, keys []string) []T {
	if query == "" || len(keys) == 0 {
		out := make([]T, len(data))
		copy(out, data)
		return out
	}

	searchable := make([]Column[T], 0, len(keys))
	for _, k := range keys {
		if col, ok := index[k]; ok && col.Value != nil {
			searchable = append(searchable, col)
		}
	}

	lowered := strings.ToLower(query)
	out := make([]T, 0, len(data))
	for _, row := range data {
		for _, col := range searchable {
			if matches(col.Value(row), query, lowered) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
