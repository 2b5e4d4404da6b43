// Package datatable projects an in-memory collection into the rows a table
// should display: it filters by a search query, sorts by one column and
// slices the result into pages. Projection is a pure function of its inputs;
// Table wraps it with the interactive state a UI needs.
package datatable

import (
	"fmt"
)

// Column describes how one field of T is displayed, searched and sorted.
type Column[T any] struct {
	// Header is the label shown above the column.
	Header string
	// Key identifies the column in search keys and sort state.
	Key string
	// Value extracts the raw field value. A nil return means the field is
	// absent on that record.
	Value func(T) any
	// Render optionally formats the cell. When nil the raw value is printed.
	Render func(T) string
	// DisableSort marks the column as not sortable.
	DisableSort bool
}

// Sortable reports whether the column accepts sort requests.
func (c Column[T]) Sortable() bool {
	return !c.DisableSort && c.Value != nil
}

func (c Column[T]) value(row T) any {
	if c.Value == nil {
		return nil
	}
	return c.Value(row)
}

// FormatCell renders the display text of col for row.
func FormatCell[T any](col Column[T], row T) string {
	if col.Render != nil {
		return col.Render(row)
	}
	v := col.value(row)
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Record is a loosely shaped row keyed by field name.
type Record = map[string]any

// Field builds a column over Record values. Records without the key yield a
// nil value.
func Field(header, key string) Column[Record] {
	return Column[Record]{
		Header: header,
		Key:    key,
		Value: func(r Record) any {
			return r[key]
		},
	}
}

func columnIndex[T any](columns []Column[T]) map[string]Column[T] {
	index := make(map[string]Column[T], len(columns))
	for _, c := range columns {
		if c.Key == "" {
			continue
		}
		if _, exists := index[c.Key]; !exists {
			index[c.Key] = c
		}
	}
	return index
}
