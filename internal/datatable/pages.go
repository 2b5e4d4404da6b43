package datatable

import "strconv"

const maxVisiblePages = 5

// PageState is the requested page and the number of rows per page.
type PageState struct {
	Current int
	Size    int
}

// Normalize clamps the current page and size to at least 1. A non-positive
// size is treated as a page size of 1.
func (p PageState) Normalize() PageState {
	if p.Size < 1 {
		p.Size = 1
	}
	if p.Current < 1 {
		p.Current = 1
	}
	return p
}

// TotalPages returns ceil(count/size), never less than 1.
func TotalPages(count, size int) int {
	if size < 1 {
		size = 1
	}
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// PageItem is one entry of a pagination bar: either a page number or a gap
// marker.
type PageItem struct {
	Number int
}

// Ellipsis marks skipped page numbers.
var Ellipsis = PageItem{}

// IsEllipsis reports whether the item is a gap marker.
func (p PageItem) IsEllipsis() bool {
	return p.Number == 0
}

func (p PageItem) String() string {
	if p.IsEllipsis() {
		return "..."
	}
	return strconv.Itoa(p.Number)
}

// PageNumbers lays out the pagination bar for total pages with current
// selected. Up to five pages are listed in full; beyond that the first and
// last pages are always present along with a three page window around
// current, and an Ellipsis stands in for each gap.
func PageNumbers(current, total int) []PageItem {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	if total <= maxVisiblePages {
		items := make([]PageItem, 0, total)
		for i := 1; i <= total; i++ {
			items = append(items, PageItem{Number: i})
		}
		return items
	}

	start := max(2, current-1)
	end := min(total-1, current+1)
	if current <= 2 {
		end = 4
	} else if current >= total-1 {
		start = total - 3
	}

	items := make([]PageItem, 0, maxVisiblePages+2)
	items = append(items, PageItem{Number: 1})
	if start > 2 {
		items = append(items, Ellipsis)
	}
	for i := start; i <= end; i++ {
		items = append(items, PageItem{Number: i})
	}
	if end < total-1 {
		items = append(items, Ellipsis)
	}
	items = append(items, PageItem{Number: total})
	return items
}
