package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pageItems(values ...int) []PageItem {
	items := make([]PageItem, len(values))
	for i, v := range values {
		items[i] = PageItem{Number: v}
	}
	return items
}

// gap is written as 0 in expectations.
const gap = 0

func TestPageNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		want    []PageItem
	}{
		{name: "single page", current: 1, total: 1, want: pageItems(1)},
		{name: "five pages listed in full", current: 3, total: 5, want: pageItems(1, 2, 3, 4, 5)},
		{name: "first page", current: 1, total: 10, want: pageItems(1, 2, 3, 4, gap, 10)},
		{name: "second page", current: 2, total: 10, want: pageItems(1, 2, 3, 4, gap, 10)},
		{name: "third page", current: 3, total: 10, want: pageItems(1, 2, 3, 4, gap, 10)},
		{name: "middle page", current: 5, total: 10, want: pageItems(1, gap, 4, 5, 6, gap, 10)},
		{name: "second to last", current: 9, total: 10, want: pageItems(1, gap, 7, 8, 9, 10)},
		{name: "last page", current: 10, total: 10, want: pageItems(1, gap, 7, 8, 9, 10)},
		{name: "six pages near start", current: 3, total: 6, want: pageItems(1, 2, 3, 4, gap, 6)},
		{name: "six pages near end", current: 4, total: 6, want: pageItems(1, gap, 3, 4, 5, 6)},
		{name: "current out of range", current: 42, total: 10, want: pageItems(1, gap, 7, 8, 9, 10)},
		{name: "zero total", current: 1, total: 0, want: pageItems(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PageNumbers(tt.current, tt.total))
		})
	}
}

func TestPageNumbersShape(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			items := PageNumbers(current, total)

			assert.False(t, items[0].IsEllipsis())
			assert.False(t, items[len(items)-1].IsEllipsis())
			assert.Equal(t, 1, items[0].Number)
			assert.Equal(t, total, items[len(items)-1].Number)

			prev := 0
			for i, item := range items {
				if item.IsEllipsis() {
					assert.False(t, items[i-1].IsEllipsis(), "consecutive ellipses at %d/%d", current, total)
					continue
				}
				assert.GreaterOrEqual(t, item.Number, 1)
				assert.LessOrEqual(t, item.Number, total)
				if i > 0 && !items[i-1].IsEllipsis() {
					assert.Equal(t, prev+1, item.Number, "missing ellipsis at %d/%d", current, total)
				}
				if i > 0 && items[i-1].IsEllipsis() {
					assert.Greater(t, item.Number-prev, 1)
				}
				prev = item.Number
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, TotalPages(0, 5))
	assert.Equal(t, 2, TotalPages(7, 5))
	assert.Equal(t, 2, TotalPages(10, 5))
	assert.Equal(t, 3, TotalPages(3, 0))
}

func TestPageItemString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "...", Ellipsis.String())
	assert.Equal(t, "12", PageItem{Number: 12}.String())
}
