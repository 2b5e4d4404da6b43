package datatable

import "sort"

// Direction is the order applied to the active sort column.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// SortState is the active sort column and its direction.
type SortState struct {
	Key       string
	Direction Direction
}

// Active reports whether the state requests any ordering.
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != None
}

// Next returns the state after the user selects key. Repeated selection of
// the same key cycles ascending, descending, none; a different key always
// starts at ascending.
func (s SortState) Next(key string) SortState {
	if key == "" {
		return SortState{}
	}
	if s.Key != key {
		return SortState{Key: key, Direction: Ascending}
	}
	switch s.Direction {
	case None:
		return SortState{Key: key, Direction: Ascending}
	case Ascending:
		return SortState{Key: key, Direction: Descending}
	default:
		return SortState{}
	}
}

// DirectionFor reports the direction key is sorted in, or None.
func (s SortState) DirectionFor(key string) Direction {
	if s.Key != key {
		return None
	}
	return s.Direction
}

func sortRows[T any](rows []T, col Column[T], dir Direction) {
	if col.Value == nil || dir == None {
		return
	}
	keys := make([]any, len(rows))
	for i, r := range rows {
		keys[i] = col.Value(r)
	}
	sort.Stable(&keyedRows[T]{rows: rows, keys: keys, desc: dir == Descending})
}

type keyedRows[T any] struct {
	rows []T
	keys []any
	desc bool
}

func (k *keyedRows[T]) Len() int { return len(k.rows) }

func (k *keyedRows[T]) Less(i, j int) bool {
	c := compareValues(k.keys[i], k.keys[j])
	if k.desc {
		return c > 0
	}
	return c < 0
}

func (k *keyedRows[T]) Swap(i, j int) {
	k.rows[i], k.rows[j] = k.rows[j], k.rows[i]
	k.keys[i], k.keys[j] = k.keys[j], k.keys[i]
}
