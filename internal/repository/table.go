package repository

import "jadwal-guru/internal/model"

// Table immutable rows of one fixture table plus a primary key index.
// Duplicate keys resolve to the first row, matching a linear search.
type Table[T model.Entity] struct {
	rows  []T
	index map[model.ID]int
}

// NewTable indexes rows. The slice is copied; later changes to the caller's
// slice are not observed.
func NewTable[T model.Entity](rows []T) *Table[T] {
	t := &Table[T]{
		rows:  make([]T, len(rows)),
		index: make(map[model.ID]int, len(rows)),
	}
	copy(t.rows, rows)
	for i, row := range t.rows {
		key := row.Key()
		if !key.Valid() {
			continue
		}
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}
	return t
}

// Get looks a row up by key. Absent and invalid keys report false.
func (t *Table[T]) Get(id model.ID) (T, bool) {
	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i], true
}

// List returns all rows in source order.
func (t *Table[T]) List() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// Each calls fn for every row in source order without copying.
func (t *Table[T]) Each(fn func(T)) {
	for _, row := range t.rows {
		fn(row)
	}
}

// Len number of rows
func (t *Table[T]) Len() int { return len(t.rows) }
