package models

import (
	"math"
	"strconv"
)

// EntityTable is the time-indexed table of one entity's sentiment
// observations: one row per monthly period, one column per component.
// The period index is strictly increasing with no duplicates. Tables are
// built once per invocation and read-only thereafter.
type EntityTable struct {
	// Columns holds the six component column headers, in workbook
	// column order (e.g. "DE.INDU", ..., "DE.ESI").
	Columns []string
	// Periods is the monthly index, aligned with Rows.
	Periods []Month
	// Rows holds one slice of component values per period. Missing
	// observations are NaN.
	Rows [][]float64
}

// Len returns the number of rows.
func (t *EntityTable) Len() int { return len(t.Periods) }

// Tail returns a view of the last n rows, or the whole table when fewer
// than n rows exist. Non-positive n yields an empty view. The view
// shares backing storage with t.
func (t *EntityTable) Tail(n int) *EntityTable {
	if n < 0 {
		n = 0
	}
	if n >= t.Len() {
		return t
	}
	start := t.Len() - n
	return &EntityTable{
		Columns: t.Columns,
		Periods: t.Periods[start:],
		Rows:    t.Rows[start:],
	}
}

// SliceRange returns the view of rows whose period falls within
// [start, end], both inclusive. The view shares backing storage with t
// and may be empty.
func (t *EntityTable) SliceRange(start, end Month) *EntityTable {
	lo := 0
	for lo < t.Len() && t.Periods[lo].Before(start) {
		lo++
	}
	hi := lo
	for hi < t.Len() && !t.Periods[hi].After(end) {
		hi++
	}
	return &EntityTable{
		Columns: t.Columns,
		Periods: t.Periods[lo:hi],
		Rows:    t.Rows[lo:hi],
	}
}

// LastRow returns the values of the most recent row, or false when the
// table is empty.
func (t *EntityTable) LastRow() ([]float64, bool) {
	if t.Len() == 0 {
		return nil, false
	}
	return t.Rows[t.Len()-1], true
}

// Column returns the values of the named column across all rows, or
// false when no such column exists.
func (t *EntityTable) Column(name string) ([]float64, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	vals := make([]float64, t.Len())
	for i, row := range t.Rows {
		vals[i] = row[idx]
	}
	return vals, true
}

// TableCollection maps entity codes to their tables. All catalog
// entities are present; the collection is built fresh per top-level
// operation.
type TableCollection map[string]*EntityTable

// RankedValue is one entry of a ranking: an entity display name and its
// component value (NaN when missing).
type RankedValue struct {
	Name  string
	Value float64
}

// MarshalJSON encodes the entry as a two-element ["name", value] array.
// NaN has no JSON literal, so missing values are encoded as null.
func (rv RankedValue) MarshalJSON() ([]byte, error) {
	v := "null"
	if !math.IsNaN(rv.Value) {
		v = strconv.FormatFloat(rv.Value, 'g', -1, 64)
	}
	return []byte("[" + strconv.Quote(rv.Name) + "," + v + "]"), nil
}

// Ranking is an ordered sequence of entities sorted descending by value.
type Ranking []RankedValue

// HistorySeries holds per-entity historical values for one component,
// plus the shared period axis all series are assumed to follow.
type HistorySeries struct {
	// Countries maps entity codes to their most recent values, oldest
	// first.
	Countries map[string][]float64 `json:"countries"`
	// Dates is the shared period axis, oldest first.
	Dates []Month `json:"dates"`
}
