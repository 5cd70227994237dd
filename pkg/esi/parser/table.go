// Package parser reads entity tables from the source workbook and from
// per-entity CSV cache files.
package parser

import "time"

// Table is a raw date-indexed table as read from the workbook or a
// cache file, before the index is normalized to monthly periods.
type Table struct {
	// Columns holds the component column headers.
	Columns []string
	// Dates is the raw date index, aligned with Rows.
	Dates []time.Time
	// Rows holds one slice of component values per date. Missing
	// observations are NaN.
	Rows [][]float64
}
