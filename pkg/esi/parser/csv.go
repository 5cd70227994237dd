package parser

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

// cacheDateLayout is the index format of cache files.
const cacheDateLayout = "2006-01-02"

// WriteCacheFile writes a table to an entity cache file: a header row
// with an unnamed index column followed by the component headers, then
// one row per date. NaN values are written as empty cells.
func WriteCacheFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{""}, t.Columns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, date := range t.Dates {
		record := make([]string, 0, len(t.Columns)+1)
		record = append(record, date.Format(cacheDateLayout))
		for _, v := range t.Rows[i] {
			record = append(record, formatValue(v))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadCacheFile reads a table back from an entity cache file, parsing
// the first column as a date and empty cells as NaN.
func LoadCacheFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading %s: empty cache file", path)
	}

	t := &Table{Columns: records[0][1:]}
	for i, record := range records[1:] {
		if len(record) != len(t.Columns)+1 {
			return nil, fmt.Errorf("reading %s: row %d has %d fields, want %d", path, i+2, len(record), len(t.Columns)+1)
		}
		date, err := time.Parse(cacheDateLayout, record[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: row %d: %w", path, i+2, err)
		}
		vals := make([]float64, 0, len(t.Columns))
		for _, cell := range record[1:] {
			vals = append(vals, parseValue(cell))
		}
		t.Dates = append(t.Dates, date)
		t.Rows = append(t.Rows, vals)
	}
	return t, nil
}

// formatValue renders a value for a cache cell; NaN round-trips as "".
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
