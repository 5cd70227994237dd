package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts covers the date renderings excelize produces for the
// workbook's index column, plus ISO forms.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"Jan-06",
	"2-Jan-06",
}

// ReadSheet opens the workbook and returns the raw rows of the named
// sheet. Missing file or missing sheet errors propagate to the caller.
func ReadSheet(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return rows, nil
}

// EntityTableFromRows builds one entity's table from raw sheet rows and
// its column selector. Row 0 is the header; the selector's index column
// is parsed as a date and the data block as floats, blanks becoming NaN.
// Rows with an empty index cell are skipped.
func EntityTableFromRows(rows [][]string, selector string) (*Table, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet has no header row")
	}

	header := rows[0]
	columns := make([]string, 0, sel.Width())
	for col := sel.Start; col <= sel.End; col++ {
		columns = append(columns, strings.TrimSpace(cellAt(header, col)))
	}

	t := &Table{Columns: columns}
	for i, row := range rows[1:] {
		raw := strings.TrimSpace(cellAt(row, sel.Index))
		if raw == "" {
			continue
		}
		date, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		vals := make([]float64, 0, sel.Width())
		for col := sel.Start; col <= sel.End; col++ {
			vals = append(vals, parseValue(cellAt(row, col)))
		}
		t.Dates = append(t.Dates, date)
		t.Rows = append(t.Rows, vals)
	}
	return t, nil
}

// cellAt returns the 1-based column's cell, or "" past the row's end
// (excelize trims trailing empty cells).
func cellAt(row []string, col int) string {
	if col-1 >= len(row) {
		return ""
	}
	return row[col-1]
}

// parseDate parses an index cell: any known date layout, or an Excel
// serial number.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if d, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// parseValue parses a data cell. Blank and non-numeric cells are NaN;
// the source uses blanks for not-yet-published observations.
func parseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
