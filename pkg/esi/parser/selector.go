package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnSelection is a parsed column selector: the date index column
// plus a contiguous block of data columns. Column numbers are 1-based.
type ColumnSelection struct {
	// Index is the date index column.
	Index int
	// Start is the first data column.
	Start int
	// End is the last data column, inclusive.
	End int
}

// ParseSelector parses a selector of the form "A,C:H": a single index
// column, a comma, and a letter range of data columns.
func ParseSelector(sel string) (ColumnSelection, error) {
	parts := strings.Split(sel, ",")
	if len(parts) != 2 {
		return ColumnSelection{}, fmt.Errorf("invalid column selector %q: want \"<col>,<col>:<col>\"", sel)
	}
	idx, err := excelize.ColumnNameToNumber(strings.TrimSpace(parts[0]))
	if err != nil {
		return ColumnSelection{}, fmt.Errorf("invalid index column in %q: %w", sel, err)
	}
	bounds := strings.Split(parts[1], ":")
	if len(bounds) != 2 {
		return ColumnSelection{}, fmt.Errorf("invalid column range in %q: want \"<col>:<col>\"", sel)
	}
	start, err := excelize.ColumnNameToNumber(strings.TrimSpace(bounds[0]))
	if err != nil {
		return ColumnSelection{}, fmt.Errorf("invalid range start in %q: %w", sel, err)
	}
	end, err := excelize.ColumnNameToNumber(strings.TrimSpace(bounds[1]))
	if err != nil {
		return ColumnSelection{}, fmt.Errorf("invalid range end in %q: %w", sel, err)
	}
	if end < start {
		return ColumnSelection{}, fmt.Errorf("invalid column range in %q: end before start", sel)
	}
	return ColumnSelection{Index: idx, Start: start, End: end}, nil
}

// Width returns the number of data columns selected.
func (s ColumnSelection) Width() int { return s.End - s.Start + 1 }
