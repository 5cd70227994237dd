// Package output renders ranking and history results as JSON, console
// tables, and SVG line charts.
package output

import (
	"encoding/json"

	"esicli/pkg/esi/models"
)

// RankingsToJSON serializes the rankings mapping: each component key
// maps to its ordered list of ["name", value] pairs. Missing values are
// null (JSON has no NaN literal).
func RankingsToJSON(rankings map[string]models.Ranking, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rankings, "", "  ")
	}
	return json.Marshal(rankings)
}
