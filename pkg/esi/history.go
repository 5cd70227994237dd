package esi

import (
	"fmt"
	"strings"

	"esicli/pkg/esi/models"
)

// HistoricalValues returns the last months values of one component for
// every entity, plus the shared period axis. An unrecognized component
// suffix silently falls back to the composite indicator; asking for more
// months than exist yields shorter series without error, and a
// non-positive months yields empty series.
func HistoricalValues(cfg Config, component string, months int) (*models.HistorySeries, error) {
	tables, err := FetchTables(cfg)
	if err != nil {
		return nil, err
	}
	return HistoryFromTables(tables, component, months)
}

// HistoryFromTables extracts the history series from already-fetched
// tables.
//
// The period axis is taken from the first catalog entity's table and
// assumed to hold for all entities; per-entity calendars are not
// reconciled.
func HistoryFromTables(tables models.TableCollection, component string, months int) (*models.HistorySeries, error) {
	if !isComponentSuffix(component) {
		component = SuffixComposite
	}
	if months < 0 {
		months = 0
	}

	series := &models.HistorySeries{
		Countries: make(map[string][]float64, len(EntityCodes)),
	}
	for _, code := range EntityCodes {
		col := strings.ToUpper(code) + component
		vals, ok := tables[code].Column(col)
		if !ok {
			return nil, &ImportError{Entity: code, Err: fmt.Errorf("missing column %q", col)}
		}
		if len(vals) > months {
			vals = vals[len(vals)-months:]
		}
		series.Countries[code] = vals
	}
	series.Dates = tables[EntityCodes[0]].Tail(months).Periods
	return series, nil
}
